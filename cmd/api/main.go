package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/infrastructure/database/postgres"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/api"
	"github.com/violetagest/clinic-manager-api/internal/config"
	"github.com/violetagest/clinic-manager-api/internal/scheduler"
	"github.com/violetagest/clinic-manager-api/internal/usecases/billing"
	"github.com/violetagest/clinic-manager-api/internal/usecases/catalog"
	"github.com/violetagest/clinic-manager-api/internal/usecases/expenses"
	"github.com/violetagest/clinic-manager-api/internal/usecases/inventory"
	"github.com/violetagest/clinic-manager-api/internal/usecases/patients"
	"github.com/violetagest/clinic-manager-api/internal/usecases/reporting"
	"github.com/violetagest/clinic-manager-api/internal/usecases/scheduling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado a: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	patientRepo := repository.NewPatientRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	treatmentRepo := repository.NewTreatmentRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	supplierRepo := repository.NewSupplierRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	patientService := patients.NewService(patientRepo)
	catalogService := catalog.NewService(categoryRepo, treatmentRepo)
	appointmentService := scheduling.NewService(appointmentRepo, patientRepo)
	transactionService := billing.NewService(transactionRepo, patientRepo)
	expenseService := expenses.NewService(expenseRepo, supplierRepo)
	productService := inventory.NewService(productRepo, supplierRepo)
	reportService := reporting.NewService(transactionRepo, expenseRepo, cfg)

	lowStockSyncService := scheduler.NewLowStockSyncService(productRepo, supplierRepo, cfg)

	if err := lowStockSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador del barrido de stock bajo")
	} else {
		logrus.Info("Agendador del barrido de stock bajo iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		patientService,
		catalogService,
		appointmentService,
		transactionService,
		expenseService,
		productService,
		reportService,
		lowStockSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al comprobar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
