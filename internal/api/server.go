package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/api/handler"
	"github.com/violetagest/clinic-manager-api/internal/api/handler/router"
	"github.com/violetagest/clinic-manager-api/internal/config"
	"github.com/violetagest/clinic-manager-api/internal/scheduler"
	"github.com/violetagest/clinic-manager-api/internal/usecases/billing"
	"github.com/violetagest/clinic-manager-api/internal/usecases/catalog"
	"github.com/violetagest/clinic-manager-api/internal/usecases/expenses"
	"github.com/violetagest/clinic-manager-api/internal/usecases/inventory"
	"github.com/violetagest/clinic-manager-api/internal/usecases/patients"
	"github.com/violetagest/clinic-manager-api/internal/usecases/reporting"
	"github.com/violetagest/clinic-manager-api/internal/usecases/scheduling"
	"github.com/violetagest/clinic-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	patientService patients.PatientService,
	catalogService catalog.CatalogService,
	appointmentService scheduling.AppointmentService,
	transactionService billing.TransactionService,
	expenseService expenses.ExpenseService,
	productService inventory.ProductService,
	reportService reporting.Reporter,
	lowStockSyncService *scheduler.LowStockSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		LowStockSyncService: lowStockSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Patients(patientService)...),
		router.WithRoutes(handler.Catalog(catalogService)...),
		router.WithRoutes(handler.Appointments(appointmentService)...),
		router.WithRoutes(handler.Transactions(transactionService)...),
		router.WithRoutes(handler.Expenses(expenseService)...),
		router.WithRoutes(handler.Products(productService)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de terminación
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado controlado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
