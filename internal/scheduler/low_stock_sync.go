package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/config"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

// LowStockSyncConfig representa la configuración del barrido de stock bajo
type LowStockSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// LowStockSyncService revisa periódicamente el inventario y deja constancia en
// el log de los productos por debajo de su stock mínimo, agrupados por
// proveedor para facilitar el pedido de reposición.
type LowStockSyncService struct {
	scheduler           *gocron.Scheduler
	config              LowStockSyncConfig
	productRepo         repository.ProductRepository
	supplierRepo        repository.SupplierRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewLowStockSyncService crea una nueva instancia del servicio de barrido de stock
func NewLowStockSyncService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	appConfig *config.Config,
) *LowStockSyncService {
	syncConfig := LowStockSyncConfig{
		CronSchedule: appConfig.LowStockSync.CronSchedule,
		SyncEnabled:  appConfig.LowStockSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del barrido de stock bajo cargada")

	return &LowStockSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		syncRunning:  false,
	}
}

// Start inicia el agendador
func (s *LowStockSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Barrido de stock bajo deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador del barrido de stock bajo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepLowStock(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error al agendar el barrido de stock bajo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador del barrido de stock bajo")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepLowStock recorre el inventario y registra los productos bajo mínimo
func (s *LowStockSyncService) sweepLowStock(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Barrido de stock bajo ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando barrido de stock bajo")

	products, err := s.productRepo.GetBelowMinStock(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error al consultar productos bajo stock mínimo")
		return
	}

	if len(products) == 0 {
		logrus.Info("Ningún producto por debajo de su stock mínimo")
		s.lastSyncCompletedAt = time.Now()
		return
	}

	s.reportBySupplier(ctx, products)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"products": len(products),
	}).Info("Barrido de stock bajo concluido")

	s.lastSyncCompletedAt = time.Now()
}

// reportBySupplier agrupa los faltantes por proveedor y los vuelca al log
func (s *LowStockSyncService) reportBySupplier(ctx context.Context, products []*domain.Product) {
	bySupplier := make(map[string][]*domain.Product)
	for _, product := range products {
		bySupplier[product.SupplierID] = append(bySupplier[product.SupplierID], product)
	}

	for supplierID, supplierProducts := range bySupplier {
		supplierName := "Desconocido"

		supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
		if err != nil {
			logrus.WithError(err).WithField("supplier_id", supplierID).Warn("Error al consultar el proveedor. Continuando.")
		} else if supplier != nil {
			supplierName = supplier.Name
		}

		for _, product := range supplierProducts {
			logrus.WithFields(logrus.Fields{
				"product_id":    product.ID,
				"product_name":  product.Name,
				"supplier_name": supplierName,
				"stock":         product.Stock,
				"min_stock":     product.MinStock,
				"deficit":       product.MinStock - product.Stock,
			}).Warn("Producto por debajo de su stock mínimo")
		}
	}
}

// TriggerManualSync inicia manualmente un barrido de stock bajo
func (s *LowStockSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Barrido de stock bajo ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando barrido manual de stock bajo")
	go s.sweepLowStock(context.Background())
}

// GetStatus retorna el estado actual del agendador
func (s *LowStockSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
