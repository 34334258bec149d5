package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestLowStockSyncService_sweepLowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)

	service := &LowStockSyncService{
		config:       LowStockSyncConfig{CronSchedule: "0 7 * * *", SyncEnabled: true},
		productRepo:  mockProductRepo,
		supplierRepo: mockSupplierRepo,
	}

	mockProductRepo.EXPECT().
		GetBelowMinStock(gomock.Any()).
		Return([]*domain.Product{
			{ID: "PRD001", Name: "Crema hidratante", SupplierID: "SUP001", Stock: 1, MinStock: 5},
			{ID: "PRD002", Name: "Sérum facial", SupplierID: "SUP001", Stock: 0, MinStock: 3},
		}, nil)

	mockSupplierRepo.EXPECT().
		GetByID(gomock.Any(), "SUP001").
		Return(&domain.Supplier{ID: "SUP001", Name: "Laboratorios Norte"}, nil)

	service.sweepLowStock(context.Background())

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestLowStockSyncService_sweepLowStock_sinFaltantes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)

	service := &LowStockSyncService{
		config:       LowStockSyncConfig{SyncEnabled: true},
		productRepo:  mockProductRepo,
		supplierRepo: mockSupplierRepo,
	}

	mockProductRepo.EXPECT().
		GetBelowMinStock(gomock.Any()).
		Return([]*domain.Product{}, nil)

	service.sweepLowStock(context.Background())

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestLowStockSyncService_sweepLowStock_errorDeConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)

	service := &LowStockSyncService{
		config:       LowStockSyncConfig{SyncEnabled: true},
		productRepo:  mockProductRepo,
		supplierRepo: mockSupplierRepo,
	}

	mockProductRepo.EXPECT().
		GetBelowMinStock(gomock.Any()).
		Return(nil, errors.New("conexión perdida"))

	service.sweepLowStock(context.Background())

	// El barrido fallido no queda marcado como completado
	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestLowStockSyncService_GetStatus(t *testing.T) {
	service := &LowStockSyncService{
		config: LowStockSyncConfig{CronSchedule: "0 7 * * *", SyncEnabled: true},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
}
