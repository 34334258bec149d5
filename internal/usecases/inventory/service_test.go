package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockProductRepo, mockSupplierRepo)

	tests := []struct {
		name        string
		product     *domain.Product
		setup       func()
		expectedErr error
	}{
		{
			name: "Producto válido - se calcula el margen",
			product: &domain.Product{
				Name:       "Crema hidratante",
				SupplierID: "SUP001",
				CostPrice:  10,
				SalePrice:  25,
				Stock:      20,
				MinStock:   5,
			},
			setup: func() {
				mockSupplierRepo.EXPECT().
					GetByID(gomock.Any(), "SUP001").
					Return(&domain.Supplier{ID: "SUP001"}, nil)

				mockProductRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
						assert.Equal(t, 60.0, p.MarginPct) // (25-10)/25
						return p, nil
					})
			},
		},
		{
			name:        "Sin nombre",
			product:     &domain.Product{SupplierID: "SUP001"},
			setup:       func() {},
			expectedErr: ErrMissingName,
		},
		{
			name:        "Sin proveedor",
			product:     &domain.Product{Name: "Crema"},
			setup:       func() {},
			expectedErr: ErrMissingSupplier,
		},
		{
			name:        "Stock negativo",
			product:     &domain.Product{Name: "Crema", SupplierID: "SUP001", Stock: -1},
			setup:       func() {},
			expectedErr: ErrNegativeStock,
		},
		{
			name:    "Proveedor inexistente",
			product: &domain.Product{Name: "Crema", SupplierID: "SUP404"},
			setup: func() {
				mockSupplierRepo.EXPECT().
					GetByID(gomock.Any(), "SUP404").
					Return(nil, nil)
			},
			expectedErr: ErrSupplierNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			created, err := service.CreateProduct(context.Background(), tt.product)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, created)
		})
	}
}

func TestMarginPct(t *testing.T) {
	assert.Equal(t, 60.0, marginPct(10, 25))
	assert.Equal(t, 0.0, marginPct(10, 0)) // sin precio de venta no hay margen
	assert.Equal(t, -100.0, marginPct(20, 10))
}

func TestService_ListLowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockProductRepo, mockSupplierRepo)

	low := []*domain.Product{{ID: "PRD001", Stock: 1, MinStock: 5}}

	mockProductRepo.EXPECT().
		GetBelowMinStock(gomock.Any()).
		Return(low, nil)

	products, err := service.ListLowStock(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.True(t, products[0].BelowMinStock())
}
