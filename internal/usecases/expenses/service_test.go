package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_CreateExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockExpenseRepo, mockSupplierRepo)

	date := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		expense     *domain.Expense
		setup       func()
		expectedErr error
	}{
		{
			name: "Gasto válido - el total es base más IVA",
			expense: &domain.Expense{
				Date:        date,
				Category:    domain.ExpenseSupplies,
				Description: "Material desechable",
				Amount:      100,
				IvaAmount:   21,
			},
			setup: func() {
				mockExpenseRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
						assert.Equal(t, 121.0, e.TotalAmount)
						return e, nil
					})
			},
		},
		{
			name: "Sin categoría - se asume otros",
			expense: &domain.Expense{
				Date:        date,
				Description: "Varios",
				Amount:      10,
			},
			setup: func() {
				mockExpenseRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
						assert.Equal(t, domain.ExpenseOther, e.Category)
						return e, nil
					})
			},
		},
		{
			name:        "Sin descripción",
			expense:     &domain.Expense{Date: date, Amount: 10},
			setup:       func() {},
			expectedErr: ErrMissingDescription,
		},
		{
			name:        "Sin fecha",
			expense:     &domain.Expense{Description: "Material", Amount: 10},
			setup:       func() {},
			expectedErr: ErrMissingDate,
		},
		{
			name: "Categoría no reconocida",
			expense: &domain.Expense{
				Date:        date,
				Description: "Material",
				Category:    "viajes",
			},
			setup:       func() {},
			expectedErr: ErrInvalidCategory,
		},
		{
			name: "Proveedor inexistente",
			expense: &domain.Expense{
				Date:        date,
				Description: "Material",
				Category:    domain.ExpenseSupplies,
				SupplierID:  stringPtr("SUP404"),
			},
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

			created, err := service.CreateExpense(context.Background(), tt.expense)

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

func TestService_UpdateExpense_recalculaTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockExpenseRepo, mockSupplierRepo)

	existing := &domain.Expense{
		ID:          "EXP001",
		Description: "Material desechable",
		Amount:      100,
		IvaAmount:   21,
		TotalAmount: 121,
	}

	mockExpenseRepo.EXPECT().
		GetByID(gomock.Any(), "EXP001").
		Return(existing, nil)

	// Solo cambia la base; el IVA guardado sigue contando para el total
	mockExpenseRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.Expense) error {
			assert.Equal(t, 221.0, e.TotalAmount)
			return nil
		})

	err := service.UpdateExpense(context.Background(), &domain.Expense{ID: "EXP001", Amount: 200})

	assert.NoError(t, err)
}

func TestService_CreateSupplier_sinNombre(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)
	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockExpenseRepo, mockSupplierRepo)

	_, err := service.CreateSupplier(context.Background(), &domain.Supplier{})

	assert.ErrorIs(t, err, ErrMissingName)
}
