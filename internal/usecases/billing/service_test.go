package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockPatientRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockTransactionRepo, mockPatientRepo)

	date := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction *domain.Transaction
		setup       func()
		expectedErr error
	}{
		{
			name: "Ingreso válido - se genera recibo y se calculan subtotales",
			transaction: &domain.Transaction{
				PatientID:   "PAT001",
				Date:        date,
				TotalAmount: 300,
				Items: []*domain.TransactionItem{
					{TreatmentID: "TRT001", Quantity: 2, UnitPrice: 150},
				},
			},
			setup: func() {
				mockPatientRepo.EXPECT().
					GetByID(gomock.Any(), "PAT001").
					Return(&domain.Patient{ID: "PAT001"}, nil)

				mockTransactionRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Len(t, tx.ReceiptCode, 8)
						assert.Equal(t, 300.0, tx.Items[0].Subtotal)
						return tx, nil
					})
			},
		},
		{
			name:        "Sin paciente",
			transaction: &domain.Transaction{Date: date},
			setup:       func() {},
			expectedErr: ErrMissingPatient,
		},
		{
			name:        "Sin fecha",
			transaction: &domain.Transaction{PatientID: "PAT001"},
			setup:       func() {},
			expectedErr: ErrMissingDate,
		},
		{
			name: "Línea con cantidad cero",
			transaction: &domain.Transaction{
				PatientID: "PAT001",
				Date:      date,
				Items: []*domain.TransactionItem{
					{TreatmentID: "TRT001", Quantity: 0, UnitPrice: 150},
				},
			},
			setup:       func() {},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name: "Línea sin tratamiento",
			transaction: &domain.Transaction{
				PatientID: "PAT001",
				Date:      date,
				Items: []*domain.TransactionItem{
					{Quantity: 1, UnitPrice: 150},
				},
			},
			setup:       func() {},
			expectedErr: ErrMissingTreatment,
		},
		{
			name: "Paciente inexistente",
			transaction: &domain.Transaction{
				PatientID: "PAT404",
				Date:      date,
			},
			setup: func() {
				mockPatientRepo.EXPECT().
					GetByID(gomock.Any(), "PAT404").
					Return(nil, nil)
			},
			expectedErr: ErrPatientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			created, err := service.CreateTransaction(context.Background(), tt.transaction)

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

func TestService_GetTransaction_incluyeLineas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockPatientRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockTransactionRepo, mockPatientRepo)

	mockTransactionRepo.EXPECT().
		GetByID(gomock.Any(), "TX001").
		Return(&domain.Transaction{ID: "TX001"}, nil)

	mockTransactionRepo.EXPECT().
		GetItemsByTransactionID(gomock.Any(), "TX001").
		Return([]*domain.TransactionItem{{ID: "ITM001", TransactionID: "TX001"}}, nil)

	transaction, err := service.GetTransaction(context.Background(), "TX001")

	assert.NoError(t, err)
	assert.Len(t, transaction.Items, 1)
}

func TestService_GetTransaction_noExiste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockPatientRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockTransactionRepo, mockPatientRepo)

	mockTransactionRepo.EXPECT().
		GetByID(gomock.Any(), "TX404").
		Return(nil, nil)

	transaction, err := service.GetTransaction(context.Background(), "TX404")

	assert.NoError(t, err)
	assert.Nil(t, transaction)
}
