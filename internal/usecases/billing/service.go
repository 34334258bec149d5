package billing

import (
	"context"
	"time"

	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

const receiptCodeLength = 8

// TransactionService registra los ingresos de caja. El desglose por método de
// pago y por línea de negocio llega del formulario tal cual; no se comprueba
// que cuadre con el total.
type TransactionService interface {
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type Service struct {
	transactionRepo repository.TransactionRepository
	patientRepo     repository.PatientRepository
}

func NewService(
	transactionRepo repository.TransactionRepository,
	patientRepo repository.PatientRepository,
) TransactionService {
	return &Service{
		transactionRepo: transactionRepo,
		patientRepo:     patientRepo,
	}
}

func (s *Service) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.PatientID == "" {
		return nil, ErrMissingPatient
	}

	if transaction.Date.IsZero() {
		return nil, ErrMissingDate
	}

	for _, item := range transaction.Items {
		if item.TreatmentID == "" {
			return nil, ErrMissingTreatment
		}

		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		item.Subtotal = utils.RoundWithTwoDecimalPlace(item.UnitPrice * float64(item.Quantity))
	}

	patient, err := s.patientRepo.GetByID(ctx, transaction.PatientID)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if transaction.ReceiptCode == "" {
		code, err := utils.GenerateCode(receiptCodeLength)
		if err != nil {
			return nil, err
		}
		transaction.ReceiptCode = code
	}

	return s.transactionRepo.Create(ctx, transaction)
}

func (s *Service) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if transaction == nil {
		return nil, nil
	}

	items, err := s.transactionRepo.GetItemsByTransactionID(ctx, id)
	if err != nil {
		return nil, err
	}

	transaction.Items = items

	return transaction, nil
}

func (s *Service) ListTransactions(ctx context.Context, startDate, endDate time.Time) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetByDateRange(ctx, startDate, endDate)
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}
