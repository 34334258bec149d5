package expenses

import (
	"context"
	"time"

	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

// ExpenseService registra los gastos de la clínica y mantiene el catálogo de
// proveedores asociado.
type ExpenseService interface {
	CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expense *domain.Expense) error
	GetExpense(ctx context.Context, id string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, startDate, endDate time.Time) ([]*domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

type Service struct {
	expenseRepo  repository.ExpenseRepository
	supplierRepo repository.SupplierRepository
}

func NewService(
	expenseRepo repository.ExpenseRepository,
	supplierRepo repository.SupplierRepository,
) ExpenseService {
	return &Service{
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *Service) CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense.Description == "" {
		return nil, ErrMissingDescription
	}

	if expense.Date.IsZero() {
		return nil, ErrMissingDate
	}

	if expense.Category == "" {
		expense.Category = domain.ExpenseOther
	}

	if !expense.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	if expense.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *expense.SupplierID)
		if err != nil {
			return nil, err
		}

		if supplier == nil {
			return nil, ErrSupplierNotFound
		}
	}

	expense.TotalAmount = utils.RoundWithTwoDecimalPlace(expense.Amount + expense.IvaAmount)

	return s.expenseRepo.Create(ctx, expense)
}

func (s *Service) UpdateExpense(ctx context.Context, expense *domain.Expense) error {
	if expense.ID == "" {
		return ErrMissingID
	}

	if expense.Category != "" && !expense.Category.Valid() {
		return ErrInvalidCategory
	}

	existing, err := s.expenseRepo.GetByID(ctx, expense.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrExpenseNotFound
	}

	// El total se recalcula con la base y el IVA resultantes
	amount := existing.Amount
	if expense.Amount != 0 {
		amount = expense.Amount
	}

	iva := existing.IvaAmount
	if expense.IvaAmount != 0 {
		iva = expense.IvaAmount
	}

	expense.TotalAmount = utils.RoundWithTwoDecimalPlace(amount + iva)

	return s.expenseRepo.Update(ctx, expense)
}

func (s *Service) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(ctx, id)
}

func (s *Service) ListExpenses(ctx context.Context, startDate, endDate time.Time) ([]*domain.Expense, error) {
	return s.expenseRepo.GetByDateRange(ctx, startDate, endDate)
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}

func (s *Service) CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if supplier.Name == "" {
		return nil, ErrMissingName
	}

	return s.supplierRepo.Create(ctx, supplier)
}

func (s *Service) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	if supplier.ID == "" {
		return ErrMissingID
	}

	existing, err := s.supplierRepo.GetByID(ctx, supplier.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrSupplierNotFound
	}

	return s.supplierRepo.Update(ctx, supplier)
}

func (s *Service) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, id)
}

func (s *Service) ListSuppliers(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error) {
	return s.supplierRepo.List(ctx, activeOnly)
}

func (s *Service) DeleteSupplier(ctx context.Context, id string) error {
	return s.supplierRepo.Delete(ctx, id)
}
