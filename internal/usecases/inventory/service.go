package inventory

import (
	"context"

	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

// ProductService mantiene el inventario de productos de la clínica
type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]*domain.Product, error)
	ListLowStock(ctx context.Context) ([]*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Service struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

func NewService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) ProductService {
	return &Service{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, ErrMissingName
	}

	if product.SupplierID == "" {
		return nil, ErrMissingSupplier
	}

	if product.Stock < 0 || product.MinStock < 0 {
		return nil, ErrNegativeStock
	}

	supplier, err := s.supplierRepo.GetByID(ctx, product.SupplierID)
	if err != nil {
		return nil, err
	}

	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	product.MarginPct = marginPct(product.CostPrice, product.SalePrice)

	return s.productRepo.Create(ctx, product)
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		return ErrMissingID
	}

	if product.Stock < 0 || product.MinStock < 0 {
		return ErrNegativeStock
	}

	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrProductNotFound
	}

	cost := existing.CostPrice
	if product.CostPrice != 0 {
		cost = product.CostPrice
	}

	sale := existing.SalePrice
	if product.SalePrice != 0 {
		sale = product.SalePrice
	}

	product.MarginPct = marginPct(cost, sale)

	return s.productRepo.Update(ctx, product)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	return s.productRepo.List(ctx, activeOnly)
}

func (s *Service) ListLowStock(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.GetBelowMinStock(ctx)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// marginPct calcula el margen sobre el precio de venta. Con precio de venta
// cero no hay margen que calcular.
func marginPct(costPrice, salePrice float64) float64 {
	if salePrice == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((salePrice - costPrice) / salePrice * 100)
}
