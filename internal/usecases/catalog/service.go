package catalog

import (
	"context"
	"errors"

	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

const treatmentCodeLength = 6

// CatalogService gestiona el catálogo de tratamientos y sus categorías
type CatalogService interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateTreatment(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error)
	UpdateTreatment(ctx context.Context, treatment *domain.Treatment) error
	GetTreatment(ctx context.Context, id string) (*domain.Treatment, error)
	ListTreatments(ctx context.Context, activeOnly bool) ([]*domain.Treatment, error)
	DeleteTreatment(ctx context.Context, id string) error
}

type Service struct {
	categoryRepo  repository.CategoryRepository
	treatmentRepo repository.TreatmentRepository
}

func NewService(
	categoryRepo repository.CategoryRepository,
	treatmentRepo repository.TreatmentRepository,
) CatalogService {
	return &Service{
		categoryRepo:  categoryRepo,
		treatmentRepo: treatmentRepo,
	}
}

func (s *Service) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category.Name == "" {
		return nil, ErrMissingName
	}

	if !category.Type.Valid() {
		return nil, ErrInvalidType
	}

	return s.categoryRepo.Create(ctx, category)
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *Service) CreateTreatment(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	if treatment.Name == "" {
		return nil, ErrMissingName
	}

	if !treatment.Type.Valid() {
		return nil, ErrInvalidType
	}

	if treatment.CategoryID == "" {
		return nil, ErrMissingCategory
	}

	category, err := s.categoryRepo.GetByID(ctx, treatment.CategoryID)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, ErrCategoryNotFound
	}

	// Código corto autogenerado si el formulario no mandó uno
	if treatment.Code == "" {
		code, err := utils.GenerateCode(treatmentCodeLength)
		if err != nil {
			return nil, err
		}
		treatment.Code = code
	}

	created, err := s.treatmentRepo.Create(ctx, treatment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateTreatment(ctx context.Context, treatment *domain.Treatment) error {
	if treatment.ID == "" {
		return ErrMissingID
	}

	if treatment.Type != "" && !treatment.Type.Valid() {
		return ErrInvalidType
	}

	existing, err := s.treatmentRepo.GetByID(ctx, treatment.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrTreatmentNotFound
	}

	return s.treatmentRepo.Update(ctx, treatment)
}

func (s *Service) GetTreatment(ctx context.Context, id string) (*domain.Treatment, error) {
	return s.treatmentRepo.GetByID(ctx, id)
}

func (s *Service) ListTreatments(ctx context.Context, activeOnly bool) ([]*domain.Treatment, error) {
	return s.treatmentRepo.List(ctx, activeOnly)
}

func (s *Service) DeleteTreatment(ctx context.Context, id string) error {
	return s.treatmentRepo.Delete(ctx, id)
}
