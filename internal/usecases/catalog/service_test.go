package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateTreatment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockTreatmentRepo := mocks.NewMockTreatmentRepository(ctrl)
	service := NewService(mockCategoryRepo, mockTreatmentRepo)

	tests := []struct {
		name        string
		treatment   *domain.Treatment
		setup       func()
		expectedErr error
	}{
		{
			name: "Tratamiento válido sin código - se genera uno",
			treatment: &domain.Treatment{
				Name:       "Botox",
				Type:       domain.TreatmentAesthetic,
				CategoryID: "CAT001",
				BasePrice:  150,
			},
			setup: func() {
				mockCategoryRepo.EXPECT().
					GetByID(gomock.Any(), "CAT001").
					Return(&domain.Category{ID: "CAT001", Name: "Facial"}, nil)

				mockTreatmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Treatment) (*domain.Treatment, error) {
						assert.Len(t, tr.Code, 6)
						return tr, nil
					})
			},
		},
		{
			name: "Código explícito - se respeta",
			treatment: &domain.Treatment{
				Name:       "Peeling",
				Code:       "PEEL01",
				Type:       domain.TreatmentAesthetic,
				CategoryID: "CAT001",
			},
			setup: func() {
				mockCategoryRepo.EXPECT().
					GetByID(gomock.Any(), "CAT001").
					Return(&domain.Category{ID: "CAT001"}, nil)

				mockTreatmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Treatment) (*domain.Treatment, error) {
						assert.Equal(t, "PEEL01", tr.Code)
						return tr, nil
					})
			},
		},
		{
			name:        "Sin nombre",
			treatment:   &domain.Treatment{Type: domain.TreatmentMedical, CategoryID: "CAT001"},
			setup:       func() {},
			expectedErr: ErrMissingName,
		},
		{
			name:        "Tipo fuera de las tres líneas de negocio",
			treatment:   &domain.Treatment{Name: "Otro", Type: "dental", CategoryID: "CAT001"},
			setup:       func() {},
			expectedErr: ErrInvalidType,
		},
		{
			name: "Código ya usado en el catálogo",
			treatment: &domain.Treatment{
				Name:       "Peeling",
				Code:       "PEEL01",
				Type:       domain.TreatmentAesthetic,
				CategoryID: "CAT001",
			},
			setup: func() {
				mockCategoryRepo.EXPECT().
					GetByID(gomock.Any(), "CAT001").
					Return(&domain.Category{ID: "CAT001"}, nil)

				mockTreatmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("código PEEL01: %w", repository.ErrDuplicateCode))
			},
			expectedErr: ErrDuplicateCode,
		},
		{
			name:      "Categoría inexistente",
			treatment: &domain.Treatment{Name: "Botox", Type: domain.TreatmentAesthetic, CategoryID: "CAT404"},
			setup: func() {
				mockCategoryRepo.EXPECT().
					GetByID(gomock.Any(), "CAT404").
					Return(nil, nil)
			},
			expectedErr: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			created, err := service.CreateTreatment(context.Background(), tt.treatment)

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

func TestService_CreateCategory_tipoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockTreatmentRepo := mocks.NewMockTreatmentRepository(ctrl)
	service := NewService(mockCategoryRepo, mockTreatmentRepo)

	_, err := service.CreateCategory(context.Background(), &domain.Category{Name: "Dental", Type: "dental"})

	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestService_UpdateTreatment_noExiste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockTreatmentRepo := mocks.NewMockTreatmentRepository(ctrl)
	service := NewService(mockCategoryRepo, mockTreatmentRepo)

	mockTreatmentRepo.EXPECT().
		GetByID(gomock.Any(), "TRT404").
		Return(nil, nil)

	err := service.UpdateTreatment(context.Background(), &domain.Treatment{ID: "TRT404"})

	assert.ErrorIs(t, err, ErrTreatmentNotFound)
}
