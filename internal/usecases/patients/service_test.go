package patients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreatePatient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name        string
		patient     *domain.Patient
		setup       func()
		expectedErr error
	}{
		{
			name:    "Paciente válido con estado explícito",
			patient: &domain.Patient{Name: "Ana Pérez", Status: domain.PatientActive},
			setup: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(&domain.Patient{ID: "PAT001", Name: "Ana Pérez"}, nil)
			},
		},
		{
			name:    "Sin estado - se asume activo",
			patient: &domain.Patient{Name: "Luis García"},
			setup: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
						assert.Equal(t, domain.PatientActive, p.Status)
						return p, nil
					})
			},
		},
		{
			name:        "Sin nombre",
			patient:     &domain.Patient{},
			setup:       func() {},
			expectedErr: ErrMissingName,
		},
		{
			name:        "Estado no reconocido",
			patient:     &domain.Patient{Name: "Ana Pérez", Status: "pendiente"},
			setup:       func() {},
			expectedErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			created, err := service.CreatePatient(context.Background(), tt.patient)

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

func TestService_UpdatePatient_noExiste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		GetByID(gomock.Any(), "PAT404").
		Return(nil, nil)

	err := service.UpdatePatient(context.Background(), &domain.Patient{ID: "PAT404", Name: "Nadie"})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestService_UpdatePatient_sinID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockRepo)

	err := service.UpdatePatient(context.Background(), &domain.Patient{Name: "Sin ID"})

	assert.ErrorIs(t, err, ErrMissingID)
}
