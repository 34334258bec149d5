package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateAppointment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAppointmentRepo := mocks.NewMockAppointmentRepository(ctrl)
	mockPatientRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockAppointmentRepo, mockPatientRepo)

	start := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	tests := []struct {
		name        string
		appointment *domain.Appointment
		setup       func()
		expectedErr error
	}{
		{
			name: "Cita válida sin estado - se asume programada",
			appointment: &domain.Appointment{
				PatientID: "PAT001",
				StartTime: start,
				EndTime:   end,
			},
			setup: func() {
				mockPatientRepo.EXPECT().
					GetByID(gomock.Any(), "PAT001").
					Return(&domain.Patient{ID: "PAT001", Name: "Ana Pérez"}, nil)

				mockAppointmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
						assert.Equal(t, domain.AppointmentScheduled, a.Status)
						return a, nil
					})
			},
		},
		{
			name:        "Sin paciente",
			appointment: &domain.Appointment{StartTime: start, EndTime: end},
			setup:       func() {},
			expectedErr: ErrMissingPatient,
		},
		{
			name:        "Sin horario",
			appointment: &domain.Appointment{PatientID: "PAT001"},
			setup:       func() {},
			expectedErr: ErrMissingTimeRange,
		},
		{
			name: "Fin anterior al inicio",
			appointment: &domain.Appointment{
				PatientID: "PAT001",
				StartTime: end,
				EndTime:   start,
			},
			setup:       func() {},
			expectedErr: ErrInvalidTimeRange,
		},
		{
			name: "Inicio y fin iguales",
			appointment: &domain.Appointment{
				PatientID: "PAT001",
				StartTime: start,
				EndTime:   start,
			},
			setup:       func() {},
			expectedErr: ErrInvalidTimeRange,
		},
		{
			name: "Paciente inexistente",
			appointment: &domain.Appointment{
				PatientID: "PAT404",
				StartTime: start,
				EndTime:   end,
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

			created, err := service.CreateAppointment(context.Background(), tt.appointment)

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

func TestService_UpdateAppointment_horarioParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAppointmentRepo := mocks.NewMockAppointmentRepository(ctrl)
	mockPatientRepo := mocks.NewMockPatientRepository(ctrl)
	service := NewService(mockAppointmentRepo, mockPatientRepo)

	start := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	existing := &domain.Appointment{
		ID:        "APT001",
		PatientID: "PAT001",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    domain.AppointmentScheduled,
	}

	// Solo llega un nuevo fin, que quedaría antes del inicio guardado
	mockAppointmentRepo.EXPECT().
		GetByID(gomock.Any(), "APT001").
		Return(existing, nil)

	err := service.UpdateAppointment(context.Background(), &domain.Appointment{
		ID:      "APT001",
		EndTime: start.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
