package scheduling

import (
	"context"
	"time"

	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

// AppointmentService gestiona la agenda de citas de la clínica. No hay
// detección de solapes: dos citas pueden coincidir en hora, la recepción
// decide cómo resolverlo.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *domain.Appointment) error
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, start, end *time.Time) ([]*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type Service struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewService(
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) AppointmentService {
	return &Service{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (s *Service) CreateAppointment(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.PatientID == "" {
		return nil, ErrMissingPatient
	}

	if appointment.StartTime.IsZero() || appointment.EndTime.IsZero() {
		return nil, ErrMissingTimeRange
	}

	if !appointment.EndTime.After(appointment.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	if appointment.Status == "" {
		appointment.Status = domain.AppointmentScheduled
	}

	if !appointment.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	patient, err := s.patientRepo.GetByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return s.appointmentRepo.Create(ctx, appointment)
}

func (s *Service) UpdateAppointment(ctx context.Context, appointment *domain.Appointment) error {
	if appointment.ID == "" {
		return ErrMissingID
	}

	if appointment.Status != "" && !appointment.Status.Valid() {
		return ErrInvalidStatus
	}

	existing, err := s.appointmentRepo.GetByID(ctx, appointment.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrAppointmentNotFound
	}

	// Validar el intervalo resultante combinando lo que llega con lo guardado
	start := existing.StartTime
	if !appointment.StartTime.IsZero() {
		start = appointment.StartTime
	}

	end := existing.EndTime
	if !appointment.EndTime.IsZero() {
		end = appointment.EndTime
	}

	if !end.After(start) {
		return ErrInvalidTimeRange
	}

	return s.appointmentRepo.Update(ctx, appointment)
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, start, end *time.Time) ([]*domain.Appointment, error) {
	return s.appointmentRepo.GetByTimeRange(ctx, start, end)
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	return s.appointmentRepo.Delete(ctx, id)
}
