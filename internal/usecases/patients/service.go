package patients

import (
	"context"

	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

type PatientService interface {
	CreatePatient(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	UpdatePatient(ctx context.Context, patient *domain.Patient) error
	GetPatient(ctx context.Context, id string) (*domain.Patient, error)
	ListPatients(ctx context.Context, filters domain.PatientFilters) (*domain.PatientPage, error)
	DeletePatient(ctx context.Context, id string) error
}

type Service struct {
	patientRepo repository.PatientRepository
}

func NewService(patientRepo repository.PatientRepository) PatientService {
	return &Service{
		patientRepo: patientRepo,
	}
}

func (s *Service) CreatePatient(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if patient.Name == "" {
		return nil, ErrMissingName
	}

	if patient.Status == "" {
		patient.Status = domain.PatientActive
	}

	if !patient.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.patientRepo.Create(ctx, patient)
}

func (s *Service) UpdatePatient(ctx context.Context, patient *domain.Patient) error {
	if patient.ID == "" {
		return ErrMissingID
	}

	if patient.Status != "" && !patient.Status.Valid() {
		return ErrInvalidStatus
	}

	existing, err := s.patientRepo.GetByID(ctx, patient.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrPatientNotFound
	}

	return s.patientRepo.Update(ctx, patient)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	return s.patientRepo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, filters domain.PatientFilters) (*domain.PatientPage, error) {
	return s.patientRepo.List(ctx, filters)
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	return s.patientRepo.Delete(ctx, id)
}
