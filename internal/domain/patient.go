package domain

import "time"

type PatientStatus string

const (
	PatientActive   PatientStatus = "active"
	PatientInactive PatientStatus = "inactive"
	PatientArchived PatientStatus = "archived"
)

// Patient representa un paciente de la clínica
type Patient struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Phone          *string       `json:"phone,omitempty"`
	Email          *string       `json:"email,omitempty"`
	FirstVisitDate time.Time     `json:"first_visit_date"`
	Status         PatientStatus `json:"status"`
	Notes          *string       `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// PatientFilters son los filtros de búsqueda del listado de pacientes
type PatientFilters struct {
	Search   string
	Status   PatientStatus
	Page     int
	PageSize int
}

// PatientPage es una página del listado de pacientes
type PatientPage struct {
	Patients []*Patient `json:"patients"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func (s PatientStatus) Valid() bool {
	switch s {
	case PatientActive, PatientInactive, PatientArchived:
		return true
	}
	return false
}
