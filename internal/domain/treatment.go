package domain

import "time"

// TreatmentType clasifica los tratamientos en las tres líneas de negocio de la clínica
type TreatmentType string

const (
	TreatmentMedical   TreatmentType = "medical"
	TreatmentAesthetic TreatmentType = "aesthetic"
	TreatmentCosmetic  TreatmentType = "cosmetic"
)

// Category agrupa tratamientos dentro de una línea de negocio
type Category struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        TreatmentType `json:"type"`
	Description *string       `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Treatment es un servicio del catálogo de la clínica
type Treatment struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Code         string        `json:"code"`
	CategoryID   string        `json:"category_id"`
	Type         TreatmentType `json:"type"`
	BasePrice    float64       `json:"base_price"`
	BaseTimeMins int           `json:"base_time_mins"`
	Description  *string       `json:"description,omitempty"`
	Active       bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (t TreatmentType) Valid() bool {
	switch t {
	case TreatmentMedical, TreatmentAesthetic, TreatmentCosmetic:
		return true
	}
	return false
}
