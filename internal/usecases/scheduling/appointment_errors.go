package scheduling

import "errors"

var (
	ErrMissingID           = errors.New("el id de la cita es obligatorio")
	ErrMissingPatient      = errors.New("la cita debe estar asociada a un paciente")
	ErrMissingTimeRange    = errors.New("la cita debe indicar hora de inicio y de fin")
	ErrInvalidTimeRange    = errors.New("la hora de fin debe ser posterior a la de inicio")
	ErrInvalidStatus       = errors.New("estado de cita no reconocido")
	ErrPatientNotFound     = errors.New("paciente no encontrado")
	ErrAppointmentNotFound = errors.New("cita no encontrada")
)
