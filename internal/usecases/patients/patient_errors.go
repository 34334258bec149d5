package patients

import "errors"

var (
	ErrMissingID       = errors.New("el identificador del paciente es obligatorio")
	ErrMissingName     = errors.New("el nombre del paciente es obligatorio")
	ErrInvalidStatus   = errors.New("estado de paciente no válido")
	ErrPatientNotFound = errors.New("paciente no encontrado")
)
