package billing

import "errors"

var (
	ErrMissingPatient   = errors.New("el ingreso debe estar asociado a un paciente")
	ErrMissingDate      = errors.New("el ingreso debe indicar fecha")
	ErrMissingTreatment = errors.New("cada línea debe referenciar un tratamiento")
	ErrInvalidQuantity  = errors.New("la cantidad de cada línea debe ser al menos 1")
	ErrPatientNotFound  = errors.New("paciente no encontrado")
)
