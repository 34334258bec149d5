package catalog

import "errors"

var (
	ErrMissingID         = errors.New("el identificador es obligatorio")
	ErrMissingName       = errors.New("el nombre es obligatorio")
	ErrMissingCategory   = errors.New("la categoría es obligatoria")
	ErrInvalidType       = errors.New("tipo de tratamiento no válido")
	ErrCategoryNotFound  = errors.New("categoría no encontrada")
	ErrTreatmentNotFound = errors.New("tratamiento no encontrado")
	ErrDuplicateCode     = errors.New("ya existe un tratamiento con ese código")
)
