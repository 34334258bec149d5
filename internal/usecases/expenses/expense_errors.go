package expenses

import "errors"

var (
	ErrMissingID          = errors.New("el id es obligatorio")
	ErrMissingDescription = errors.New("el gasto debe llevar descripción")
	ErrMissingDate        = errors.New("el gasto debe indicar fecha")
	ErrMissingName        = errors.New("el nombre del proveedor es obligatorio")
	ErrInvalidCategory    = errors.New("categoría de gasto no reconocida")
	ErrExpenseNotFound    = errors.New("gasto no encontrado")
	ErrSupplierNotFound   = errors.New("proveedor no encontrado")
)
