package inventory

import "errors"

var (
	ErrMissingID        = errors.New("el id del producto es obligatorio")
	ErrMissingName      = errors.New("el nombre del producto es obligatorio")
	ErrMissingSupplier  = errors.New("el producto debe indicar proveedor")
	ErrNegativeStock    = errors.New("el stock no puede ser negativo")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrSupplierNotFound = errors.New("proveedor no encontrado")
)
