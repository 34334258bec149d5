package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/inventory"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
)

func ListProducts(service inventory.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"

		products, err := service.ListProducts(r.Context(), activeOnly)
		if err != nil {
			logrus.WithError(err).Error("Error listando productos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el inventario", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func ListLowStockProducts(service inventory.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListLowStock(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error consultando productos bajo mínimo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el inventario", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetProduct(service inventory.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("product_id", id).Error("Error consultando producto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el producto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Producto no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateProduct(service inventory.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateProduct(r.Context(), &product)
		if err != nil {
			switch {
			case errors.Is(err, inventory.ErrMissingName), errors.Is(err, inventory.ErrMissingSupplier):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, inventory.ErrNegativeStock):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, inventory.ErrSupplierNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error creando producto")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar el producto", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func UpdateProduct(service inventory.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}
		product.ID = id

		if err := service.UpdateProduct(r.Context(), &product); err != nil {
			switch {
			case errors.Is(err, inventory.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, inventory.ErrNegativeStock):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("product_id", id).Error("Error actualizando producto")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar el producto", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteProduct(service inventory.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("product_id", id).Error("Error eliminando producto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar el producto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
