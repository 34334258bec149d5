package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/expenses"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
)

func ListSuppliers(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"

		suppliers, err := service.ListSuppliers(r.Context(), activeOnly)
		if err != nil {
			logrus.WithError(err).Error("Error listando proveedores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los proveedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suppliers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetSupplier(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		supplier, err := service.GetSupplier(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("supplier_id", id).Error("Error consultando proveedor")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el proveedor", nil)
			return
		}

		if supplier == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Proveedor no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(supplier); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateSupplier(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var supplier domain.Supplier
		if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateSupplier(r.Context(), &supplier)
		if err != nil {
			switch {
			case errors.Is(err, expenses.ErrMissingName):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error creando proveedor")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar el proveedor", nil)
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

func UpdateSupplier(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var supplier domain.Supplier
		if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}
		supplier.ID = id

		if err := service.UpdateSupplier(r.Context(), &supplier); err != nil {
			switch {
			case errors.Is(err, expenses.ErrSupplierNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("supplier_id", id).Error("Error actualizando proveedor")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar el proveedor", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteSupplier(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSupplier(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("supplier_id", id).Error("Error eliminando proveedor")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar el proveedor", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
