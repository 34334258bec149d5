package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/catalog"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
)

func ListCategories(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error listando categorías")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar las categorías", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(categories); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateCategory(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var category domain.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateCategory(r.Context(), &category)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrMissingName):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, catalog.ErrInvalidType):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error creando categoría")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar la categoría", nil)
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

func DeleteCategory(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCategory(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("category_id", id).Error("Error eliminando categoría")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar la categoría", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListTreatments(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"

		treatments, err := service.ListTreatments(r.Context(), activeOnly)
		if err != nil {
			logrus.WithError(err).Error("Error listando tratamientos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los tratamientos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(treatments); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetTreatment(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		treatment, err := service.GetTreatment(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("treatment_id", id).Error("Error consultando tratamiento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el tratamiento", nil)
			return
		}

		if treatment == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Tratamiento no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(treatment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateTreatment(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var treatment domain.Treatment
		if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateTreatment(r.Context(), &treatment)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrMissingName), errors.Is(err, catalog.ErrMissingCategory):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, catalog.ErrInvalidType):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, catalog.ErrCategoryNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, catalog.ErrDuplicateCode):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error creando tratamiento")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar el tratamiento", nil)
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

func UpdateTreatment(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var treatment domain.Treatment
		if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}
		treatment.ID = id

		if err := service.UpdateTreatment(r.Context(), &treatment); err != nil {
			switch {
			case errors.Is(err, catalog.ErrTreatmentNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, catalog.ErrInvalidType):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("treatment_id", id).Error("Error actualizando tratamiento")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar el tratamiento", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteTreatment(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTreatment(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("treatment_id", id).Error("Error eliminando tratamiento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar el tratamiento", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
