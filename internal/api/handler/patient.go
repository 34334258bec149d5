package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/patients"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
)

func ListPatients(service patients.PatientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.PatientFilters{
			Search: query.Get("search"),
			Status: domain.PatientStatus(query.Get("status")),
		}

		if pageStr := query.Get("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El parámetro page debe ser numérico", nil)
				return
			}
			filters.Page = page
		}

		if sizeStr := query.Get("page_size"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El parámetro page_size debe ser numérico", nil)
				return
			}
			filters.PageSize = size
		}

		page, err := service.ListPatients(r.Context(), filters)
		if err != nil {
			logrus.WithError(err).Error("Error listando pacientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los pacientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetPatient(service patients.PatientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		patient, err := service.GetPatient(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("patient_id", id).Error("Error consultando paciente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el paciente", nil)
			return
		}

		if patient == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Paciente no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(patient); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreatePatient(service patients.PatientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patient domain.Patient
		if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreatePatient(r.Context(), &patient)
		if err != nil {
			switch {
			case errors.Is(err, patients.ErrMissingName):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, patients.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error creando paciente")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar el paciente", nil)
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

func UpdatePatient(service patients.PatientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var patient domain.Patient
		if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}
		patient.ID = id

		if err := service.UpdatePatient(r.Context(), &patient); err != nil {
			switch {
			case errors.Is(err, patients.ErrPatientNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, patients.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("patient_id", id).Error("Error actualizando paciente")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar el paciente", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeletePatient(service patients.PatientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeletePatient(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("patient_id", id).Error("Error eliminando paciente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar el paciente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
