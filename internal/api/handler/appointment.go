package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/scheduling"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

func ListAppointments(service scheduling.AppointmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		start, err := utils.ParseDateTime(query.Get("start"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de fecha inválido en start", nil)
			return
		}

		end, err := utils.ParseDateTime(query.Get("end"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de fecha inválido en end", nil)
			return
		}

		appointments, err := service.ListAppointments(r.Context(), start, end)
		if err != nil {
			logrus.WithError(err).Error("Error listando citas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la agenda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(appointments); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetAppointment(service scheduling.AppointmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		appointment, err := service.GetAppointment(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("appointment_id", id).Error("Error consultando cita")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la cita", nil)
			return
		}

		if appointment == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cita no encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(appointment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateAppointment(service scheduling.AppointmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var appointment domain.Appointment
		if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateAppointment(r.Context(), &appointment)
		if err != nil {
			switch {
			case errors.Is(err, scheduling.ErrMissingPatient), errors.Is(err, scheduling.ErrMissingTimeRange):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, scheduling.ErrInvalidTimeRange), errors.Is(err, scheduling.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, scheduling.ErrPatientNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error creando cita")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar la cita", nil)
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

func UpdateAppointment(service scheduling.AppointmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var appointment domain.Appointment
		if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}
		appointment.ID = id

		if err := service.UpdateAppointment(r.Context(), &appointment); err != nil {
			switch {
			case errors.Is(err, scheduling.ErrAppointmentNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, scheduling.ErrInvalidTimeRange), errors.Is(err, scheduling.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("appointment_id", id).Error("Error actualizando cita")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar la cita", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteAppointment(service scheduling.AppointmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAppointment(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("appointment_id", id).Error("Error eliminando cita")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar la cita", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
