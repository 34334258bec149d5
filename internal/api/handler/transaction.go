package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/billing"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

func ListTransactions(service billing.TransactionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		startStr := query.Get("start_date")
		endStr := query.Get("end_date")
		if startStr == "" || endStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Hay que indicar start_date y end_date", nil)
			return
		}

		startDate, err := utils.ParseDate(startStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de fecha inválido en start_date", nil)
			return
		}

		endDate, err := utils.ParseDate(endStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de fecha inválido en end_date", nil)
			return
		}

		transactions, err := service.ListTransactions(r.Context(), *startDate, *endDate)
		if err != nil {
			logrus.WithError(err).Error("Error listando ingresos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los ingresos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(transactions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetTransaction(service billing.TransactionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		transaction, err := service.GetTransaction(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("transaction_id", id).Error("Error consultando ingreso")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el ingreso", nil)
			return
		}

		if transaction == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ingreso no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(transaction); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateTransaction(service billing.TransactionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var transaction domain.Transaction
		if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateTransaction(r.Context(), &transaction)
		if err != nil {
			switch {
			case errors.Is(err, billing.ErrMissingPatient), errors.Is(err, billing.ErrMissingDate),
				errors.Is(err, billing.ErrMissingTreatment):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, billing.ErrInvalidQuantity):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, billing.ErrPatientNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error registrando ingreso")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al registrar el ingreso", nil)
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

func DeleteTransaction(service billing.TransactionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTransaction(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("transaction_id", id).Error("Error eliminando ingreso")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar el ingreso", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
