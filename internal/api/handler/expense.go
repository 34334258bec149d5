package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/expenses"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
	"github.com/violetagest/clinic-manager-api/pkg/utils"
)

func ListExpenses(service expenses.ExpenseService) http.Handler {
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

		expenseList, err := service.ListExpenses(r.Context(), *startDate, *endDate)
		if err != nil {
			logrus.WithError(err).Error("Error listando gastos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los gastos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(expenseList); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func GetExpense(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		expense, err := service.GetExpense(r.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("expense_id", id).Error("Error consultando gasto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el gasto", nil)
			return
		}

		if expense == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Gasto no encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(expense); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

func CreateExpense(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var expense domain.Expense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}

		created, err := service.CreateExpense(r.Context(), &expense)
		if err != nil {
			switch {
			case errors.Is(err, expenses.ErrMissingDescription), errors.Is(err, expenses.ErrMissingDate):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, expenses.ErrInvalidCategory):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, expenses.ErrSupplierNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error registrando gasto")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al registrar el gasto", nil)
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

func UpdateExpense(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var expense domain.Expense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la petición inválido", nil)
			return
		}
		expense.ID = id

		if err := service.UpdateExpense(r.Context(), &expense); err != nil {
			switch {
			case errors.Is(err, expenses.ErrExpenseNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, expenses.ErrInvalidCategory):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("expense_id", id).Error("Error actualizando gasto")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar el gasto", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteExpense(service expenses.ExpenseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteExpense(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("expense_id", id).Error("Error eliminando gasto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al eliminar el gasto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
