package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/internal/scheduler"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
)

// CronJobType define el tipo de cron job que se puede lanzar a mano
const (
	CronJobTypeLowStock = "low-stock"
)

// CronJobServices contiene los servicios de cron disponibles para ejecución manual
type CronJobServices struct {
	LowStockSyncService *scheduler.LowStockSyncService
}

// RunCronJob ejecuta manualmente una cron job concreta
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeLowStock:
			if services.LowStockSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de barrido de stock no disponible", nil)
				return
			}
			services.LowStockSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: low-stock", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"low-stock": services.LowStockSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}
