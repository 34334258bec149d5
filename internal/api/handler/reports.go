package handler

import (
	"net/http"
	"strconv"

	"github.com/violetagest/clinic-manager-api/internal/domain"
	"github.com/violetagest/clinic-manager-api/internal/usecases/reporting"
	"github.com/violetagest/clinic-manager-api/pkg/apiErrors"
	"github.com/violetagest/clinic-manager-api/pkg/log"
)

// GetReport devuelve el informe agregado del periodo seleccionado en el panel
func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		rangeParam := query.Get("range")
		yearParam := query.Get("year")

		// El rango por defecto es el año; el parámetro year admite un año
		// concreto, "all" para la ventana completa, o nada
		if rangeParam == "" {
			rangeParam = string(domain.RangeYear)
		}

		if yearParam != "" && yearParam != domain.AllYearsSentinel {
			if _, err := strconv.Atoi(yearParam); err != nil {
				// Un año mal formado no corta la petición: el servicio lo
				// resuelve al año en curso, como hacía el panel
				logger.WithField("year", yearParam).Warn("informes: año mal formado en la petición")
			}
		}

		filters := domain.ReportFilters{
			Range: domain.RangeType(rangeParam),
			Year:  yearParam,
		}

		logger.WithFields(log.Fields{
			"range": rangeParam,
			"year":  yearParam,
		}).Info("informes: generando informe del periodo")

		report, err := service.GetReport(r.Context(), filters)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"range": rangeParam,
				"year":  yearParam,
			}).Error("informes: error al generar el informe")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al generar el informe", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date":     report.StartDate,
			"end_date":       report.EndDate,
			"revenue_points": len(report.RevenueData),
			"top_treatments": len(report.TopTreatments),
		}).Info("informes: informe generado con éxito")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("informes: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}

// GetYearComparison devuelve el comparativo interanual de la ventana fija
func GetYearComparison(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("informes: generando comparativo interanual")

		comparison, err := service.GetYearComparison(r.Context())
		if err != nil {
			logger.WithError(err).Error("informes: error al generar el comparativo interanual")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al generar el comparativo interanual", nil)
			return
		}

		logger.WithFields(log.Fields{
			"years":          len(comparison.YearData),
			"growth_metrics": len(comparison.GrowthMetrics),
		}).Info("informes: comparativo interanual generado con éxito")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logger.WithError(err).Error("informes: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al codificar la respuesta", nil)
		}
	})
}
