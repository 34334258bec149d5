package reporting

import (
	"strconv"
	"time"

	"github.com/violetagest/clinic-manager-api/internal/domain"
)

// resolvePeriod traduce el rango lógico seleccionado en el panel a un
// intervalo cerrado [start, end] de fechas. Un año mal formado en los filtros
// no es un error: se ignora y se usa el año en curso, igual que hacía el
// panel original.
func resolvePeriod(filters domain.ReportFilters, now time.Time, windowStart, windowEnd int) (time.Time, time.Time) {
	selectedYear := now.Year()
	if filters.Year != "" && filters.Year != domain.AllYearsSentinel {
		if year, err := strconv.Atoi(filters.Year); err == nil {
			selectedYear = year
		}
	}

	switch filters.Range {
	case domain.RangeLast30Days:
		return now.AddDate(0, 0, -30), now

	case domain.RangeCurrentMonth:
		// Mes en curso, pero del año seleccionado si viene en los filtros
		start := time.Date(selectedYear, now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return start, end

	default:
		if filters.Year == domain.AllYearsSentinel {
			// La ventana fija de comparación completa
			start := time.Date(windowStart, time.January, 1, 0, 0, 0, 0, now.Location())
			end := time.Date(windowEnd, time.December, 31, 0, 0, 0, 0, now.Location())
			return start, end
		}

		start := time.Date(selectedYear, time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(selectedYear, time.December, 31, 0, 0, 0, 0, now.Location())
		return start, end
	}
}
