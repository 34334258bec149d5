package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/internal/domain"
)

func TestResolvePeriod(t *testing.T) {
	// Fecha de referencia fija: 15 de junio de 2024
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	windowStart, windowEnd := 2022, 2026

	tests := []struct {
		name          string
		filters       domain.ReportFilters
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Últimos 30 días - ventana deslizante desde hoy",
			filters:       domain.ReportFilters{Range: domain.RangeLast30Days},
			expectedStart: now.AddDate(0, 0, -30),
			expectedEnd:   now,
		},
		{
			name:          "Mes en curso del año actual",
			filters:       domain.ReportFilters{Range: domain.RangeCurrentMonth},
			expectedStart: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Mes en curso de otro año seleccionado",
			filters:       domain.ReportFilters{Range: domain.RangeCurrentMonth, Year: "2023"},
			expectedStart: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Año completo por defecto",
			filters:       domain.ReportFilters{Range: domain.RangeYear},
			expectedStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Año seleccionado distinto al actual",
			filters:       domain.ReportFilters{Range: domain.RangeYear, Year: "2022"},
			expectedStart: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Todos los años - ventana fija completa",
			filters:       domain.ReportFilters{Range: domain.RangeYear, Year: domain.AllYearsSentinel},
			expectedStart: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Año mal formado - se ignora y se usa el año en curso",
			filters:       domain.ReportFilters{Range: domain.RangeYear, Year: "no-es-un-año"},
			expectedStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Rango desconocido - se trata como año completo",
			filters:       domain.ReportFilters{Range: "trimestre"},
			expectedStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := resolvePeriod(tt.filters, now, windowStart, windowEnd)

			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestResolvePeriod_febreroBisiesto(t *testing.T) {
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	start, end := resolvePeriod(domain.ReportFilters{Range: domain.RangeCurrentMonth}, now, 2022, 2026)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), end)
}
