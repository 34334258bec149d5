package reporting

import (
	"context"

	"github.com/violetagest/clinic-manager-api/internal/domain"
)

// Reporter define las operaciones del panel de informes financieros
type Reporter interface {
	// GetReport calcula el informe del periodo: resumen, facturación diaria,
	// desglose por método de pago y ranking de tratamientos
	GetReport(ctx context.Context, filters domain.ReportFilters) (*domain.Report, error)

	// GetYearComparison calcula el informe interanual con métricas de
	// crecimiento del año en curso frente al anterior
	GetYearComparison(ctx context.Context) (*domain.YearComparison, error)
}
