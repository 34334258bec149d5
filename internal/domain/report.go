package domain

import "time"

// RangeType identifica el periodo lógico seleccionado en el panel de informes
type RangeType string

const (
	RangeLast30Days   RangeType = "30days"
	RangeCurrentMonth RangeType = "month"
	RangeYear         RangeType = "year"

	// AllYearsSentinel en el parámetro year hace que el rango "year" cubra la
	// ventana completa de comparación en lugar de un único año
	AllYearsSentinel = "all"
)

// ReportFilters son los parámetros de entrada de un informe
type ReportFilters struct {
	Range RangeType
	Year  string
}

// ReportSummary son las cifras de cabecera del informe
type ReportSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	TotalVisits   int     `json:"totalVisits"`
}

// RevenuePoint es la facturación de un día desglosada por línea de negocio
type RevenuePoint struct {
	Date      string  `json:"date"`
	Total     float64 `json:"total"`
	Medical   float64 `json:"medical"`
	Aesthetic float64 `json:"aesthetic"`
	Cosmetic  float64 `json:"cosmetic"`
}

// PaymentMethodTotals es el desglose por método de pago del periodo
type PaymentMethodTotals struct {
	Cash     float64 `json:"cash"`
	Card     float64 `json:"card"`
	Transfer float64 `json:"transfer"`
}

// TopTreatmentEntry es una posición del ranking de tratamientos por facturación
type TopTreatmentEntry struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Report es el modelo de vista que consume el panel de informes
type Report struct {
	Summary        ReportSummary        `json:"summary"`
	RevenueData    []*RevenuePoint      `json:"revenueData"`
	PaymentMethods PaymentMethodTotals  `json:"paymentMethods"`
	TopTreatments  []*TopTreatmentEntry `json:"topTreatments"`
	StartDate      time.Time            `json:"startDate"`
	EndDate        time.Time            `json:"endDate"`
}

// YearSnapshot son las cifras agregadas de un año de la ventana de comparación
type YearSnapshot struct {
	Year          string  `json:"year"`
	Ingresos      float64 `json:"ingresos"`
	Gastos        float64 `json:"gastos"`
	Beneficio     float64 `json:"beneficio"`
	Transacciones int     `json:"transacciones"`
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// GrowthMetric compara el año en curso con el anterior
type GrowthMetric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change int    `json:"change"`
	Trend  Trend  `json:"trend"`
}

// YearComparison es la respuesta del informe interanual
type YearComparison struct {
	YearData      []*YearSnapshot `json:"yearData"`
	GrowthMetrics []*GrowthMetric `json:"growthMetrics"`
}
