package reporting

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository"
	"github.com/violetagest/clinic-manager-api/internal/config"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	topTreatmentsLimit = 5

	// Etiqueta de las líneas cuyo tratamiento ya no existe en el catálogo
	unknownTreatmentLabel = "Desconocido"
)

// esPrinter formatea importes con agrupación es-ES, como hacía el panel
var esPrinter = message.NewPrinter(language.EuropeanSpanish)

// Service implementa Reporter sobre los repositorios de ingresos y gastos.
// Toda la agregación es un cálculo puro sobre los registros ya filtrados por
// el repositorio; no se cachea nada entre llamadas.
type Service struct {
	transactionRepo repository.TransactionRepository
	expenseRepo     repository.ExpenseRepository
	window          config.Reporting
	now             func() time.Time
}

func NewService(
	transactionRepo repository.TransactionRepository,
	expenseRepo repository.ExpenseRepository,
	cfg *config.Config,
) Reporter {
	return &Service{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		window:          cfg.Reporting,
		now:             time.Now,
	}
}

// GetReport calcula el informe del periodo. Las tres consultas (ingresos,
// gastos y líneas de detalle) son independientes y se lanzan en paralelo;
// si cualquiera falla se aborta el informe completo, sin resultados parciales.
func (s *Service) GetReport(ctx context.Context, filters domain.ReportFilters) (*domain.Report, error) {
	startDate, endDate := resolvePeriod(filters, s.now(), s.window.YearWindowStart, s.window.YearWindowEnd)

	var (
		transactions []*domain.Transaction
		expenses     []*domain.Expense
		items        []*domain.TransactionItem
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetByDateRange(gctx, startDate, endDate)
		return errors.Wrap(err, "informes: error al obtener los ingresos del periodo")
	})

	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.GetByDateRange(gctx, startDate, endDate)
		return errors.Wrap(err, "informes: error al obtener los gastos del periodo")
	})

	g.Go(func() error {
		var err error
		items, err = s.transactionRepo.GetItemsByDateRange(gctx, startDate, endDate)
		return errors.Wrap(err, "informes: error al obtener las líneas de detalle del periodo")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date":   startDate.Format(time.DateOnly),
		"end_date":     endDate.Format(time.DateOnly),
		"transactions": len(transactions),
		"expenses":     len(expenses),
		"items":        len(items),
	}).Debug("informes: registros del periodo recuperados")

	report := &domain.Report{
		Summary:        summarize(transactions, expenses),
		RevenueData:    revenueByDate(transactions),
		PaymentMethods: paymentMethodTotals(transactions),
		TopTreatments:  topTreatments(items),
		StartDate:      startDate,
		EndDate:        endDate,
	}

	return report, nil
}

// summarize calcula las cifras de cabecera. Una lista vacía produce un
// resumen a cero, no un error.
func summarize(transactions []*domain.Transaction, expenses []*domain.Expense) domain.ReportSummary {
	summary := domain.ReportSummary{}

	for _, transaction := range transactions {
		summary.TotalIncome += transaction.TotalAmount
	}

	for _, expense := range expenses {
		summary.TotalExpenses += expense.TotalAmount
	}

	summary.NetProfit = summary.TotalIncome - summary.TotalExpenses
	summary.TotalVisits = len(transactions)

	return summary
}

// revenueByDate agrupa la facturación por día natural (solo la parte de
// fecha, sin corrección de zona horaria) y devuelve los puntos ordenados
// de forma ascendente por fecha.
func revenueByDate(transactions []*domain.Transaction) []*domain.RevenuePoint {
	pointsByDate := make(map[string]*domain.RevenuePoint)

	for _, transaction := range transactions {
		dateKey := transaction.Date.Format(time.DateOnly)

		point, ok := pointsByDate[dateKey]
		if !ok {
			point = &domain.RevenuePoint{Date: dateKey}
			pointsByDate[dateKey] = point
		}

		point.Total += transaction.TotalAmount
		point.Medical += transaction.MedicalAmount
		point.Aesthetic += transaction.AestheticAmount
		point.Cosmetic += transaction.CosmeticAmount
	}

	points := make([]*domain.RevenuePoint, 0, len(pointsByDate))
	for _, point := range pointsByDate {
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// paymentMethodTotals suma cada método de pago por separado. No se comprueba
// que los tres sumen el total del ingreso: esa coherencia la garantiza el
// formulario al registrar el movimiento.
func paymentMethodTotals(transactions []*domain.Transaction) domain.PaymentMethodTotals {
	totals := domain.PaymentMethodTotals{}

	for _, transaction := range transactions {
		totals.Cash += transaction.CashAmount
		totals.Card += transaction.CardAmount
		totals.Transfer += transaction.TransferAmount
	}

	return totals
}

// topTreatments agrupa las líneas por nombre de tratamiento y devuelve las
// cinco primeras por facturación. El orden relativo de empates es el orden
// de llegada de las líneas.
func topTreatments(items []*domain.TransactionItem) []*domain.TopTreatmentEntry {
	entriesByName := make(map[string]*domain.TopTreatmentEntry)
	ordered := make([]*domain.TopTreatmentEntry, 0)

	for _, item := range items {
		name := unknownTreatmentLabel
		if item.TreatmentName != nil && *item.TreatmentName != "" {
			name = *item.TreatmentName
		}

		entry, ok := entriesByName[name]
		if !ok {
			entry = &domain.TopTreatmentEntry{Name: name}
			entriesByName[name] = entry
			ordered = append(ordered, entry)
		}

		entry.Count += item.Quantity
		entry.Revenue += item.Subtotal
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Revenue > ordered[j].Revenue
	})

	if len(ordered) > topTreatmentsLimit {
		ordered = ordered[:topTreatmentsLimit]
	}

	return ordered
}

// GetYearComparison agrega ingresos y gastos de cada año de la ventana de
// comparación. Las consultas por año son independientes y de solo lectura,
// así que se lanzan en paralelo; el orden ascendente del resultado lo fija
// la posición de cada año en la ventana, no el orden de terminación.
func (s *Service) GetYearComparison(ctx context.Context) (*domain.YearComparison, error) {
	years := make([]int, 0, s.window.YearWindowEnd-s.window.YearWindowStart+1)
	for year := s.window.YearWindowStart; year <= s.window.YearWindowEnd; year++ {
		years = append(years, year)
	}

	snapshots := make([]*domain.YearSnapshot, len(years))

	g, gctx := errgroup.WithContext(ctx)

	for i, year := range years {
		i, year := i, year

		g.Go(func() error {
			snapshot, err := s.yearSnapshot(gctx, year)
			if err != nil {
				return err
			}
			snapshots[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.YearComparison{
		YearData:      snapshots,
		GrowthMetrics: growthMetrics(snapshots, s.now().Year()),
	}, nil
}

func (s *Service) yearSnapshot(ctx context.Context, year int) (*domain.YearSnapshot, error) {
	startDate := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	endDate := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)

	transactions, err := s.transactionRepo.GetByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, errors.Wrapf(err, "informes: error al obtener los ingresos de %d", year)
	}

	expenses, err := s.expenseRepo.GetByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, errors.Wrapf(err, "informes: error al obtener los gastos de %d", year)
	}

	snapshot := &domain.YearSnapshot{Year: strconv.Itoa(year)}

	for _, transaction := range transactions {
		snapshot.Ingresos += transaction.TotalAmount
	}

	for _, expense := range expenses {
		snapshot.Gastos += expense.TotalAmount
	}

	snapshot.Beneficio = snapshot.Ingresos - snapshot.Gastos
	snapshot.Transacciones = len(transactions)

	return snapshot, nil
}

// growthMetrics compara el año en curso con el anterior. Si cualquiera de
// los dos queda fuera de la ventana no se emite ninguna métrica: o están
// las tres o no está ninguna.
func growthMetrics(snapshots []*domain.YearSnapshot, currentYear int) []*domain.GrowthMetric {
	var current, previous *domain.YearSnapshot

	for _, snapshot := range snapshots {
		switch snapshot.Year {
		case strconv.Itoa(currentYear):
			current = snapshot
		case strconv.Itoa(currentYear - 1):
			previous = snapshot
		}
	}

	if current == nil || previous == nil {
		return []*domain.GrowthMetric{}
	}

	return []*domain.GrowthMetric{
		{
			Label:  "Ingresos",
			Value:  formatCurrency(current.Ingresos),
			Change: roundedAbsChange(current.Ingresos, previous.Ingresos),
			Trend:  trendOf(current.Ingresos, previous.Ingresos),
		},
		{
			Label:  "Beneficio Neto",
			Value:  formatCurrency(current.Beneficio),
			Change: roundedAbsChange(current.Beneficio, previous.Beneficio),
			Trend:  trendOf(current.Beneficio, previous.Beneficio),
		},
		{
			Label:  "Transacciones",
			Value:  strconv.Itoa(current.Transacciones),
			Change: roundedAbsChange(float64(current.Transacciones), float64(previous.Transacciones)),
			Trend:  trendOf(float64(current.Transacciones), float64(previous.Transacciones)),
		},
	}
}

// percentChange devuelve 0 cuando el año anterior es cero: un divisor nulo
// no es un error, solo significa que no hay base de comparación.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return (current - previous) / previous * 100
}

func roundedAbsChange(current, previous float64) int {
	return int(math.Round(math.Abs(percentChange(current, previous))))
}

func trendOf(current, previous float64) domain.Trend {
	if current >= previous {
		return domain.TrendUp
	}
	return domain.TrendDown
}

func formatCurrency(value float64) string {
	return esPrinter.Sprintf("%.0f €", value)
}
