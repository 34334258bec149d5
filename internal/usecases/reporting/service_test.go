package reporting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/violetagest/clinic-manager-api/infrastructure/repository/mocks"
	"github.com/violetagest/clinic-manager-api/internal/config"
	"github.com/violetagest/clinic-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(txRepo *mocks.MockTransactionRepository, expRepo *mocks.MockExpenseRepository, now time.Time) *Service {
	return &Service{
		transactionRepo: txRepo,
		expenseRepo:     expRepo,
		window:          config.Reporting{YearWindowStart: 2022, YearWindowEnd: 2026},
		now:             func() time.Time { return now },
	}
}

func stringPtr(s string) *string {
	return &s
}

func TestService_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockExpRepo := mocks.NewMockExpenseRepository(ctrl)

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockTxRepo, mockExpRepo, now)

	day := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

	transactions := []*domain.Transaction{
		{
			ID:            "TX001",
			Date:          day,
			TotalAmount:   100,
			CashAmount:    100,
			MedicalAmount: 100,
		},
		{
			ID:              "TX002",
			Date:            day.Add(4 * time.Hour), // mismo día natural
			TotalAmount:     50,
			CardAmount:      50,
			AestheticAmount: 50,
		},
	}

	items := []*domain.TransactionItem{
		{TreatmentName: stringPtr("Botox"), Quantity: 2, Subtotal: 200},
		{TreatmentName: stringPtr("Botox"), Quantity: 1, Subtotal: 100},
		{TreatmentName: stringPtr("Peeling"), Quantity: 1, Subtotal: 80},
		{TreatmentName: nil, Quantity: 1, Subtotal: 40}, // tratamiento borrado del catálogo
	}

	mockTxRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(transactions, nil)

	mockExpRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Expense{}, nil)

	mockTxRepo.EXPECT().
		GetItemsByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(items, nil)

	report, err := service.GetReport(context.Background(), domain.ReportFilters{Range: domain.RangeYear})

	assert.NoError(t, err)
	assert.NotNil(t, report)

	// Cifras de cabecera
	assert.Equal(t, 150.0, report.Summary.TotalIncome)
	assert.Equal(t, 0.0, report.Summary.TotalExpenses)
	assert.Equal(t, 150.0, report.Summary.NetProfit)
	assert.Equal(t, 2, report.Summary.TotalVisits)

	// Los dos ingresos del mismo día se funden en un único punto
	assert.Len(t, report.RevenueData, 1)
	assert.Equal(t, "2024-01-01", report.RevenueData[0].Date)
	assert.Equal(t, 150.0, report.RevenueData[0].Total)
	assert.Equal(t, 100.0, report.RevenueData[0].Medical)
	assert.Equal(t, 50.0, report.RevenueData[0].Aesthetic)
	assert.Equal(t, 0.0, report.RevenueData[0].Cosmetic)

	// Métodos de pago
	assert.Equal(t, 100.0, report.PaymentMethods.Cash)
	assert.Equal(t, 50.0, report.PaymentMethods.Card)
	assert.Equal(t, 0.0, report.PaymentMethods.Transfer)

	// Ranking de tratamientos por facturación
	assert.Len(t, report.TopTreatments, 3)
	assert.Equal(t, "Botox", report.TopTreatments[0].Name)
	assert.Equal(t, 3, report.TopTreatments[0].Count)
	assert.Equal(t, 300.0, report.TopTreatments[0].Revenue)
	assert.Equal(t, "Peeling", report.TopTreatments[1].Name)
	assert.Equal(t, 1, report.TopTreatments[1].Count)
	assert.Equal(t, 80.0, report.TopTreatments[1].Revenue)
	assert.Equal(t, "Desconocido", report.TopTreatments[2].Name)
	assert.Equal(t, 40.0, report.TopTreatments[2].Revenue)
}

func TestService_GetReport_sinRegistros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockExpRepo := mocks.NewMockExpenseRepository(ctrl)

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockTxRepo, mockExpRepo, now)

	mockTxRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Transaction{}, nil)

	mockExpRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Expense{}, nil)

	mockTxRepo.EXPECT().
		GetItemsByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.TransactionItem{}, nil)

	report, err := service.GetReport(context.Background(), domain.ReportFilters{Range: domain.RangeLast30Days})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReportSummary{}, report.Summary)
	assert.Empty(t, report.RevenueData)
	assert.Equal(t, domain.PaymentMethodTotals{}, report.PaymentMethods)
	assert.Empty(t, report.TopTreatments)
}

func TestService_GetReport_errorEnUnaConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockExpRepo := mocks.NewMockExpenseRepository(ctrl)

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	service := newTestService(mockTxRepo, mockExpRepo, now)

	// Las tres consultas arrancan en paralelo, así que todas pueden llegar a
	// ejecutarse aunque una falle
	mockTxRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("conexión perdida")).
		AnyTimes()

	mockExpRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Expense{}, nil).
		AnyTimes()

	mockTxRepo.EXPECT().
		GetItemsByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.TransactionItem{}, nil).
		AnyTimes()

	report, err := service.GetReport(context.Background(), domain.ReportFilters{Range: domain.RangeYear})

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "conexión perdida")
}

func TestTopTreatments_limiteYEmpates(t *testing.T) {
	// Siete tratamientos distintos, dos de ellos empatados en facturación
	items := []*domain.TransactionItem{
		{TreatmentName: stringPtr("A"), Quantity: 1, Subtotal: 700},
		{TreatmentName: stringPtr("B"), Quantity: 1, Subtotal: 600},
		{TreatmentName: stringPtr("C"), Quantity: 1, Subtotal: 500},
		{TreatmentName: stringPtr("D"), Quantity: 1, Subtotal: 400},
		{TreatmentName: stringPtr("Empate1"), Quantity: 1, Subtotal: 300},
		{TreatmentName: stringPtr("Empate2"), Quantity: 1, Subtotal: 300},
		{TreatmentName: stringPtr("G"), Quantity: 1, Subtotal: 100},
	}

	top := topTreatments(items)

	assert.Len(t, top, 5)
	assert.Equal(t, "A", top[0].Name)
	// Los empates conservan el orden de llegada de las líneas
	assert.Equal(t, "Empate1", top[4].Name)
}

func TestService_GetYearComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockExpRepo := mocks.NewMockExpenseRepository(ctrl)

	// Año en curso 2026, con 2025 disponible como base de comparación
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockTxRepo, mockExpRepo, now)

	transactionsByYear := map[int][]*domain.Transaction{
		2025: {{ID: "TX001", TotalAmount: 100}},
		2026: {{ID: "TX002", TotalAmount: 100}, {ID: "TX003", TotalAmount: 50}},
	}

	expensesByYear := map[int][]*domain.Expense{
		2026: {{ID: "EXP001", TotalAmount: 50}},
	}

	for year := 2022; year <= 2026; year++ {
		startDate := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		endDate := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)

		mockTxRepo.EXPECT().
			GetByDateRange(gomock.Any(), startDate, endDate).
			Return(transactionsByYear[year], nil)

		mockExpRepo.EXPECT().
			GetByDateRange(gomock.Any(), startDate, endDate).
			Return(expensesByYear[year], nil)
	}

	comparison, err := service.GetYearComparison(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, comparison)

	// Un snapshot por año de la ventana, en orden ascendente
	assert.Len(t, comparison.YearData, 5)
	for i, year := 0, 2022; year <= 2026; i, year = i+1, year+1 {
		assert.Equal(t, fmt.Sprintf("%d", year), comparison.YearData[i].Year)
	}

	snapshot2026 := comparison.YearData[4]
	assert.Equal(t, 150.0, snapshot2026.Ingresos)
	assert.Equal(t, 50.0, snapshot2026.Gastos)
	assert.Equal(t, 100.0, snapshot2026.Beneficio)
	assert.Equal(t, 2, snapshot2026.Transacciones)

	// Métricas de crecimiento 2026 vs 2025
	assert.Len(t, comparison.GrowthMetrics, 3)

	ingresos := comparison.GrowthMetrics[0]
	assert.Equal(t, "Ingresos", ingresos.Label)
	assert.Equal(t, "150 €", ingresos.Value)
	assert.Equal(t, 50, ingresos.Change) // de 100 a 150
	assert.Equal(t, domain.TrendUp, ingresos.Trend)

	beneficio := comparison.GrowthMetrics[1]
	assert.Equal(t, "Beneficio Neto", beneficio.Label)
	assert.Equal(t, 0, beneficio.Change) // 100 vs 100
	assert.Equal(t, domain.TrendUp, beneficio.Trend)

	transacciones := comparison.GrowthMetrics[2]
	assert.Equal(t, "Transacciones", transacciones.Label)
	assert.Equal(t, "2", transacciones.Value)
	assert.Equal(t, 100, transacciones.Change) // de 1 a 2
	assert.Equal(t, domain.TrendUp, transacciones.Trend)
}

func TestService_GetYearComparison_sinBaseDeComparacion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockExpRepo := mocks.NewMockExpenseRepository(ctrl)

	// El año en curso queda fuera de la ventana: sin métricas de crecimiento
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	service := &Service{
		transactionRepo: mockTxRepo,
		expenseRepo:     mockExpRepo,
		window:          config.Reporting{YearWindowStart: 2022, YearWindowEnd: 2024},
		now:             func() time.Time { return now },
	}

	mockTxRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Transaction{}, nil).
		Times(3)

	mockExpRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Expense{}, nil).
		Times(3)

	comparison, err := service.GetYearComparison(context.Background())

	assert.NoError(t, err)
	assert.Len(t, comparison.YearData, 3)
	assert.Empty(t, comparison.GrowthMetrics)
}

func TestService_GetYearComparison_errorEnUnAnio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockExpRepo := mocks.NewMockExpenseRepository(ctrl)

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	service := newTestService(mockTxRepo, mockExpRepo, now)

	mockTxRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("tiempo de espera agotado")).
		AnyTimes()

	mockExpRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Expense{}, nil).
		AnyTimes()

	comparison, err := service.GetYearComparison(context.Background())

	assert.Error(t, err)
	assert.Nil(t, comparison)
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{name: "Crecimiento", current: 150, previous: 100, expected: 50},
		{name: "Caída", current: 50, previous: 100, expected: -50},
		{name: "Sin cambios", current: 100, previous: 100, expected: 0},
		{name: "Base cero - sin base de comparación", current: 100, previous: 0, expected: 0},
		{name: "Ambos cero", current: 0, previous: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, percentChange(tt.current, tt.previous))
		})
	}
}

func TestRoundedAbsChange(t *testing.T) {
	assert.Equal(t, 50, roundedAbsChange(150, 100))
	assert.Equal(t, 50, roundedAbsChange(50, 100))
	assert.Equal(t, 33, roundedAbsChange(100, 150)) // -33.33 redondeado
	assert.Equal(t, 0, roundedAbsChange(100, 0))
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, domain.TrendUp, trendOf(150, 100))
	assert.Equal(t, domain.TrendUp, trendOf(100, 100)) // la igualdad cuenta como subida
	assert.Equal(t, domain.TrendDown, trendOf(99, 100))
}
