package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/violetagest/clinic-manager-api/internal/api/handler/router"
	"github.com/violetagest/clinic-manager-api/internal/usecases/billing"
	"github.com/violetagest/clinic-manager-api/internal/usecases/catalog"
	"github.com/violetagest/clinic-manager-api/internal/usecases/expenses"
	"github.com/violetagest/clinic-manager-api/internal/usecases/inventory"
	"github.com/violetagest/clinic-manager-api/internal/usecases/patients"
	"github.com/violetagest/clinic-manager-api/internal/usecases/reporting"
	"github.com/violetagest/clinic-manager-api/internal/usecases/scheduling"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Patients(service patients.PatientService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/patients",
			Method:  http.MethodGet,
			Handler: ListPatients(service),
		},
		{
			Path:    "/v1/patients",
			Method:  http.MethodPost,
			Handler: CreatePatient(service),
		},
		{
			Path:    "/v1/patients/:id",
			Method:  http.MethodGet,
			Handler: GetPatient(service),
		},
		{
			Path:    "/v1/patients/:id",
			Method:  http.MethodPut,
			Handler: UpdatePatient(service),
		},
		{
			Path:    "/v1/patients/:id",
			Method:  http.MethodDelete,
			Handler: DeletePatient(service),
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/v1/categories",
			Method:  http.MethodPost,
			Handler: CreateCategory(service),
		},
		{
			Path:    "/v1/categories/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCategory(service),
		},
		{
			Path:    "/v1/treatments",
			Method:  http.MethodGet,
			Handler: ListTreatments(service),
		},
		{
			Path:    "/v1/treatments",
			Method:  http.MethodPost,
			Handler: CreateTreatment(service),
		},
		{
			Path:    "/v1/treatments/:id",
			Method:  http.MethodGet,
			Handler: GetTreatment(service),
		},
		{
			Path:    "/v1/treatments/:id",
			Method:  http.MethodPut,
			Handler: UpdateTreatment(service),
		},
		{
			Path:    "/v1/treatments/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTreatment(service),
		},
	}
}

func Appointments(service scheduling.AppointmentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/appointments",
			Method:  http.MethodGet,
			Handler: ListAppointments(service),
		},
		{
			Path:    "/v1/appointments",
			Method:  http.MethodPost,
			Handler: CreateAppointment(service),
		},
		{
			Path:    "/v1/appointments/:id",
			Method:  http.MethodGet,
			Handler: GetAppointment(service),
		},
		{
			Path:    "/v1/appointments/:id",
			Method:  http.MethodPut,
			Handler: UpdateAppointment(service),
		},
		{
			Path:    "/v1/appointments/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAppointment(service),
		},
	}
}

func Transactions(service billing.TransactionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodPost,
			Handler: CreateTransaction(service),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodGet,
			Handler: GetTransaction(service),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTransaction(service),
		},
	}
}

func Expenses(service expenses.ExpenseService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses",
			Method:  http.MethodGet,
			Handler: ListExpenses(service),
		},
		{
			Path:    "/v1/expenses",
			Method:  http.MethodPost,
			Handler: CreateExpense(service),
		},
		{
			Path:    "/v1/expenses/:id",
			Method:  http.MethodGet,
			Handler: GetExpense(service),
		},
		{
			Path:    "/v1/expenses/:id",
			Method:  http.MethodPut,
			Handler: UpdateExpense(service),
		},
		{
			Path:    "/v1/expenses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteExpense(service),
		},
		{
			Path:    "/v1/suppliers",
			Method:  http.MethodGet,
			Handler: ListSuppliers(service),
		},
		{
			Path:    "/v1/suppliers",
			Method:  http.MethodPost,
			Handler: CreateSupplier(service),
		},
		{
			Path:    "/v1/suppliers/:id",
			Method:  http.MethodGet,
			Handler: GetSupplier(service),
		},
		{
			Path:    "/v1/suppliers/:id",
			Method:  http.MethodPut,
			Handler: UpdateSupplier(service),
		},
		{
			Path:    "/v1/suppliers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSupplier(service),
		},
	}
}

func Products(service inventory.ProductService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			// Ruta propia: httprouter no admite mezclar segmento fijo y :id
			Path:    "/v1/inventory/low-stock",
			Method:  http.MethodGet,
			Handler: ListLowStockProducts(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/reports/year-comparison",
			Method:  http.MethodGet,
			Handler: GetYearComparison(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
