package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	masterHandler MasterHandler,
	employeeHandler EmployeeHandler,
	incentiveHandler IncentiveHandler,
	sheetHandler SheetHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	filesDir string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "vetpay-primovet"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	// r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/yo", func(w http.ResponseWriter, r *http.Request) {
		w.Write(([]byte("hello world\n")))
	})

	// Generated payslips and sheet exports
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/branches", func(r chi.Router) {
			r.Post("/", masterHandler.CreateBranch)
			r.Get("/", masterHandler.ListBranches)
			r.Get("/{id}", masterHandler.GetBranch)
			r.Put("/{id}", masterHandler.UpdateBranch)
			r.Delete("/{id}", masterHandler.DeleteBranch)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)

			r.Route("/{id}/fixed-deductions", func(r chi.Router) {
				r.Post("/", employeeHandler.CreateFixedDeduction)
				r.Get("/", employeeHandler.ListFixedDeductions)
			})

			r.Route("/{id}/exclusions", func(r chi.Router) {
				r.Get("/", incentiveHandler.ListExclusions)
				r.Put("/", incentiveHandler.ReplaceExclusions)
			})
		})

		r.Route("/fixed-deductions", func(r chi.Router) {
			r.Put("/{id}", employeeHandler.UpdateFixedDeduction)
			r.Delete("/{id}", employeeHandler.DeleteFixedDeduction)
		})

		r.Route("/incentive-configs", func(r chi.Router) {
			r.Get("/", incentiveHandler.ListConfigs)
			r.Get("/{typeCode}", incentiveHandler.GetConfig)
			r.Put("/{typeCode}", incentiveHandler.UpsertConfig)
			r.Post("/{typeCode}/reset", incentiveHandler.ResetConfig)
		})

		r.Route("/incentive-sheets", func(r chi.Router) {
			r.Post("/", sheetHandler.CreateSheet)
			r.Get("/", sheetHandler.ListSheets)
			r.Get("/{id}", sheetHandler.GetSheet)
			r.Delete("/{id}", sheetHandler.DeleteSheet)
			r.Put("/{id}/inputs", sheetHandler.ApplyInputs)
			r.Post("/{id}/distribute", sheetHandler.DistributeSheet)
			r.Post("/{id}/export", reportHandler.ExportSheet)
		})

		r.Route("/payroll-periods", func(r chi.Router) {
			r.Post("/", payrollHandler.CreatePeriod)
			r.Get("/", payrollHandler.ListPeriods)
			r.Get("/{id}", payrollHandler.GetPeriod)
			r.Put("/{id}", payrollHandler.UpdatePeriod)
			r.Delete("/{id}", payrollHandler.DeletePeriod)
			r.Post("/{id}/recalculate", payrollHandler.RecalculatePeriod)
			r.Patch("/{id}/status", payrollHandler.UpdateStatus)
			r.Post("/{id}/payslip", reportHandler.GeneratePayslip)

			r.Route("/{id}/incentives", func(r chi.Router) {
				r.Put("/{typeCode}", incentiveHandler.ApplyIncentive)
				r.Delete("/{typeCode}", incentiveHandler.RemoveIncentive)
			})

			r.Route("/{id}/deductions", func(r chi.Router) {
				r.Put("/", payrollHandler.UpsertDeduction)
				r.Delete("/{deductionType}", payrollHandler.DeleteDeduction)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/payroll-register", reportHandler.GetPayrollRegister)
		})
	})
	return r
}
