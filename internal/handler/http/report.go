package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/report"
	"github.com/primovet/vetpay-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Payslip PDF
	GeneratePayslip(w http.ResponseWriter, r *http.Request)

	// Sheet XLSX export
	ExportSheet(w http.ResponseWriter, r *http.Request)

	// Payroll Register Report
	GetPayrollRegister(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GeneratePayslip handles POST /payroll-periods/{id}/payslip
func (h *reportHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.reportService.GeneratePayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

// ExportSheet handles POST /incentive-sheets/{id}/export
func (h *reportHandlerImpl) ExportSheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Sheet ID is required", nil)
		return
	}

	result, err := h.reportService.ExportSheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sheet exported", result)
}

// GetPayrollRegister handles GET /reports/payroll-register
func (h *reportHandlerImpl) GetPayrollRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters
	req := report.PayrollRegisterRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if branchID := r.URL.Query().Get("branch_id"); branchID != "" {
		req.BranchID = &branchID
	}

	result, err := h.reportService.PayrollRegister(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
