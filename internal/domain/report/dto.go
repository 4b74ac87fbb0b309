package report

import (
	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PAYSLIP
// ========================================

// PayslipFileResponse points at a generated payslip PDF.
type PayslipFileResponse struct {
	PayrollID   string `json:"payroll_id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	GeneratedAt string `json:"generated_at"`
}

// ========================================
// SHEET EXPORT
// ========================================

// SheetExportResponse points at a generated XLSX export of a sheet.
type SheetExportResponse struct {
	SheetID     string `json:"sheet_id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	GeneratedAt string `json:"generated_at"`
}

// ========================================
// PAYROLL REGISTER
// ========================================

type PayrollRegisterRequest struct {
	BranchID  *string `json:"branch_id,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

func (r *PayrollRegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterRow struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	Position         string          `json:"position"`
	BranchName       string          `json:"branch_name"`
	TotalDaysPresent int             `json:"total_days_present"`
	BasicPay         decimal.Decimal `json:"basic_pay"`
	HolidayPay       decimal.Decimal `json:"holiday_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	TotalIncentives  decimal.Decimal `json:"total_incentives"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	LateDeduction    decimal.Decimal `json:"late_deduction"`
	GrossPay         decimal.Decimal `json:"gross_pay"`
	NetPay           decimal.Decimal `json:"net_pay"`
	Status           string          `json:"status"`
}

type PayrollRegisterReport struct {
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	BranchID    *string `json:"branch_id,omitempty"`
	GeneratedAt string  `json:"generated_at"`

	Rows []RegisterRow `json:"rows"`

	TotalEmployees  int             `json:"total_employees"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalIncentives decimal.Decimal `json:"total_incentives"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}
