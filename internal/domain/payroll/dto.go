package payroll

import (
	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	EmployeeID       string           `json:"employee_id"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	WorkingDays      int              `json:"working_days"`
	DayOff           int              `json:"day_off"`
	Absences         int              `json:"absences"`
	Holidays         *decimal.Decimal `json:"holidays,omitempty"`
	OvertimeHours    *decimal.Decimal `json:"overtime_hours,omitempty"`
	LateMinutes      *decimal.Decimal `json:"late_minutes,omitempty"`
	MealAllowance    *decimal.Decimal `json:"meal_allowance,omitempty"`
	SilPay           *decimal.Decimal `json:"sil_pay,omitempty"`
	BirthdayLeave    *decimal.Decimal `json:"birthday_leave,omitempty"`
	DeductionDivisor *int             `json:"deduction_divisor,omitempty"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

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

	if r.WorkingDays < 0 || r.WorkingDays > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days must be between 0 and 31",
		})
	}
	if r.DayOff < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_off",
			Message: "day_off must be non-negative",
		})
	}
	if r.Absences < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "absences",
			Message: "absences must be non-negative",
		})
	}
	if r.DeductionDivisor != nil && *r.DeductionDivisor < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_divisor",
			Message: "deduction_divisor must be at least 1",
		})
	}

	for field, value := range map[string]*decimal.Decimal{
		"holidays":       r.Holidays,
		"overtime_hours": r.OvertimeHours,
		"late_minutes":   r.LateMinutes,
		"meal_allowance": r.MealAllowance,
		"sil_pay":        r.SilPay,
		"birthday_leave": r.BirthdayLeave,
	} {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePeriodRequest mutates attendance and allowance fields. Totals are
// always recomputed afterwards; total_days_present is never accepted from
// the caller.
type UpdatePeriodRequest struct {
	ID               string           `json:"-"`
	WorkingDays      *int             `json:"working_days,omitempty"`
	DayOff           *int             `json:"day_off,omitempty"`
	Absences         *int             `json:"absences,omitempty"`
	Holidays         *decimal.Decimal `json:"holidays,omitempty"`
	OvertimeHours    *decimal.Decimal `json:"overtime_hours,omitempty"`
	LateMinutes      *decimal.Decimal `json:"late_minutes,omitempty"`
	MealAllowance    *decimal.Decimal `json:"meal_allowance,omitempty"`
	SilPay           *decimal.Decimal `json:"sil_pay,omitempty"`
	BirthdayLeave    *decimal.Decimal `json:"birthday_leave,omitempty"`
	DeductionDivisor *int             `json:"deduction_divisor,omitempty"`
}

func (r *UpdatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.WorkingDays != nil && (*r.WorkingDays < 0 || *r.WorkingDays > 31) {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days must be between 0 and 31",
		})
	}
	if r.DayOff != nil && *r.DayOff < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_off",
			Message: "day_off must be non-negative",
		})
	}
	if r.Absences != nil && *r.Absences < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "absences",
			Message: "absences must be non-negative",
		})
	}
	if r.DeductionDivisor != nil && *r.DeductionDivisor < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_divisor",
			Message: "deduction_divisor must be at least 1",
		})
	}

	for field, value := range map[string]*decimal.Decimal{
		"holidays":       r.Holidays,
		"overtime_hours": r.OvertimeHours,
		"late_minutes":   r.LateMinutes,
		"meal_allowance": r.MealAllowance,
		"sil_pay":        r.SilPay,
		"birthday_leave": r.BirthdayLeave,
	} {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !PeriodStatus(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be DRAFT, PENDING, APPROVED, or PAID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	BranchID   *string `json:"branch_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

type IncentiveResponse struct {
	ID            string          `json:"id"`
	PayrollID     string          `json:"payroll_id"`
	IncentiveType string          `json:"incentive_type"`
	InputCount    decimal.Decimal `json:"input_count"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	Formula       string          `json:"formula"`
	DateEarned    *string         `json:"date_earned,omitempty"`
}

type DeductionResponse struct {
	ID            string          `json:"id"`
	PayrollID     string          `json:"payroll_id"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         *string         `json:"notes,omitempty"`
}

type PeriodResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	EmployeeCode     *string         `json:"employee_code,omitempty"`
	Position         *string         `json:"position,omitempty"`
	BranchID         *string         `json:"branch_id,omitempty"`
	BranchName       *string         `json:"branch_name,omitempty"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	WorkingDays      int             `json:"working_days"`
	DayOff           int             `json:"day_off"`
	Absences         int             `json:"absences"`
	TotalDaysPresent int             `json:"total_days_present"`
	Holidays         decimal.Decimal `json:"holidays"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	LateMinutes      decimal.Decimal `json:"late_minutes"`
	MealAllowance    decimal.Decimal `json:"meal_allowance"`
	SilPay           decimal.Decimal `json:"sil_pay"`
	BirthdayLeave    decimal.Decimal `json:"birthday_leave"`
	DeductionDivisor int             `json:"deduction_divisor"`
	RatePerDay       decimal.Decimal `json:"rate_per_day"`
	RatePerHour      decimal.Decimal `json:"rate_per_hour"`
	BasicPay         decimal.Decimal `json:"basic_pay"`
	HolidayPay       decimal.Decimal `json:"holiday_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	TotalIncentives  decimal.Decimal `json:"total_incentives"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	LateDeduction    decimal.Decimal `json:"late_deduction"`
	GrossPay         decimal.Decimal `json:"gross_pay"`
	NetPay           decimal.Decimal `json:"net_pay"`
	Status           string          `json:"status"`

	Incentives []IncentiveResponse `json:"incentives,omitempty"`
	Deductions []DeductionResponse `json:"deductions,omitempty"`
}

// ========== DEDUCTION DTOs ==========

type UpsertDeductionRequest struct {
	PayrollID     string          `json:"-"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *UpsertDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{
			Field:   "payroll_id",
			Message: "payroll_id is required",
		})
	}
	if validator.IsEmpty(r.DeductionType) {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_type",
			Message: "deduction_type is required",
		})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== FIXED DEDUCTION DTOs ==========

type CreateFixedDeductionRequest struct {
	EmployeeID    string          `json:"-"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
}

func (r *CreateFixedDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.DeductionType) {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_type",
			Message: "deduction_type is required",
		})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be non-negative",
		})
	}
	if !DeductionCategory(r.Category).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be government, loan, or other",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFixedDeductionRequest struct {
	ID            string           `json:"-"`
	DeductionType *string          `json:"deduction_type,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Category      *string          `json:"category,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r *UpdateFixedDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.DeductionType != nil && validator.IsEmpty(*r.DeductionType) {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_type",
			Message: "deduction_type must not be empty",
		})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be non-negative",
		})
	}
	if r.Category != nil && !DeductionCategory(*r.Category).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be government, loan, or other",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FixedDeductionResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	IsActive      bool            `json:"is_active"`
}
