package employee

import (
	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmployeeCode  *string         `json:"employee_code,omitempty"`
	FullName      string          `json:"full_name"`
	Position      string          `json:"position"`
	PositionName  string          `json:"position_name"`
	BranchID      string          `json:"branch_id"`
	BranchName    *string         `json:"branch_name,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	RatePerDay    decimal.Decimal `json:"rate_per_day"`
	RatePerHour   decimal.Decimal `json:"rate_per_hour"`
	IsActive      bool            `json:"is_active"`
}

type CreateEmployeeRequest struct {
	EmployeeCode  *string         `json:"employee_code,omitempty"`
	FullName      string          `json:"full_name"`
	Position      string          `json:"position"`
	BranchID      string          `json:"branch_id"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// FullName
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 150 characters",
		})
	}

	// Position
	if !Position(r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is not a known position key",
		})
	}

	// BranchID
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	// EmployeeCode
	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the format NNNN-NNNN",
		})
	}

	// MonthlySalary
	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest updates an employee. Salary, position, or branch
// changes re-derive the stored rates; providing rate_per_day and
// rate_per_hour instead stores them verbatim (manual override).
type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	EmployeeCode  *string          `json:"employee_code,omitempty"`
	FullName      *string          `json:"full_name,omitempty"`
	Position      *string          `json:"position,omitempty"`
	BranchID      *string          `json:"branch_id,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	RatePerDay    *decimal.Decimal `json:"rate_per_day,omitempty"`
	RatePerHour   *decimal.Decimal `json:"rate_per_hour,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 150 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 150 characters",
			})
		}
	}

	if r.Position != nil && !Position(*r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is not a known position key",
		})
	}

	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the format NNNN-NNNN",
		})
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be non-negative",
		})
	}

	// Manual rate override requires both rates
	if (r.RatePerDay != nil) != (r.RatePerHour != nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_day",
			Message: "rate_per_day and rate_per_hour must be provided together",
		})
	}
	if r.RatePerDay != nil && r.RatePerDay.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_day",
			Message: "rate_per_day must be non-negative",
		})
	}
	if r.RatePerHour != nil && r.RatePerHour.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_hour",
			Message: "rate_per_hour must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	BranchID *string `json:"branch_id,omitempty"`
	Position *string `json:"position,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
