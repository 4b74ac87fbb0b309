package incentive

import (
	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CONFIG DTOs ==========

type IncentiveConfigResponse struct {
	TypeCode           string          `json:"type_code"`
	DisplayName        string          `json:"display_name"`
	Rate               decimal.Decimal `json:"rate"`
	FormulaType        string          `json:"formula_type"`
	ReceivingPositions []string        `json:"receiving_positions"`
	DivisionPositions  []string        `json:"division_positions"`
	IsShared           bool            `json:"is_shared"`
	PoolInCalculator   bool            `json:"pool_in_calculator"`
	SortOrder          int             `json:"sort_order"`
	IsActive           bool            `json:"is_active"`
	IsOverride         bool            `json:"is_override"`
}

// UpsertIncentiveConfigRequest persists an override for one type code.
// Omitted fields inherit from the current effective config.
type UpsertIncentiveConfigRequest struct {
	TypeCode           string           `json:"-"`
	DisplayName        *string          `json:"display_name,omitempty"`
	Rate               *decimal.Decimal `json:"rate,omitempty"`
	FormulaType        *string          `json:"formula_type,omitempty"`
	ReceivingPositions []string         `json:"receiving_positions,omitempty"`
	DivisionPositions  []string         `json:"division_positions,omitempty"`
	IsShared           *bool            `json:"is_shared,omitempty"`
	PoolInCalculator   *bool            `json:"pool_in_calculator,omitempty"`
	SortOrder          *int             `json:"sort_order,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

func (r *UpsertIncentiveConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTypeCode(r.TypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "type_code",
			Message: "type_code must be uppercase letters, digits, and underscores",
		})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be non-negative",
		})
	}
	if r.FormulaType != nil && !FormulaType(*r.FormulaType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "formula_type",
			Message: "formula_type must be COUNT_MULTIPLY or PERCENT",
		})
	}
	if r.DisplayName != nil && validator.IsEmpty(*r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "display_name",
			Message: "display_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== EXCLUSION DTOs ==========

type IncentiveExclusionResponse struct {
	EmployeeID    string `json:"employee_id"`
	IncentiveType string `json:"incentive_type"`
}

// ReplaceExclusionsRequest replaces the full exclusion set of one employee.
type ReplaceExclusionsRequest struct {
	EmployeeID     string   `json:"-"`
	IncentiveTypes []string `json:"incentive_types"`
}

func (r *ReplaceExclusionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	for _, code := range r.IncentiveTypes {
		if !validator.IsValidTypeCode(code) {
			errs = append(errs, validator.ValidationError{
				Field:   "incentive_types",
				Message: "incentive type " + code + " is not a valid type code",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== CALCULATOR DTOs ==========

// ApplyIncentiveRequest records one incentive on a payroll period through
// the per-employee calculator. Count feeds COUNT_MULTIPLY formulas,
// InputValue feeds PERCENT formulas.
type ApplyIncentiveRequest struct {
	PayrollID  string           `json:"-"`
	TypeCode   string           `json:"-"`
	Count      *decimal.Decimal `json:"count,omitempty"`
	InputValue *decimal.Decimal `json:"input_value,omitempty"`
	DateEarned *string          `json:"date_earned,omitempty"`
}

func (r *ApplyIncentiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{
			Field:   "payroll_id",
			Message: "payroll_id is required",
		})
	}
	if !validator.IsValidTypeCode(r.TypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "type_code",
			Message: "type_code must be uppercase letters, digits, and underscores",
		})
	}
	if r.Count == nil && r.InputValue == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "count",
			Message: "either count or input_value is required",
		})
	}
	if r.Count != nil && r.Count.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "count",
			Message: "count must be non-negative",
		})
	}
	if r.InputValue != nil && r.InputValue.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "input_value",
			Message: "input_value must be non-negative",
		})
	}
	if r.DateEarned != nil {
		if _, ok := validator.IsValidDate(*r.DateEarned); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_earned",
				Message: "date_earned must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AppliedIncentiveResponse struct {
	PayrollID     string          `json:"payroll_id"`
	IncentiveType string          `json:"incentive_type"`
	InputCount    decimal.Decimal `json:"input_count"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	Formula       string          `json:"formula"`
	DateEarned    *string         `json:"date_earned,omitempty"`
}
