package branch

import (
	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// BranchResponse represents the response structure for a branch.
type BranchResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Address             *string         `json:"address,omitempty"`
	WorkingDaysPerMonth int             `json:"working_days_per_month"`
	WorkingHoursPerDay  decimal.Decimal `json:"working_hours_per_day"`
	IsActive            bool            `json:"is_active"`
}

// CreateBranchRequest represents the request structure for creating a branch.
type CreateBranchRequest struct {
	Name                string           `json:"name"`
	Address             *string          `json:"address,omitempty"`
	WorkingDaysPerMonth int              `json:"working_days_per_month"`
	WorkingHoursPerDay  *decimal.Decimal `json:"working_hours_per_day,omitempty"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// Working schedule
	if r.WorkingDaysPerMonth < 1 || r.WorkingDaysPerMonth > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days_per_month",
			Message: "working_days_per_month must be between 1 and 31",
		})
	}
	if r.WorkingHoursPerDay != nil {
		if !r.WorkingHoursPerDay.IsPositive() || r.WorkingHoursPerDay.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours_per_day",
				Message: "working_hours_per_day must be between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateBranchRequest represents the request structure for updating a branch.
// Changing the working schedule re-derives the stored rates of the branch's
// branch-dependent employees.
type UpdateBranchRequest struct {
	ID                  string           `json:"-"`
	Name                *string          `json:"name,omitempty"`
	Address             *string          `json:"address,omitempty"`
	WorkingDaysPerMonth *int             `json:"working_days_per_month,omitempty"`
	WorkingHoursPerDay  *decimal.Decimal `json:"working_hours_per_day,omitempty"`
	IsActive            *bool            `json:"is_active,omitempty"`
}

func (r *UpdateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// Name
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	// Working schedule
	if r.WorkingDaysPerMonth != nil && (*r.WorkingDaysPerMonth < 1 || *r.WorkingDaysPerMonth > 31) {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days_per_month",
			Message: "working_days_per_month must be between 1 and 31",
		})
	}
	if r.WorkingHoursPerDay != nil {
		if !r.WorkingHoursPerDay.IsPositive() || r.WorkingHoursPerDay.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours_per_day",
				Message: "working_hours_per_day must be between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
