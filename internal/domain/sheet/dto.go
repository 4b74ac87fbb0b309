package sheet

import (
	"strconv"

	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SHEET DTOs ==========

type CreateSheetRequest struct {
	BranchID  string `json:"branch_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreateSheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SheetResponse struct {
	ID            string  `json:"id"`
	BranchID      string  `json:"branch_id"`
	BranchName    *string `json:"branch_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	IsDistributed bool    `json:"is_distributed"`
}

// GridCell - One stored tally for display. Sparse: absent cells are zero.
type GridCell struct {
	Date          string          `json:"date"`
	IncentiveType string          `json:"incentive_type"`
	Value         decimal.Decimal `json:"value"`
}

type TypeTotalResponse struct {
	IncentiveType string          `json:"incentive_type"`
	Total         decimal.Decimal `json:"total"`
}

type SheetDetailResponse struct {
	SheetResponse
	Cells  []GridCell          `json:"cells"`
	Totals []TypeTotalResponse `json:"totals"`
}

type SheetFilter struct {
	BranchID *string `json:"branch_id,omitempty"`
}

// ========== DAILY INPUT DTOs ==========

type InputEntry struct {
	Date          string          `json:"date"`
	IncentiveType string          `json:"incentive_type"`
	Value         decimal.Decimal `json:"value"`
}

// ApplyInputsRequest writes a batch of cells. Zero values delete the cell.
type ApplyInputsRequest struct {
	SheetID string       `json:"-"`
	Entries []InputEntry `json:"entries"`
}

func (r *ApplyInputsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SheetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "sheet_id",
			Message: "sheet_id is required",
		})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}
	for i, entry := range r.Entries {
		if _, ok := validator.IsValidDate(entry.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "entry " + strconv.Itoa(i) + ": date must be in YYYY-MM-DD format",
			})
			continue
		}
		if !validator.IsValidTypeCode(entry.IncentiveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "entry " + strconv.Itoa(i) + ": incentive_type is not a valid type code",
			})
		}
		if entry.Value.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "entry " + strconv.Itoa(i) + ": value must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== DISTRIBUTION DTOs ==========

// RuleOutcome - Result of one distribution rule over the sheet.
type RuleOutcome struct {
	SourceType      string          `json:"source_type"`
	DerivedType     string          `json:"derived_type"`
	Total           decimal.Decimal `json:"total"`
	Rate            decimal.Decimal `json:"rate"`
	DivisionCount   int             `json:"division_count"`
	TotalPay        decimal.Decimal `json:"total_pay"`
	PerPerson       decimal.Decimal `json:"per_person"`
	Formula         string          `json:"formula"`
	AppliedTo       int             `json:"applied_to"`
	SkippedNoPeriod []string        `json:"skipped_no_period,omitempty"`
}

type DistributeResponse struct {
	SheetID        string        `json:"sheet_id"`
	Outcomes       []RuleOutcome `json:"outcomes"`
	PeriodsTouched int           `json:"periods_touched"`
	IsDistributed  bool          `json:"is_distributed"`
}
