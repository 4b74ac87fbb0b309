package response

import (
	"errors"
	"net/http"

	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/domain/master/branch"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/domain/report"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Branch domain errors
	switch {
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch with this name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Incentive domain errors
	case errors.Is(err, incentive.ErrConfigNotFound):
		NotFound(w, "Incentive config not found")
	case errors.Is(err, incentive.ErrUnknownTypeCode):
		NotFound(w, "Unknown incentive type code")
	case errors.Is(err, incentive.ErrInactiveTypeCode):
		BadRequest(w, "Incentive type is inactive", nil)
	case errors.Is(err, incentive.ErrInvalidFormulaType):
		BadRequest(w, "Formula type must be COUNT_MULTIPLY or PERCENT", nil)
	case errors.Is(err, incentive.ErrInvalidPositionKey):
		BadRequest(w, "Position set contains an unknown position key", nil)
	case errors.Is(err, incentive.ErrExclusionNotAllowed):
		BadRequest(w, "Exclusion references an unknown incentive type", nil)
	case errors.Is(err, incentive.ErrPositionNotEligible):
		BadRequest(w, "Employee position does not receive this incentive type", nil)
	case errors.Is(err, incentive.ErrEmployeeExcluded):
		Conflict(w, "Employee is excluded from this incentive type")

	// Sheet domain errors
	case errors.Is(err, sheet.ErrSheetNotFound):
		NotFound(w, "Incentive sheet not found")
	case errors.Is(err, sheet.ErrSheetAlreadyExists):
		Conflict(w, "Incentive sheet already exists for this branch and date range")
	case errors.Is(err, sheet.ErrSheetDistributed):
		Conflict(w, "Incentive sheet has already been distributed")
	case errors.Is(err, sheet.ErrDateOutOfRange):
		BadRequest(w, "Input date falls outside the sheet date range", nil)
	case errors.Is(err, sheet.ErrUnknownSourceType):
		BadRequest(w, "Incentive type is not a shared source type", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyExists):
		Conflict(w, "Payroll period already exists for this employee and date range")
	case errors.Is(err, payroll.ErrIncentiveNotFound):
		NotFound(w, "Incentive not found on this payroll period")
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction not found on this payroll period")
	case errors.Is(err, payroll.ErrFixedDeductionNotFound):
		NotFound(w, "Fixed deduction not found")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrCannotDeletePaidPeriod):
		Conflict(w, "Cannot delete a paid payroll period")
	case errors.Is(err, payroll.ErrInvalidDeductionCategory):
		BadRequest(w, "Deduction category must be government, loan, or other", nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoDataFound):
		NotFound(w, "No data found for the specified criteria")
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate report")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
