package payroll

import "context"

// PayrollService defines business logic for payroll periods.
type PayrollService interface {
	// CreatePeriod creates a period, snapshots the employee's current
	// rates, seeds deductions from active fixed deduction templates, and
	// computes the initial totals
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)

	// GetPeriod retrieves a period with its incentives and deductions
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)

	// ListPeriods lists periods with filters
	ListPeriods(ctx context.Context, filter PeriodFilter) ([]PeriodResponse, error)

	// UpdatePeriod mutates attendance/allowance fields and recomputes
	UpdatePeriod(ctx context.Context, req UpdatePeriodRequest) (PeriodResponse, error)

	// Recalculate re-derives every total of the period from its current
	// inputs and children
	Recalculate(ctx context.Context, id string) (PeriodResponse, error)

	// UpdateStatus advances the workflow status forward by one hop
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (PeriodResponse, error)

	// DeletePeriod deletes a period and its children; paid periods are
	// refused
	DeletePeriod(ctx context.Context, id string) error

	// UpsertDeduction writes one deduction by type and recomputes
	UpsertDeduction(ctx context.Context, req UpsertDeductionRequest) (PeriodResponse, error)

	// DeleteDeduction removes one deduction by type and recomputes
	DeleteDeduction(ctx context.Context, payrollID, deductionType string) (PeriodResponse, error)

	// Fixed deduction templates
	CreateFixedDeduction(ctx context.Context, req CreateFixedDeductionRequest) (FixedDeductionResponse, error)
	ListFixedDeductions(ctx context.Context, employeeID string) ([]FixedDeductionResponse, error)
	UpdateFixedDeduction(ctx context.Context, req UpdateFixedDeductionRequest) (FixedDeductionResponse, error)
	DeleteFixedDeduction(ctx context.Context, id string) error
}
