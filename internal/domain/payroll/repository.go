package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for payroll periods and their
// incentive, deduction, and fixed deduction children.
type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetPeriodByID(ctx context.Context, id string) (PayrollPeriod, error)
	GetPeriodByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) (PayrollPeriod, error)
	GetPeriodsByEmployeeIDsAndRange(ctx context.Context, employeeIDs []string, startDate, endDate time.Time) ([]PayrollPeriod, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) ([]PayrollPeriod, error)
	UpdatePeriod(ctx context.Context, req UpdatePeriodRequest) error
	UpdateTotals(ctx context.Context, id string, totals PeriodTotals) error
	UpdateStatus(ctx context.Context, id string, status PeriodStatus) error
	DeletePeriod(ctx context.Context, id string) error

	// Incentives
	UpsertIncentive(ctx context.Context, incentive Incentive) (Incentive, error)
	DeleteIncentive(ctx context.Context, payrollID, incentiveType string) error
	ListIncentives(ctx context.Context, payrollID string) ([]Incentive, error)

	// Deductions
	UpsertDeduction(ctx context.Context, deduction Deduction) (Deduction, error)
	DeleteDeduction(ctx context.Context, payrollID, deductionType string) error
	ListDeductions(ctx context.Context, payrollID string) ([]Deduction, error)

	// Fixed deductions
	CreateFixedDeduction(ctx context.Context, fixed FixedDeduction) (FixedDeduction, error)
	GetFixedDeductionByID(ctx context.Context, id string) (FixedDeduction, error)
	ListFixedDeductionsByEmployeeID(ctx context.Context, employeeID string, activeOnly bool) ([]FixedDeduction, error)
	UpdateFixedDeduction(ctx context.Context, req UpdateFixedDeductionRequest) error
	DeleteFixedDeduction(ctx context.Context, id string) error
}
