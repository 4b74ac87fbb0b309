package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusDraft    PeriodStatus = "DRAFT"
	PeriodStatusPending  PeriodStatus = "PENDING"
	PeriodStatusApproved PeriodStatus = "APPROVED"
	PeriodStatusPaid     PeriodStatus = "PAID"
)

func (s PeriodStatus) IsValid() bool {
	switch s {
	case PeriodStatusDraft, PeriodStatusPending, PeriodStatusApproved, PeriodStatusPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may advance to next. The
// workflow moves forward only, one hop at a time.
func (s PeriodStatus) CanTransitionTo(next PeriodStatus) bool {
	switch s {
	case PeriodStatusDraft:
		return next == PeriodStatusPending
	case PeriodStatusPending:
		return next == PeriodStatusApproved
	case PeriodStatusApproved:
		return next == PeriodStatusPaid
	}
	return false
}

// PayrollPeriod - One employee's payroll for one date range. Rates are
// snapshotted from the employee at creation; TotalDaysPresent and every
// monetary total are derived, recomputed on each mutation.
type PayrollPeriod struct {
	ID               string
	EmployeeID       string
	StartDate        time.Time
	EndDate          time.Time
	WorkingDays      int
	DayOff           int
	Absences         int
	TotalDaysPresent int
	Holidays         decimal.Decimal
	OvertimeHours    decimal.Decimal
	LateMinutes      decimal.Decimal
	MealAllowance    decimal.Decimal
	SilPay           decimal.Decimal
	BirthdayLeave    decimal.Decimal
	DeductionDivisor int
	RatePerDay       decimal.Decimal
	RatePerHour      decimal.Decimal
	BasicPay         decimal.Decimal
	HolidayPay       decimal.Decimal
	OvertimePay      decimal.Decimal
	TotalIncentives  decimal.Decimal
	TotalDeductions  decimal.Decimal
	LateDeduction    decimal.Decimal
	GrossPay         decimal.Decimal
	NetPay           decimal.Decimal
	Status           PeriodStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Position     *string
	BranchID     *string
	BranchName   *string
}

// Incentive - One incentive line on a payroll period, at most one row per
// incentive type. Formula holds the display trace of how the amount was
// computed.
type Incentive struct {
	ID            string
	PayrollID     string
	IncentiveType string
	InputCount    decimal.Decimal
	Rate          decimal.Decimal
	Amount        decimal.Decimal
	Formula       string
	DateEarned    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Deduction - One deduction line on a payroll period, at most one row per
// deduction type.
type Deduction struct {
	ID            string
	PayrollID     string
	DeductionType string
	Amount        decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DeductionCategory enum
type DeductionCategory string

const (
	DeductionCategoryGovernment DeductionCategory = "government"
	DeductionCategoryLoan       DeductionCategory = "loan"
	DeductionCategoryOther      DeductionCategory = "other"
)

func (c DeductionCategory) IsValid() bool {
	switch c {
	case DeductionCategoryGovernment, DeductionCategoryLoan, DeductionCategoryOther:
		return true
	}
	return false
}

// FixedDeduction - Recurring deduction template on an employee. When a
// period is created, each active template seeds a Deduction row with
// amount divided by the period's deduction divisor.
type FixedDeduction struct {
	ID            string
	EmployeeID    string
	DeductionType string
	Amount        decimal.Decimal
	Category      DeductionCategory
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PeriodTotals - Derived monetary fields persisted after recomputation.
type PeriodTotals struct {
	TotalDaysPresent int
	BasicPay         decimal.Decimal
	HolidayPay       decimal.Decimal
	OvertimePay      decimal.Decimal
	TotalIncentives  decimal.Decimal
	TotalDeductions  decimal.Decimal
	LateDeduction    decimal.Decimal
	GrossPay         decimal.Decimal
	NetPay           decimal.Decimal
}
