package payroll

import "errors"

var (
	ErrPeriodNotFound           = errors.New("payroll period not found")
	ErrPeriodAlreadyExists      = errors.New("payroll period already exists for this employee and date range")
	ErrIncentiveNotFound        = errors.New("incentive not found on this payroll period")
	ErrDeductionNotFound        = errors.New("deduction not found on this payroll period")
	ErrFixedDeductionNotFound   = errors.New("fixed deduction not found")
	ErrInvalidStatusTransition  = errors.New("invalid payroll status transition")
	ErrCannotDeletePaidPeriod   = errors.New("cannot delete a paid payroll period")
	ErrInvalidDeductionCategory = errors.New("deduction category must be government, loan, or other")
)
