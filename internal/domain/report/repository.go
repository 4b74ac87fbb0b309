package report

import (
	"context"
	"time"
)

// ReportRepository defines aggregate data access for reports
type ReportRepository interface {
	// Payroll register: one row per payroll period in the range
	GetPayrollRegister(ctx context.Context, branchID *string, startDate, endDate time.Time) ([]RegisterRow, error)
}
