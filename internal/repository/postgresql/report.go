package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/primovet/vetpay-backend-go/internal/domain/report"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetPayrollRegister returns one row per payroll period whose date range
// falls entirely inside the requested window, newest first.
func (r *reportRepositoryImpl) GetPayrollRegister(ctx context.Context, branchID *string, startDate, endDate time.Time) ([]report.RegisterRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pp.employee_id,
			   e.full_name as employee_name,
			   e.position,
			   COALESCE(b.name, '') as branch_name,
			   pp.total_days_present,
			   pp.basic_pay, pp.holiday_pay, pp.overtime_pay,
			   pp.total_incentives, pp.total_deductions, pp.late_deduction,
			   pp.gross_pay, pp.net_pay, pp.status
		FROM payroll_periods pp
		JOIN employees e ON pp.employee_id = e.id
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE pp.start_date >= $1 AND pp.end_date <= $2
	`
	args := []interface{}{startDate, endDate}

	if branchID != nil {
		query += " AND e.branch_id = $3"
		args = append(args, *branchID)
	}

	query += " ORDER BY pp.start_date DESC, b.name ASC, e.full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll register: %w", err)
	}
	defer rows.Close()

	var registerRows []report.RegisterRow
	for rows.Next() {
		var row report.RegisterRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Position, &row.BranchName,
			&row.TotalDaysPresent,
			&row.BasicPay, &row.HolidayPay, &row.OvertimePay,
			&row.TotalIncentives, &row.TotalDeductions, &row.LateDeduction,
			&row.GrossPay, &row.NetPay, &row.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan register row: %w", err)
		}
		registerRows = append(registerRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return registerRows, nil
}
