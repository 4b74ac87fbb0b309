package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== PERIODS ==========

func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (
			id, employee_id, start_date, end_date, working_days, day_off, absences, total_days_present,
			holidays, overtime_hours, late_minutes, meal_allowance, sil_pay, birthday_leave,
			deduction_divisor, rate_per_day, rate_per_hour,
			basic_pay, holiday_pay, overtime_pay, total_incentives, total_deductions, late_deduction,
			gross_pay, net_pay, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13,
			$14, $15, $16,
			$17, $18, $19, $20, $21, $22,
			$23, $24, $25, NOW(), NOW()
		)
		RETURNING id, employee_id, start_date, end_date, working_days, day_off, absences, total_days_present,
			holidays, overtime_hours, late_minutes, meal_allowance, sil_pay, birthday_leave,
			deduction_divisor, rate_per_day, rate_per_hour,
			basic_pay, holiday_pay, overtime_pay, total_incentives, total_deductions, late_deduction,
			gross_pay, net_pay, status, created_at, updated_at
	`

	var created payroll.PayrollPeriod
	err := q.QueryRow(ctx, query,
		period.EmployeeID, period.StartDate, period.EndDate, period.WorkingDays, period.DayOff,
		period.Absences, period.TotalDaysPresent,
		period.Holidays, period.OvertimeHours, period.LateMinutes, period.MealAllowance,
		period.SilPay, period.BirthdayLeave,
		period.DeductionDivisor, period.RatePerDay, period.RatePerHour,
		period.BasicPay, period.HolidayPay, period.OvertimePay, period.TotalIncentives,
		period.TotalDeductions, period.LateDeduction,
		period.GrossPay, period.NetPay, period.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.StartDate, &created.EndDate, &created.WorkingDays,
		&created.DayOff, &created.Absences, &created.TotalDaysPresent,
		&created.Holidays, &created.OvertimeHours, &created.LateMinutes, &created.MealAllowance,
		&created.SilPay, &created.BirthdayLeave,
		&created.DeductionDivisor, &created.RatePerDay, &created.RatePerHour,
		&created.BasicPay, &created.HolidayPay, &created.OvertimePay, &created.TotalIncentives,
		&created.TotalDeductions, &created.LateDeduction,
		&created.GrossPay, &created.NetPay, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_period_range") {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodAlreadyExists
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pp.id, pp.employee_id, pp.start_date, pp.end_date, pp.working_days, pp.day_off,
			   pp.absences, pp.total_days_present,
			   pp.holidays, pp.overtime_hours, pp.late_minutes, pp.meal_allowance, pp.sil_pay, pp.birthday_leave,
			   pp.deduction_divisor, pp.rate_per_day, pp.rate_per_hour,
			   pp.basic_pay, pp.holiday_pay, pp.overtime_pay, pp.total_incentives, pp.total_deductions,
			   pp.late_deduction, pp.gross_pay, pp.net_pay, pp.status, pp.created_at, pp.updated_at,
			   e.full_name as employee_name, e.employee_code, e.position, e.branch_id, b.name as branch_name
		FROM payroll_periods pp
		JOIN employees e ON pp.employee_id = e.id
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE pp.id = $1
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.StartDate, &p.EndDate, &p.WorkingDays, &p.DayOff,
		&p.Absences, &p.TotalDaysPresent,
		&p.Holidays, &p.OvertimeHours, &p.LateMinutes, &p.MealAllowance, &p.SilPay, &p.BirthdayLeave,
		&p.DeductionDivisor, &p.RatePerDay, &p.RatePerHour,
		&p.BasicPay, &p.HolidayPay, &p.OvertimePay, &p.TotalIncentives, &p.TotalDeductions,
		&p.LateDeduction, &p.GrossPay, &p.NetPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode, &p.Position, &p.BranchID, &p.BranchName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPeriodByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, working_days, day_off, absences, total_days_present,
			   holidays, overtime_hours, late_minutes, meal_allowance, sil_pay, birthday_leave,
			   deduction_divisor, rate_per_day, rate_per_hour,
			   basic_pay, holiday_pay, overtime_pay, total_incentives, total_deductions, late_deduction,
			   gross_pay, net_pay, status, created_at, updated_at
		FROM payroll_periods
		WHERE employee_id = $1 AND start_date = $2 AND end_date = $3
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(
		&p.ID, &p.EmployeeID, &p.StartDate, &p.EndDate, &p.WorkingDays, &p.DayOff,
		&p.Absences, &p.TotalDaysPresent,
		&p.Holidays, &p.OvertimeHours, &p.LateMinutes, &p.MealAllowance, &p.SilPay, &p.BirthdayLeave,
		&p.DeductionDivisor, &p.RatePerDay, &p.RatePerHour,
		&p.BasicPay, &p.HolidayPay, &p.OvertimePay, &p.TotalIncentives, &p.TotalDeductions,
		&p.LateDeduction, &p.GrossPay, &p.NetPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPeriodsByEmployeeIDsAndRange(ctx context.Context, employeeIDs []string, startDate, endDate time.Time) ([]payroll.PayrollPeriod, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, working_days, day_off, absences, total_days_present,
			   holidays, overtime_hours, late_minutes, meal_allowance, sil_pay, birthday_leave,
			   deduction_divisor, rate_per_day, rate_per_hour,
			   basic_pay, holiday_pay, overtime_pay, total_incentives, total_deductions, late_deduction,
			   gross_pay, net_pay, status, created_at, updated_at
		FROM payroll_periods
		WHERE employee_id = ANY($1) AND start_date = $2 AND end_date = $3
	`

	rows, err := q.Query(ctx, query, employeeIDs, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.StartDate, &p.EndDate, &p.WorkingDays, &p.DayOff,
			&p.Absences, &p.TotalDaysPresent,
			&p.Holidays, &p.OvertimeHours, &p.LateMinutes, &p.MealAllowance, &p.SilPay, &p.BirthdayLeave,
			&p.DeductionDivisor, &p.RatePerDay, &p.RatePerHour,
			&p.BasicPay, &p.HolidayPay, &p.OvertimePay, &p.TotalIncentives, &p.TotalDeductions,
			&p.LateDeduction, &p.GrossPay, &p.NetPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return periods, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pp.id, pp.employee_id, pp.start_date, pp.end_date, pp.working_days, pp.day_off,
			   pp.absences, pp.total_days_present,
			   pp.holidays, pp.overtime_hours, pp.late_minutes, pp.meal_allowance, pp.sil_pay, pp.birthday_leave,
			   pp.deduction_divisor, pp.rate_per_day, pp.rate_per_hour,
			   pp.basic_pay, pp.holiday_pay, pp.overtime_pay, pp.total_incentives, pp.total_deductions,
			   pp.late_deduction, pp.gross_pay, pp.net_pay, pp.status, pp.created_at, pp.updated_at,
			   e.full_name as employee_name, e.employee_code, e.position, e.branch_id, b.name as branch_name
		FROM payroll_periods pp
		JOIN employees e ON pp.employee_id = e.id
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND pp.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BranchID != nil {
		query += fmt.Sprintf(" AND e.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND pp.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *filter.StartDate)
		if err == nil {
			query += fmt.Sprintf(" AND pp.start_date >= $%d", argIdx)
			args = append(args, startDate)
			argIdx++
		}
	}
	if filter.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *filter.EndDate)
		if err == nil {
			query += fmt.Sprintf(" AND pp.end_date <= $%d", argIdx)
			args = append(args, endDate)
			argIdx++
		}
	}

	query += " ORDER BY pp.start_date DESC, e.full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.StartDate, &p.EndDate, &p.WorkingDays, &p.DayOff,
			&p.Absences, &p.TotalDaysPresent,
			&p.Holidays, &p.OvertimeHours, &p.LateMinutes, &p.MealAllowance, &p.SilPay, &p.BirthdayLeave,
			&p.DeductionDivisor, &p.RatePerDay, &p.RatePerHour,
			&p.BasicPay, &p.HolidayPay, &p.OvertimePay, &p.TotalIncentives, &p.TotalDeductions,
			&p.LateDeduction, &p.GrossPay, &p.NetPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeCode, &p.Position, &p.BranchID, &p.BranchName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return periods, nil
}

func (r *payrollRepository) UpdatePeriod(ctx context.Context, req payroll.UpdatePeriodRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.WorkingDays != nil {
		setParts = append(setParts, fmt.Sprintf("working_days = $%d", argIdx))
		args = append(args, *req.WorkingDays)
		argIdx++
	}
	if req.DayOff != nil {
		setParts = append(setParts, fmt.Sprintf("day_off = $%d", argIdx))
		args = append(args, *req.DayOff)
		argIdx++
	}
	if req.Absences != nil {
		setParts = append(setParts, fmt.Sprintf("absences = $%d", argIdx))
		args = append(args, *req.Absences)
		argIdx++
	}
	if req.Holidays != nil {
		setParts = append(setParts, fmt.Sprintf("holidays = $%d", argIdx))
		args = append(args, *req.Holidays)
		argIdx++
	}
	if req.OvertimeHours != nil {
		setParts = append(setParts, fmt.Sprintf("overtime_hours = $%d", argIdx))
		args = append(args, *req.OvertimeHours)
		argIdx++
	}
	if req.LateMinutes != nil {
		setParts = append(setParts, fmt.Sprintf("late_minutes = $%d", argIdx))
		args = append(args, *req.LateMinutes)
		argIdx++
	}
	if req.MealAllowance != nil {
		setParts = append(setParts, fmt.Sprintf("meal_allowance = $%d", argIdx))
		args = append(args, *req.MealAllowance)
		argIdx++
	}
	if req.SilPay != nil {
		setParts = append(setParts, fmt.Sprintf("sil_pay = $%d", argIdx))
		args = append(args, *req.SilPay)
		argIdx++
	}
	if req.BirthdayLeave != nil {
		setParts = append(setParts, fmt.Sprintf("birthday_leave = $%d", argIdx))
		args = append(args, *req.BirthdayLeave)
		argIdx++
	}
	if req.DeductionDivisor != nil {
		setParts = append(setParts, fmt.Sprintf("deduction_divisor = $%d", argIdx))
		args = append(args, *req.DeductionDivisor)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE payroll_periods
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to update payroll period: %w", err)
	}

	return nil
}

func (r *payrollRepository) UpdateTotals(ctx context.Context, id string, totals payroll.PeriodTotals) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET total_days_present = $1, basic_pay = $2, holiday_pay = $3, overtime_pay = $4,
			total_incentives = $5, total_deductions = $6, late_deduction = $7,
			gross_pay = $8, net_pay = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		totals.TotalDaysPresent, totals.BasicPay, totals.HolidayPay, totals.OvertimePay,
		totals.TotalIncentives, totals.TotalDeductions, totals.LateDeduction,
		totals.GrossPay, totals.NetPay, id,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to update payroll totals: %w", err)
	}

	return nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.PeriodStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to update payroll status: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeletePeriod(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var status string
	err := q.QueryRow(ctx, `SELECT status FROM payroll_periods WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to check payroll period status: %w", err)
	}
	if status == string(payroll.PeriodStatusPaid) {
		return payroll.ErrCannotDeletePaidPeriod
	}

	query := `DELETE FROM payroll_periods WHERE id = $1 RETURNING id`

	var deletedID string
	err = q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}

	return nil
}

// ========== INCENTIVES ==========

func (r *payrollRepository) UpsertIncentive(ctx context.Context, incentive payroll.Incentive) (payroll.Incentive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_incentives (id, payroll_id, incentive_type, input_count, rate, amount, formula, date_earned, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (payroll_id, incentive_type) DO UPDATE SET
			input_count = EXCLUDED.input_count,
			rate = EXCLUDED.rate,
			amount = EXCLUDED.amount,
			formula = EXCLUDED.formula,
			date_earned = EXCLUDED.date_earned,
			updated_at = NOW()
		RETURNING id, payroll_id, incentive_type, input_count, rate, amount, formula, date_earned, created_at, updated_at
	`

	var saved payroll.Incentive
	err := q.QueryRow(ctx, query,
		incentive.PayrollID, incentive.IncentiveType, incentive.InputCount, incentive.Rate,
		incentive.Amount, incentive.Formula, incentive.DateEarned,
	).Scan(
		&saved.ID, &saved.PayrollID, &saved.IncentiveType, &saved.InputCount, &saved.Rate,
		&saved.Amount, &saved.Formula, &saved.DateEarned, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.Incentive{}, fmt.Errorf("failed to upsert incentive: %w", err)
	}

	return saved, nil
}

func (r *payrollRepository) DeleteIncentive(ctx context.Context, payrollID, incentiveType string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_incentives WHERE payroll_id = $1 AND incentive_type = $2 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, payrollID, incentiveType).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrIncentiveNotFound
		}
		return fmt.Errorf("failed to delete incentive: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListIncentives(ctx context.Context, payrollID string) ([]payroll.Incentive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, incentive_type, input_count, rate, amount, formula, date_earned, created_at, updated_at
		FROM payroll_incentives
		WHERE payroll_id = $1
		ORDER BY incentive_type ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentives: %w", err)
	}
	defer rows.Close()

	var incentives []payroll.Incentive
	for rows.Next() {
		var inc payroll.Incentive
		if err := rows.Scan(
			&inc.ID, &inc.PayrollID, &inc.IncentiveType, &inc.InputCount, &inc.Rate,
			&inc.Amount, &inc.Formula, &inc.DateEarned, &inc.CreatedAt, &inc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan incentive: %w", err)
		}
		incentives = append(incentives, inc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return incentives, nil
}

// ========== DEDUCTIONS ==========

func (r *payrollRepository) UpsertDeduction(ctx context.Context, deduction payroll.Deduction) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_deductions (id, payroll_id, deduction_type, amount, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (payroll_id, deduction_type) DO UPDATE SET
			amount = EXCLUDED.amount,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, payroll_id, deduction_type, amount, notes, created_at, updated_at
	`

	var saved payroll.Deduction
	err := q.QueryRow(ctx, query,
		deduction.PayrollID, deduction.DeductionType, deduction.Amount, deduction.Notes,
	).Scan(
		&saved.ID, &saved.PayrollID, &saved.DeductionType, &saved.Amount, &saved.Notes,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.Deduction{}, fmt.Errorf("failed to upsert deduction: %w", err)
	}

	return saved, nil
}

func (r *payrollRepository) DeleteDeduction(ctx context.Context, payrollID, deductionType string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_deductions WHERE payroll_id = $1 AND deduction_type = $2 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, payrollID, deductionType).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrDeductionNotFound
		}
		return fmt.Errorf("failed to delete deduction: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListDeductions(ctx context.Context, payrollID string) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, deduction_type, amount, notes, created_at, updated_at
		FROM payroll_deductions
		WHERE payroll_id = $1
		ORDER BY deduction_type ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []payroll.Deduction
	for rows.Next() {
		var d payroll.Deduction
		if err := rows.Scan(
			&d.ID, &d.PayrollID, &d.DeductionType, &d.Amount, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return deductions, nil
}

// ========== FIXED DEDUCTIONS ==========

func (r *payrollRepository) CreateFixedDeduction(ctx context.Context, fixed payroll.FixedDeduction) (payroll.FixedDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fixed_deductions (id, employee_id, deduction_type, amount, category, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, true, NOW(), NOW())
		RETURNING id, employee_id, deduction_type, amount, category, is_active, created_at, updated_at
	`

	var created payroll.FixedDeduction
	err := q.QueryRow(ctx, query,
		fixed.EmployeeID, fixed.DeductionType, fixed.Amount, fixed.Category,
	).Scan(
		&created.ID, &created.EmployeeID, &created.DeductionType, &created.Amount,
		&created.Category, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return payroll.FixedDeduction{}, fmt.Errorf("failed to create fixed deduction: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetFixedDeductionByID(ctx context.Context, id string) (payroll.FixedDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, deduction_type, amount, category, is_active, created_at, updated_at
		FROM fixed_deductions
		WHERE id = $1
	`

	var fixed payroll.FixedDeduction
	err := q.QueryRow(ctx, query, id).Scan(
		&fixed.ID, &fixed.EmployeeID, &fixed.DeductionType, &fixed.Amount,
		&fixed.Category, &fixed.IsActive, &fixed.CreatedAt, &fixed.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.FixedDeduction{}, payroll.ErrFixedDeductionNotFound
		}
		return payroll.FixedDeduction{}, fmt.Errorf("failed to get fixed deduction: %w", err)
	}

	return fixed, nil
}

func (r *payrollRepository) ListFixedDeductionsByEmployeeID(ctx context.Context, employeeID string, activeOnly bool) ([]payroll.FixedDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, deduction_type, amount, category, is_active, created_at, updated_at
		FROM fixed_deductions
		WHERE employee_id = $1
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY category ASC, deduction_type ASC"

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed deductions: %w", err)
	}
	defer rows.Close()

	var deductions []payroll.FixedDeduction
	for rows.Next() {
		var fixed payroll.FixedDeduction
		if err := rows.Scan(
			&fixed.ID, &fixed.EmployeeID, &fixed.DeductionType, &fixed.Amount,
			&fixed.Category, &fixed.IsActive, &fixed.CreatedAt, &fixed.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fixed deduction: %w", err)
		}
		deductions = append(deductions, fixed)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return deductions, nil
}

func (r *payrollRepository) UpdateFixedDeduction(ctx context.Context, req payroll.UpdateFixedDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.DeductionType != nil {
		setParts = append(setParts, fmt.Sprintf("deduction_type = $%d", argIdx))
		args = append(args, *req.DeductionType)
		argIdx++
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *req.Category)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE fixed_deductions
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrFixedDeductionNotFound
		}
		return fmt.Errorf("failed to update fixed deduction: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeleteFixedDeduction(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM fixed_deductions WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrFixedDeductionNotFound
		}
		return fmt.Errorf("failed to delete fixed deduction: %w", err)
	}

	return nil
}
