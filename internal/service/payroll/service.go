package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
	"github.com/primovet/vetpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db                 *database.DB
	payrollRepo        payroll.PayrollRepository
	employeeRepo       employee.EmployeeRepository
	overtimeMultiplier decimal.Decimal
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	overtimeMultiplier decimal.Decimal,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                 db,
		payrollRepo:        payrollRepo,
		employeeRepo:       employeeRepo,
		overtimeMultiplier: overtimeMultiplier,
	}
}

// ========== PERIODS ==========

// CreatePeriod implements payroll.PayrollService. Rates are snapshotted
// from the employee at creation, and every active fixed deduction
// template seeds a deduction row with its amount split by the deduction
// divisor.
func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PeriodResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.PeriodResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	divisor := 2
	if req.DeductionDivisor != nil {
		divisor = *req.DeductionDivisor
	}

	period := payroll.PayrollPeriod{
		EmployeeID:       req.EmployeeID,
		StartDate:        startDate,
		EndDate:          endDate,
		WorkingDays:      req.WorkingDays,
		DayOff:           req.DayOff,
		Absences:         req.Absences,
		Holidays:         decimalOrZero(req.Holidays),
		OvertimeHours:    decimalOrZero(req.OvertimeHours),
		LateMinutes:      decimalOrZero(req.LateMinutes),
		MealAllowance:    decimalOrZero(req.MealAllowance),
		SilPay:           decimalOrZero(req.SilPay),
		BirthdayLeave:    decimalOrZero(req.BirthdayLeave),
		DeductionDivisor: divisor,
		RatePerDay:       emp.RatePerDay,
		RatePerHour:      emp.RatePerHour,
		Status:           payroll.PeriodStatusDraft,
	}
	applyTotals(&period, payroll.ComputeTotals(period, nil, nil, s.overtimeMultiplier))

	fixed, err := s.payrollRepo.ListFixedDeductionsByEmployeeID(ctx, req.EmployeeID, true)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to list fixed deductions: %w", err)
	}

	var periodID string
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.payrollRepo.CreatePeriod(txCtx, period)
		if err != nil {
			return err
		}
		periodID = created.ID

		for _, f := range fixed {
			_, err := s.payrollRepo.UpsertDeduction(txCtx, payroll.Deduction{
				PayrollID:     created.ID,
				DeductionType: f.DeductionType,
				Amount:        f.Amount.Div(decimal.NewFromInt(int64(divisor))).Round(2),
			})
			if err != nil {
				return fmt.Errorf("failed to seed deduction %s: %w", f.DeductionType, err)
			}
		}
		if len(fixed) > 0 {
			return s.recomputePeriodTotals(txCtx, created.ID)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodAlreadyExists) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodAlreadyExists
		}
		return payroll.PeriodResponse{}, err
	}

	// Get the full details with JOINs
	return s.periodDetail(ctx, periodID)
}

// GetPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	return s.periodDetail(ctx, id)
}

// ListPeriods implements payroll.PayrollService. List rows omit the
// incentive and deduction children.
func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.PeriodResponse, error) {
	periods, err := s.payrollRepo.ListPeriods(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapPeriodToResponse(p, nil, nil))
	}

	return result, nil
}

// UpdatePeriod implements payroll.PayrollService. Totals are recomputed
// in the same transaction as the field update.
func (s *PayrollServiceImpl) UpdatePeriod(ctx context.Context, req payroll.UpdatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payrollRepo.UpdatePeriod(txCtx, req); err != nil {
			return err
		}

		return s.recomputePeriodTotals(txCtx, req.ID)
	})
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodResponse{}, err
	}

	return s.periodDetail(ctx, req.ID)
}

// Recalculate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Recalculate(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	if err := s.recomputePeriodTotals(ctx, id); err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodResponse{}, err
	}

	return s.periodDetail(ctx, id)
}

// UpdateStatus implements payroll.PayrollService. The workflow moves
// forward only, one hop at a time.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodResponse{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	next := payroll.PeriodStatus(req.Status)
	if !period.Status.CanTransitionTo(next) {
		return payroll.PeriodResponse{}, payroll.ErrInvalidStatusTransition
	}

	if err := s.payrollRepo.UpdateStatus(ctx, req.ID, next); err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to update payroll status: %w", err)
	}

	return s.periodDetail(ctx, req.ID)
}

// DeletePeriod implements payroll.PayrollService. Incentive and
// deduction rows cascade with the period row; paid periods are refused.
func (s *PayrollServiceImpl) DeletePeriod(ctx context.Context, id string) error {
	err := s.payrollRepo.DeletePeriod(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) || errors.Is(err, payroll.ErrCannotDeletePaidPeriod) {
			return err
		}
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}

	return nil
}

// ========== DEDUCTIONS ==========

// UpsertDeduction implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertDeduction(ctx context.Context, req payroll.UpsertDeductionRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	if _, err := s.payrollRepo.GetPeriodByID(ctx, req.PayrollID); err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodResponse{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.payrollRepo.UpsertDeduction(txCtx, payroll.Deduction{
			PayrollID:     req.PayrollID,
			DeductionType: req.DeductionType,
			Amount:        req.Amount,
			Notes:         req.Notes,
		}); err != nil {
			return fmt.Errorf("failed to upsert deduction: %w", err)
		}

		return s.recomputePeriodTotals(txCtx, req.PayrollID)
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return s.periodDetail(ctx, req.PayrollID)
}

// DeleteDeduction implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteDeduction(ctx context.Context, payrollID, deductionType string) (payroll.PeriodResponse, error) {
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payrollRepo.DeleteDeduction(txCtx, payrollID, deductionType); err != nil {
			return err
		}

		return s.recomputePeriodTotals(txCtx, payrollID)
	})
	if err != nil {
		if errors.Is(err, payroll.ErrDeductionNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrDeductionNotFound
		}
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodResponse{}, err
	}

	return s.periodDetail(ctx, payrollID)
}

// ========== FIXED DEDUCTIONS ==========

// CreateFixedDeduction implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateFixedDeduction(ctx context.Context, req payroll.CreateFixedDeductionRequest) (payroll.FixedDeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.FixedDeductionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.FixedDeductionResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.FixedDeductionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.payrollRepo.CreateFixedDeduction(ctx, payroll.FixedDeduction{
		EmployeeID:    req.EmployeeID,
		DeductionType: req.DeductionType,
		Amount:        req.Amount,
		Category:      payroll.DeductionCategory(req.Category),
		IsActive:      true,
	})
	if err != nil {
		return payroll.FixedDeductionResponse{}, fmt.Errorf("failed to create fixed deduction: %w", err)
	}

	return mapFixedDeductionToResponse(created), nil
}

// ListFixedDeductions implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListFixedDeductions(ctx context.Context, employeeID string) ([]payroll.FixedDeductionResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	fixed, err := s.payrollRepo.ListFixedDeductionsByEmployeeID(ctx, employeeID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed deductions: %w", err)
	}

	result := make([]payroll.FixedDeductionResponse, 0, len(fixed))
	for _, f := range fixed {
		result = append(result, mapFixedDeductionToResponse(f))
	}

	return result, nil
}

// UpdateFixedDeduction implements payroll.PayrollService. Template
// changes apply to future periods only; deduction rows already seeded
// on existing periods are untouched.
func (s *PayrollServiceImpl) UpdateFixedDeduction(ctx context.Context, req payroll.UpdateFixedDeductionRequest) (payroll.FixedDeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.FixedDeductionResponse{}, err
	}

	if err := s.payrollRepo.UpdateFixedDeduction(ctx, req); err != nil {
		if errors.Is(err, payroll.ErrFixedDeductionNotFound) {
			return payroll.FixedDeductionResponse{}, payroll.ErrFixedDeductionNotFound
		}
		return payroll.FixedDeductionResponse{}, fmt.Errorf("failed to update fixed deduction: %w", err)
	}

	updated, err := s.payrollRepo.GetFixedDeductionByID(ctx, req.ID)
	if err != nil {
		return payroll.FixedDeductionResponse{}, fmt.Errorf("failed to get updated fixed deduction: %w", err)
	}

	return mapFixedDeductionToResponse(updated), nil
}

// DeleteFixedDeduction implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteFixedDeduction(ctx context.Context, id string) error {
	err := s.payrollRepo.DeleteFixedDeduction(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrFixedDeductionNotFound) {
			return payroll.ErrFixedDeductionNotFound
		}
		return fmt.Errorf("failed to delete fixed deduction: %w", err)
	}

	return nil
}

// ========== HELPERS ==========

// periodDetail loads a period with its children and maps it.
func (s *PayrollServiceImpl) periodDetail(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.PeriodResponse{}, payroll.ErrPeriodNotFound
		}
		return payroll.PeriodResponse{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	incentives, err := s.payrollRepo.ListIncentives(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to list incentives: %w", err)
	}
	deductions, err := s.payrollRepo.ListDeductions(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to list deductions: %w", err)
	}

	return mapPeriodToResponse(period, incentives, deductions), nil
}

// recomputePeriodTotals reloads the period with its children and persists
// freshly derived totals.
func (s *PayrollServiceImpl) recomputePeriodTotals(ctx context.Context, payrollID string) error {
	period, err := s.payrollRepo.GetPeriodByID(ctx, payrollID)
	if err != nil {
		return fmt.Errorf("failed to get payroll period: %w", err)
	}
	incentives, err := s.payrollRepo.ListIncentives(ctx, payrollID)
	if err != nil {
		return fmt.Errorf("failed to list incentives: %w", err)
	}
	deductions, err := s.payrollRepo.ListDeductions(ctx, payrollID)
	if err != nil {
		return fmt.Errorf("failed to list deductions: %w", err)
	}

	totals := payroll.ComputeTotals(period, incentives, deductions, s.overtimeMultiplier)
	if err := s.payrollRepo.UpdateTotals(ctx, payrollID, totals); err != nil {
		return fmt.Errorf("failed to update period totals: %w", err)
	}

	return nil
}

func applyTotals(period *payroll.PayrollPeriod, totals payroll.PeriodTotals) {
	period.TotalDaysPresent = totals.TotalDaysPresent
	period.BasicPay = totals.BasicPay
	period.HolidayPay = totals.HolidayPay
	period.OvertimePay = totals.OvertimePay
	period.TotalIncentives = totals.TotalIncentives
	period.TotalDeductions = totals.TotalDeductions
	period.LateDeduction = totals.LateDeduction
	period.GrossPay = totals.GrossPay
	period.NetPay = totals.NetPay
}

func decimalOrZero(v *decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return decimal.Zero
}

func mapPeriodToResponse(p payroll.PayrollPeriod, incentives []payroll.Incentive, deductions []payroll.Deduction) payroll.PeriodResponse {
	resp := payroll.PeriodResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		EmployeeCode:     p.EmployeeCode,
		Position:         p.Position,
		BranchID:         p.BranchID,
		BranchName:       p.BranchName,
		StartDate:        p.StartDate.Format("2006-01-02"),
		EndDate:          p.EndDate.Format("2006-01-02"),
		WorkingDays:      p.WorkingDays,
		DayOff:           p.DayOff,
		Absences:         p.Absences,
		TotalDaysPresent: p.TotalDaysPresent,
		Holidays:         p.Holidays,
		OvertimeHours:    p.OvertimeHours,
		LateMinutes:      p.LateMinutes,
		MealAllowance:    p.MealAllowance,
		SilPay:           p.SilPay,
		BirthdayLeave:    p.BirthdayLeave,
		DeductionDivisor: p.DeductionDivisor,
		RatePerDay:       p.RatePerDay,
		RatePerHour:      p.RatePerHour,
		BasicPay:         p.BasicPay,
		HolidayPay:       p.HolidayPay,
		OvertimePay:      p.OvertimePay,
		TotalIncentives:  p.TotalIncentives,
		TotalDeductions:  p.TotalDeductions,
		LateDeduction:    p.LateDeduction,
		GrossPay:         p.GrossPay,
		NetPay:           p.NetPay,
		Status:           string(p.Status),
	}

	for _, inc := range incentives {
		resp.Incentives = append(resp.Incentives, mapIncentiveToResponse(inc))
	}
	for _, d := range deductions {
		resp.Deductions = append(resp.Deductions, payroll.DeductionResponse{
			ID:            d.ID,
			PayrollID:     d.PayrollID,
			DeductionType: d.DeductionType,
			Amount:        d.Amount,
			Notes:         d.Notes,
		})
	}

	return resp
}

func mapIncentiveToResponse(inc payroll.Incentive) payroll.IncentiveResponse {
	var dateEarned *string
	if inc.DateEarned != nil {
		str := inc.DateEarned.Format("2006-01-02")
		dateEarned = &str
	}

	return payroll.IncentiveResponse{
		ID:            inc.ID,
		PayrollID:     inc.PayrollID,
		IncentiveType: inc.IncentiveType,
		InputCount:    inc.InputCount,
		Rate:          inc.Rate,
		Amount:        inc.Amount,
		Formula:       inc.Formula,
		DateEarned:    dateEarned,
	}
}

func mapFixedDeductionToResponse(f payroll.FixedDeduction) payroll.FixedDeductionResponse {
	return payroll.FixedDeductionResponse{
		ID:            f.ID,
		EmployeeID:    f.EmployeeID,
		DeductionType: f.DeductionType,
		Amount:        f.Amount,
		Category:      string(f.Category),
		IsActive:      f.IsActive,
	}
}
