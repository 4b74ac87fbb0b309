package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/domain/report"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/fixtures"
	"github.com/primovet/vetpay-backend-go/internal/pkg/storage"
)

type ReportServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	sheetRepo   sheet.SheetRepository
	inputRepo   sheet.DailyInputRepository
	configRepo  incentive.IncentiveConfigRepository
	reportRepo  report.ReportRepository
	store       storage.FileStore
}

func NewReportService(
	payrollRepo payroll.PayrollRepository,
	sheetRepo sheet.SheetRepository,
	inputRepo sheet.DailyInputRepository,
	configRepo incentive.IncentiveConfigRepository,
	reportRepo report.ReportRepository,
	store storage.FileStore,
) report.ReportService {
	return &ReportServiceImpl{
		payrollRepo: payrollRepo,
		sheetRepo:   sheetRepo,
		inputRepo:   inputRepo,
		configRepo:  configRepo,
		reportRepo:  reportRepo,
		store:       store,
	}
}

// PayrollRegister implements report.ReportService. Only periods lying
// entirely inside the requested range are included; each period is one
// row, so an employee with two periods in the range appears twice but
// counts once toward TotalEmployees.
func (s *ReportServiceImpl) PayrollRegister(ctx context.Context, req report.PayrollRegisterRequest) (report.PayrollRegisterReport, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollRegisterReport{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	rows, err := s.reportRepo.GetPayrollRegister(ctx, req.BranchID, startDate, endDate)
	if err != nil {
		return report.PayrollRegisterReport{}, fmt.Errorf("failed to get register rows: %w", err)
	}
	if len(rows) == 0 {
		return report.PayrollRegisterReport{}, report.ErrNoDataFound
	}

	out := report.PayrollRegisterReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BranchID:    req.BranchID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        make([]report.RegisterRow, 0, len(rows)),
	}

	// Grand total deductions fold the late deduction in so that
	// gross - deductions = net holds across the register.
	seen := make(map[string]bool)
	for _, row := range rows {
		row.Position = employee.Position(row.Position).DisplayName()
		out.Rows = append(out.Rows, row)

		seen[row.EmployeeID] = true
		out.TotalGrossPay = out.TotalGrossPay.Add(row.GrossPay)
		out.TotalIncentives = out.TotalIncentives.Add(row.TotalIncentives)
		out.TotalDeductions = out.TotalDeductions.Add(row.TotalDeductions).Add(row.LateDeduction)
		out.TotalNetPay = out.TotalNetPay.Add(row.NetPay)
	}
	out.TotalEmployees = len(seen)
	out.TotalGrossPay = out.TotalGrossPay.Round(2)
	out.TotalIncentives = out.TotalIncentives.Round(2)
	out.TotalDeductions = out.TotalDeductions.Round(2)
	out.TotalNetPay = out.TotalNetPay.Round(2)

	return out, nil
}

// ========== HELPERS ==========

// effectiveTypeConfig resolves an incentive type's effective config:
// override first, compiled-in default second. found is false for unknown
// type codes.
func (s *ReportServiceImpl) effectiveTypeConfig(ctx context.Context, typeCode string) (incentive.IncentiveConfig, bool, error) {
	override, err := s.configRepo.GetByTypeCode(ctx, typeCode)
	if err == nil {
		return override, true, nil
	}
	if !errors.Is(err, incentive.ErrConfigNotFound) {
		return incentive.IncentiveConfig{}, false, fmt.Errorf("failed to get config override: %w", err)
	}

	if def, ok := fixtures.GetDefaultIncentiveConfig(typeCode); ok {
		return def, true, nil
	}

	return incentive.IncentiveConfig{}, false, nil
}
