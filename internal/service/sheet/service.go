package sheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/domain/master/branch"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/fixtures"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
	"github.com/primovet/vetpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type SheetServiceImpl struct {
	db                 *database.DB
	sheetRepo          sheet.SheetRepository
	inputRepo          sheet.DailyInputRepository
	configRepo         incentive.IncentiveConfigRepository
	exclusionRepo      incentive.IncentiveExclusionRepository
	payrollRepo        payroll.PayrollRepository
	employeeRepo       employee.EmployeeRepository
	branchRepo         branch.BranchRepository
	overtimeMultiplier decimal.Decimal
}

func NewSheetService(
	db *database.DB,
	sheetRepo sheet.SheetRepository,
	inputRepo sheet.DailyInputRepository,
	configRepo incentive.IncentiveConfigRepository,
	exclusionRepo incentive.IncentiveExclusionRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	overtimeMultiplier decimal.Decimal,
) sheet.SheetService {
	return &SheetServiceImpl{
		db:                 db,
		sheetRepo:          sheetRepo,
		inputRepo:          inputRepo,
		configRepo:         configRepo,
		exclusionRepo:      exclusionRepo,
		payrollRepo:        payrollRepo,
		employeeRepo:       employeeRepo,
		branchRepo:         branchRepo,
		overtimeMultiplier: overtimeMultiplier,
	}
}

// CreateSheet implements sheet.SheetService.
func (s *SheetServiceImpl) CreateSheet(ctx context.Context, req sheet.CreateSheetRequest) (sheet.SheetResponse, error) {
	if err := req.Validate(); err != nil {
		return sheet.SheetResponse{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return sheet.SheetResponse{}, branch.ErrBranchNotFound
		}
		return sheet.SheetResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.sheetRepo.Create(ctx, sheet.IncentiveSheet{
		BranchID:  req.BranchID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		if errors.Is(err, sheet.ErrSheetAlreadyExists) {
			return sheet.SheetResponse{}, sheet.ErrSheetAlreadyExists
		}
		return sheet.SheetResponse{}, fmt.Errorf("failed to create sheet: %w", err)
	}

	// Get the full details with JOINs
	sh, err := s.sheetRepo.GetByID(ctx, created.ID)
	if err != nil {
		return sheet.SheetResponse{}, fmt.Errorf("failed to get created sheet: %w", err)
	}

	return mapSheetToResponse(sh), nil
}

// GetSheet implements sheet.SheetService.
func (s *SheetServiceImpl) GetSheet(ctx context.Context, id string) (sheet.SheetDetailResponse, error) {
	sh, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			return sheet.SheetDetailResponse{}, sheet.ErrSheetNotFound
		}
		return sheet.SheetDetailResponse{}, fmt.Errorf("failed to get sheet: %w", err)
	}

	return s.sheetDetail(ctx, sh)
}

// ListSheets implements sheet.SheetService.
func (s *SheetServiceImpl) ListSheets(ctx context.Context, filter sheet.SheetFilter) ([]sheet.SheetResponse, error) {
	sheets, err := s.sheetRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	responses := make([]sheet.SheetResponse, 0, len(sheets))
	for _, sh := range sheets {
		responses = append(responses, mapSheetToResponse(sh))
	}

	return responses, nil
}

// ApplyInputs implements sheet.SheetService. Every entry must land inside
// the sheet date range and name a shared source type. A zero value deletes
// the cell. Any write on an already distributed sheet resets the flag so the
// distribution can be re-run.
func (s *SheetServiceImpl) ApplyInputs(ctx context.Context, req sheet.ApplyInputsRequest) (sheet.SheetDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return sheet.SheetDetailResponse{}, err
	}

	sh, err := s.sheetRepo.GetByID(ctx, req.SheetID)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			return sheet.SheetDetailResponse{}, sheet.ErrSheetNotFound
		}
		return sheet.SheetDetailResponse{}, fmt.Errorf("failed to get sheet: %w", err)
	}

	sourceTypes := make(map[string]bool)
	for _, code := range fixtures.GetSheetSourceTypes() {
		sourceTypes[code] = true
	}

	type cell struct {
		date          time.Time
		incentiveType string
		value         decimal.Decimal
	}
	cells := make([]cell, 0, len(req.Entries))
	for _, entry := range req.Entries {
		date, _ := time.Parse("2006-01-02", entry.Date)
		if date.Before(sh.StartDate) || date.After(sh.EndDate) {
			return sheet.SheetDetailResponse{}, sheet.ErrDateOutOfRange
		}
		if !sourceTypes[entry.IncentiveType] {
			return sheet.SheetDetailResponse{}, sheet.ErrUnknownSourceType
		}
		cells = append(cells, cell{date: date, incentiveType: entry.IncentiveType, value: entry.Value})
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, c := range cells {
			if c.value.IsZero() {
				if err := s.inputRepo.Delete(txCtx, sh.ID, c.date, c.incentiveType); err != nil {
					return fmt.Errorf("failed to delete daily input: %w", err)
				}
				continue
			}
			if err := s.inputRepo.Upsert(txCtx, sheet.DailyIncentiveInput{
				SheetID:       sh.ID,
				Date:          c.date,
				IncentiveType: c.incentiveType,
				Value:         c.value,
			}); err != nil {
				return fmt.Errorf("failed to upsert daily input: %w", err)
			}
		}

		if sh.IsDistributed {
			if err := s.sheetRepo.SetDistributed(txCtx, sh.ID, false); err != nil {
				return fmt.Errorf("failed to reset distributed flag: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return sheet.SheetDetailResponse{}, err
	}

	updated, err := s.sheetRepo.GetByID(ctx, sh.ID)
	if err != nil {
		return sheet.SheetDetailResponse{}, fmt.Errorf("failed to get updated sheet: %w", err)
	}

	return s.sheetDetail(ctx, updated)
}

// DeleteSheet implements sheet.SheetService.
func (s *SheetServiceImpl) DeleteSheet(ctx context.Context, id string) error {
	sh, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			return sheet.ErrSheetNotFound
		}
		return fmt.Errorf("failed to get sheet: %w", err)
	}

	if sh.IsDistributed {
		return sheet.ErrSheetDistributed
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.inputRepo.DeleteBySheetID(txCtx, sh.ID); err != nil {
			return fmt.Errorf("failed to delete daily inputs: %w", err)
		}
		if err := s.sheetRepo.Delete(txCtx, sh.ID); err != nil {
			return fmt.Errorf("failed to delete sheet: %w", err)
		}

		return nil
	})
}

// ========== HELPERS ==========

func mapSheetToResponse(sh sheet.IncentiveSheet) sheet.SheetResponse {
	return sheet.SheetResponse{
		ID:            sh.ID,
		BranchID:      sh.BranchID,
		BranchName:    sh.BranchName,
		StartDate:     sh.StartDate.Format("2006-01-02"),
		EndDate:       sh.EndDate.Format("2006-01-02"),
		IsDistributed: sh.IsDistributed,
	}
}

func (s *SheetServiceImpl) sheetDetail(ctx context.Context, sh sheet.IncentiveSheet) (sheet.SheetDetailResponse, error) {
	inputs, err := s.inputRepo.ListBySheetID(ctx, sh.ID)
	if err != nil {
		return sheet.SheetDetailResponse{}, fmt.Errorf("failed to list daily inputs: %w", err)
	}
	totals, err := s.inputRepo.TotalsBySheetID(ctx, sh.ID)
	if err != nil {
		return sheet.SheetDetailResponse{}, fmt.Errorf("failed to total daily inputs: %w", err)
	}

	cells := make([]sheet.GridCell, 0, len(inputs))
	for _, input := range inputs {
		cells = append(cells, sheet.GridCell{
			Date:          input.Date.Format("2006-01-02"),
			IncentiveType: input.IncentiveType,
			Value:         input.Value,
		})
	}

	totalResponses := make([]sheet.TypeTotalResponse, 0, len(totals))
	for _, total := range totals {
		totalResponses = append(totalResponses, sheet.TypeTotalResponse{
			IncentiveType: total.IncentiveType,
			Total:         total.Total,
		})
	}

	return sheet.SheetDetailResponse{
		SheetResponse: mapSheetToResponse(sh),
		Cells:         cells,
		Totals:        totalResponses,
	}, nil
}

// recomputePeriodTotals reloads the period with its children and persists
// freshly derived totals.
func (s *SheetServiceImpl) recomputePeriodTotals(ctx context.Context, payrollID string) error {
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
