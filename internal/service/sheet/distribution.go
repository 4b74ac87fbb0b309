package sheet

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/fixtures"
	"github.com/primovet/vetpay-backend-go/internal/pkg/money"
	"github.com/primovet/vetpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// Distribute implements sheet.SheetService. Each distribution rule takes the
// sheet total of its source type, multiplies by the derived type's rate, and
// divides among the active branch employees in the division set. The per
// person share is upserted onto the payroll period matching the sheet range
// of every receiving employee; receivers without such a period are reported
// in the outcome. All writes, the totals recomputation of every touched
// period included, run in one transaction.
func (s *SheetServiceImpl) Distribute(ctx context.Context, sheetID string) (sheet.DistributeResponse, error) {
	sh, err := s.sheetRepo.GetByID(ctx, sheetID)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			return sheet.DistributeResponse{}, sheet.ErrSheetNotFound
		}
		return sheet.DistributeResponse{}, fmt.Errorf("failed to get sheet: %w", err)
	}

	typeTotals, err := s.inputRepo.TotalsBySheetID(ctx, sh.ID)
	if err != nil {
		return sheet.DistributeResponse{}, fmt.Errorf("failed to total daily inputs: %w", err)
	}
	totalBySource := make(map[string]decimal.Decimal, len(typeTotals))
	for _, total := range typeTotals {
		totalBySource[total.IncentiveType] = total.Total
	}

	roster, err := s.employeeRepo.GetActiveByBranchID(ctx, sh.BranchID)
	if err != nil {
		return sheet.DistributeResponse{}, fmt.Errorf("failed to list branch employees: %w", err)
	}
	rosterIDs := make([]string, 0, len(roster))
	for _, emp := range roster {
		rosterIDs = append(rosterIDs, emp.ID)
	}

	exclusions, err := s.exclusionRepo.ListByEmployeeIDs(ctx, rosterIDs)
	if err != nil {
		return sheet.DistributeResponse{}, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}
	excluded := make(map[string]map[string]bool)
	for _, ex := range exclusions {
		if excluded[ex.EmployeeID] == nil {
			excluded[ex.EmployeeID] = make(map[string]bool)
		}
		excluded[ex.EmployeeID][ex.IncentiveType] = true
	}

	periods, err := s.payrollRepo.GetPeriodsByEmployeeIDsAndRange(ctx, rosterIDs, sh.StartDate, sh.EndDate)
	if err != nil {
		return sheet.DistributeResponse{}, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	periodByEmployee := make(map[string]string, len(periods))
	for _, period := range periods {
		periodByEmployee[period.EmployeeID] = period.ID
	}

	outcomes := make([]sheet.RuleOutcome, 0)
	touched := make(map[string]bool)
	var upserts []payroll.Incentive

	for _, rule := range fixtures.GetDefaultDistributionRules() {
		total, ok := totalBySource[rule.SourceType]
		if !ok || total.IsZero() {
			continue
		}

		config, found, err := s.derivedConfig(ctx, rule.DerivedType)
		if err != nil {
			return sheet.DistributeResponse{}, err
		}
		if !found || !config.IsActive || !config.FormulaType.IsValid() {
			continue
		}

		receivingSet := make(map[string]bool)
		for _, key := range config.ReceivingPositions {
			receivingSet[key] = true
		}
		divisionSet := make(map[string]bool)
		for _, key := range config.EffectiveDivisionPositions() {
			divisionSet[key] = true
		}

		// An exclusion drops the employee from both sets of this type.
		divisionCount := 0
		var receiverIdx []int
		for i, emp := range roster {
			if excluded[emp.ID][rule.DerivedType] {
				continue
			}
			if divisionSet[string(emp.Position)] {
				divisionCount++
			}
			if receivingSet[string(emp.Position)] {
				receiverIdx = append(receiverIdx, i)
			}
		}

		divisor := divisionCount
		if divisor < 1 {
			divisor = 1
		}

		totalPay := total.Mul(config.Rate).Round(2)
		perPerson := total.Mul(config.Rate).Div(decimal.NewFromInt(int64(divisor))).Round(2)
		trace := distributionTrace(config, total, perPerson, divisor)

		outcome := sheet.RuleOutcome{
			SourceType:    rule.SourceType,
			DerivedType:   rule.DerivedType,
			Total:         total,
			Rate:          config.Rate,
			DivisionCount: divisor,
			TotalPay:      totalPay,
			PerPerson:     perPerson,
			Formula:       trace,
		}

		for _, i := range receiverIdx {
			emp := roster[i]
			periodID, ok := periodByEmployee[emp.ID]
			if !ok {
				outcome.SkippedNoPeriod = append(outcome.SkippedNoPeriod, emp.FullName)
				continue
			}
			upserts = append(upserts, payroll.Incentive{
				PayrollID:     periodID,
				IncentiveType: rule.DerivedType,
				InputCount:    total,
				Rate:          config.Rate,
				Amount:        perPerson,
				Formula:       trace,
			})
			touched[periodID] = true
			outcome.AppliedTo++
		}

		outcomes = append(outcomes, outcome)
	}

	touchedIDs := make([]string, 0, len(touched))
	for id := range touched {
		touchedIDs = append(touchedIDs, id)
	}
	sort.Strings(touchedIDs)

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, row := range upserts {
			if _, err := s.payrollRepo.UpsertIncentive(txCtx, row); err != nil {
				return fmt.Errorf("failed to upsert distributed incentive: %w", err)
			}
		}
		for _, periodID := range touchedIDs {
			if err := s.recomputePeriodTotals(txCtx, periodID); err != nil {
				return err
			}
		}

		return s.sheetRepo.SetDistributed(txCtx, sh.ID, true)
	})
	if err != nil {
		return sheet.DistributeResponse{}, err
	}

	return sheet.DistributeResponse{
		SheetID:        sh.ID,
		Outcomes:       outcomes,
		PeriodsTouched: len(touchedIDs),
		IsDistributed:  true,
	}, nil
}

// derivedConfig resolves a derived type's effective config: override first,
// compiled-in default second. found is false for unknown type codes.
func (s *SheetServiceImpl) derivedConfig(ctx context.Context, typeCode string) (incentive.IncentiveConfig, bool, error) {
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

func distributionTrace(config incentive.IncentiveConfig, total, perPerson decimal.Decimal, divisor int) string {
	var left string
	switch config.FormulaType {
	case incentive.FormulaTypeCountMultiply:
		left = fmt.Sprintf("%s × %s", money.Count(total), money.Rate(config.Rate))
	case incentive.FormulaTypePercent:
		left = fmt.Sprintf("%s × %s", money.Pesos(total), money.Percent(config.Rate))
	default:
		return ""
	}

	if divisor > 1 {
		return fmt.Sprintf("%s ÷ %d = %s", left, divisor, money.Pesos(perPerson))
	}
	return fmt.Sprintf("%s = %s", left, money.Pesos(perPerson))
}
