package incentive

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/fixtures"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
	"github.com/primovet/vetpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type IncentiveServiceImpl struct {
	db                 *database.DB
	configRepo         incentive.IncentiveConfigRepository
	exclusionRepo      incentive.IncentiveExclusionRepository
	payrollRepo        payroll.PayrollRepository
	employeeRepo       employee.EmployeeRepository
	overtimeMultiplier decimal.Decimal
}

func NewIncentiveService(
	db *database.DB,
	configRepo incentive.IncentiveConfigRepository,
	exclusionRepo incentive.IncentiveExclusionRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	overtimeMultiplier decimal.Decimal,
) incentive.IncentiveService {
	return &IncentiveServiceImpl{
		db:                 db,
		configRepo:         configRepo,
		exclusionRepo:      exclusionRepo,
		payrollRepo:        payrollRepo,
		employeeRepo:       employeeRepo,
		overtimeMultiplier: overtimeMultiplier,
	}
}

// ========== CONFIGS ==========

// ListConfigs implements incentive.IncentiveService.
func (s *IncentiveServiceImpl) ListConfigs(ctx context.Context) ([]incentive.IncentiveConfigResponse, error) {
	configs, err := s.effectiveConfigs(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]incentive.IncentiveConfigResponse, 0, len(configs))
	for _, config := range configs {
		responses = append(responses, mapConfigToResponse(config))
	}

	return responses, nil
}

// GetConfig implements incentive.IncentiveService.
func (s *IncentiveServiceImpl) GetConfig(ctx context.Context, typeCode string) (incentive.IncentiveConfigResponse, error) {
	config, err := s.effectiveConfig(ctx, typeCode)
	if err != nil {
		return incentive.IncentiveConfigResponse{}, err
	}

	return mapConfigToResponse(config), nil
}

// UpsertConfig implements incentive.IncentiveService. Omitted fields inherit
// from the current effective config, so a partial request only moves the
// fields it names. An unknown type code starts a new custom type.
func (s *IncentiveServiceImpl) UpsertConfig(ctx context.Context, req incentive.UpsertIncentiveConfigRequest) (incentive.IncentiveConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return incentive.IncentiveConfigResponse{}, err
	}

	base, err := s.effectiveConfig(ctx, req.TypeCode)
	if err != nil {
		if !errors.Is(err, incentive.ErrUnknownTypeCode) {
			return incentive.IncentiveConfigResponse{}, err
		}
		base = incentive.IncentiveConfig{
			TypeCode:    req.TypeCode,
			DisplayName: req.TypeCode,
			FormulaType: incentive.FormulaTypeCountMultiply,
			IsActive:    true,
		}
	}

	merged := base
	if req.DisplayName != nil {
		merged.DisplayName = *req.DisplayName
	}
	if req.Rate != nil {
		merged.Rate = *req.Rate
	}
	if req.FormulaType != nil {
		merged.FormulaType = incentive.FormulaType(*req.FormulaType)
	}
	if req.ReceivingPositions != nil {
		merged.ReceivingPositions = req.ReceivingPositions
	}
	if req.DivisionPositions != nil {
		merged.DivisionPositions = req.DivisionPositions
	}
	if req.IsShared != nil {
		merged.IsShared = *req.IsShared
	}
	if req.PoolInCalculator != nil {
		merged.PoolInCalculator = *req.PoolInCalculator
	}
	if req.SortOrder != nil {
		merged.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		merged.IsActive = *req.IsActive
	}
	if merged.DisplayName == "" {
		merged.DisplayName = merged.TypeCode
	}

	for _, key := range merged.ReceivingPositions {
		if !employee.Position(key).IsValid() {
			return incentive.IncentiveConfigResponse{}, incentive.ErrInvalidPositionKey
		}
	}
	for _, key := range merged.DivisionPositions {
		if !employee.Position(key).IsValid() {
			return incentive.IncentiveConfigResponse{}, incentive.ErrInvalidPositionKey
		}
	}

	saved, err := s.configRepo.Upsert(ctx, merged)
	if err != nil {
		return incentive.IncentiveConfigResponse{}, fmt.Errorf("failed to upsert incentive config: %w", err)
	}

	return mapConfigToResponse(saved), nil
}

// ResetConfig implements incentive.IncentiveService. Only type codes with a
// compiled-in default can be reset; custom types are retired by upserting
// is_active false instead.
func (s *IncentiveServiceImpl) ResetConfig(ctx context.Context, typeCode string) (incentive.IncentiveConfigResponse, error) {
	def, ok := fixtures.GetDefaultIncentiveConfig(typeCode)
	if !ok {
		return incentive.IncentiveConfigResponse{}, incentive.ErrUnknownTypeCode
	}

	if err := s.configRepo.DeleteByTypeCode(ctx, typeCode); err != nil && !errors.Is(err, incentive.ErrConfigNotFound) {
		return incentive.IncentiveConfigResponse{}, fmt.Errorf("failed to delete config override: %w", err)
	}

	return mapConfigToResponse(def), nil
}

// ========== EXCLUSIONS ==========

// ListExclusions implements incentive.IncentiveService.
func (s *IncentiveServiceImpl) ListExclusions(ctx context.Context, employeeID string) ([]incentive.IncentiveExclusionResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	exclusions, err := s.exclusionRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}

	return mapExclusionsToResponses(exclusions), nil
}

// ReplaceExclusions implements incentive.IncentiveService. The stored set is
// replaced wholesale; every listed type must exist in the effective config.
func (s *IncentiveServiceImpl) ReplaceExclusions(ctx context.Context, req incentive.ReplaceExclusionsRequest) ([]incentive.IncentiveExclusionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	configs, err := s.effectiveConfigs(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(configs))
	for _, config := range configs {
		known[config.TypeCode] = true
	}

	seen := make(map[string]bool, len(req.IncentiveTypes))
	types := make([]string, 0, len(req.IncentiveTypes))
	for _, code := range req.IncentiveTypes {
		if !known[code] {
			return nil, incentive.ErrExclusionNotAllowed
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		types = append(types, code)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.exclusionRepo.Replace(txCtx, req.EmployeeID, types)
	})
	if err != nil {
		return nil, err
	}

	exclusions, err := s.exclusionRepo.ListByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}

	return mapExclusionsToResponses(exclusions), nil
}

// ========== CALCULATOR ==========

// Apply implements incentive.IncentiveService. The employee must hold a
// receiving position for the type and must not be excluded from it. The
// incentive row is upserted and the period totals recomputed in one
// transaction.
func (s *IncentiveServiceImpl) Apply(ctx context.Context, req incentive.ApplyIncentiveRequest) (incentive.AppliedIncentiveResponse, error) {
	if err := req.Validate(); err != nil {
		return incentive.AppliedIncentiveResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, req.PayrollID)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return incentive.AppliedIncentiveResponse{}, payroll.ErrPeriodNotFound
		}
		return incentive.AppliedIncentiveResponse{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	config, err := s.effectiveConfig(ctx, req.TypeCode)
	if err != nil {
		return incentive.AppliedIncentiveResponse{}, err
	}
	if !config.IsActive {
		return incentive.AppliedIncentiveResponse{}, incentive.ErrInactiveTypeCode
	}

	emp, err := s.employeeRepo.GetByID(ctx, period.EmployeeID)
	if err != nil {
		return incentive.AppliedIncentiveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	receiving := false
	for _, key := range config.ReceivingPositions {
		if key == string(emp.Position) {
			receiving = true
			break
		}
	}
	if !receiving {
		return incentive.AppliedIncentiveResponse{}, incentive.ErrPositionNotEligible
	}

	exclusions, err := s.exclusionRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return incentive.AppliedIncentiveResponse{}, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}
	for _, ex := range exclusions {
		if ex.IncentiveType == config.TypeCode {
			return incentive.AppliedIncentiveResponse{}, incentive.ErrEmployeeExcluded
		}
	}

	numEligible := 1
	if config.PoolInCalculator && config.FormulaType == incentive.FormulaTypeCountMultiply {
		numEligible, err = s.countEligible(ctx, emp.BranchID, config)
		if err != nil {
			return incentive.AppliedIncentiveResponse{}, err
		}
	}

	count := decimal.Zero
	if req.Count != nil {
		count = *req.Count
	}
	inputValue := decimal.Zero
	if req.InputValue != nil {
		inputValue = *req.InputValue
	}

	amount, trace := computeFormula(config, count, inputValue, numEligible)

	inputCount := count
	if config.FormulaType == incentive.FormulaTypePercent {
		inputCount = inputValue
	}

	var dateEarned *time.Time
	if req.DateEarned != nil {
		parsed, parseErr := time.Parse("2006-01-02", *req.DateEarned)
		if parseErr == nil {
			dateEarned = &parsed
		}
	}

	var saved payroll.Incentive
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		upserted, err := s.payrollRepo.UpsertIncentive(txCtx, payroll.Incentive{
			PayrollID:     req.PayrollID,
			IncentiveType: config.TypeCode,
			InputCount:    inputCount,
			Rate:          config.Rate,
			Amount:        amount,
			Formula:       trace,
			DateEarned:    dateEarned,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert incentive: %w", err)
		}
		saved = upserted

		return s.recomputePeriodTotals(txCtx, req.PayrollID)
	})
	if err != nil {
		return incentive.AppliedIncentiveResponse{}, err
	}

	response := incentive.AppliedIncentiveResponse{
		PayrollID:     saved.PayrollID,
		IncentiveType: saved.IncentiveType,
		InputCount:    saved.InputCount,
		Rate:          saved.Rate,
		Amount:        saved.Amount,
		Formula:       saved.Formula,
	}
	if saved.DateEarned != nil {
		earned := saved.DateEarned.Format("2006-01-02")
		response.DateEarned = &earned
	}

	return response, nil
}

// Remove implements incentive.IncentiveService.
func (s *IncentiveServiceImpl) Remove(ctx context.Context, payrollID, typeCode string) error {
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payrollRepo.DeleteIncentive(txCtx, payrollID, typeCode); err != nil {
			return err
		}

		return s.recomputePeriodTotals(txCtx, payrollID)
	})
	if err != nil {
		if errors.Is(err, payroll.ErrIncentiveNotFound) {
			return payroll.ErrIncentiveNotFound
		}
		return err
	}

	return nil
}

// ========== HELPERS ==========

// effectiveConfigs merges the compiled-in defaults with persisted overrides.
// An override wins over the default for the same type code; overrides with
// no default are custom types and join the list as-is.
func (s *IncentiveServiceImpl) effectiveConfigs(ctx context.Context) ([]incentive.IncentiveConfig, error) {
	overrides, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list config overrides: %w", err)
	}

	overrideByCode := make(map[string]incentive.IncentiveConfig, len(overrides))
	for _, override := range overrides {
		overrideByCode[override.TypeCode] = override
	}

	defaults := fixtures.GetDefaultIncentiveConfigs()
	configs := make([]incentive.IncentiveConfig, 0, len(defaults)+len(overrides))
	seen := make(map[string]bool, len(defaults))
	for _, def := range defaults {
		if override, ok := overrideByCode[def.TypeCode]; ok {
			configs = append(configs, override)
		} else {
			configs = append(configs, def)
		}
		seen[def.TypeCode] = true
	}
	for _, override := range overrides {
		if !seen[override.TypeCode] {
			configs = append(configs, override)
		}
	}

	sort.SliceStable(configs, func(i, j int) bool {
		if configs[i].SortOrder != configs[j].SortOrder {
			return configs[i].SortOrder < configs[j].SortOrder
		}
		return configs[i].TypeCode < configs[j].TypeCode
	})

	return configs, nil
}

// effectiveConfig resolves one type code: override first, default second.
func (s *IncentiveServiceImpl) effectiveConfig(ctx context.Context, typeCode string) (incentive.IncentiveConfig, error) {
	override, err := s.configRepo.GetByTypeCode(ctx, typeCode)
	if err == nil {
		return override, nil
	}
	if !errors.Is(err, incentive.ErrConfigNotFound) {
		return incentive.IncentiveConfig{}, fmt.Errorf("failed to get config override: %w", err)
	}

	if def, ok := fixtures.GetDefaultIncentiveConfig(typeCode); ok {
		return def, nil
	}

	return incentive.IncentiveConfig{}, incentive.ErrUnknownTypeCode
}

// countEligible counts the active branch employees holding a division
// position for the type, minus those excluded from it. Never below one so
// pooled amounts stay defined.
func (s *IncentiveServiceImpl) countEligible(ctx context.Context, branchID string, config incentive.IncentiveConfig) (int, error) {
	roster, err := s.employeeRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return 0, fmt.Errorf("failed to list branch employees: %w", err)
	}

	divisionSet := make(map[string]bool)
	for _, key := range config.EffectiveDivisionPositions() {
		divisionSet[key] = true
	}

	ids := make([]string, 0, len(roster))
	for _, emp := range roster {
		ids = append(ids, emp.ID)
	}
	exclusions, err := s.exclusionRepo.ListByEmployeeIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}
	excluded := make(map[string]bool)
	for _, ex := range exclusions {
		if ex.IncentiveType == config.TypeCode {
			excluded[ex.EmployeeID] = true
		}
	}

	eligible := 0
	for _, emp := range roster {
		if divisionSet[string(emp.Position)] && !excluded[emp.ID] {
			eligible++
		}
	}
	if eligible < 1 {
		eligible = 1
	}

	return eligible, nil
}

// recomputePeriodTotals reloads the period with its children and persists
// freshly derived totals.
func (s *IncentiveServiceImpl) recomputePeriodTotals(ctx context.Context, payrollID string) error {
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

func mapConfigToResponse(config incentive.IncentiveConfig) incentive.IncentiveConfigResponse {
	receiving := config.ReceivingPositions
	if receiving == nil {
		receiving = []string{}
	}
	division := config.DivisionPositions
	if division == nil {
		division = []string{}
	}

	return incentive.IncentiveConfigResponse{
		TypeCode:           config.TypeCode,
		DisplayName:        config.DisplayName,
		Rate:               config.Rate,
		FormulaType:        string(config.FormulaType),
		ReceivingPositions: receiving,
		DivisionPositions:  division,
		IsShared:           config.IsShared,
		PoolInCalculator:   config.PoolInCalculator,
		SortOrder:          config.SortOrder,
		IsActive:           config.IsActive,
		IsOverride:         config.IsOverride,
	}
}

func mapExclusionsToResponses(exclusions []incentive.IncentiveExclusion) []incentive.IncentiveExclusionResponse {
	responses := make([]incentive.IncentiveExclusionResponse, 0, len(exclusions))
	for _, ex := range exclusions {
		responses = append(responses, incentive.IncentiveExclusionResponse{
			EmployeeID:    ex.EmployeeID,
			IncentiveType: ex.IncentiveType,
		})
	}
	return responses
}
