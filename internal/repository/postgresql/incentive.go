package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
)

type incentiveConfigRepositoryImpl struct {
	db *database.DB
}

func NewIncentiveConfigRepository(db *database.DB) incentive.IncentiveConfigRepository {
	return &incentiveConfigRepositoryImpl{db: db}
}

// Upsert implements incentive.IncentiveConfigRepository. A stored row is an
// override of the compiled-in default for the same type code, so a second
// upsert replaces the first wholesale.
func (r *incentiveConfigRepositoryImpl) Upsert(ctx context.Context, config incentive.IncentiveConfig) (incentive.IncentiveConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO incentive_configs (
			id, type_code, display_name, rate, formula_type,
			receiving_positions, division_positions, is_shared, pool_in_calculator,
			sort_order, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, NOW(), NOW()
		)
		ON CONFLICT (type_code) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			rate = EXCLUDED.rate,
			formula_type = EXCLUDED.formula_type,
			receiving_positions = EXCLUDED.receiving_positions,
			division_positions = EXCLUDED.division_positions,
			is_shared = EXCLUDED.is_shared,
			pool_in_calculator = EXCLUDED.pool_in_calculator,
			sort_order = EXCLUDED.sort_order,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id, type_code, display_name, rate, formula_type,
			receiving_positions, division_positions, is_shared, pool_in_calculator,
			sort_order, is_active, created_at, updated_at
	`

	var saved incentive.IncentiveConfig
	err := q.QueryRow(ctx, query,
		config.TypeCode, config.DisplayName, config.Rate, config.FormulaType,
		config.ReceivingPositions, config.DivisionPositions, config.IsShared, config.PoolInCalculator,
		config.SortOrder, config.IsActive,
	).Scan(
		&saved.ID, &saved.TypeCode, &saved.DisplayName, &saved.Rate, &saved.FormulaType,
		&saved.ReceivingPositions, &saved.DivisionPositions, &saved.IsShared, &saved.PoolInCalculator,
		&saved.SortOrder, &saved.IsActive, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return incentive.IncentiveConfig{}, fmt.Errorf("failed to upsert incentive config: %w", err)
	}

	saved.IsOverride = true

	return saved, nil
}

// GetByTypeCode implements incentive.IncentiveConfigRepository.
func (r *incentiveConfigRepositoryImpl) GetByTypeCode(ctx context.Context, typeCode string) (incentive.IncentiveConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type_code, display_name, rate, formula_type,
			   receiving_positions, division_positions, is_shared, pool_in_calculator,
			   sort_order, is_active, created_at, updated_at
		FROM incentive_configs
		WHERE type_code = $1
	`

	var config incentive.IncentiveConfig
	err := q.QueryRow(ctx, query, typeCode).Scan(
		&config.ID, &config.TypeCode, &config.DisplayName, &config.Rate, &config.FormulaType,
		&config.ReceivingPositions, &config.DivisionPositions, &config.IsShared, &config.PoolInCalculator,
		&config.SortOrder, &config.IsActive, &config.CreatedAt, &config.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return incentive.IncentiveConfig{}, incentive.ErrConfigNotFound
		}
		return incentive.IncentiveConfig{}, fmt.Errorf("failed to get incentive config: %w", err)
	}

	config.IsOverride = true

	return config, nil
}

// List implements incentive.IncentiveConfigRepository.
func (r *incentiveConfigRepositoryImpl) List(ctx context.Context) ([]incentive.IncentiveConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type_code, display_name, rate, formula_type,
			   receiving_positions, division_positions, is_shared, pool_in_calculator,
			   sort_order, is_active, created_at, updated_at
		FROM incentive_configs
		ORDER BY sort_order ASC, type_code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive configs: %w", err)
	}
	defer rows.Close()

	var configs []incentive.IncentiveConfig
	for rows.Next() {
		var config incentive.IncentiveConfig
		if err := rows.Scan(
			&config.ID, &config.TypeCode, &config.DisplayName, &config.Rate, &config.FormulaType,
			&config.ReceivingPositions, &config.DivisionPositions, &config.IsShared, &config.PoolInCalculator,
			&config.SortOrder, &config.IsActive, &config.CreatedAt, &config.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan incentive config: %w", err)
		}
		config.IsOverride = true
		configs = append(configs, config)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return configs, nil
}

// DeleteByTypeCode implements incentive.IncentiveConfigRepository. Removing
// the override row restores the compiled-in default.
func (r *incentiveConfigRepositoryImpl) DeleteByTypeCode(ctx context.Context, typeCode string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM incentive_configs WHERE type_code = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, typeCode).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return incentive.ErrConfigNotFound
		}
		return fmt.Errorf("failed to delete incentive config: %w", err)
	}

	return nil
}

type incentiveExclusionRepositoryImpl struct {
	db *database.DB
}

func NewIncentiveExclusionRepository(db *database.DB) incentive.IncentiveExclusionRepository {
	return &incentiveExclusionRepositoryImpl{db: db}
}

// ListByEmployeeID implements incentive.IncentiveExclusionRepository.
func (r *incentiveExclusionRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]incentive.IncentiveExclusion, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, incentive_type, created_at
		FROM incentive_exclusions
		WHERE employee_id = $1
		ORDER BY incentive_type ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}
	defer rows.Close()

	var exclusions []incentive.IncentiveExclusion
	for rows.Next() {
		var ex incentive.IncentiveExclusion
		if err := rows.Scan(&ex.ID, &ex.EmployeeID, &ex.IncentiveType, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incentive exclusion: %w", err)
		}
		exclusions = append(exclusions, ex)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exclusions, nil
}

// ListByEmployeeIDs implements incentive.IncentiveExclusionRepository.
func (r *incentiveExclusionRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]incentive.IncentiveExclusion, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, incentive_type, created_at
		FROM incentive_exclusions
		WHERE employee_id = ANY($1)
		ORDER BY employee_id ASC, incentive_type ASC
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive exclusions: %w", err)
	}
	defer rows.Close()

	var exclusions []incentive.IncentiveExclusion
	for rows.Next() {
		var ex incentive.IncentiveExclusion
		if err := rows.Scan(&ex.ID, &ex.EmployeeID, &ex.IncentiveType, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incentive exclusion: %w", err)
		}
		exclusions = append(exclusions, ex)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exclusions, nil
}

// Replace implements incentive.IncentiveExclusionRepository. The stored set
// for the employee is replaced with the given one in a single statement pair,
// so callers should run it inside a transaction.
func (r *incentiveExclusionRepositoryImpl) Replace(ctx context.Context, employeeID string, incentiveTypes []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM incentive_exclusions WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to clear incentive exclusions: %w", err)
	}

	if len(incentiveTypes) == 0 {
		return nil
	}

	query := `
		INSERT INTO incentive_exclusions (id, employee_id, incentive_type, created_at)
		SELECT uuidv7(), $1, unnest($2::text[]), NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, incentiveTypes); err != nil {
		return fmt.Errorf("failed to insert incentive exclusions: %w", err)
	}

	return nil
}
