package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
)

type sheetRepositoryImpl struct {
	db *database.DB
}

func NewSheetRepository(db *database.DB) sheet.SheetRepository {
	return &sheetRepositoryImpl{db: db}
}

// Create implements sheet.SheetRepository.
func (r *sheetRepositoryImpl) Create(ctx context.Context, newSheet sheet.IncentiveSheet) (sheet.IncentiveSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO incentive_sheets (id, branch_id, start_date, end_date, is_distributed, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, false, NOW(), NOW())
		RETURNING id, branch_id, start_date, end_date, is_distributed, created_at, updated_at
	`

	var created sheet.IncentiveSheet
	err := q.QueryRow(ctx, query, newSheet.BranchID, newSheet.StartDate, newSheet.EndDate).Scan(
		&created.ID, &created.BranchID, &created.StartDate, &created.EndDate,
		&created.IsDistributed, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_sheet_branch_range") {
			return sheet.IncentiveSheet{}, sheet.ErrSheetAlreadyExists
		}
		return sheet.IncentiveSheet{}, fmt.Errorf("failed to create incentive sheet: %w", err)
	}

	return created, nil
}

// GetByID implements sheet.SheetRepository.
func (r *sheetRepositoryImpl) GetByID(ctx context.Context, id string) (sheet.IncentiveSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.branch_id, s.start_date, s.end_date, s.is_distributed,
			   s.created_at, s.updated_at, b.name as branch_name
		FROM incentive_sheets s
		LEFT JOIN branches b ON s.branch_id = b.id
		WHERE s.id = $1
	`

	var result sheet.IncentiveSheet
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.BranchID, &result.StartDate, &result.EndDate,
		&result.IsDistributed, &result.CreatedAt, &result.UpdatedAt, &result.BranchName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sheet.IncentiveSheet{}, sheet.ErrSheetNotFound
		}
		return sheet.IncentiveSheet{}, fmt.Errorf("failed to get incentive sheet: %w", err)
	}

	return result, nil
}

// GetByBranchRange implements sheet.SheetRepository.
func (r *sheetRepositoryImpl) GetByBranchRange(ctx context.Context, branchID string, startDate, endDate time.Time) (sheet.IncentiveSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, start_date, end_date, is_distributed, created_at, updated_at
		FROM incentive_sheets
		WHERE branch_id = $1 AND start_date = $2 AND end_date = $3
	`

	var result sheet.IncentiveSheet
	err := q.QueryRow(ctx, query, branchID, startDate, endDate).Scan(
		&result.ID, &result.BranchID, &result.StartDate, &result.EndDate,
		&result.IsDistributed, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sheet.IncentiveSheet{}, sheet.ErrSheetNotFound
		}
		return sheet.IncentiveSheet{}, fmt.Errorf("failed to get incentive sheet: %w", err)
	}

	return result, nil
}

// List implements sheet.SheetRepository.
func (r *sheetRepositoryImpl) List(ctx context.Context, filter sheet.SheetFilter) ([]sheet.IncentiveSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.branch_id, s.start_date, s.end_date, s.is_distributed,
			   s.created_at, s.updated_at, b.name as branch_name
		FROM incentive_sheets s
		LEFT JOIN branches b ON s.branch_id = b.id
	`
	args := []interface{}{}

	if filter.BranchID != nil {
		query += " WHERE s.branch_id = $1"
		args = append(args, *filter.BranchID)
	}

	query += " ORDER BY s.start_date DESC, b.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentive sheets: %w", err)
	}
	defer rows.Close()

	var sheets []sheet.IncentiveSheet
	for rows.Next() {
		var s sheet.IncentiveSheet
		if err := rows.Scan(
			&s.ID, &s.BranchID, &s.StartDate, &s.EndDate,
			&s.IsDistributed, &s.CreatedAt, &s.UpdatedAt, &s.BranchName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan incentive sheet: %w", err)
		}
		sheets = append(sheets, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sheets, nil
}

// SetDistributed implements sheet.SheetRepository.
func (r *sheetRepositoryImpl) SetDistributed(ctx context.Context, id string, distributed bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE incentive_sheets
		SET is_distributed = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, distributed, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sheet.ErrSheetNotFound
		}
		return fmt.Errorf("failed to set sheet distributed flag: %w", err)
	}

	return nil
}

// Delete implements sheet.SheetRepository. Callers delete the daily inputs
// first; see DailyInputRepository.DeleteBySheetID.
func (r *sheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM incentive_sheets WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sheet.ErrSheetNotFound
		}
		return fmt.Errorf("failed to delete incentive sheet: %w", err)
	}

	return nil
}

type dailyInputRepositoryImpl struct {
	db *database.DB
}

func NewDailyInputRepository(db *database.DB) sheet.DailyInputRepository {
	return &dailyInputRepositoryImpl{db: db}
}

// Upsert implements sheet.DailyInputRepository. One row per sheet, day, and
// source type; re-entering a cell overwrites its value.
func (r *dailyInputRepositoryImpl) Upsert(ctx context.Context, input sheet.DailyIncentiveInput) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_incentive_inputs (id, sheet_id, date, incentive_type, value, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (sheet_id, date, incentive_type) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, input.SheetID, input.Date, input.IncentiveType, input.Value); err != nil {
		return fmt.Errorf("failed to upsert daily input: %w", err)
	}

	return nil
}

// Delete implements sheet.DailyInputRepository. Missing cells are fine; a
// zero entry for a cell that was never stored is a no-op.
func (r *dailyInputRepositoryImpl) Delete(ctx context.Context, sheetID string, date time.Time, incentiveType string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_incentive_inputs WHERE sheet_id = $1 AND date = $2 AND incentive_type = $3`

	if _, err := q.Exec(ctx, query, sheetID, date, incentiveType); err != nil {
		return fmt.Errorf("failed to delete daily input: %w", err)
	}

	return nil
}

// ListBySheetID implements sheet.DailyInputRepository.
func (r *dailyInputRepositoryImpl) ListBySheetID(ctx context.Context, sheetID string) ([]sheet.DailyIncentiveInput, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, sheet_id, date, incentive_type, value, created_at, updated_at
		FROM daily_incentive_inputs
		WHERE sheet_id = $1
		ORDER BY date ASC, incentive_type ASC
	`

	rows, err := q.Query(ctx, query, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily inputs: %w", err)
	}
	defer rows.Close()

	var inputs []sheet.DailyIncentiveInput
	for rows.Next() {
		var input sheet.DailyIncentiveInput
		if err := rows.Scan(
			&input.ID, &input.SheetID, &input.Date, &input.IncentiveType,
			&input.Value, &input.CreatedAt, &input.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily input: %w", err)
		}
		inputs = append(inputs, input)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return inputs, nil
}

// TotalsBySheetID implements sheet.DailyInputRepository.
func (r *dailyInputRepositoryImpl) TotalsBySheetID(ctx context.Context, sheetID string) ([]sheet.TypeTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT incentive_type, COALESCE(SUM(value), 0) as total
		FROM daily_incentive_inputs
		WHERE sheet_id = $1
		GROUP BY incentive_type
		ORDER BY incentive_type ASC
	`

	rows, err := q.Query(ctx, query, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to total daily inputs: %w", err)
	}
	defer rows.Close()

	var totals []sheet.TypeTotal
	for rows.Next() {
		var t sheet.TypeTotal
		if err := rows.Scan(&t.IncentiveType, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan type total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

// DeleteBySheetID implements sheet.DailyInputRepository.
func (r *dailyInputRepositoryImpl) DeleteBySheetID(ctx context.Context, sheetID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_incentive_inputs WHERE sheet_id = $1`

	if _, err := q.Exec(ctx, query, sheetID); err != nil {
		return fmt.Errorf("failed to delete daily inputs: %w", err)
	}

	return nil
}
