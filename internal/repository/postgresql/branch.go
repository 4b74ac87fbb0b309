package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/master/branch"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, address, working_days_per_month, working_hours_per_day, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, true, NOW(), NOW())
		RETURNING id, name, address, working_days_per_month, working_hours_per_day, is_active, created_at, updated_at
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, b.Name, b.Address, b.WorkingDaysPerMonth, b.WorkingHoursPerDay).Scan(
		&result.ID,
		&result.Name,
		&result.Address,
		&result.WorkingDaysPerMonth,
		&result.WorkingHoursPerDay,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_branch_name") {
			return branch.Branch{}, branch.ErrBranchNameExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, working_days_per_month, working_hours_per_day, is_active, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Address,
		&result.WorkingDaysPerMonth,
		&result.WorkingHoursPerDay,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, working_days_per_month, working_hours_per_day, is_active, created_at, updated_at
		FROM branches
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Address,
			&b.WorkingDaysPerMonth,
			&b.WorkingHoursPerDay,
			&b.IsActive,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, req branch.UpdateBranchRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.WorkingDaysPerMonth != nil {
		setParts = append(setParts, fmt.Sprintf("working_days_per_month = $%d", argIdx))
		args = append(args, *req.WorkingDaysPerMonth)
		argIdx++
	}
	if req.WorkingHoursPerDay != nil {
		setParts = append(setParts, fmt.Sprintf("working_hours_per_day = $%d", argIdx))
		args = append(args, *req.WorkingHoursPerDay)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE branches
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.ErrBranchNotFound
		}
		if strings.Contains(err.Error(), "uk_branch_name") {
			return branch.ErrBranchNameExists
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}

	return nil
}

// Deactivate implements branch.BranchRepository.
func (r *branchRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE branches
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var deactivatedID string
	err := q.QueryRow(ctx, query, id).Scan(&deactivatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.ErrBranchNotFound
		}
		return fmt.Errorf("failed to deactivate branch: %w", err)
	}

	return nil
}
