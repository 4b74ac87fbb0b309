package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, position, branch_id,
			monthly_salary, rate_per_day, rate_per_hour, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, true, NOW(), NOW()
		)
		RETURNING id, employee_code, full_name, position, branch_id,
			monthly_salary, rate_per_day, rate_per_hour, is_active, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.Position, newEmployee.BranchID,
		newEmployee.MonthlySalary, newEmployee.RatePerDay, newEmployee.RatePerHour,
	).Scan(
		&created.ID, &created.EmployeeCode, &created.FullName, &created.Position, &created.BranchID,
		&created.MonthlySalary, &created.RatePerDay, &created.RatePerHour, &created.IsActive,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.position, e.branch_id,
			   e.monthly_salary, e.rate_per_day, e.rate_per_hour, e.is_active,
			   e.created_at, e.updated_at, b.name as branch_name
		FROM employees e
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Position, &emp.BranchID,
		&emp.MonthlySalary, &emp.RatePerDay, &emp.RatePerHour, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.BranchName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.position, e.branch_id,
			   e.monthly_salary, e.rate_per_day, e.rate_per_hour, e.is_active,
			   e.created_at, e.updated_at, b.name as branch_name
		FROM employees e
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.BranchID != nil {
		query += fmt.Sprintf(" AND e.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.Position != nil {
		query += fmt.Sprintf(" AND e.position = $%d", argIdx)
		args = append(args, *filter.Position)
		argIdx++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND e.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	query += " ORDER BY e.full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Position, &emp.BranchID,
			&emp.MonthlySalary, &emp.RatePerDay, &emp.RatePerHour, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.BranchName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// GetActiveByBranchID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByBranchID(ctx context.Context, branchID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, position, branch_id,
			   monthly_salary, rate_per_day, rate_per_hour, is_active, created_at, updated_at
		FROM employees
		WHERE branch_id = $1 AND is_active = true
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Position, &emp.BranchID,
			&emp.MonthlySalary, &emp.RatePerDay, &emp.RatePerHour, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.EmployeeCode != nil {
		setParts = append(setParts, fmt.Sprintf("employee_code = $%d", argIdx))
		args = append(args, *req.EmployeeCode)
		argIdx++
	}
	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Position != nil {
		setParts = append(setParts, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.BranchID != nil {
		setParts = append(setParts, fmt.Sprintf("branch_id = $%d", argIdx))
		args = append(args, *req.BranchID)
		argIdx++
	}
	if req.MonthlySalary != nil {
		setParts = append(setParts, fmt.Sprintf("monthly_salary = $%d", argIdx))
		args = append(args, *req.MonthlySalary)
		argIdx++
	}
	if req.RatePerDay != nil {
		setParts = append(setParts, fmt.Sprintf("rate_per_day = $%d", argIdx))
		args = append(args, *req.RatePerDay)
		argIdx++
	}
	if req.RatePerHour != nil {
		setParts = append(setParts, fmt.Sprintf("rate_per_hour = $%d", argIdx))
		args = append(args, *req.RatePerHour)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.ErrEmployeeCodeExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// UpdateRates implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateRates(ctx context.Context, id string, ratePerDay, ratePerHour decimal.Decimal) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET rate_per_day = $1, rate_per_hour = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, ratePerDay, ratePerHour, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee rates: %w", err)
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var deactivatedID string
	err := q.QueryRow(ctx, query, id).Scan(&deactivatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}
