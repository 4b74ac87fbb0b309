package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetActiveByBranchID(ctx context.Context, branchID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdateRates(ctx context.Context, id string, ratePerDay, ratePerHour decimal.Decimal) error
	Deactivate(ctx context.Context, id string) error
}
