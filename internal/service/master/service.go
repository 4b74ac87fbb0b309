package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/master/branch"
	"github.com/primovet/vetpay-backend-go/internal/pkg/database"
	"github.com/primovet/vetpay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type BranchServiceImpl struct {
	db           *database.DB
	branchRepo   branch.BranchRepository
	employeeRepo employee.EmployeeRepository
}

func NewBranchService(
	db *database.DB,
	branchRepo branch.BranchRepository,
	employeeRepo employee.EmployeeRepository,
) branch.BranchService {
	return &BranchServiceImpl{
		db:           db,
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
	}
}

var defaultWorkingHoursPerDay = decimal.NewFromInt(8)

// Helper function to map Branch to BranchResponse
func mapBranchToResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:                  b.ID,
		Name:                b.Name,
		Address:             b.Address,
		WorkingDaysPerMonth: b.WorkingDaysPerMonth,
		WorkingHoursPerDay:  b.WorkingHoursPerDay,
		IsActive:            b.IsActive,
	}
}

// CreateBranch implements branch.BranchService.
func (s *BranchServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	hoursPerDay := defaultWorkingHoursPerDay
	if req.WorkingHoursPerDay != nil {
		hoursPerDay = *req.WorkingHoursPerDay
	}

	newBranch := branch.Branch{
		Name:                req.Name,
		Address:             req.Address,
		WorkingDaysPerMonth: req.WorkingDaysPerMonth,
		WorkingHoursPerDay:  hoursPerDay,
		IsActive:            true,
	}

	created, err := s.branchRepo.Create(ctx, newBranch)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNameExists) {
			return branch.BranchResponse{}, branch.ErrBranchNameExists
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return mapBranchToResponse(created), nil
}

// GetBranch implements branch.BranchService.
func (s *BranchServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return branch.BranchResponse{}, branch.ErrBranchNotFound
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return mapBranchToResponse(b), nil
}

// ListBranches implements branch.BranchService.
func (s *BranchServiceImpl) ListBranches(ctx context.Context, activeOnly bool) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, mapBranchToResponse(b))
	}

	return responses, nil
}

// UpdateBranch implements branch.BranchService. A working schedule change
// re-derives the stored rates of every branch-dependent employee of the
// branch in the same transaction.
func (s *BranchServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	existing, err := s.branchRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return branch.BranchResponse{}, branch.ErrBranchNotFound
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	daysPerMonth := existing.WorkingDaysPerMonth
	if req.WorkingDaysPerMonth != nil {
		daysPerMonth = *req.WorkingDaysPerMonth
	}
	hoursPerDay := existing.WorkingHoursPerDay
	if req.WorkingHoursPerDay != nil {
		hoursPerDay = *req.WorkingHoursPerDay
	}
	scheduleChanged := daysPerMonth != existing.WorkingDaysPerMonth || !hoursPerDay.Equal(existing.WorkingHoursPerDay)

	if !scheduleChanged {
		if err := s.branchRepo.Update(ctx, req); err != nil {
			if errors.Is(err, branch.ErrBranchNameExists) {
				return branch.BranchResponse{}, branch.ErrBranchNameExists
			}
			return branch.BranchResponse{}, fmt.Errorf("failed to update branch: %w", err)
		}
	} else {
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			if err := s.branchRepo.Update(txCtx, req); err != nil {
				return fmt.Errorf("failed to update branch: %w", err)
			}

			employees, err := s.employeeRepo.List(txCtx, employee.EmployeeFilter{BranchID: &req.ID})
			if err != nil {
				return fmt.Errorf("failed to list branch employees: %w", err)
			}

			for _, emp := range employees {
				if !emp.Position.IsBranchDependent() {
					continue
				}
				ratePerDay, ratePerHour := employee.DeriveRates(emp.MonthlySalary, emp.Position, daysPerMonth, hoursPerDay)
				if err := s.employeeRepo.UpdateRates(txCtx, emp.ID, ratePerDay, ratePerHour); err != nil {
					return fmt.Errorf("failed to update employee rates: %w", err)
				}
			}

			return nil
		})
		if err != nil {
			if errors.Is(err, branch.ErrBranchNameExists) {
				return branch.BranchResponse{}, branch.ErrBranchNameExists
			}
			return branch.BranchResponse{}, err
		}
	}

	updated, err := s.branchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to get updated branch: %w", err)
	}

	return mapBranchToResponse(updated), nil
}

// DeleteBranch implements branch.BranchService.
func (s *BranchServiceImpl) DeleteBranch(ctx context.Context, id string) error {
	err := s.branchRepo.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return branch.ErrBranchNotFound
		}
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	return nil
}
