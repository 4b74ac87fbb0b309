package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/master/branch"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	branchRepo   branch.BranchRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		branchRepo:   branchRepo,
	}
}

// Helper function to map Employee to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName,
		Position:      string(emp.Position),
		PositionName:  emp.Position.DisplayName(),
		BranchID:      emp.BranchID,
		BranchName:    emp.BranchName,
		MonthlySalary: emp.MonthlySalary,
		RatePerDay:    emp.RatePerDay,
		RatePerHour:   emp.RatePerHour,
		IsActive:      emp.IsActive,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	b, err := s.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return employee.EmployeeResponse{}, branch.ErrBranchNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	position := employee.Position(req.Position)
	ratePerDay, ratePerHour := employee.DeriveRates(req.MonthlySalary, position, b.WorkingDaysPerMonth, b.WorkingHoursPerDay)

	newEmployee := employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Position:      position,
		BranchID:      req.BranchID,
		MonthlySalary: req.MonthlySalary,
		RatePerDay:    ratePerDay,
		RatePerHour:   ratePerHour,
		IsActive:      true,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	// Get the full details with JOINs
	emp, err := s.employeeRepo.GetByID(ctx, created.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get created employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	rateOverride := req.RatePerDay != nil && req.RatePerHour != nil
	rederive := !rateOverride && (req.MonthlySalary != nil || req.Position != nil || req.BranchID != nil)

	if rederive {
		salary := existing.MonthlySalary
		if req.MonthlySalary != nil {
			salary = *req.MonthlySalary
		}
		position := existing.Position
		if req.Position != nil {
			position = employee.Position(*req.Position)
		}
		branchID := existing.BranchID
		if req.BranchID != nil {
			branchID = *req.BranchID
		}

		b, err := s.branchRepo.GetByID(ctx, branchID)
		if err != nil {
			if errors.Is(err, branch.ErrBranchNotFound) {
				return employee.EmployeeResponse{}, branch.ErrBranchNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get branch: %w", err)
		}

		ratePerDay, ratePerHour := employee.DeriveRates(salary, position, b.WorkingDaysPerMonth, b.WorkingHoursPerDay)
		req.RatePerDay = &ratePerDay
		req.RatePerHour = &ratePerHour
	} else if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			if errors.Is(err, branch.ErrBranchNotFound) {
				return employee.EmployeeResponse{}, branch.ErrBranchNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get branch: %w", err)
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		if errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	err := s.employeeRepo.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
