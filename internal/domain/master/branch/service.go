package branch

import "context"

// BranchService defines business logic for branch operations
type BranchService interface {
	// CreateBranch creates a new branch
	CreateBranch(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)

	// GetBranch retrieves a single branch by ID
	GetBranch(ctx context.Context, id string) (BranchResponse, error)

	// ListBranches lists branches, optionally only active ones
	ListBranches(ctx context.Context, activeOnly bool) ([]BranchResponse, error)

	// UpdateBranch updates a branch; schedule changes re-derive the stored
	// rates of the branch's branch-dependent employees
	UpdateBranch(ctx context.Context, req UpdateBranchRequest) (BranchResponse, error)

	// DeleteBranch soft-deactivates a branch
	DeleteBranch(ctx context.Context, id string) error
}
