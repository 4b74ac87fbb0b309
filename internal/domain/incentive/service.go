package incentive

import "context"

// IncentiveService defines business logic for incentive configuration and
// the per-employee incentive calculator.
type IncentiveService interface {
	// ListConfigs returns the merged view: compiled-in defaults overlaid
	// with persisted overrides, sorted by sort order
	ListConfigs(ctx context.Context) ([]IncentiveConfigResponse, error)

	// GetConfig returns the effective config for one type code
	GetConfig(ctx context.Context, typeCode string) (IncentiveConfigResponse, error)

	// UpsertConfig persists an override for one type code
	UpsertConfig(ctx context.Context, req UpsertIncentiveConfigRequest) (IncentiveConfigResponse, error)

	// ResetConfig drops the persisted override, reverting to the default
	ResetConfig(ctx context.Context, typeCode string) (IncentiveConfigResponse, error)

	// ListExclusions returns the exclusion set of one employee
	ListExclusions(ctx context.Context, employeeID string) ([]IncentiveExclusionResponse, error)

	// ReplaceExclusions replaces the exclusion set of one employee
	ReplaceExclusions(ctx context.Context, req ReplaceExclusionsRequest) ([]IncentiveExclusionResponse, error)

	// Apply runs the formula for one type on one payroll period, upserts
	// the incentive row, and recomputes the period totals
	Apply(ctx context.Context, req ApplyIncentiveRequest) (AppliedIncentiveResponse, error)

	// Remove deletes one incentive row and recomputes the period totals
	Remove(ctx context.Context, payrollID, typeCode string) error
}
