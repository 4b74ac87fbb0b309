package incentive

import "context"

// IncentiveConfigRepository stores persisted config overrides. Defaults
// live in fixtures; the service layer merges the two tiers.
type IncentiveConfigRepository interface {
	Upsert(ctx context.Context, config IncentiveConfig) (IncentiveConfig, error)
	GetByTypeCode(ctx context.Context, typeCode string) (IncentiveConfig, error)
	List(ctx context.Context) ([]IncentiveConfig, error)
	DeleteByTypeCode(ctx context.Context, typeCode string) error
}

type IncentiveExclusionRepository interface {
	ListByEmployeeID(ctx context.Context, employeeID string) ([]IncentiveExclusion, error)
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]IncentiveExclusion, error)
	Replace(ctx context.Context, employeeID string, incentiveTypes []string) error
}
