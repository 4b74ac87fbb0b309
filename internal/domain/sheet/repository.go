package sheet

import (
	"context"
	"time"
)

type SheetRepository interface {
	Create(ctx context.Context, newSheet IncentiveSheet) (IncentiveSheet, error)
	GetByID(ctx context.Context, id string) (IncentiveSheet, error)
	GetByBranchRange(ctx context.Context, branchID string, startDate, endDate time.Time) (IncentiveSheet, error)
	List(ctx context.Context, filter SheetFilter) ([]IncentiveSheet, error)
	SetDistributed(ctx context.Context, id string, distributed bool) error
	Delete(ctx context.Context, id string) error
}

type DailyInputRepository interface {
	Upsert(ctx context.Context, input DailyIncentiveInput) error
	Delete(ctx context.Context, sheetID string, date time.Time, incentiveType string) error
	ListBySheetID(ctx context.Context, sheetID string) ([]DailyIncentiveInput, error)
	TotalsBySheetID(ctx context.Context, sheetID string) ([]TypeTotal, error)
	DeleteBySheetID(ctx context.Context, sheetID string) error
}
