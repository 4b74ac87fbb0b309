package sheet

import "context"

// SheetService defines business logic for incentive sheets, their daily
// inputs, and the distribution run.
type SheetService interface {
	// CreateSheet creates a sheet for a branch and date range
	CreateSheet(ctx context.Context, req CreateSheetRequest) (SheetResponse, error)

	// GetSheet retrieves a sheet with its cells and per-type totals
	GetSheet(ctx context.Context, id string) (SheetDetailResponse, error)

	// ListSheets lists sheets, optionally filtered by branch
	ListSheets(ctx context.Context, filter SheetFilter) ([]SheetResponse, error)

	// ApplyInputs writes a batch of daily cells in one transaction;
	// zero values delete the cell, and any change resets IsDistributed
	ApplyInputs(ctx context.Context, req ApplyInputsRequest) (SheetDetailResponse, error)

	// Distribute runs the distribution rules over the sheet totals,
	// upserts incentives onto matching payroll periods, recomputes their
	// totals, and marks the sheet distributed
	Distribute(ctx context.Context, sheetID string) (DistributeResponse, error)

	// DeleteSheet removes an undistributed sheet and its inputs
	DeleteSheet(ctx context.Context, id string) error
}
