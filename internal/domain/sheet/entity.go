package sheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncentiveSheet - One branch-wide tally sheet covering a payroll date
// range. Daily inputs below it feed the distribution run; IsDistributed
// flips back to false whenever the inputs change after a run.
type IncentiveSheet struct {
	ID            string
	BranchID      string
	StartDate     time.Time
	EndDate       time.Time
	IsDistributed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	BranchName *string
}

// DailyIncentiveInput - One cell of the sheet: a tally for one shared
// source type on one day. Zero-valued cells are deleted, never stored.
type DailyIncentiveInput struct {
	ID            string
	SheetID       string
	Date          time.Time
	IncentiveType string
	Value         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TypeTotal - Per-type sum over the whole sheet range.
type TypeTotal struct {
	IncentiveType string
	Total         decimal.Decimal
}
