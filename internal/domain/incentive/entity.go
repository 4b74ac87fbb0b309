package incentive

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormulaType enum
type FormulaType string

const (
	FormulaTypeCountMultiply FormulaType = "COUNT_MULTIPLY"
	FormulaTypePercent       FormulaType = "PERCENT"
)

func (f FormulaType) IsValid() bool {
	return f == FormulaTypeCountMultiply || f == FormulaTypePercent
}

// IncentiveConfig - Effective configuration of one incentive type. Configs
// resolve in two tiers: a persisted override row wins, otherwise the
// compiled-in default applies. IsOverride marks which tier produced the
// value.
type IncentiveConfig struct {
	ID                 *string
	TypeCode           string
	DisplayName        string
	Rate               decimal.Decimal
	FormulaType        FormulaType
	ReceivingPositions []string
	DivisionPositions  []string
	IsShared           bool
	PoolInCalculator   bool
	SortOrder          int
	IsActive           bool
	IsOverride         bool
	CreatedAt          *time.Time
	UpdatedAt          *time.Time
}

// EffectiveDivisionPositions returns the division set, falling back to the
// receiving set when no separate division set is configured.
func (c IncentiveConfig) EffectiveDivisionPositions() []string {
	if len(c.DivisionPositions) > 0 {
		return c.DivisionPositions
	}
	return c.ReceivingPositions
}

// IncentiveExclusion - Opt-out of one employee from one incentive type.
// The excluded employee leaves both the receiving and the division set of
// that type only.
type IncentiveExclusion struct {
	ID            string
	EmployeeID    string
	IncentiveType string
	CreatedAt     time.Time
}

// DistributionRule - Topology of sheet distribution: one shared source
// column fans out into one or more derived incentive types. Rate, formula,
// and position sets come from the derived type's effective config.
type DistributionRule struct {
	SourceType  string
	DerivedType string
}
