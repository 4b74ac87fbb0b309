package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveRatesStatutory(t *testing.T) {
	// 45000 * 12 / 313 = 1725.2396..., hourly from the rounded daily rate
	rpd, rph := DeriveRates(decimal.NewFromInt(45000), PositionJuniorVet, 26, decimal.NewFromInt(8))

	assert.Equal(t, "1725.24", rpd.StringFixed(2))
	assert.Equal(t, "215.66", rph.StringFixed(2))
}

func TestDeriveRatesStatutoryIgnoresBranchSchedule(t *testing.T) {
	// Non-branch-dependent positions use the 313 factor no matter the branch
	rpd26, rph26 := DeriveRates(decimal.NewFromInt(30000), PositionVetNurse, 26, decimal.NewFromInt(8))
	rpd22, rph22 := DeriveRates(decimal.NewFromInt(30000), PositionVetNurse, 22, decimal.NewFromInt(10))

	assert.True(t, rpd26.Equal(rpd22))
	assert.True(t, rph26.Equal(rph22))
	assert.Equal(t, "1150.16", rpd26.StringFixed(2))
	assert.Equal(t, "143.77", rph26.StringFixed(2))
}

func TestDeriveRatesBranchDependent(t *testing.T) {
	// 45000 / 26 = 1730.7692... -> 1730.77, then / 8 = 216.3462... -> 216.35
	rpd, rph := DeriveRates(decimal.NewFromInt(45000), PositionResidentVet, 26, decimal.NewFromInt(8))

	assert.Equal(t, "1730.77", rpd.StringFixed(2))
	assert.Equal(t, "216.35", rph.StringFixed(2))
}

func TestDeriveRatesBranchDependentCustomSchedule(t *testing.T) {
	rpd, rph := DeriveRates(decimal.NewFromInt(52000), PositionResidentVet, 24, decimal.RequireFromString("10"))

	// 52000 / 24 = 2166.6666... -> 2166.67, / 10 = 216.667 -> 216.67
	assert.Equal(t, "2166.67", rpd.StringFixed(2))
	assert.Equal(t, "216.67", rph.StringFixed(2))
}

func TestDeriveRatesZeroSalary(t *testing.T) {
	rpd, rph := DeriveRates(decimal.Zero, PositionStaff, 26, decimal.NewFromInt(8))

	assert.True(t, rpd.IsZero())
	assert.True(t, rph.IsZero())
}
