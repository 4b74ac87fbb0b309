package incentive

import (
	"testing"

	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeFormulaCountMultiply(t *testing.T) {
	config := incentive.IncentiveConfig{
		TypeCode:    "CBC",
		Rate:        dec("50"),
		FormulaType: incentive.FormulaTypeCountMultiply,
	}

	amount, trace := computeFormula(config, dec("5"), decimal.Zero, 1)

	assert.Equal(t, "250.00", amount.StringFixed(2))
	assert.Equal(t, "5 × ₱50 = ₱250.00", trace)
}

func TestComputeFormulaPooled(t *testing.T) {
	config := incentive.IncentiveConfig{
		TypeCode:         "CONFINEMENT_VET",
		Rate:             dec("55"),
		FormulaType:      incentive.FormulaTypeCountMultiply,
		PoolInCalculator: true,
	}

	amount, trace := computeFormula(config, dec("10"), decimal.Zero, 4)

	assert.Equal(t, "137.50", amount.StringFixed(2))
	assert.Equal(t, "10 × ₱55 ÷ 4 = ₱137.50", trace)
}

func TestComputeFormulaPooledSingleEligible(t *testing.T) {
	// A lone eligible employee keeps the whole amount, with no divisor in
	// the trace.
	config := incentive.IncentiveConfig{
		TypeCode:         "CONFINEMENT_VET",
		Rate:             dec("55"),
		FormulaType:      incentive.FormulaTypeCountMultiply,
		PoolInCalculator: true,
	}

	amount, trace := computeFormula(config, dec("10"), decimal.Zero, 1)

	assert.Equal(t, "550.00", amount.StringFixed(2))
	assert.Equal(t, "10 × ₱55 = ₱550.00", trace)
}

func TestComputeFormulaUnpooledIgnoresEligible(t *testing.T) {
	// Types without pool_in_calculator never divide, whatever the head
	// count.
	config := incentive.IncentiveConfig{
		TypeCode:    "GROOMING",
		Rate:        dec("40"),
		FormulaType: incentive.FormulaTypeCountMultiply,
	}

	amount, trace := computeFormula(config, dec("3"), decimal.Zero, 5)

	assert.Equal(t, "120.00", amount.StringFixed(2))
	assert.Equal(t, "3 × ₱40 = ₱120.00", trace)
}

func TestComputeFormulaPercent(t *testing.T) {
	config := incentive.IncentiveConfig{
		TypeCode:    "PROF_FEE",
		Rate:        dec("0.10"),
		FormulaType: incentive.FormulaTypePercent,
	}

	amount, trace := computeFormula(config, decimal.Zero, dec("1500"), 1)

	assert.Equal(t, "150.00", amount.StringFixed(2))
	assert.Equal(t, "₱1,500.00 × 10% = ₱150.00", trace)
}

func TestComputeFormulaPooledRounding(t *testing.T) {
	config := incentive.IncentiveConfig{
		TypeCode:         "CONFINEMENT_STAFF",
		Rate:             dec("20"),
		FormulaType:      incentive.FormulaTypeCountMultiply,
		PoolInCalculator: true,
	}

	amount, _ := computeFormula(config, dec("7"), decimal.Zero, 3)

	// 140 / 3 rounds to centavos
	assert.Equal(t, "46.67", amount.StringFixed(2))
}

func TestComputeFormulaUnknownType(t *testing.T) {
	config := incentive.IncentiveConfig{
		TypeCode:    "BROKEN",
		Rate:        dec("50"),
		FormulaType: incentive.FormulaType("SOMETHING_ELSE"),
	}

	amount, trace := computeFormula(config, dec("5"), dec("5"), 1)

	assert.True(t, amount.IsZero())
	assert.Empty(t, trace)
}
