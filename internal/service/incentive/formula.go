package incentive

import (
	"fmt"

	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/primovet/vetpay-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// computeFormula runs the configured formula and renders its display trace.
// COUNT_MULTIPLY reads count, PERCENT reads inputValue. Types flagged
// pool_in_calculator divide the product among the eligible employees. An
// unrecognised formula type yields a zero amount and an empty trace.
func computeFormula(config incentive.IncentiveConfig, count, inputValue decimal.Decimal, numEligible int) (decimal.Decimal, string) {
	switch config.FormulaType {
	case incentive.FormulaTypeCountMultiply:
		if config.PoolInCalculator && numEligible > 1 {
			amount := count.Mul(config.Rate).Div(decimal.NewFromInt(int64(numEligible))).Round(2)
			trace := fmt.Sprintf("%s × %s ÷ %d = %s", money.Count(count), money.Rate(config.Rate), numEligible, money.Pesos(amount))
			return amount, trace
		}
		amount := count.Mul(config.Rate).Round(2)
		trace := fmt.Sprintf("%s × %s = %s", money.Count(count), money.Rate(config.Rate), money.Pesos(amount))
		return amount, trace
	case incentive.FormulaTypePercent:
		amount := inputValue.Mul(config.Rate).Round(2)
		trace := fmt.Sprintf("%s × %s = %s", money.Pesos(inputValue), money.Percent(config.Rate), money.Pesos(amount))
		return amount, trace
	}
	return decimal.Zero, ""
}
