package employee

import "github.com/shopspring/decimal"

var (
	twelve              = decimal.NewFromInt(12)
	statutoryDaysFactor = decimal.NewFromInt(313)
	standardHoursPerDay = decimal.NewFromInt(8)
)

// DeriveRates computes the daily and hourly rates for a monthly salary.
// Branch-dependent positions divide the salary over the branch's own
// working schedule; every other position annualizes over the statutory
// 313-day factor with an 8-hour day. Both rates round to centavos, and
// the hourly rate derives from the rounded daily rate.
func DeriveRates(monthlySalary decimal.Decimal, position Position, workingDaysPerMonth int, workingHoursPerDay decimal.Decimal) (ratePerDay, ratePerHour decimal.Decimal) {
	if position.IsBranchDependent() {
		if workingDaysPerMonth < 1 {
			workingDaysPerMonth = 1
		}
		if !workingHoursPerDay.IsPositive() {
			workingHoursPerDay = standardHoursPerDay
		}
		ratePerDay = monthlySalary.Div(decimal.NewFromInt(int64(workingDaysPerMonth))).Round(2)
		ratePerHour = ratePerDay.Div(workingHoursPerDay).Round(2)
		return ratePerDay, ratePerHour
	}

	ratePerDay = monthlySalary.Mul(twelve).Div(statutoryDaysFactor).Round(2)
	ratePerHour = ratePerDay.Div(standardHoursPerDay).Round(2)
	return ratePerDay, ratePerHour
}
