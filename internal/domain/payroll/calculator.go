package payroll

import "github.com/shopspring/decimal"

var minutesPerHour = decimal.NewFromInt(60)

// ComputeTotals derives every monetary total of a period from its inputs,
// snapshotted rates, and child rows. Each component rounds to centavos
// independently before entering the next step of the chain.
//
//	totalDaysPresent = workingDays - dayOff - absences
//	basicPay         = ratePerDay * totalDaysPresent
//	holidayPay       = ratePerDay * holidays
//	overtimePay      = ratePerHour * overtimeHours * overtimeMultiplier
//	lateDeduction    = ratePerHour * lateMinutes / 60
//	grossPay         = basicPay + holidayPay + overtimePay
//	                   + mealAllowance + silPay + birthdayLeave + totalIncentives
//	netPay           = grossPay - totalDeductions - lateDeduction
func ComputeTotals(period PayrollPeriod, incentives []Incentive, deductions []Deduction, overtimeMultiplier decimal.Decimal) PeriodTotals {
	totalDaysPresent := period.WorkingDays - period.DayOff - period.Absences

	basicPay := period.RatePerDay.Mul(decimal.NewFromInt(int64(totalDaysPresent))).Round(2)
	holidayPay := period.RatePerDay.Mul(period.Holidays).Round(2)
	overtimePay := period.RatePerHour.Mul(period.OvertimeHours).Mul(overtimeMultiplier).Round(2)
	lateDeduction := period.RatePerHour.Mul(period.LateMinutes).Div(minutesPerHour).Round(2)

	totalIncentives := decimal.Zero
	for _, inc := range incentives {
		totalIncentives = totalIncentives.Add(inc.Amount)
	}
	totalIncentives = totalIncentives.Round(2)

	totalDeductions := decimal.Zero
	for _, d := range deductions {
		totalDeductions = totalDeductions.Add(d.Amount)
	}
	totalDeductions = totalDeductions.Round(2)

	grossPay := basicPay.
		Add(holidayPay).
		Add(overtimePay).
		Add(period.MealAllowance).
		Add(period.SilPay).
		Add(period.BirthdayLeave).
		Add(totalIncentives).
		Round(2)
	netPay := grossPay.Sub(totalDeductions).Sub(lateDeduction).Round(2)

	return PeriodTotals{
		TotalDaysPresent: totalDaysPresent,
		BasicPay:         basicPay,
		HolidayPay:       holidayPay,
		OvertimePay:      overtimePay,
		TotalIncentives:  totalIncentives,
		TotalDeductions:  totalDeductions,
		LateDeduction:    lateDeduction,
		GrossPay:         grossPay,
		NetPay:           netPay,
	}
}
