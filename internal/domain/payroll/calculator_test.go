package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeTotalsGrossToNet(t *testing.T) {
	period := PayrollPeriod{
		WorkingDays: 22,
		DayOff:      2,
		Absences:    0,
		RatePerDay:  dec("1000"),
		RatePerHour: dec("125"),
	}
	incentives := []Incentive{
		{IncentiveType: "CBC", Amount: dec("500")},
	}
	deductions := []Deduction{
		{DeductionType: "SSS", Amount: dec("700")},
		{DeductionType: "PHILHEALTH", Amount: dec("500")},
	}

	totals := ComputeTotals(period, incentives, deductions, dec("1"))

	assert.Equal(t, 20, totals.TotalDaysPresent)
	assert.Equal(t, "20000.00", totals.BasicPay.StringFixed(2))
	assert.Equal(t, "500.00", totals.TotalIncentives.StringFixed(2))
	assert.Equal(t, "20500.00", totals.GrossPay.StringFixed(2))
	assert.Equal(t, "1200.00", totals.TotalDeductions.StringFixed(2))
	assert.Equal(t, "19300.00", totals.NetPay.StringFixed(2))
}

func TestComputeTotalsFullChain(t *testing.T) {
	period := PayrollPeriod{
		WorkingDays:   26,
		DayOff:        4,
		Absences:      1,
		Holidays:      dec("1.5"),
		OvertimeHours: dec("3.5"),
		LateMinutes:   dec("45"),
		MealAllowance: dec("500"),
		BirthdayLeave: dec("1725.24"),
		RatePerDay:    dec("1725.24"),
		RatePerHour:   dec("215.66"),
	}
	incentives := []Incentive{
		{IncentiveType: "CBC", Amount: dec("250")},
		{IncentiveType: "CONFINEMENT_VET", Amount: dec("137.50")},
	}
	deductions := []Deduction{
		{DeductionType: "SSS", Amount: dec("1350.75")},
		{DeductionType: "CASH_ADVANCE", Amount: dec("200")},
	}

	totals := ComputeTotals(period, incentives, deductions, dec("1.25"))

	assert.Equal(t, 21, totals.TotalDaysPresent)
	assert.Equal(t, "36230.04", totals.BasicPay.StringFixed(2))
	assert.Equal(t, "2587.86", totals.HolidayPay.StringFixed(2))
	assert.Equal(t, "943.51", totals.OvertimePay.StringFixed(2))
	assert.Equal(t, "161.75", totals.LateDeduction.StringFixed(2))
	assert.Equal(t, "387.50", totals.TotalIncentives.StringFixed(2))
	assert.Equal(t, "42374.15", totals.GrossPay.StringFixed(2))
	assert.Equal(t, "1550.75", totals.TotalDeductions.StringFixed(2))
	assert.Equal(t, "40661.65", totals.NetPay.StringFixed(2))
}

func TestComputeTotalsLateDeductionByTheMinute(t *testing.T) {
	period := PayrollPeriod{
		WorkingDays: 26,
		RatePerDay:  dec("1000"),
		RatePerHour: dec("120"),
		LateMinutes: dec("30"),
	}

	totals := ComputeTotals(period, nil, nil, dec("1"))

	assert.Equal(t, "60.00", totals.LateDeduction.StringFixed(2))
	assert.Equal(t, "25940.00", totals.NetPay.StringFixed(2))
}

func TestComputeTotalsNoChildren(t *testing.T) {
	period := PayrollPeriod{
		WorkingDays: 10,
		RatePerDay:  dec("800"),
		RatePerHour: dec("100"),
	}

	totals := ComputeTotals(period, nil, nil, dec("1"))

	assert.True(t, totals.TotalIncentives.IsZero())
	assert.True(t, totals.TotalDeductions.IsZero())
	assert.Equal(t, "8000.00", totals.GrossPay.StringFixed(2))
	assert.Equal(t, "8000.00", totals.NetPay.StringFixed(2))
}

func TestComputeTotalsNegativeDaysCarryThrough(t *testing.T) {
	// More absences than working days is stored as entered; the totals
	// follow the arithmetic rather than clamping at zero.
	period := PayrollPeriod{
		WorkingDays: 2,
		DayOff:      1,
		Absences:    3,
		RatePerDay:  dec("1000"),
		RatePerHour: dec("125"),
	}

	totals := ComputeTotals(period, nil, nil, dec("1"))

	assert.Equal(t, -2, totals.TotalDaysPresent)
	assert.Equal(t, "-2000.00", totals.BasicPay.StringFixed(2))
	assert.Equal(t, "-2000.00", totals.NetPay.StringFixed(2))
}
