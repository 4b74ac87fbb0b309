package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Pesos formats an amount as ₱1,234.56, always with two decimal places.
func Pesos(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	intPart, cents := splitFixed(d.Abs())
	return sign + "₱" + group(intPart) + "." + cents
}

// PesosText formats an amount as PHP 1,234.56 for outputs whose fonts
// cannot render the peso sign, such as generated PDFs.
func PesosText(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	intPart, cents := splitFixed(d.Abs())
	return sign + "PHP " + group(intPart) + "." + cents
}

// Rate formats a per-unit peso rate, dropping the cents when they are zero:
// ₱50 for whole rates, ₱37.50 otherwise.
func Rate(d decimal.Decimal) string {
	if d.IsInteger() {
		sign := ""
		if d.IsNegative() {
			sign = "-"
		}
		return sign + "₱" + group(d.Abs().String())
	}
	return Pesos(d)
}

// Percent formats a fractional rate as a percentage: 0.10 becomes 10%.
func Percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).String() + "%"
}

// Count formats a unit count with grouping but no currency symbol,
// trimming trailing zeros: 5, 1,234.5.
func Count(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	s := d.Abs().String()
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := sign + group(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func splitFixed(d decimal.Decimal) (string, string) {
	s := d.StringFixed(2)
	intPart, cents, _ := strings.Cut(s, ".")
	return intPart, cents
}

func group(intPart string) string {
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return intPart
	}
	return printer.Sprintf("%d", n)
}
