package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPesos(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"250", "₱250.00"},
		{"137.5", "₱137.50"},
		{"1500", "₱1,500.00"},
		{"1234567.89", "₱1,234,567.89"},
		{"0", "₱0.00"},
		{"-423.75", "-₱423.75"},
	}
	for _, c := range cases {
		got := Pesos(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("Pesos(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestPesosText(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"19300", "PHP 19,300.00"},
		{"137.5", "PHP 137.50"},
		{"-250", "-PHP 250.00"},
	}
	for _, c := range cases {
		got := PesosText(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("PesosText(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestRate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"50", "₱50"},
		{"55", "₱55"},
		{"37.5", "₱37.50"},
		{"1250", "₱1,250"},
	}
	for _, c := range cases {
		got := Rate(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("Rate(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0.1", "10%"},
		{"0.05", "5%"},
		{"0.125", "12.5%"},
	}
	for _, c := range cases {
		got := Percent(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("Percent(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCount(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"5", "5"},
		{"10", "10"},
		{"1234.5", "1,234.5"},
		{"0.5", "0.5"},
	}
	for _, c := range cases {
		got := Count(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("Count(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}
