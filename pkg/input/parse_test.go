package input

import (
	"testing"

	"github.com/iwvelando/buyout-calculator/pkg/buyout"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{"Plain integer", "1000", 1000, true},
		{"Decimal", "50.12345", 50.12345, true},
		{"Surrounding whitespace", "  100  ", 100, true},
		{"Trailing text", "12.5kg", 12.5, true},
		{"Leading dot", ".5", 0.5, true},
		{"Trailing dot", "7.", 7, true},
		{"Exponent", "1e3", 1000, true},
		{"Negative", "-50", -50, true},
		{"Explicit plus", "+20", 20, true},
		{"Empty", "", 0, false},
		{"Letters", "abc", 0, false},
		{"Dollar sign", "$50", 0, false},
		{"At sign", "@100", 0, false},
		{"Overflow", "1e999", 0, false},
		{"Negative zero", "-0", 0, true},
		{"Comma stops the number", "1,000", 1, true},
		{"Hex prefix is not read", "0x10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseAmount(%q) = %v, %v, expected %v, %v", tt.raw, got, ok, tt.expected, tt.ok)
			}
			if Amount(tt.raw) != tt.expected {
				t.Errorf("Amount(%q) = %v, expected %v", tt.raw, Amount(tt.raw), tt.expected)
			}
		})
	}
}

func TestMonths(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{"Whole number", "4", 4, true},
		{"Fraction is truncated", "2.7", 2, true},
		{"Word", "two", 0, false},
		{"Empty", "", 0, false},
		{"Negative", "-3", -3, true},
		{"Trailing unit", "12 months", 12, true},
		{"Hex prefix is not read", "0x10", 0, true},
		{"Leading zeros are decimal", "010", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonths(tt.raw)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseMonths(%q) = %v, %v, expected %v, %v", tt.raw, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestProvince(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"ON", "ON"},
		{" qc ", "QC"},
		{"", "ON"},
		{"   ", "ON"},
		{"xx", "XX"},
	}

	for _, tt := range tests {
		if got := Province(tt.raw); got != tt.expected {
			t.Errorf("Province(%q) = %q, expected %q", tt.raw, got, tt.expected)
		}
	}
}

func TestRawInputs(t *testing.T) {
	tests := []struct {
		name     string
		raw      Raw
		expected buyout.Inputs
	}{
		{
			name:     "Form values",
			raw:      Raw{PurchasePrice: "1000", MonthlyPayment: "50", MonthsRented: "2", Deposit: "100", Province: "ON"},
			expected: buyout.Inputs{PurchasePrice: 1000, MonthlyPayment: 50, MonthsRented: 2, Deposit: 100, Province: "ON"},
		},
		{
			name:     "Empty form",
			raw:      Raw{},
			expected: buyout.Inputs{Province: "ON"},
		},
		{
			name:     "Non-numeric form",
			raw:      Raw{PurchasePrice: "abc", MonthlyPayment: "$50", MonthsRented: "two", Deposit: "@100", Province: "ON"},
			expected: buyout.Inputs{Province: "ON"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.Inputs(); got != tt.expected {
				t.Errorf("Inputs() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestNonNumericFormCalculatesZeroCredit(t *testing.T) {
	raw := Raw{PurchasePrice: "abc", MonthlyPayment: "$50", MonthsRented: "two", Deposit: "@100"}
	result := buyout.Calculate(raw.Inputs())
	if result.TotalCredit != 0 || result.BalanceOwingBeforeTax != 0 || result.BalanceOwingWithTax != 0 {
		t.Errorf("expected zero amounts, got %+v", result)
	}
	if result.RentalPaymentCreditPercentage != 100 {
		t.Errorf("expected 100%% credit bracket, got %d", result.RentalPaymentCreditPercentage)
	}
}
