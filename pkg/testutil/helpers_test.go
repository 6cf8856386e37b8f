package testutil

import (
	"testing"
)

func TestSampleInputs(t *testing.T) {
	in := SampleInputs("QC")
	if in.Province != "QC" {
		t.Errorf("expected province QC, got %s", in.Province)
	}
	if in.PurchasePrice != 1000 || in.MonthlyPayment != 50 || in.MonthsRented != 2 || in.Deposit != 100 {
		t.Errorf("unexpected sample inputs %+v", in)
	}
}

func TestFixedQuote(t *testing.T) {
	tests := []struct {
		province string
		label    string
		withTax  float64
	}{
		{"ON", "ON (13%)", 917.00},
		{"QC", "QC (14.975%)", 934.77},
		{"XX", "XX (0%)", 800.00},
	}

	for _, tt := range tests {
		t.Run(tt.province, func(t *testing.T) {
			q := FixedQuote(SampleInputs(tt.province))
			if q.ID != FixedID {
				t.Errorf("expected fixed ID, got %s", q.ID)
			}
			if !q.CreatedAt.Equal(FixedTime) {
				t.Errorf("expected fixed time, got %s", q.CreatedAt)
			}
			if q.ProvinceLabel != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, q.ProvinceLabel)
			}
			if q.Result.BalanceOwingWithTax != tt.withTax {
				t.Errorf("expected balance with tax %.2f, got %.2f", tt.withTax, q.Result.BalanceOwingWithTax)
			}
		})
	}

	if got := FixedQuote(SampleInputs("ON")).Reference(); got != "0f8e2d6a" {
		t.Errorf("expected reference 0f8e2d6a, got %s", got)
	}
}
