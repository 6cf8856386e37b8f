package quote

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/buyout-calculator/pkg/buyout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	quotes []Quote
}

func (r *recordingObserver) ObserveQuote(q Quote) {
	r.quotes = append(r.quotes, q)
}

func TestCompute(t *testing.T) {
	rec := &recordingObserver{}
	calc := NewCalculator(zap.NewNop(), rec)
	fixed := time.Date(2026, time.March, 10, 15, 4, 5, 0, time.FixedZone("EST", -5*3600))
	calc.now = func() time.Time { return fixed }

	in := buyout.Inputs{PurchasePrice: 1000, MonthlyPayment: 50, MonthsRented: 2, Deposit: 100, Province: "ON"}
	q := calc.Compute(in)

	assert.NotEqual(t, uuid.Nil, q.ID)
	assert.Equal(t, fixed.UTC(), q.CreatedAt)
	assert.Equal(t, "ON (13%)", q.ProvinceLabel)
	assert.Equal(t, in, q.Inputs)
	assert.Equal(t, buyout.Calculate(in), q.Result)
	assert.Len(t, q.Reference(), 8)

	require.Len(t, rec.quotes, 1)
	assert.Equal(t, q.ID, rec.quotes[0].ID)
}

func TestComputeUniqueIDs(t *testing.T) {
	calc := NewCalculator(nil, nil)
	in := buyout.Inputs{Province: "ON"}

	a := calc.Compute(in)
	b := calc.Compute(in)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Result, b.Result)
}

func TestComputeLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	calc := NewCalculator(zap.New(core), nil)

	calc.Compute(buyout.Inputs{MonthsRented: 5, Province: "QC"})

	entries := logs.FilterMessage("buyout computed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "quote.Compute", fields["op"])
	assert.Equal(t, "QC", fields["province"])
	assert.EqualValues(t, 50, fields["creditPercentage"])
}

func TestDisplay(t *testing.T) {
	calc := NewCalculator(nil, nil)

	tests := []struct {
		name     string
		inputs   buyout.Inputs
		expected Display
	}{
		{
			name:   "Short rental",
			inputs: buyout.Inputs{PurchasePrice: 1000, MonthlyPayment: 50, MonthsRented: 2, Deposit: 100, Province: "ON"},
			expected: Display{
				RentalPaymentCreditPercentage: "100%",
				RentalPaymentCredit:           "$100.00",
				DepositCredit:                 "$88.50",
				TotalCredit:                   "$188.50",
				BalanceOwingBeforeTax:         "$811.50",
				BalanceOwingWithTax:           "$917.00",
			},
		},
		{
			name:   "Long rental",
			inputs: buyout.Inputs{PurchasePrice: 1000, MonthlyPayment: 50, MonthsRented: 4, Deposit: 100, Province: "ON"},
			expected: Display{
				RentalPaymentCreditPercentage: "50%",
				RentalPaymentCredit:           "$100.00",
				DepositCredit:                 "$88.50",
				TotalCredit:                   "$188.50",
				BalanceOwingBeforeTax:         "$811.50",
				BalanceOwingWithTax:           "$917.00",
			},
		},
		{
			name:   "Empty form",
			inputs: buyout.Inputs{Province: "ON"},
			expected: Display{
				RentalPaymentCreditPercentage: "100%",
				RentalPaymentCredit:           "$0.00",
				DepositCredit:                 "$0.00",
				TotalCredit:                   "$0.00",
				BalanceOwingBeforeTax:         "$0.00",
				BalanceOwingWithTax:           "$0.00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Compute(tt.inputs).Display())
		})
	}
}
