// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/buyout-calculator/internal/quote"
	"github.com/iwvelando/buyout-calculator/pkg/buyout"
	"github.com/iwvelando/buyout-calculator/pkg/tax"
)

// FixedID and FixedTime are stamped on quotes built by FixedQuote.
var (
	FixedID   = uuid.MustParse("0f8e2d6a-4b1c-4e39-9a57-3c2b1d0e9f71")
	FixedTime = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
)

// SampleInputs returns the reference rental: $1000 item, $50 a month for two
// months, $100 deposit.
func SampleInputs(province string) buyout.Inputs {
	return buyout.Inputs{
		PurchasePrice:  1000,
		MonthlyPayment: 50,
		MonthsRented:   2,
		Deposit:        100,
		Province:       province,
	}
}

// FixedQuote builds a quote for in with a deterministic ID and timestamp.
func FixedQuote(in buyout.Inputs) quote.Quote {
	return quote.Quote{
		ID:            FixedID,
		CreatedAt:     FixedTime,
		ProvinceLabel: tax.Label(in.Province),
		Inputs:        in,
		Result:        buyout.Calculate(in),
	}
}
