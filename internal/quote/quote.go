// Package quote wraps a buyout calculation with the details needed to present
// it to a customer: a reference number, the time it was produced, and the
// display strings for each amount.
package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/buyout-calculator/pkg/buyout"
	"github.com/iwvelando/buyout-calculator/pkg/format"
	"github.com/iwvelando/buyout-calculator/pkg/tax"
	"go.uber.org/zap"
)

// Quote is one computed buyout.
type Quote struct {
	ID            uuid.UUID     `json:"id"`
	CreatedAt     time.Time     `json:"createdAt"`
	ProvinceLabel string        `json:"provinceLabel"`
	Inputs        buyout.Inputs `json:"inputs"`
	Result        buyout.Result `json:"result"`
}

// Display holds the formatted amounts shown on the results panel.
type Display struct {
	RentalPaymentCreditPercentage string `json:"rentalPaymentCreditPercentage"`
	RentalPaymentCredit           string `json:"rentalPaymentCredit"`
	DepositCredit                 string `json:"depositCredit"`
	TotalCredit                   string `json:"totalCredit"`
	BalanceOwingBeforeTax         string `json:"balanceOwingBeforeTax"`
	BalanceOwingWithTax           string `json:"balanceOwingWithTax"`
}

// Display formats the quote's amounts.
func (q Quote) Display() Display {
	r := q.Result
	return Display{
		RentalPaymentCreditPercentage: format.Percent(r.RentalPaymentCreditPercentage),
		RentalPaymentCredit:           format.Dollars(r.RentalPaymentCreditAmount),
		DepositCredit:                 format.Dollars(r.DepositCredit),
		TotalCredit:                   format.Dollars(r.TotalCredit),
		BalanceOwingBeforeTax:         format.Dollars(r.BalanceOwingBeforeTax),
		BalanceOwingWithTax:           format.Dollars(r.BalanceOwingWithTax),
	}
}

// Reference is the short form of the quote ID printed on documents.
func (q Quote) Reference() string {
	return q.ID.String()[:8]
}

// Observer is notified of every computed quote.
type Observer interface {
	ObserveQuote(Quote)
}

// Calculator produces quotes.
type Calculator struct {
	logger   *zap.Logger
	observer Observer
	now      func() time.Time
}

// NewCalculator returns a Calculator. Both arguments may be nil.
func NewCalculator(logger *zap.Logger, observer Observer) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, observer: observer, now: time.Now}
}

// Compute calculates the buyout for in.
func (c *Calculator) Compute(in buyout.Inputs) Quote {
	q := Quote{
		ID:            uuid.New(),
		CreatedAt:     c.now().UTC(),
		ProvinceLabel: tax.Label(in.Province),
		Inputs:        in,
		Result:        buyout.Calculate(in),
	}

	c.logger.Debug("buyout computed",
		zap.String("op", "quote.Compute"),
		zap.String("id", q.ID.String()),
		zap.String("province", in.Province),
		zap.Int("creditPercentage", q.Result.RentalPaymentCreditPercentage),
		zap.Float64("totalCredit", q.Result.TotalCredit),
		zap.Float64("balanceOwingWithTax", q.Result.BalanceOwingWithTax),
	)

	if c.observer != nil {
		c.observer.ObserveQuote(q)
	}
	return q
}
