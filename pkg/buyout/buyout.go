// Package buyout computes how much of a rent-to-own rental is credited toward
// buying the item outright, and what is left to pay.
//
// The deposit is always credited in full, minus the sales tax it included.
// Rental payments are credited at 100% for rentals of up to three months and
// at 50% after that. Every amount is rounded to the cent before it feeds the
// next step, so results match what a customer sees on a printed quote.
package buyout

import (
	"github.com/iwvelando/buyout-calculator/pkg/constants"
	"github.com/iwvelando/buyout-calculator/pkg/mathutil"
	"github.com/iwvelando/buyout-calculator/pkg/tax"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Inputs are the figures a buyout is computed from. Amounts are not checked
// for sign; negative values flow through the arithmetic.
type Inputs struct {
	PurchasePrice  float64 `json:"purchasePrice"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthsRented   float64 `json:"monthsRented"`
	Deposit        float64 `json:"deposit"`
	Province       string  `json:"province"`
}

// RentalCredit is the portion of rental payments applied to the purchase.
type RentalCredit struct {
	Percentage int     `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// Result holds every amount derived from a set of Inputs.
type Result struct {
	TaxRate                       float64 `json:"taxRate"`
	DepositCredit                 float64 `json:"depositCredit"`
	RentalPaymentCreditPercentage int     `json:"rentalPaymentCreditPercentage"`
	RentalPaymentCreditAmount     float64 `json:"rentalPaymentCreditAmount"`
	TotalCredit                   float64 `json:"totalCredit"`
	BalanceOwingBeforeTax         float64 `json:"balanceOwingBeforeTax"`
	BalanceOwingWithTax           float64 `json:"balanceOwingWithTax"`
}

// DepositCredit strips the tax out of a tax-inclusive deposit.
func DepositCredit(deposit, taxRate float64) float64 {
	return depositCredit(mathutil.Decimal(deposit), mathutil.Decimal(taxRate)).InexactFloat64()
}

func depositCredit(deposit, taxRate decimal.Decimal) decimal.Decimal {
	divisor := one.Add(taxRate)
	if divisor.IsZero() {
		return decimal.Zero
	}
	return mathutil.RoundCents(deposit.Div(divisor))
}

// CreditPercentage returns the share of rental payments credited after
// monthsRented months. Exactly three months still earns full credit.
func CreditPercentage(monthsRented float64) int {
	if monthsRented <= constants.FullCreditMaxMonths {
		return constants.FullCreditPercentage
	}
	return constants.ReducedCreditPercentage
}

// RentalPaymentCredit credits the rental payments made so far at the
// percentage earned for the rental's length.
func RentalPaymentCredit(monthlyPayment, monthsRented float64) RentalCredit {
	pct := CreditPercentage(monthsRented)
	amount := rentalPaymentCredit(mathutil.Decimal(monthlyPayment), mathutil.Decimal(monthsRented), pct)
	return RentalCredit{Percentage: pct, Amount: amount.InexactFloat64()}
}

func rentalPaymentCredit(monthlyPayment, monthsRented decimal.Decimal, pct int) decimal.Decimal {
	share := decimal.NewFromInt(int64(pct)).Div(hundred)
	return mathutil.RoundCents(share.Mul(monthlyPayment.Mul(monthsRented)))
}

// TotalCredit adds the deposit and rental payment credits.
func TotalCredit(depositCredit, rentalPaymentCredit float64) float64 {
	return mathutil.RoundCents(mathutil.Decimal(depositCredit).Add(mathutil.Decimal(rentalPaymentCredit))).InexactFloat64()
}

// BalanceOwingBeforeTax is what remains of the purchase price once credit is
// applied. It is negative when credit exceeds the price.
func BalanceOwingBeforeTax(purchasePrice, totalCredit float64) float64 {
	return mathutil.RoundCents(mathutil.Decimal(purchasePrice).Sub(mathutil.Decimal(totalCredit))).InexactFloat64()
}

// BalanceOwingWithTax applies sales tax to the pre-tax balance.
func BalanceOwingWithTax(balanceOwingBeforeTax, taxRate float64) float64 {
	return mathutil.RoundCents(mathutil.Decimal(balanceOwingBeforeTax).Mul(one.Add(mathutil.Decimal(taxRate)))).InexactFloat64()
}

// Calculate runs the full buyout computation for in.
func Calculate(in Inputs) Result {
	rate := tax.LookupRate(in.Province)
	rental := RentalPaymentCredit(in.MonthlyPayment, in.MonthsRented)
	deposit := DepositCredit(in.Deposit, rate)
	total := TotalCredit(deposit, rental.Amount)
	before := BalanceOwingBeforeTax(in.PurchasePrice, total)

	return Result{
		TaxRate:                       rate,
		DepositCredit:                 deposit,
		RentalPaymentCreditPercentage: rental.Percentage,
		RentalPaymentCreditAmount:     rental.Amount,
		TotalCredit:                   total,
		BalanceOwingBeforeTax:         before,
		BalanceOwingWithTax:           BalanceOwingWithTax(before, rate),
	}
}
