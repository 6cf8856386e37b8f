// Package tax holds the sales tax rates applied to rentals in each Canadian
// province and territory.
package tax

import (
	"fmt"

	"github.com/iwvelando/buyout-calculator/pkg/mathutil"
)

// Province describes one entry of the rate table.
type Province struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// provinces is listed in the order the calculator presents them.
var provinces = []Province{
	{Code: "ON", Name: "Ontario", Rate: 0.13},
	{Code: "QC", Name: "Quebec", Rate: 0.14975},
	{Code: "BC", Name: "British Columbia", Rate: 0.12},
	{Code: "AB", Name: "Alberta", Rate: 0.05},
	{Code: "MB", Name: "Manitoba", Rate: 0.12},
	{Code: "NB", Name: "New Brunswick", Rate: 0.15},
	{Code: "NL", Name: "Newfoundland and Labrador", Rate: 0.15},
	{Code: "NS", Name: "Nova Scotia", Rate: 0.15},
	{Code: "NT", Name: "Northwest Territories", Rate: 0.05},
	{Code: "NU", Name: "Nunavut", Rate: 0.05},
	{Code: "PE", Name: "Prince Edward Island", Rate: 0.15},
	{Code: "SK", Name: "Saskatchewan", Rate: 0.11},
	{Code: "YT", Name: "Yukon", Rate: 0.05},
}

var byCode = func() map[string]Province {
	m := make(map[string]Province, len(provinces))
	for _, p := range provinces {
		m[p.Code] = p
	}
	return m
}()

// LookupRate returns the tax rate for a province code. Unknown codes have a
// rate of 0.
func LookupRate(code string) float64 {
	p, _ := Lookup(code)
	return p.Rate
}

// Lookup returns the province for a code and whether it is known.
func Lookup(code string) (Province, bool) {
	p, ok := byCode[code]
	return p, ok
}

// Known reports whether code is one of the supported provinces.
func Known(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Provinces returns a copy of the table in display order.
func Provinces() []Province {
	out := make([]Province, len(provinces))
	copy(out, provinces)
	return out
}

// Percent renders a rate as a percentage without trailing zeros, e.g. "14.975%".
func Percent(rate float64) string {
	return mathutil.Decimal(rate).Shift(2).String() + "%"
}

// Label renders the dropdown text for a code, e.g. "ON (13%)". Unknown codes
// are shown with a 0% rate.
func Label(code string) string {
	return fmt.Sprintf("%s (%s)", code, Percent(LookupRate(code)))
}
