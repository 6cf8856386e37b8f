// Package input turns raw form values into calculator inputs. Parsing never
// fails: anything that does not start with a number counts as zero.
package input

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/buyout-calculator/pkg/buyout"
	"github.com/iwvelando/buyout-calculator/pkg/constants"
)

var (
	leadingFloat   = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	leadingInteger = regexp.MustCompile(`^[+-]?\d+`)
)

// Raw holds the unparsed values of a buyout form.
type Raw struct {
	PurchasePrice  string `json:"purchasePrice" yaml:"purchasePrice,omitempty"`
	MonthlyPayment string `json:"monthlyPayment" yaml:"monthlyPayment,omitempty"`
	MonthsRented   string `json:"monthsRented" yaml:"monthsRented,omitempty"`
	Deposit        string `json:"deposit" yaml:"deposit,omitempty"`
	Province       string `json:"province" yaml:"province,omitempty"`
}

// Inputs parses every field of r.
func (r Raw) Inputs() buyout.Inputs {
	return buyout.Inputs{
		PurchasePrice:  Amount(r.PurchasePrice),
		MonthlyPayment: Amount(r.MonthlyPayment),
		MonthsRented:   Months(r.MonthsRented),
		Deposit:        Amount(r.Deposit),
		Province:       Province(r.Province),
	}
}

// Amount parses the leading decimal number of raw, so "12.5kg" is 12.5.
// Values with no leading number, such as "$50" or "abc", are 0.
func Amount(raw string) float64 {
	v, _ := ParseAmount(raw)
	return v
}

// ParseAmount is Amount that also reports whether raw held a usable number.
func ParseAmount(raw string) (float64, bool) {
	return parsePrefix(leadingFloat, raw)
}

// Months parses the leading whole number of raw, so "2.7" is 2 and "two" is 0.
// Only decimal digits are read: "0x10" is 0, not 16.
func Months(raw string) float64 {
	v, _ := ParseMonths(raw)
	return v
}

// ParseMonths is Months that also reports whether raw held a usable number.
func ParseMonths(raw string) (float64, bool) {
	return parsePrefix(leadingInteger, raw)
}

// Province normalizes a province code. Blank values select the default province.
func Province(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return constants.DefaultProvince
	}
	return code
}

func parsePrefix(pattern *regexp.Regexp, raw string) (float64, bool) {
	match := pattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	if v == 0 {
		// "-0" displays as "$0.00", not "$-0.00".
		v = 0
	}
	return v, true
}
