package format

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// Dollars renders an amount the way the calculator displays results: a dollar
// sign followed by the value to two places, e.g. "$811.50" or "$-44.25".
func Dollars(amount float64) string {
	if amount == 0 {
		amount = 0
	}
	return fmt.Sprintf("$%.2f", amount)
}

// Percent renders a credit percentage label such as "100%".
func Percent(percentage int) string {
	return strconv.Itoa(percentage) + "%"
}

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := currencyPrinter.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}
