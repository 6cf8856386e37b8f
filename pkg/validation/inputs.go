package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/buyout-calculator/pkg/input"
	"github.com/iwvelando/buyout-calculator/pkg/tax"
)

// ValidateInputs inspects raw calculator inputs and returns warnings for
// values that will be treated differently from how they were written. It
// never rejects input; the calculation always runs.
func ValidateInputs(raw input.Raw) []string {
	var warnings []string

	amounts := []struct {
		label string
		value string
	}{
		{"purchase price", raw.PurchasePrice},
		{"monthly payment", raw.MonthlyPayment},
		{"deposit", raw.Deposit},
	}
	for _, a := range amounts {
		warnings = append(warnings, checkAmount(a.label, a.value)...)
	}

	months, ok := input.ParseMonths(raw.MonthsRented)
	trimmed := strings.TrimSpace(raw.MonthsRented)
	switch {
	case trimmed != "" && !ok:
		warnings = append(warnings, fmt.Sprintf("months rented %q is not a number and will be treated as 0", raw.MonthsRented))
	case ok && months < 0:
		warnings = append(warnings, fmt.Sprintf("months rented is negative (%v)", months))
	case ok && input.Amount(raw.MonthsRented) != months:
		warnings = append(warnings, fmt.Sprintf("months rented %q is truncated to %v whole months", raw.MonthsRented, months))
	}

	if code := input.Province(raw.Province); !tax.Known(code) {
		warnings = append(warnings, fmt.Sprintf("province %q is not recognized; no tax will be applied", code))
	}

	return warnings
}

func checkAmount(label, raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v, ok := input.ParseAmount(raw)
	if !ok {
		return []string{fmt.Sprintf("%s %q is not a number and will be treated as 0", label, raw)}
	}
	if v < 0 {
		return []string{fmt.Sprintf("%s is negative (%v)", label, v)}
	}
	return nil
}
