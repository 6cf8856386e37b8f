// Package output provides utilities for formatting and displaying buyout quotes.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/buyout-calculator/internal/quote"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Line is one labelled row of a quote summary.
type Line struct {
	Label  string
	Amount float64
}

// Lines lists the inputs and results of q in presentation order.
func Lines(q quote.Quote) []Line {
	in, r := q.Inputs, q.Result
	return []Line{
		{"Purchase price", in.PurchasePrice},
		{"Monthly payment", in.MonthlyPayment},
		{"Deposit (incl. tax)", in.Deposit},
		{"Deposit credit", r.DepositCredit},
		{fmt.Sprintf("Rental payment credit (%d%%)", r.RentalPaymentCreditPercentage), r.RentalPaymentCreditAmount},
		{"Total credit", r.TotalCredit},
		{"Balance owing before tax", r.BalanceOwingBeforeTax},
		{"Balance owing with tax", r.BalanceOwingWithTax},
	}
}

// PrettyFormat writes a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, q quote.Quote) error {
	p := message.NewPrinter(language.English)
	if _, err := fmt.Fprintf(w, "--- Buyout quote %s ---\n", q.Reference()); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "%-30s %s\n", "Province", q.ProvinceLabel); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "%-30s %v\n", "Months rented", q.Inputs.MonthsRented); err != nil {
		return err
	}
	for _, line := range Lines(q) {
		if _, err := p.Fprintf(w, "%-30s $%.2f\n", line.Label, line.Amount); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat writes the quote as label/amount records.
func CsvFormat(w io.Writer, q quote.Quote) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"field", "value"},
		{"reference", q.ID.String()},
		{"province", q.Inputs.Province},
		{"tax rate", strconv.FormatFloat(q.Result.TaxRate, 'f', -1, 64)},
		{"months rented", strconv.FormatFloat(q.Inputs.MonthsRented, 'f', -1, 64)},
	}
	for _, line := range Lines(q) {
		records = append(records, []string{line.Label, strconv.FormatFloat(line.Amount, 'f', 2, 64)})
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// CsvString returns the CSV form of a quote.
func CsvString(q quote.Quote) string {
	var buf bytes.Buffer
	_ = CsvFormat(&buf, q)
	return buf.String()
}

type jsonQuote struct {
	quote.Quote
	Display quote.Display `json:"display"`
}

// JSONFormat writes the quote and its display strings as indented JSON.
func JSONFormat(w io.Writer, q quote.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonQuote{Quote: q, Display: q.Display()}); err != nil {
		return fmt.Errorf("failed to encode quote: %w", err)
	}
	return nil
}
