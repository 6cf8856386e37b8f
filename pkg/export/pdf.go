// Package export renders buyout quotes as downloadable documents.
package export

import (
	"fmt"
	"io"

	"github.com/iwvelando/buyout-calculator/internal/quote"
	"github.com/iwvelando/buyout-calculator/pkg/format"
	"github.com/iwvelando/buyout-calculator/pkg/output"
	"github.com/jung-kurt/gofpdf"
)

// PDFOptions configures PDF generation
type PDFOptions struct {
	PageSize    string  `json:"page_size"`   // A4, Letter, Legal
	Orientation string  `json:"orientation"` // portrait, landscape
	Title       string  `json:"title"`
	DateFormat  string  `json:"date_format"`
	FontFamily  string  `json:"font_family"`
	FontSize    float64 `json:"font_size"`
	Margin      float64 `json:"margin"`
}

// DefaultPDFOptions returns default PDF options
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		PageSize:    "Letter",
		Orientation: "portrait",
		Title:       "Rent-to-Own Buyout Quote",
		DateFormat:  "2006-01-02 15:04 MST",
		FontFamily:  "Arial",
		FontSize:    11,
		Margin:      20,
	}
}

// PDF writes q to w as a one-page PDF.
func PDF(w io.Writer, q quote.Quote, opts PDFOptions) error {
	orientation := "P"
	if opts.Orientation == "landscape" {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", opts.PageSize, "")
	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreationDate(q.CreatedAt)
	pdf.AddPage()

	pdf.SetFont(opts.FontFamily, "B", opts.FontSize+5)
	pdf.CellFormat(0, 10, opts.Title, "", 1, "C", false, 0, "")

	pdf.SetFont(opts.FontFamily, "", opts.FontSize-1)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, fmt.Sprintf("Reference %s", q.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, q.CreatedAt.Format(opts.DateFormat), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pageWidth, _ := pdf.GetPageSize()
	labelWidth := (pageWidth - 2*opts.Margin) * 0.65
	amountWidth := (pageWidth - 2*opts.Margin) - labelWidth

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(opts.FontFamily, "", opts.FontSize)
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont(opts.FontFamily, style, opts.FontSize)
		pdf.CellFormat(labelWidth, 8, label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, 8, value, "B", 1, "R", false, 0, "")
	}

	row("Province", q.ProvinceLabel, false)
	row("Months rented", fmt.Sprintf("%v", q.Inputs.MonthsRented), false)
	lines := output.Lines(q)
	for i, line := range lines {
		row(line.Label, format.Currency(line.Amount), i == len(lines)-1)
	}

	pdf.Ln(8)
	pdf.SetFont(opts.FontFamily, "I", opts.FontSize-2)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(0, 5, "The deposit is credited in full, less the sales tax it included. "+
		"Rental payments are credited at 100% for rentals of up to three months and at 50% afterwards.", "", "L", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
