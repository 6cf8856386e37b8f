package export

import (
	"fmt"
	"io"

	"github.com/iwvelando/buyout-calculator/internal/quote"
	"github.com/iwvelando/buyout-calculator/pkg/output"
	"github.com/xuri/excelize/v2"
)

// ExcelOptions configures Excel export behavior
type ExcelOptions struct {
	SheetName      string  `json:"sheet_name"`
	CurrencyFormat string  `json:"currency_format"`
	LabelWidth     float64 `json:"label_width"`
	ValueWidth     float64 `json:"value_width"`
}

// DefaultExcelOptions returns default Excel export options
func DefaultExcelOptions() ExcelOptions {
	return ExcelOptions{
		SheetName:      "Buyout",
		CurrencyFormat: "$#,##0.00",
		LabelWidth:     34,
		ValueWidth:     40,
	}
}

// XLSX writes q to w as a single-sheet workbook. Amounts are stored as
// numbers with a currency format so they stay usable in formulas.
func XLSX(w io.Writer, q quote.Quote, opts ExcelOptions) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := opts.SheetName
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	currencyFormat := opts.CurrencyFormat
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return fmt.Errorf("failed to create currency style: %w", err)
	}

	rows := [][]interface{}{
		{"Field", "Value"},
		{"Reference", q.ID.String()},
		{"Created", q.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{"Province", q.ProvinceLabel},
		{"Tax rate", q.Result.TaxRate},
		{"Months rented", q.Inputs.MonthsRented},
	}
	firstAmountRow := len(rows) + 1
	for _, line := range output.Lines(q) {
		rows = append(rows, []interface{}{line.Label, line.Amount})
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set %s: %w", cell, err)
			}
		}
	}

	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	first := fmt.Sprintf("B%d", firstAmountRow)
	last := fmt.Sprintf("B%d", len(rows))
	if err := f.SetCellStyle(sheet, first, last, currencyStyle); err != nil {
		return fmt.Errorf("failed to style amounts: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", opts.LabelWidth); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", opts.ValueWidth); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
