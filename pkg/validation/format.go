// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/buyout-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateExportFormat checks if the export format is one of the supported document formats.
func ValidateExportFormat(format string) error {
	switch format {
	case constants.ExportFormatPDF, constants.ExportFormatXLSX, constants.ExportFormatCSV:
		return nil
	}
	return fmt.Errorf("expected export format of %s, %s or %s, got %s",
		constants.ExportFormatPDF, constants.ExportFormatXLSX, constants.ExportFormatCSV, format)
}
