// Package constants provides shared constants for the buyout-calculator application.
package constants

// Credit policy constants
const (
	// FullCreditMaxMonths is the longest rental, in months, that still earns full credit.
	FullCreditMaxMonths = 3

	// FullCreditPercentage is the share of rental payments credited for short rentals.
	FullCreditPercentage = 100

	// ReducedCreditPercentage is the share of rental payments credited once FullCreditMaxMonths is exceeded.
	ReducedCreditPercentage = 50

	// CurrencyPlaces is the number of decimal places amounts are rounded to.
	CurrencyPlaces = 2

	// DefaultProvince is used when no province is supplied.
	DefaultProvince = "ON"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Export format constants
const (
	// ExportFormatPDF renders a printable quote.
	ExportFormatPDF = "pdf"

	// ExportFormatXLSX renders a spreadsheet quote.
	ExportFormatXLSX = "xlsx"

	// ExportFormatCSV renders a CSV quote.
	ExportFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. BUYOUT_BUYOUT_PROVINCE.
	EnvPrefix = "BUYOUT"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)
