package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/buyout-calculator/internal/config"
	"github.com/iwvelando/buyout-calculator/internal/logging"
	"github.com/iwvelando/buyout-calculator/internal/quote"
	"github.com/iwvelando/buyout-calculator/pkg/constants"
	"github.com/iwvelando/buyout-calculator/pkg/output"
	"github.com/iwvelando/buyout-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	price := flag.String("price", "", "purchase price override")
	payment := flag.String("payment", "", "monthly payment override")
	months := flag.String("months", "", "months rented override")
	deposit := flag.String("deposit", "", "deposit paid (including tax) override")
	province := flag.String("province", "", "province or territory code override")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Flags take precedence over the file and environment.
	overrides := []struct {
		flag  *string
		field *string
	}{
		{price, &conf.Buyout.PurchasePrice},
		{payment, &conf.Buyout.MonthlyPayment},
		{months, &conf.Buyout.MonthsRented},
		{deposit, &conf.Buyout.Deposit},
		{province, &conf.Buyout.Province},
	}
	for _, o := range overrides {
		if *o.flag != "" {
			*o.field = *o.flag
		}
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	q := quote.NewCalculator(logger, nil).Compute(conf.Buyout.Inputs())

	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(os.Stdout, q)
	case constants.OutputFormatCSV:
		err = output.CsvFormat(os.Stdout, q)
	case constants.OutputFormatJSON:
		err = output.JSONFormat(os.Stdout, q)
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
