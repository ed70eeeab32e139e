package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"tipem/internal/tip"
)

// ErrMissingPrice is returned when CLI flags are given without a price.
var ErrMissingPrice = errors.New("missing required flag -price")

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given (GUI mode), and flag.ErrHelp
// after printing usage when help is requested.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, flag.ErrHelp
	}

	cfg := &RunnerConfig{
		Percent: tip.DefaultPercent,
	}

	fs := flag.NewFlagSet("tipem", flag.ContinueOnError)

	fs.StringVar(&cfg.Price, "p", "", "Bill amount (required)")
	fs.StringVar(&cfg.Price, "price", "", "Bill amount (required)")
	fs.IntVar(&cfg.Percent, "t", cfg.Percent, "Tip percentage")
	fs.IntVar(&cfg.Percent, "tip", cfg.Percent, "Tip percentage")
	fs.StringVar(&cfg.Locale, "locale", "", "Locale for parsing and formatting (default: system)")
	fs.StringVar(&cfg.Currency, "currency", "", "ISO 4217 currency code (default: from locale)")
	fs.BoolVar(&cfg.Presets, "presets", false, "Print tip and total for every preset percentage")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Price == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -price <amount>\n\n")
		PrintUsage()
		return nil, ErrMissingPrice
	}

	if err := validatePercent(cfg.Percent); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validatePercent(p int) error {
	if p < tip.MinPercent || p > tip.MaxPercent {
		return fmt.Errorf("tip must be between %d and %d", tip.MinPercent, tip.MaxPercent)
	}
	return nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Tipem tip calculator

Usage: tipem              (start the GUI)
       tipem [flags]      (print tip and total)
       tipem help         (show this message)

FLAGS:
  -p, -price <amount>      Bill amount, written for the locale (required)
  -t, -tip <percent>       Tip percentage, 10-30 (default: 18)
  -locale <tag>            Locale such as en-US or de-DE (default: system)
  -currency <code>         Currency code such as EUR (default: from locale)
  -presets                 Print a row for each preset (10, 15, 18, 20, 25, 30 %%)
  -v, -verbose             Verbose output

ENVIRONMENT:
  TIPEM_LOG_LEVEL          debug, info, warn or error (default: silent)

EXAMPLES:
  # 18 %% tip on a 42.50 bill
  tipem -price 42.50

  # German formatting, 20 %% tip
  tipem -locale de-DE -price 1.234,50 -tip 20

  # Compare all presets
  tipem -price 80 -presets

`)
}
