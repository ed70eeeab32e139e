package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"tipem/internal/format"
	"tipem/internal/i18n"
	"tipem/internal/logging"
	"tipem/internal/tip"
)

// ErrInvalidPrice is returned when the price flag does not hold a usable amount.
var ErrInvalidPrice = errors.New("invalid price")

// RunnerConfig holds all CLI options for a calculation.
type RunnerConfig struct {
	Price    string
	Percent  int
	Locale   string
	Currency string
	Presets  bool
	Verbose  bool
}

// NewLocale resolves the locale and currency named by cfg, detecting the
// system locale when none is given.
func NewLocale(cfg RunnerConfig) (*format.Locale, error) {
	var tag language.Tag
	if cfg.Locale == "" {
		tag = format.Detect()
	} else {
		t, err := format.ParseTag(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
		tag = t
	}

	var opts []format.Option
	if cfg.Currency != "" {
		unit, err := currency.ParseISO(cfg.Currency)
		if err != nil {
			return nil, fmt.Errorf("currency %q: %w", cfg.Currency, err)
		}
		opts = append(opts, format.WithCurrency(unit))
	}

	return format.NewLocale(tag, opts...), nil
}

// Run computes the tip for cfg and writes the result to w.
func Run(cfg RunnerConfig, w io.Writer) error {
	if err := validatePercent(cfg.Percent); err != nil {
		return err
	}

	loc, err := NewLocale(cfg)
	if err != nil {
		return err
	}
	i18n.SetTag(loc.Tag())

	if cfg.Verbose {
		fmt.Fprintf(w, "Locale: %s, currency: %s, tip: %s\n",
			loc.Tag(), loc.Currency(), loc.FormatPercent(cfg.Percent))
	}

	calc := tip.NewCalculator(loc)
	calc.SetPercent(cfg.Percent)
	state := calc.SetText(cfg.Price)
	logging.Debug("CLI calculation",
		zap.String("price", cfg.Price),
		zap.Int("percent", cfg.Percent),
		zap.Stringer("state", state),
	)

	if state != tip.ValidPrice {
		fmt.Fprintln(w, i18n.T(i18n.CLIInvalidPrice))
		return ErrInvalidPrice
	}

	if cfg.Presets {
		PrintPresets(w, loc, calc.Price())
		return nil
	}

	a, _ := calc.Amounts()
	PrintAmounts(w, loc, a)
	return nil
}

// PrintAmounts writes the tip and total lines.
func PrintAmounts(w io.Writer, loc *format.Locale, a tip.Amounts) {
	tipLabel := i18n.T(i18n.LabelTip) + ":"
	totalLabel := i18n.T(i18n.LabelTotal) + ":"
	width := max(len([]rune(tipLabel)), len([]rune(totalLabel))) + 2

	fmt.Fprintf(w, "%s%s\n", pad(tipLabel, width), loc.FormatCurrency(a.Tip))
	fmt.Fprintf(w, "%s%s\n", pad(totalLabel, width), loc.FormatCurrency(a.Total))
}

// PrintPresets writes a table with the tip and total for every preset.
func PrintPresets(w io.Writer, loc *format.Locale, price tip.Price) {
	fmt.Fprintln(w, i18n.TData(i18n.CLIPresetsHeader, map[string]interface{}{
		"Price": loc.FormatCurrency(price.Value()),
	}))
	fmt.Fprintf(w, "%-8s %16s %16s\n", "", i18n.T(i18n.LabelTip), i18n.T(i18n.LabelTotal))
	fmt.Fprintln(w, strings.Repeat("-", 42))
	for _, p := range tip.Presets() {
		a := tip.Compute(price.Value(), p)
		fmt.Fprintf(w, "%-8s %16s %16s\n",
			loc.FormatPercent(p), loc.FormatCurrency(a.Tip), loc.FormatCurrency(a.Total))
	}
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}
