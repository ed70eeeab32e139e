package format

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// separatorSample is formatted once per locale; the runes between its digits
// are the grouping and decimal separators. Seven integer digits so that
// locales with a minimum grouping of two still group.
const separatorSample = 1234567.8

// Locale parses and formats numbers and currency amounts for one language tag.
type Locale struct {
	tag         language.Tag
	printer     *message.Printer
	decimalSep  string
	groupSep    string
	unit        currency.Unit
	hasCurrency bool
	scale       int
}

// Option customizes a Locale.
type Option func(*Locale)

// WithCurrency overrides the currency derived from the language tag.
func WithCurrency(u currency.Unit) Option {
	return func(l *Locale) {
		l.unit = u
		l.hasCurrency = true
	}
}

// NewLocale builds a Locale from CLDR data for tag.
func NewLocale(tag language.Tag, opts ...Option) *Locale {
	l := &Locale{
		tag:        tag,
		printer:    message.NewPrinter(tag),
		decimalSep: ".",
		groupSep:   ",",
		scale:      2,
	}
	l.readSeparators()

	if u, conf := currency.FromTag(tag); conf != language.No {
		l.unit = u
		l.hasCurrency = true
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.hasCurrency {
		l.scale, _ = currency.Standard.Rounding(l.unit)
	}
	return l
}

func (l *Locale) readSeparators() {
	sample := l.printer.Sprint(number.Decimal(separatorSample, number.Scale(1)))

	// The last group boundary sits between 4 and 5 for both western
	// (1,234,567) and Indian (12,34,567) grouping.
	four := strings.IndexRune(sample, '4')
	five := strings.IndexRune(sample, '5')
	seven := strings.IndexRune(sample, '7')
	eight := strings.LastIndex(sample, "8")
	if four < 0 || five < four || seven < 0 || eight < seven {
		// Non-ASCII digits; keep the defaults.
		return
	}
	l.groupSep = sample[four+1 : five]
	if sep := sample[seven+1 : eight]; sep != "" {
		l.decimalSep = sep
	}
}

// Tag returns the language tag of the locale.
func (l *Locale) Tag() language.Tag { return l.tag }

// DecimalSeparator returns the locale's decimal separator.
func (l *Locale) DecimalSeparator() string { return l.decimalSep }

// GroupSeparator returns the locale's grouping separator, possibly empty.
func (l *Locale) GroupSeparator() string { return l.groupSep }

// Currency returns the ISO code of the locale's currency, or "" if none.
func (l *Locale) Currency() string {
	if !l.hasCurrency {
		return ""
	}
	return l.unit.String()
}

// ParseDecimal reads text written with the locale's separators. Grouping
// separators and whitespace are ignored; at most one decimal separator and
// one leading minus sign are accepted. Exponents and other signs are not.
func (l *Locale) ParseDecimal(text string) (decimal.Decimal, bool) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if l.groupSep != "" && l.groupSep != l.decimalSep {
		s = strings.ReplaceAll(s, l.groupSep, "")
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	digits, points := 0, 0
	for rest := s; rest != ""; {
		if strings.HasPrefix(rest, l.decimalSep) {
			points++
			b.WriteByte('.')
			rest = rest[len(l.decimalSep):]
			continue
		}
		c := rest[0]
		if c < '0' || c > '9' {
			return decimal.Decimal{}, false
		}
		digits++
		b.WriteByte(c)
		rest = rest[1:]
	}
	if digits == 0 || points > 1 {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// IsNumberRune reports whether r may appear in a typed bill amount.
func (l *Locale) IsNumberRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	s := string(r)
	if s == l.decimalSep || s == l.groupSep {
		return true
	}
	return unicode.IsSpace(r) && strings.IndexFunc(l.groupSep, unicode.IsSpace) >= 0
}

// FormatCurrency renders amount with the locale's currency symbol, rounded
// half away from zero to the currency's minor units. It returns "" when the
// locale has no currency.
func (l *Locale) FormatCurrency(amount decimal.Decimal) string {
	if !l.hasCurrency {
		return ""
	}
	f := amount.Round(int32(l.scale)).InexactFloat64()
	return l.printer.Sprint(currency.Symbol(l.unit.Amount(f)))
}

// FormatNumber renders amount with grouping and exactly scale fraction digits.
func (l *Locale) FormatNumber(amount decimal.Decimal, scale int) string {
	f := amount.Round(int32(scale)).InexactFloat64()
	return l.printer.Sprint(number.Decimal(f, number.Scale(scale)))
}

// FormatPercent renders a tip percentage as shown on the slider and presets.
func (l *Locale) FormatPercent(p int) string {
	return l.printer.Sprintf("%d %%", p)
}
