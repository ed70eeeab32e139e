package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestSeparators(t *testing.T) {
	tests := []struct {
		tag     language.Tag
		decimal string
		group   string
	}{
		{language.AmericanEnglish, ".", ","},
		{language.German, ",", "."},
		{language.MustParse("hi-IN"), ".", ","},
	}

	for _, tt := range tests {
		l := NewLocale(tt.tag)
		if l.DecimalSeparator() != tt.decimal {
			t.Errorf("%s: DecimalSeparator() = %q, want %q", tt.tag, l.DecimalSeparator(), tt.decimal)
		}
		if l.GroupSeparator() != tt.group {
			t.Errorf("%s: GroupSeparator() = %q, want %q", tt.tag, l.GroupSeparator(), tt.group)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	en := NewLocale(language.AmericanEnglish)
	de := NewLocale(language.German)
	fr := NewLocale(language.French)
	hi := NewLocale(language.MustParse("hi-IN"))

	tests := []struct {
		name string
		l    *Locale
		text string
		ok   bool
		want string
	}{
		{"en plain", en, "10.00", true, "10"},
		{"en grouped", en, "1,234.5", true, "1234.5"},
		{"en spaces", en, "  42 ", true, "42"},
		{"en trailing sep", en, "7.", true, "7"},
		{"en leading sep", en, ".5", true, "0.5"},
		{"en negative", en, "-3.5", true, "-3.5"},
		{"en empty", en, "", false, "0"},
		{"en letters", en, "abc", false, "0"},
		{"en only sep", en, ".", false, "0"},
		{"en two seps", en, "1.2.3", false, "0"},
		{"en exponent", en, "1e5", false, "0"},
		{"en plus sign", en, "+5", false, "0"},
		{"de grouped", de, "1.234,5", true, "1234.5"},
		{"de comma", de, "10,00", true, "10"},
		{"de two commas", de, "1,2,3", false, "0"},
		{"fr comma", fr, "12,5", true, "12.5"},
		{"fr dot", fr, "12.5", false, "0"},
		{"hi thousand", hi, "1,000", true, "1000"},
		{"hi lakh grouping", hi, "12,34,567.8", true, "1234567.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.l.ParseDecimal(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseDecimal(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseDecimal(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	en := NewLocale(language.AmericanEnglish)

	got := en.FormatCurrency(decimal.RequireFromString("1.8"))
	if !strings.Contains(got, "$") || !strings.HasSuffix(got, "1.80") {
		t.Errorf("FormatCurrency(1.8) = %q, want $ and 1.80", got)
	}

	got = en.FormatCurrency(decimal.RequireFromString("9999999"))
	if !strings.HasSuffix(got, "9,999,999.00") {
		t.Errorf("FormatCurrency(9999999) = %q, want grouped 9,999,999.00", got)
	}

	// Half away from zero at the currency scale.
	got = en.FormatCurrency(decimal.RequireFromString("0.125"))
	if !strings.HasSuffix(got, "0.13") {
		t.Errorf("FormatCurrency(0.125) = %q, want 0.13", got)
	}

	de := NewLocale(language.German)
	got = de.FormatCurrency(decimal.RequireFromString("11.8"))
	if !strings.Contains(got, "€") || !strings.HasSuffix(got, "11,80") {
		t.Errorf("de FormatCurrency(11.8) = %q, want € and 11,80", got)
	}
}

func TestWithCurrency(t *testing.T) {
	l := NewLocale(language.AmericanEnglish, WithCurrency(currency.JPY))
	if l.Currency() != "JPY" {
		t.Fatalf("Currency() = %q, want JPY", l.Currency())
	}

	got := l.FormatCurrency(decimal.RequireFromString("1234.5"))
	if !strings.HasSuffix(got, "1,235") {
		t.Errorf("FormatCurrency(1234.5) in JPY = %q, want 1,235 with no minor units", got)
	}
}

func TestFormatNumberAndPercent(t *testing.T) {
	en := NewLocale(language.AmericanEnglish)
	if got := en.FormatNumber(decimal.NewFromInt(10), 2); got != "10.00" {
		t.Errorf("FormatNumber(10, 2) = %q, want 10.00", got)
	}
	if got := en.FormatPercent(18); got != "18 %" {
		t.Errorf("FormatPercent(18) = %q, want \"18 %%\"", got)
	}

	de := NewLocale(language.German)
	if got := de.FormatNumber(decimal.NewFromInt(10), 2); got != "10,00" {
		t.Errorf("de FormatNumber(10, 2) = %q, want 10,00", got)
	}
}

func TestIsNumberRune(t *testing.T) {
	en := NewLocale(language.AmericanEnglish)
	for _, r := range "0123456789.," {
		if !en.IsNumberRune(r) {
			t.Errorf("IsNumberRune(%q) = false, want true", r)
		}
	}
	for _, r := range "a-+e$ " {
		if en.IsNumberRune(r) {
			t.Errorf("IsNumberRune(%q) = true, want false", r)
		}
	}

	hi := NewLocale(language.MustParse("hi-IN"))
	if !hi.IsNumberRune(',') {
		t.Error("hi-IN: IsNumberRune(',') = false, want true")
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"en-US", "en-US", false},
		{"de_DE.UTF-8", "de-DE", false},
		{"fr_FR@euro", "fr-FR", false},
		{"C", "", true},
		{"", "", true},
		{"!!", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTag(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseTag(%q) error = %v, want error %v", tt.in, err, tt.err)
			continue
		}
		if !tt.err && got.String() != tt.want {
			t.Errorf("ParseTag(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	orig := systemLocale
	defer func() { systemLocale = orig }()

	systemLocale = func() (string, error) { return "de_DE.UTF-8", nil }
	if got := Detect(); got.String() != "de-DE" {
		t.Errorf("Detect() = %s, want de-DE", got)
	}

	systemLocale = func() (string, error) { return "", errors.New("no locale") }
	if got := Detect(); got != Fallback {
		t.Errorf("Detect() on error = %s, want %s", got, Fallback)
	}

	systemLocale = func() (string, error) { return "POSIX", nil }
	if got := Detect(); got != Fallback {
		t.Errorf("Detect() on POSIX = %s, want %s", got, Fallback)
	}
}
