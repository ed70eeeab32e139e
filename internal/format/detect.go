package format

import (
	"fmt"
	"strings"

	"github.com/jeandeaual/go-locale"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"tipem/internal/logging"
)

// Fallback is used when the system locale cannot be determined.
var Fallback = language.AmericanEnglish

// systemLocale is replaced in tests.
var systemLocale = locale.GetLocale

// Detect returns the language tag of the current user's locale, or Fallback.
func Detect() language.Tag {
	name, err := systemLocale()
	if err != nil {
		logging.Debug("Locale detection failed", zap.Error(err))
		return Fallback
	}
	tag, err := ParseTag(name)
	if err != nil {
		logging.Debug("Unusable system locale", zap.String("locale", name), zap.Error(err))
		return Fallback
	}
	logging.Debug("Detected locale", zap.String("tag", tag.String()))
	return tag
}

// ParseTag parses a BCP 47 tag or a POSIX locale name such as "de_DE.UTF-8".
func ParseTag(name string) (language.Tag, error) {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und, fmt.Errorf("no locale set")
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	return tag, nil
}
