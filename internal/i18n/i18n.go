// Package i18n loads the UI strings from the embedded YAML message files
// and looks them up for the active language.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tipem/internal/logging"
)

// Message IDs used by the screen and the CLI.
const (
	AppTitle         = "app.title"
	LabelTip         = "label.tip"
	LabelTotal       = "label.total"
	LabelPrice       = "label.price"
	PromptTitle      = "prompt.title"
	PromptHint       = "prompt.hint"
	CLIInvalidPrice  = "cli.invalid_price"
	CLIPresetsHeader = "cli.presets_header"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads the embedded message files and selects lang. Unknown languages
// fall back to English message by message.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			logging.Warn("Skipping message file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	current = lang
}

// SetTag selects the language of tag.
func SetTag(tag language.Tag) {
	base, _ := tag.Base()
	Init(base.String())
}

// Lang returns the language passed to the last Init.
func Lang() string { return current }

// Languages returns the tags of all embedded message files.
func Languages() []language.Tag {
	if bundle == nil {
		Init("en")
	}
	return bundle.LanguageTags()
}

// T translates messageID. Missing IDs are returned unchanged.
func T(messageID string) string {
	return TData(messageID, nil)
}

// TData translates messageID, filling its template with data.
func TData(messageID string, data map[string]interface{}) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
