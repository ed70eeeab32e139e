package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"tipem/internal/cli"
	"tipem/internal/format"
	"tipem/internal/i18n"
	"tipem/internal/logging"
	"tipem/ui"
)

func main() {
	if err := logging.Initialize(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := cli.ParseFlags()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No flags provided = use GUI
	if cfg == nil {
		runGUI()
		logging.Sync()
		return
	}

	// CLI mode
	if err := cli.Run(*cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func runGUI() {
	tag := format.Detect()
	i18n.SetTag(tag)
	logging.Info("Starting GUI",
		zap.String("locale", tag.String()),
		zap.String("lang", i18n.Lang()),
		zap.Int("languages", len(i18n.Languages())),
	)

	a := app.NewWithID("com.tipem.app")
	win := ui.BuildMainWindow(a, format.NewLocale(tag))
	win.ShowAndRun()
}
