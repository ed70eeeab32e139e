package ui

import (
	"fyne.io/fyne/v2"

	"tipem/internal/format"
	"tipem/internal/i18n"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, loc *format.Locale) fyne.Window {
	win := app.NewWindow(i18n.T(i18n.AppTitle))
	win.SetMaster()
	win.Resize(NewWindowSize())

	view := NewTipView(loc)
	win.SetContent(view.Container())
	win.Canvas().Focus(view.priceEntry)

	return win
}
