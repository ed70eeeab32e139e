package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// numericEntry is a single-line Entry for amounts. It asks mobile drivers
// for the number keyboard and drops runes that accept rejects.
type numericEntry struct {
	widget.Entry
	accept func(rune) bool
}

func newNumericEntry(accept func(rune) bool) *numericEntry {
	e := &numericEntry{accept: accept}
	e.ExtendBaseWidget(e)
	return e
}

// Keyboard requests the decimal keypad on mobile.
func (e *numericEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// TypedRune blocks characters that cannot be part of an amount.
func (e *numericEntry) TypedRune(r rune) {
	if e.accept != nil && !e.accept(r) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedShortcut rejects pastes containing characters that cannot be part of an amount.
func (e *numericEntry) TypedShortcut(s fyne.Shortcut) {
	if p, ok := s.(*fyne.ShortcutPaste); ok && p.Clipboard != nil && e.accept != nil {
		if strings.IndexFunc(p.Clipboard.Content(), func(r rune) bool { return !e.accept(r) }) >= 0 {
			return
		}
	}
	e.Entry.TypedShortcut(s)
}
