package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions on desktop; mobile drivers ignore them.
const (
	WindowWidth  = 390
	WindowHeight = 700
)

// Card appearance
const (
	CardCornerRadius = 8
	CardMinHeight    = 96
)

var (
	CardColor     = color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
	CardTextColor = color.White
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
