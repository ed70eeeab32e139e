package ui

import (
	"math"

	"tipem/internal/format"
	"tipem/internal/tip"
)

// sliderPercent converts a slider position into a whole tip percentage
// within the allowed range.
func sliderPercent(v float64) int {
	if math.IsNaN(v) {
		return tip.DefaultPercent
	}
	return tip.ClampPercent(int(math.Round(v)))
}

// presetLabels returns the picker labels in preset order and a lookup from
// label back to percentage.
func presetLabels(loc *format.Locale) ([]string, map[string]int) {
	presets := tip.Presets()
	labels := make([]string, len(presets))
	byLabel := make(map[string]int, len(presets))
	for i, p := range presets {
		labels[i] = loc.FormatPercent(p)
		byLabel[labels[i]] = p
	}
	return labels, byLabel
}
