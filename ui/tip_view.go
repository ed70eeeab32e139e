package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shopspring/decimal"

	"tipem/internal/format"
	"tipem/internal/i18n"
	"tipem/internal/logging"
	"tipem/internal/tip"
)

// TipView is the calculator screen: the amount display on top and the
// price, slider and preset inputs below it. Every input event recomputes
// the display from the calculator.
type TipView struct {
	calc *tip.Calculator
	loc  *format.Locale

	promptCard *AmountCard
	tipCard    *AmountCard
	totalCard  *AmountCard
	amounts    *fyne.Container

	priceEntry   *numericEntry
	percentLabel *widget.Label
	slider       *widget.Slider
	presets      *widget.RadioGroup
	presetByName map[string]int

	// syncing is set while the view moves the slider and picker itself so
	// their change callbacks do not feed back.
	syncing bool

	container *fyne.Container
}

// NewTipView creates the screen with an empty price and the default tip.
func NewTipView(loc *format.Locale) *TipView {
	v := &TipView{
		calc: tip.NewCalculator(loc),
		loc:  loc,
	}

	v.promptCard = newPromptCard(i18n.T(i18n.PromptTitle), i18n.T(i18n.PromptHint))
	v.tipCard = NewAmountCard(i18n.T(i18n.LabelTip), "")
	v.totalCard = NewAmountCard(i18n.T(i18n.LabelTotal), "")
	v.amounts = container.NewVBox(v.tipCard, v.totalCard)
	display := container.NewStack(v.promptCard, v.amounts)

	v.priceEntry = newNumericEntry(loc.IsNumberRune)
	v.priceEntry.SetPlaceHolder(loc.FormatNumber(decimal.NewFromInt(10), 2))
	v.priceEntry.OnChanged = v.SetPrice

	priceCaption := widget.NewLabel(i18n.T(i18n.LabelPrice))
	priceCaption.SizeName = theme.SizeNameCaptionText

	v.percentLabel = widget.NewLabel("")
	v.percentLabel.SizeName = theme.SizeNameCaptionText

	v.slider = widget.NewSlider(tip.MinPercent, tip.MaxPercent)
	v.slider.Step = tip.PercentStep
	v.slider.OnChanged = v.onSlider

	var labels []string
	labels, v.presetByName = presetLabels(loc)
	v.presets = widget.NewRadioGroup(labels, v.onPreset)
	v.presets.Horizontal = true

	inputs := container.NewVBox(
		container.NewVBox(priceCaption, v.priceEntry),
		container.NewBorder(nil, nil, v.percentLabel, nil, v.slider),
		container.NewHScroll(v.presets),
	)

	v.container = container.NewPadded(container.NewBorder(display, inputs, nil, nil))

	v.SetPercent(tip.DefaultPercent, "init")
	return v
}

// Container returns the screen's root container.
func (v *TipView) Container() *fyne.Container {
	return v.container
}

// State reports whether the typed price is currently valid.
func (v *TipView) State() tip.State {
	return v.calc.State()
}

// SetPrice handles a change of the price text.
func (v *TipView) SetPrice(text string) {
	state := v.calc.SetText(text)
	logging.LogInput("price", v.calc.Percent(), state.String())
	v.refresh()
}

// SetPercent selects a tip percentage and moves the slider and picker to match.
// The picker is cleared when p is not a preset.
func (v *TipView) SetPercent(p int, source string) {
	p = v.calc.SetPercent(p)

	selected := ""
	if tip.IsPreset(p) {
		selected = v.loc.FormatPercent(p)
	}

	v.syncing = true
	if v.slider.Value != float64(p) {
		v.slider.SetValue(float64(p))
	}
	if v.presets.Selected != selected {
		v.presets.SetSelected(selected)
	}
	v.syncing = false

	v.percentLabel.SetText(v.loc.FormatPercent(p))
	logging.LogInput(source, p, v.calc.State().String())
	v.refresh()
}

func (v *TipView) onSlider(value float64) {
	if v.syncing {
		return
	}
	v.SetPercent(sliderPercent(value), "slider")
}

func (v *TipView) onPreset(label string) {
	if v.syncing || label == "" {
		return
	}
	p, ok := v.presetByName[label]
	if !ok {
		return
	}
	v.SetPercent(p, "preset")
}

func (v *TipView) refresh() {
	a, ok := v.calc.Amounts()
	if !ok {
		v.amounts.Hide()
		v.promptCard.Show()
		return
	}

	v.tipCard.SetValue(v.loc.FormatCurrency(a.Tip))
	v.totalCard.SetValue(v.loc.FormatCurrency(a.Total))
	v.promptCard.Hide()
	v.amounts.Show()
}
