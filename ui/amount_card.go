package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AmountCard is a rounded colored panel with a caption above a large value.
type AmountCard struct {
	widget.BaseWidget
	Title string
	Value string

	titleStyle fyne.TextStyle
	titleSize  float32
	valueSize  float32
}

// NewAmountCard creates a card showing a light caption and a bold amount.
func NewAmountCard(title, value string) *AmountCard {
	c := &AmountCard{
		Title:     title,
		Value:     value,
		titleSize: theme.TextSize(),
		valueSize: theme.TextHeadingSize(),
	}
	c.ExtendBaseWidget(c)
	return c
}

// newPromptCard creates the card shown while there is no valid price.
func newPromptCard(title, hint string) *AmountCard {
	c := &AmountCard{
		Title:      title,
		Value:      hint,
		titleStyle: fyne.TextStyle{Bold: true},
		titleSize:  theme.TextHeadingSize(),
		valueSize:  theme.TextHeadingSize(),
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetValue replaces the displayed amount.
func (c *AmountCard) SetValue(value string) {
	if c.Value == value {
		return
	}
	c.Value = value
	c.Refresh()
}

// SetTitle replaces the caption.
func (c *AmountCard) SetTitle(title string) {
	c.Title = title
	c.Refresh()
}

// CreateRenderer returns a custom renderer.
func (c *AmountCard) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)

	bg := canvas.NewRectangle(CardColor)
	bg.CornerRadius = CardCornerRadius

	title := canvas.NewText(c.Title, CardTextColor)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = c.titleStyle
	title.TextSize = c.titleSize

	value := canvas.NewText(c.Value, CardTextColor)
	value.Alignment = fyne.TextAlignCenter
	value.TextStyle = fyne.TextStyle{Bold: true}
	value.TextSize = c.valueSize

	return &amountCardRenderer{
		card:    c,
		bg:      bg,
		title:   title,
		value:   value,
		objects: []fyne.CanvasObject{bg, title, value},
	}
}

type amountCardRenderer struct {
	card    *AmountCard
	bg      *canvas.Rectangle
	title   *canvas.Text
	value   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *amountCardRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	titleMin := r.title.MinSize()
	valueMin := r.value.MinSize()
	gap := theme.Padding()
	top := (size.Height - titleMin.Height - gap - valueMin.Height) / 2

	r.title.Move(fyne.NewPos(0, top))
	r.title.Resize(fyne.NewSize(size.Width, titleMin.Height))
	r.value.Move(fyne.NewPos(0, top+titleMin.Height+gap))
	r.value.Resize(fyne.NewSize(size.Width, valueMin.Height))
}

func (r *amountCardRenderer) MinSize() fyne.Size {
	titleMin := r.title.MinSize()
	valueMin := r.value.MinSize()
	pad := theme.InnerPadding()

	width := fyne.Max(titleMin.Width, valueMin.Width) + pad*4
	height := titleMin.Height + theme.Padding() + valueMin.Height + pad*2
	return fyne.NewSize(width, fyne.Max(height, CardMinHeight))
}

func (r *amountCardRenderer) Refresh() {
	r.title.Text = r.card.Title
	r.value.Text = r.card.Value

	r.bg.Refresh()
	r.title.Refresh()
	r.value.Refresh()
}

func (r *amountCardRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *amountCardRenderer) Destroy()                     {}
