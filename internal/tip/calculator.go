package tip

// State is the display state of a calculator session.
type State int

const (
	// NoValidPrice is shown until the typed text parses as a price.
	NoValidPrice State = iota
	// ValidPrice is shown while the typed text parses as a price.
	ValidPrice
)

func (s State) String() string {
	switch s {
	case ValidPrice:
		return "valid_price"
	default:
		return "no_valid_price"
	}
}

// Calculator holds the inputs of one screen session and derives the
// amounts from them on demand. It is not safe for concurrent use; all
// calls are expected on the UI event thread.
type Calculator struct {
	reader  NumberReader
	text    string
	price   Price
	percent int
}

// NewCalculator returns a calculator with empty input and the default tip.
func NewCalculator(r NumberReader) *Calculator {
	return &Calculator{
		reader:  r,
		price:   InvalidPrice,
		percent: DefaultPercent,
	}
}

// SetText replaces the typed bill text and returns the resulting state.
func (c *Calculator) SetText(text string) State {
	c.text = text
	c.price = ParsePrice(text, c.reader)
	return c.State()
}

// Text returns the last typed bill text.
func (c *Calculator) Text() string { return c.text }

// Price returns the price parsed from the current text.
func (c *Calculator) Price() Price { return c.price }

// SetPercent stores p clamped to the allowed range and returns the stored value.
func (c *Calculator) SetPercent(p int) int {
	c.percent = ClampPercent(p)
	return c.percent
}

// Percent returns the selected tip percentage.
func (c *Calculator) Percent() int { return c.percent }

// State reports whether the current text holds a valid price.
func (c *Calculator) State() State {
	if c.price.Valid() {
		return ValidPrice
	}
	return NoValidPrice
}

// Amounts computes tip and total from the current inputs.
// ok is false in the NoValidPrice state.
func (c *Calculator) Amounts() (a Amounts, ok bool) {
	if !c.price.Valid() {
		return Amounts{}, false
	}
	return Compute(c.price.Value(), c.percent), true
}
