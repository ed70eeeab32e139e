package tip

import (
	"github.com/shopspring/decimal"
)

// Percentage bounds for the slider and presets.
const (
	MinPercent     = 10
	MaxPercent     = 30
	PercentStep    = 1
	DefaultPercent = 18
)

// MaxPrice is the largest bill price accepted; larger inputs are clamped to it.
var MaxPrice = decimal.NewFromInt(9_999_999)

var presets = []int{10, 15, 18, 20, 25, 30}

var hundred = decimal.NewFromInt(100)

// Presets returns a copy of the preset tip percentages in ascending order.
func Presets() []int {
	out := make([]int, len(presets))
	copy(out, presets)
	return out
}

// IsPreset reports whether p is one of the preset percentages.
func IsPreset(p int) bool {
	for _, v := range presets {
		if v == p {
			return true
		}
	}
	return false
}

// ClampPercent limits p to [MinPercent, MaxPercent].
func ClampPercent(p int) int {
	if p < MinPercent {
		return MinPercent
	}
	if p > MaxPercent {
		return MaxPercent
	}
	return p
}

// NumberReader converts user-typed text into a decimal using some
// locale's separators. ok is false when the text is not a number.
type NumberReader interface {
	ParseDecimal(text string) (d decimal.Decimal, ok bool)
}

// Price is a parsed bill price, or the invalid marker.
type Price struct {
	value decimal.Decimal
	valid bool
}

// InvalidPrice is the result of parsing text that is not a usable price.
var InvalidPrice = Price{}

// NewPrice returns a valid Price for d, clamped to MaxPrice.
// Negative amounts yield InvalidPrice.
func NewPrice(d decimal.Decimal) Price {
	if d.IsNegative() {
		return InvalidPrice
	}
	if d.GreaterThan(MaxPrice) {
		d = MaxPrice
	}
	return Price{value: d, valid: true}
}

// Valid reports whether the price parsed successfully.
func (p Price) Valid() bool { return p.valid }

// Value returns the price amount. It is zero for an invalid price.
func (p Price) Value() decimal.Decimal {
	if !p.valid {
		return decimal.Zero
	}
	return p.value
}

// ParsePrice reads text with r and returns the clamped price, or
// InvalidPrice for empty, unparseable or negative input.
func ParsePrice(text string, r NumberReader) Price {
	d, ok := r.ParseDecimal(text)
	if !ok {
		return InvalidPrice
	}
	return NewPrice(d)
}

// Amounts holds the tip and total computed for a price and percentage.
type Amounts struct {
	Tip   decimal.Decimal
	Total decimal.Decimal
}

// Compute returns the tip (price * percent / 100) and the total (price + tip).
// No rounding is applied; round at display time.
func Compute(price decimal.Decimal, percent int) Amounts {
	tipAmount := price.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
	return Amounts{
		Tip:   tipAmount,
		Total: price.Add(tipAmount),
	}
}
