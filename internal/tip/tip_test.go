package tip

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// plainReader parses '.'-separated numbers without grouping.
type plainReader struct{}

func (plainReader) ParseDecimal(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text  string
		valid bool
		want  string
	}{
		{"10.00", true, "10"},
		{"0", true, "0"},
		{"50", true, "50"},
		{"  12.5 ", true, "12.5"},
		{"9999999", true, "9999999"},
		{"99999999", true, "9999999"},
		{"", false, "0"},
		{"abc", false, "0"},
		{"-5", false, "0"},
	}

	for _, tt := range tests {
		got := ParsePrice(tt.text, plainReader{})
		if got.Valid() != tt.valid {
			t.Errorf("ParsePrice(%q).Valid() = %v, want %v", tt.text, got.Valid(), tt.valid)
			continue
		}
		if !got.Value().Equal(dec(tt.want)) {
			t.Errorf("ParsePrice(%q).Value() = %s, want %s", tt.text, got.Value(), tt.want)
		}
	}
}

func TestComputeScenarios(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		percent int
		tip     string
		total   string
	}{
		{"default tip", "10.00", 18, "1.80", "11.80"},
		{"zero price", "0", 25, "0.00", "0.00"},
		{"preset 20", "50", 20, "10.00", "60.00"},
		{"max clamp", "9999999", 30, "2999999.70", "12999998.70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Compute(dec(tt.price), tt.percent)
			if got := a.Tip.StringFixed(2); got != tt.tip {
				t.Errorf("Tip = %s, want %s", got, tt.tip)
			}
			if got := a.Total.StringFixed(2); got != tt.total {
				t.Errorf("Total = %s, want %s", got, tt.total)
			}
		})
	}
}

func TestComputeInvariants(t *testing.T) {
	prices := []string{"0", "0.01", "10", "33.33", "123.45", "9999999"}
	for _, ps := range prices {
		p := dec(ps)
		for pct := MinPercent; pct <= MaxPercent; pct += PercentStep {
			a := Compute(p, pct)
			wantTip := p.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100))
			if !a.Tip.Equal(wantTip) {
				t.Errorf("Compute(%s, %d).Tip = %s, want %s", ps, pct, a.Tip, wantTip)
			}
			if !a.Total.Equal(p.Add(a.Tip)) {
				t.Errorf("Compute(%s, %d).Total = %s, want price+tip", ps, pct, a.Total)
			}
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	first := Compute(dec("42.42"), 15)
	second := Compute(dec("42.42"), 15)
	if !first.Tip.Equal(second.Tip) || !first.Total.Equal(second.Total) {
		t.Errorf("Compute not deterministic: %v vs %v", first, second)
	}
}

func TestClampPercent(t *testing.T) {
	tests := map[int]int{
		0:  MinPercent,
		9:  MinPercent,
		10: 10,
		18: 18,
		30: 30,
		31: MaxPercent,
	}
	for in, want := range tests {
		if got := ClampPercent(in); got != want {
			t.Errorf("ClampPercent(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPresets(t *testing.T) {
	got := Presets()
	want := []int{10, 15, 18, 20, 25, 30}
	if len(got) != len(want) {
		t.Fatalf("Presets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Presets()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Mutating the returned slice must not affect later calls.
	got[0] = 99
	if Presets()[0] != 10 {
		t.Error("Presets() returned shared slice")
	}

	if !IsPreset(18) {
		t.Error("IsPreset(18) = false, want true")
	}
	if IsPreset(19) {
		t.Error("IsPreset(19) = true, want false")
	}
}
