package pricetracker

import (
	"encoding/json"
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	switch {
	case math.IsInf(float64(p), 1):
		return "∞"
	case math.IsInf(float64(p), -1):
		return "-∞"
	case math.IsNaN(float64(p)):
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	if math.IsInf(float64(p), 0) || math.IsNaN(float64(p)) {
		return p.String()
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// Flag qualifies how a Measure was obtained.
type Flag int

const (
	// Valid is a regular, finite value.
	Valid Flag = iota
	// Missing means an operand was null.
	Missing
	// DivByZero means the denominator was zero; the value is ±Inf, or NaN for 0/0.
	DivByZero
	// Insufficient means there were not enough samples to compute the value.
	Insufficient
)

func (f Flag) String() string {
	switch f {
	case Valid:
		return "valid"
	case Missing:
		return "missing"
	case DivByZero:
		return "division-by-zero"
	case Insufficient:
		return "insufficient-data"
	default:
		return fmt.Sprintf("flag(%d)", int(f))
	}
}

// Measure is a derived percentage together with its data-quality flag.
//
// Degenerate computations never fail: they produce a Measure with a non Valid flag so that
// they can be displayed for what they are. An "insufficient data" measure is never 0.
type Measure struct {
	Value Percent
	Flag  Flag
}

func validMeasure(v float64) Measure { return Measure{Value: Percent(v), Flag: Valid} }

func nullMeasure(f Flag) Measure { return Measure{Value: Percent(math.NaN()), Flag: f} }

// OK reports whether the measure is a regular finite value.
func (m Measure) OK() bool { return m.Flag == Valid }

// Float returns the measure as a float64 (NaN or ±Inf for degenerate measures).
func (m Measure) Float() float64 { return float64(m.Value) }

func (m Measure) String() string {
	if m.Flag == Missing || m.Flag == Insufficient {
		return "n/a"
	}
	return m.Value.String()
}

func (m Measure) SignedString() string {
	if m.Flag == Missing || m.Flag == Insufficient {
		return "n/a"
	}
	return m.Value.SignedString()
}

// MarshalJSON encodes the measure as {"value": 12.5, "flag": "valid"}.
//
// JSON has no infinity, so degenerate values are encoded as null and described by the flag.
func (m Measure) MarshalJSON() ([]byte, error) {
	type jmeasure struct {
		Value *float64 `json:"value"`
		Flag  string   `json:"flag"`
	}
	j := jmeasure{Flag: m.Flag.String()}
	if v := m.Float(); !math.IsInf(v, 0) && !math.IsNaN(v) {
		j.Value = &v
	}
	return json.Marshal(j)
}
