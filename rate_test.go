package pricetracker

import (
	"math"
	"testing"
)

func TestPercentChange(t *testing.T) {
	testCases := []struct {
		from, to float64
		want     float64
	}{
		{20, 25, 25},
		{25, 20, -20},
		{100, 100, 0},
		{4, 5, 25},
		{3, 4, 100.0 / 3},
		{0.5, 2, 300},
		{-10, -5, -50},
	}
	for _, tc := range testCases {
		got := PercentChange(P(tc.from), P(tc.to))
		if got.Flag != Valid {
			t.Errorf("PercentChange(%v, %v).Flag = %v, want %v", tc.from, tc.to, got.Flag, Valid)
		}
		if !got.Value.Equal(Percent(tc.want)) {
			t.Errorf("PercentChange(%v, %v) = %v, want %v", tc.from, tc.to, got.Float(), tc.want)
		}
		// Same as the floating point formula.
		if formula := (tc.to - tc.from) / tc.from * 100; !got.Value.Equal(Percent(formula)) {
			t.Errorf("PercentChange(%v, %v) = %v, want (to-from)/from*100 = %v", tc.from, tc.to, got.Float(), formula)
		}
	}
}

func TestPercentChange_Exact(t *testing.T) {
	if got := PercentChange(P(20), P(25)).Float(); got != 25.0 {
		t.Errorf("PercentChange(20, 25) = %v, want exactly 25", got)
	}
}

func TestPercentChange_ZeroBase(t *testing.T) {
	testCases := []struct {
		to    float64
		check func(float64) bool
		name  string
	}{
		{5, func(v float64) bool { return math.IsInf(v, 1) }, "+Inf"},
		{-5, func(v float64) bool { return math.IsInf(v, -1) }, "-Inf"},
		{0, math.IsNaN, "NaN"},
	}
	for _, tc := range testCases {
		got := PercentChange(P(0), P(tc.to))
		if got.Flag != DivByZero {
			t.Errorf("PercentChange(0, %v).Flag = %v, want %v", tc.to, got.Flag, DivByZero)
		}
		if !tc.check(got.Float()) {
			t.Errorf("PercentChange(0, %v) = %v, want %s", tc.to, got.Float(), tc.name)
		}
	}
}

func TestPercentChange_Null(t *testing.T) {
	for _, tc := range []struct{ from, to Price }{
		{NullPrice(), P(25)},
		{P(20), NullPrice()},
		{NullPrice(), NullPrice()},
	} {
		got := PercentChange(tc.from, tc.to)
		if got.Flag != Missing {
			t.Errorf("PercentChange(%q, %q).Flag = %v, want %v", tc.from, tc.to, got.Flag, Missing)
		}
		if got.String() != "n/a" {
			t.Errorf("PercentChange(%q, %q).String() = %q, want %q", tc.from, tc.to, got.String(), "n/a")
		}
	}
}

func TestMeasure_String(t *testing.T) {
	testCases := []struct {
		m          Measure
		str, signd string
	}{
		{validMeasure(25), "25.00%", "+25.00%"},
		{validMeasure(-3.456), "-3.46%", "-3.46%"},
		{validMeasure(0), "0.00%", "-"},
		{Measure{Value: Percent(math.Inf(1)), Flag: DivByZero}, "∞", "∞"},
		{Measure{Value: Percent(math.Inf(-1)), Flag: DivByZero}, "-∞", "-∞"},
		{nullMeasure(Missing), "n/a", "n/a"},
		{nullMeasure(Insufficient), "n/a", "n/a"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.str {
			t.Errorf("%#v.String() = %q, want %q", tc.m, got, tc.str)
		}
		if got := tc.m.SignedString(); got != tc.signd {
			t.Errorf("%#v.SignedString() = %q, want %q", tc.m, got, tc.signd)
		}
	}
}

func TestMeasure_MarshalJSON(t *testing.T) {
	testCases := []struct {
		m    Measure
		want string
	}{
		{validMeasure(25), `{"value":25,"flag":"valid"}`},
		{Measure{Value: Percent(math.Inf(1)), Flag: DivByZero}, `{"value":null,"flag":"division-by-zero"}`},
		{nullMeasure(Insufficient), `{"value":null,"flag":"insufficient-data"}`},
	}
	for _, tc := range testCases {
		got, err := tc.m.MarshalJSON()
		if err != nil {
			t.Errorf("MarshalJSON() unexpected error: %v", err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("MarshalJSON() = %s, want %s", got, tc.want)
		}
	}
}
