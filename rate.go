package pricetracker

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange returns the relative change from 'from' to 'to', in percent:
//
//	(to - from) / from * 100
//
// It never panics: a null operand yields a Missing measure, and a zero 'from' a DivByZero
// measure holding +Inf, -Inf or NaN (when 'to' is also zero).
func PercentChange(from, to Price) Measure {
	f, okf := from.Decimal()
	t, okt := to.Decimal()
	if !okf || !okt {
		return nullMeasure(Missing)
	}
	if f.IsZero() {
		return Measure{Value: Percent(divByZero(t)), Flag: DivByZero}
	}
	return validMeasure(t.Sub(f).Mul(hundred).Div(f).InexactFloat64())
}

// divByZero returns the IEEE 754 result of num / 0.
func divByZero(num decimal.Decimal) float64 {
	switch num.Sign() {
	case 1:
		return math.Inf(1)
	case -1:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}
