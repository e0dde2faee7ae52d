package pricetracker

import (
	"cmp"
	"math"
	"slices"

	"github.com/etnz/pricetracker/date"
	"github.com/shopspring/decimal"
)

// VolatilityRecord is the dispersion of a commodity's prices over the volatility window.
type VolatilityRecord struct {
	Commodity string  `json:"commodity"`
	Samples   int     `json:"samples"`
	Mean      Price   `json:"mean_price"`
	StdDev    Price   `json:"std_dev"`
	CV        Measure `json:"cv"`
}

// Volatility computes, for every commodity, the coefficient of variation of its prices
// observed on the latest date of t and one year before.
//
// Prices are grouped by commodity only, whatever their unit. Null prices are skipped. The
// standard deviation is the sample one (n-1 denominator), and
//
//	cv = std_dev / mean * 100
//
// A commodity with fewer than two prices has a null standard deviation and an Insufficient
// cv, which is not the same as a zero volatility. Records are sorted by commodity.
func Volatility(t Table) ([]VolatilityRecord, error) {
	anchor, offset, err := Resolve(t, date.Yearly)
	if err != nil {
		return nil, err
	}
	window := t.OnAny(offset.On, anchor.On)

	groups := make(map[string][]decimal.Decimal)
	for _, o := range window.rows {
		prices := groups[o.Commodity]
		if v, ok := o.Price.Decimal(); ok {
			prices = append(prices, v)
		}
		groups[o.Commodity] = prices
	}

	records := make([]VolatilityRecord, 0, len(groups))
	for commodity, prices := range groups {
		records = append(records, dispersion(commodity, prices))
	}
	slices.SortFunc(records, func(a, b VolatilityRecord) int { return cmp.Compare(a.Commodity, b.Commodity) })
	return records, nil
}

// dispersion computes the volatility record of a single group of prices.
func dispersion(commodity string, prices []decimal.Decimal) VolatilityRecord {
	r := VolatilityRecord{
		Commodity: commodity,
		Samples:   len(prices),
		CV:        nullMeasure(Insufficient),
	}
	if len(prices) == 0 {
		return r
	}
	n := decimal.NewFromInt(int64(len(prices)))
	mean := decimal.Sum(decimal.Zero, prices...).Div(n)
	r.Mean = P(mean)
	if len(prices) < 2 {
		return r
	}

	var squares decimal.Decimal
	for _, p := range prices {
		d := p.Sub(mean)
		squares = squares.Add(d.Mul(d))
	}
	variance := squares.Div(n.Sub(decimal.NewFromInt(1)))
	std := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))
	r.StdDev = P(std)

	if mean.IsZero() {
		r.CV = Measure{Value: Percent(divByZero(std)), Flag: DivByZero}
		return r
	}
	r.CV = validMeasure(std.Mul(hundred).Div(mean).InexactFloat64())
	return r
}

// TopVolatile returns the n records with the largest valid cv, in decreasing order.
//
// Records with a degenerate cv are never part of the top.
func TopVolatile(records []VolatilityRecord, n int) []VolatilityRecord {
	var top []VolatilityRecord
	for _, r := range records {
		if r.CV.OK() {
			top = append(top, r)
		}
	}
	slices.SortStableFunc(top, func(a, b VolatilityRecord) int { return cmp.Compare(b.CV.Float(), a.CV.Float()) })
	if len(top) > n {
		top = top[:n]
	}
	return top
}
