package pricetracker

import (
	"github.com/etnz/pricetracker/date"
)

// InflationRecord is the price change of a commodity, in a given unit, between the offset
// and the anchor dates.
type InflationRecord struct {
	Commodity string  `json:"commodity"`
	Unit      string  `json:"unit"`
	From      Price   `json:"from_price"`
	To        Price   `json:"to_price"`
	Rate      Measure `json:"inflation_rate"`
}

// Inflation computes the inflation of every commodity between the latest date in t and one
// period before.
//
// Errors are those of Resolve; in particular a table without the required history returns an
// error matching ErrInsufficientHistory rather than an empty result.
func Inflation(t Table, p date.Period) ([]InflationRecord, error) {
	anchor, offset, err := Resolve(t, p)
	if err != nil {
		return nil, err
	}
	return Join(anchor, offset), nil
}

// YearlyInflation is Inflation over one year.
func YearlyInflation(t Table) ([]InflationRecord, error) { return Inflation(t, date.Yearly) }

// MonthlyInflation is Inflation over one month.
func MonthlyInflation(t Table) ([]InflationRecord, error) { return Inflation(t, date.Monthly) }

// Join pairs the quotes of the anchor and offset snapshots that share the same commodity and
// unit, and computes the rate from the offset price to the anchor price.
//
// It is an inner join: a commodity quoted in only one snapshot is dropped. When a key is
// quoted several times, every pairing is produced. Records follow the anchor order.
func Join(anchor, offset Snapshot) []InflationRecord {
	previous := make(map[key][]Price)
	for _, q := range offset.Quotes {
		previous[q.key()] = append(previous[q.key()], q.Price)
	}

	records := []InflationRecord{}
	for _, q := range anchor.Quotes {
		for _, from := range previous[q.key()] {
			records = append(records, InflationRecord{
				Commodity: q.Commodity,
				Unit:      q.Unit,
				From:      from,
				To:        q.Price,
				Rate:      PercentChange(from, q.Price),
			})
		}
	}
	return records
}

// InflationSummary gives the highest, lowest and average of the computable rates of an
// inflation table.
//
// All three are Insufficient when no rate could be computed.
type InflationSummary struct {
	Count   int     `json:"count"`
	Highest Measure `json:"highest"`
	Lowest  Measure `json:"lowest"`
	Average Measure `json:"average"`
}

// Summarize computes the summary of records. Degenerate rates (missing or zero base price)
// are left out.
func Summarize(records []InflationRecord) InflationSummary {
	s := InflationSummary{
		Highest: nullMeasure(Insufficient),
		Lowest:  nullMeasure(Insufficient),
		Average: nullMeasure(Insufficient),
	}
	sum := 0.0
	for _, r := range records {
		if !r.Rate.OK() {
			continue
		}
		v := r.Rate.Float()
		if s.Count == 0 || v > s.Highest.Float() {
			s.Highest = validMeasure(v)
		}
		if s.Count == 0 || v < s.Lowest.Float() {
			s.Lowest = validMeasure(v)
		}
		sum += v
		s.Count++
	}
	if s.Count > 0 {
		s.Average = validMeasure(sum / float64(s.Count))
	}
	return s
}
