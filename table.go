package pricetracker

import (
	"slices"

	"github.com/etnz/pricetracker/date"
)

// Observation is one price of a commodity, in a given unit, on a given day.
//
// A zero On means the date could not be parsed; a null Price means the price could not.
type Observation struct {
	Commodity string
	Unit      string
	On        date.Date
	Price     Price
}

// Quote is an Observation with its date stripped, as found in a Snapshot.
type Quote struct {
	Commodity string
	Unit      string
	Price     Price
}

// key identifies a commodity in a given unit.
type key struct{ commodity, unit string }

func (q Quote) key() key { return key{q.Commodity, q.Unit} }

// Table is an immutable long-form price table: one row per (commodity, unit, date).
//
// Tables are never modified, every transformation returns a new Table.
type Table struct {
	rows []Observation
}

// NewTable returns a Table holding a copy of rows.
func NewTable(rows ...Observation) Table {
	return Table{rows: slices.Clone(rows)}
}

// Len returns the number of observations.
func (t Table) Len() int { return len(t.rows) }

// Rows returns a copy of the observations, in the table order.
func (t Table) Rows() []Observation { return slices.Clone(t.rows) }

// Latest returns the maximum date present in the table and true, or false if there is none.
//
// Every row counts, including rows with a null price. Rows with a missing date are ignored.
func (t Table) Latest() (date.Date, bool) {
	var latest date.Date
	found := false
	for _, o := range t.rows {
		if o.On.IsZero() {
			continue
		}
		if !found || o.On.After(latest) {
			latest, found = o.On, true
		}
	}
	return latest, found
}

// Dates returns the distinct dates present in the table, sorted chronologically.
func (t Table) Dates() []date.Date {
	seen := make(map[date.Date]bool)
	var dates []date.Date
	for _, o := range t.rows {
		if o.On.IsZero() || seen[o.On] {
			continue
		}
		seen[o.On] = true
		dates = append(dates, o.On)
	}
	slices.SortFunc(dates, date.Date.Compare)
	return dates
}

// Filter returns a new Table with the rows for which keep returns true.
func (t Table) Filter(keep func(Observation) bool) Table {
	var rows []Observation
	for _, o := range t.rows {
		if keep(o) {
			rows = append(rows, o)
		}
	}
	return Table{rows: rows}
}

// OnAny returns the rows observed on any of the given dates.
func (t Table) OnAny(days ...date.Date) Table {
	return t.Filter(func(o Observation) bool { return !o.On.IsZero() && slices.Contains(days, o.On) })
}

// Snapshot returns the rows observed on day, with their date stripped.
func (t Table) Snapshot(day date.Date) Snapshot {
	s := Snapshot{On: day}
	for _, o := range t.rows {
		if o.On == day && !day.IsZero() {
			s.Quotes = append(s.Quotes, Quote{Commodity: o.Commodity, Unit: o.Unit, Price: o.Price})
		}
	}
	return s
}

// Snapshot is the set of quotes observed on a single day.
type Snapshot struct {
	On     date.Date
	Quotes []Quote
}

// Empty reports whether the snapshot has no quote at all.
func (s Snapshot) Empty() bool { return len(s.Quotes) == 0 }
