package pricetracker

import (
	"fmt"

	"github.com/etnz/pricetracker/date"
)

// Resolve locates the anchor snapshot, at the latest date present in t, and the offset
// snapshot, one period before it.
//
// The anchor is the maximum date present, even if all the prices on that date are null.
// A yearly offset only decrements the year: a February 29th anchor has no comparable day
// and yields ErrNoComparablePeriod. A monthly offset follows the calendar (see
// date.Date.MonthsAgo).
//
// When the table has no observation on the offset date, it returns a *HistoryGapError
// (errors.Is ErrInsufficientHistory).
func Resolve(t Table, p date.Period) (anchor, offset Snapshot, err error) {
	latest, ok := t.Latest()
	if !ok {
		return Snapshot{}, Snapshot{}, ErrEmptyTable
	}
	prev, err := OffsetDate(latest, p)
	if err != nil {
		return Snapshot{}, Snapshot{}, err
	}

	anchor, offset = t.Snapshot(latest), t.Snapshot(prev)
	if offset.Empty() {
		return anchor, offset, &HistoryGapError{Period: p, Anchor: latest, Want: prev}
	}
	return anchor, offset, nil
}

// OffsetDate returns the date one period before anchor.
func OffsetDate(anchor date.Date, p date.Period) (date.Date, error) {
	prev, err := p.Ago(anchor)
	if err != nil {
		return date.Date{}, fmt.Errorf("%s comparison of %s: %w: %w", p, anchor, ErrNoComparablePeriod, err)
	}
	return prev, nil
}
