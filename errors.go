package pricetracker

import (
	"errors"
	"fmt"

	"github.com/etnz/pricetracker/date"
)

var (
	// ErrEmptyTable is returned when a table has no dated observation at all.
	ErrEmptyTable = errors.New("no dated observation in table")

	// ErrInsufficientHistory is returned when the table has no observation for the date an
	// anchor must be compared to. It is a data gap, not a failure of the program.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrNoComparablePeriod is returned when the comparison date cannot be computed from the
	// anchor (February 29th minus one year).
	ErrNoComparablePeriod = errors.New("no comparable period")

	// ErrMissingColumn is returned when a required column is absent from a CSV header.
	ErrMissingColumn = errors.New("missing column")
)

// HistoryGapError reports that no observation exists on the date the anchor is compared to.
type HistoryGapError struct {
	Period date.Period
	Anchor date.Date
	Want   date.Date
}

func (e *HistoryGapError) Error() string {
	return fmt.Sprintf("%s comparison of %s: no observation on %s", e.Period, e.Anchor, e.Want)
}

// Is makes errors.Is(err, ErrInsufficientHistory) true for a *HistoryGapError.
func (e *HistoryGapError) Is(target error) bool { return target == ErrInsufficientHistory }
