// Package date provides a calendar date type with day granularity and the
// lenient parsing needed to read dates out of spreadsheets and CSV exports.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// ErrNoSuchDay is returned when a calendar computation lands on a day that does not exist,
// like February 29th on a non leap year.
var ErrNoSuchDay = errors.New("no such day")

// Date represents a date with day-level granularity.
//
// The zero value is used as the "missing date" marker.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the calendar date of t, in t's own location.
func FromTime(t time.Time) Date { return New(t.Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero value, i.e. a missing date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// YearsAgo returns the same month and day n years before d.
//
// Only the year field is replaced. When that day does not exist in the target year
// (a February 29th anchor) it returns ErrNoSuchDay instead of moving to another day.
func (d Date) YearsAgo(n int) (Date, error) {
	x := Date{d.y - n, d.m, d.d}
	if New(x.y, x.m, x.d) != x {
		return Date{}, fmt.Errorf("%s minus %d year(s): %d-%02d-%02d: %w", d, n, x.y, x.m, x.d, ErrNoSuchDay)
	}
	return x, nil
}

// MonthsAgo returns the date n calendar months before d.
//
// Months are counted on the calendar so that January minus one month is December of the
// previous year. When the day does not exist in the target month, the last day of that month
// is returned (March 31st minus one month is February 28th or 29th).
func (d Date) MonthsAgo(n int) Date {
	first := New(d.y, d.m-time.Month(n), 1)
	last := New(first.y, first.m+1, 0).d
	return New(first.y, first.m, min(d.d, last))
}

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
