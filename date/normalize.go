package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// layouts accepted by ParseLenient, tried in order.
var layouts = []string{
	readDateFormat,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/1/2",
	"2006-01-02 15:04:05.000000",
}

// Excel serial day numbers outside this range are not considered as dates.
// 1 is 1900-01-01 and 2958465 is 9999-12-31.
const (
	minSerial = 1
	maxSerial = 2958465

	minSerialText = 10000 // 1927-05-18
)

// ParseLenient parses the date representations found in spreadsheet exports: ISO dates
// with or without a time part, slash separated dates and Excel serial day numbers.
//
// The time of day and the time zone are discarded, only the calendar date is kept.
func ParseLenient(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	for _, layout := range layouts {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	// Short numbers like "2024" are more likely years than serial days.
	if serial, err := strconv.ParseFloat(str, 64); err == nil && serial >= minSerialText {
		return FromSerial(serial)
	}
	return Date{}, fmt.Errorf("invalid date %q", str)
}

// FromSerial converts an Excel serial day number (1900 date system) into a Date.
func FromSerial(serial float64) (Date, error) {
	if serial < minSerial || serial > maxSerial {
		return Date{}, fmt.Errorf("serial %v is not a date", serial)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return Date{}, fmt.Errorf("invalid excel date %v: %w", serial, err)
	}
	return FromTime(t), nil
}

// Normalize coerces heterogeneous date-like values into Dates.
//
// Supported values are Date, time.Time, *time.Time, strings (see ParseLenient) and Excel
// serial day numbers (int, int64, float64). Any value that cannot be understood becomes the
// zero Date; Normalize never fails.
func Normalize(values ...any) []Date {
	dates := make([]Date, len(values))
	for i, v := range values {
		dates[i] = normalize(v)
	}
	return dates
}

func normalize(v any) Date {
	var (
		d   Date
		err error
	)
	switch v := v.(type) {
	case Date:
		return v
	case time.Time:
		if v.IsZero() {
			return Date{}
		}
		return FromTime(v)
	case *time.Time:
		if v == nil || v.IsZero() {
			return Date{}
		}
		return FromTime(*v)
	case string:
		d, err = ParseLenient(v)
	case int:
		d, err = FromSerial(float64(v))
	case int64:
		d, err = FromSerial(float64(v))
	case float64:
		d, err = FromSerial(v)
	default:
		return Date{}
	}
	if err != nil {
		return Date{}
	}
	return d
}
