package date

import (
	"fmt"
	"strings"
)

// Period is the distance between an anchor date and the date it is compared to.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Ago returns the date one period before d.
//
// See YearsAgo and MonthsAgo for the calendar rules.
func (p Period) Ago(d Date) (Date, error) {
	switch p {
	case Monthly:
		return d.MonthsAgo(1), nil
	case Yearly:
		return d.YearsAgo(1)
	default:
		return Date{}, fmt.Errorf("unknown period %d", p)
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "monthly", "month", "m":
		return Monthly, nil
	case "yearly", "year", "y":
		return Yearly, nil
	default:
		return Yearly, fmt.Errorf("unknown period %s", p)
	}
}
