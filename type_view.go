package pricetracker

import (
	"fmt"
	"strings"
)

// View selects one of the tables computed from a price table.
type View int

const (
	YearlyView View = iota
	MonthlyView
	VolatilityView
)

// Views lists all views in their display order.
var Views = []View{YearlyView, MonthlyView, VolatilityView}

func (v View) String() string {
	switch v {
	case YearlyView:
		return "yearly"
	case MonthlyView:
		return "monthly"
	case VolatilityView:
		return "volatility"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Title returns a human title for the view.
func (v View) Title() string {
	switch v {
	case YearlyView:
		return "Yearly Inflation"
	case MonthlyView:
		return "Monthly Inflation"
	case VolatilityView:
		return "Volatility"
	default:
		return v.String()
	}
}

// ParseView parses a view name.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yearly", "year", "y":
		return YearlyView, nil
	case "monthly", "month", "m":
		return MonthlyView, nil
	case "volatility", "vol", "v":
		return VolatilityView, nil
	default:
		return YearlyView, fmt.Errorf("unknown view %q, want one of yearly, monthly, volatility", s)
	}
}
