package pricetracker

import (
	"encoding/json"

	"github.com/etnz/pricetracker/date"
)

// TopCount is the number of commodities highlighted as the most volatile.
const TopCount = 5

// Dashboard gathers the three tables computed from a price table.
//
// Each section is computed independently: a data gap in one of them is reported in that
// section only.
type Dashboard struct {
	Source     string
	Anchor     date.Date
	Yearly     InflationSection
	Monthly    InflationSection
	Volatility VolatilitySection
}

// InflationSection is the inflation table for one period, or the reason it is not available.
type InflationSection struct {
	Period  date.Period
	Anchor  date.Date
	Offset  date.Date // zero when it could not be computed
	Records []InflationRecord
	Summary InflationSummary
	Err     error
}

// VolatilitySection is the volatility table, or the reason it is not available.
type VolatilitySection struct {
	Anchor  date.Date
	Offset  date.Date
	Records []VolatilityRecord
	Top     []VolatilityRecord
	Err     error
}

// NewDashboard computes all the sections of the dashboard for t.
//
// source names where t was read from, for display only.
func NewDashboard(t Table, source string) *Dashboard {
	d := &Dashboard{Source: source}
	d.Anchor, _ = t.Latest()

	d.Yearly = newInflationSection(t, d.Anchor, date.Yearly)
	d.Monthly = newInflationSection(t, d.Anchor, date.Monthly)

	d.Volatility.Anchor = d.Anchor
	d.Volatility.Offset, _ = OffsetDate(d.Anchor, date.Yearly)
	d.Volatility.Records, d.Volatility.Err = Volatility(t)
	d.Volatility.Top = TopVolatile(d.Volatility.Records, TopCount)
	return d
}

func newInflationSection(t Table, anchor date.Date, p date.Period) InflationSection {
	s := InflationSection{Period: p, Anchor: anchor}
	s.Offset, _ = OffsetDate(anchor, p)
	s.Records, s.Err = Inflation(t, p)
	s.Summary = Summarize(s.Records)
	return s
}

// Inflation returns the inflation section for the given view, and false for the volatility view.
func (d *Dashboard) Inflation(v View) (InflationSection, bool) {
	switch v {
	case YearlyView:
		return d.Yearly, true
	case MonthlyView:
		return d.Monthly, true
	default:
		return InflationSection{}, false
	}
}

// errString returns the message of err or "".
func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (s InflationSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Period  string            `json:"period"`
		Anchor  date.Date         `json:"anchor"`
		Offset  date.Date         `json:"offset"`
		Records []InflationRecord `json:"records"`
		Summary InflationSummary  `json:"summary"`
		Error   string            `json:"error,omitempty"`
	}{s.Period.String(), s.Anchor, s.Offset, s.Records, s.Summary, errString(s.Err)})
}

func (s VolatilitySection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Anchor  date.Date          `json:"anchor"`
		Offset  date.Date          `json:"offset"`
		Records []VolatilityRecord `json:"records"`
		Top     []VolatilityRecord `json:"top"`
		Error   string             `json:"error,omitempty"`
	}{s.Anchor, s.Offset, s.Records, s.Top, errString(s.Err)})
}

func (d *Dashboard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source     string            `json:"source"`
		Anchor     date.Date         `json:"anchor"`
		Yearly     InflationSection  `json:"yearly"`
		Monthly    InflationSection  `json:"monthly"`
		Volatility VolatilitySection `json:"volatility"`
	}{d.Source, d.Anchor, d.Yearly, d.Monthly, d.Volatility})
}
