package renderer

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/date"
	md "github.com/nao1215/markdown"
)

// Options holds configuration for rendering tables.
type Options struct {
	Currency string // Currency used to format prices, none by default.
	Prices   bool   // Show the prices an inflation rate is computed from.
	Top      int    // Number of most volatile commodities highlighted, pricetracker.TopCount by default.
}

func (o Options) top() int {
	if o.Top <= 0 {
		return pricetracker.TopCount
	}
	return o.Top
}

// InflationMarkdown renders an inflation section as a markdown table.
func InflationMarkdown(s pricetracker.InflationSection, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Yearly Inflation"
	if s.Period == date.Monthly {
		title = "Monthly Inflation"
	}
	doc.H2(title)
	writeInflation(doc, s, opts)
	return doc.String()
}

func writeInflation(doc *md.Markdown, s pricetracker.InflationSection, opts Options) {
	if s.Err != nil {
		writeUnavailable(doc, s.Err)
		return
	}
	doc.PlainText(fmt.Sprintf("From %s to %s.", s.Offset, s.Anchor))

	if s.Summary.Count > 0 {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignCenter, md.AlignCenter, md.AlignCenter},
			Header:    []string{"Highest Inflation", "Lowest Inflation", "Average Inflation"},
			Rows: [][]string{{
				md.Bold(s.Summary.Highest.SignedString()),
				md.Bold(s.Summary.Lowest.SignedString()),
				md.Bold(s.Summary.Average.SignedString()),
			}},
		})
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Commodity", "Unit"},
	}
	if opts.Prices {
		table.Alignment = append(table.Alignment, md.AlignRight, md.AlignRight)
		table.Header = append(table.Header, s.Offset.String(), s.Anchor.String())
	}
	table.Alignment = append(table.Alignment, md.AlignRight)
	table.Header = append(table.Header, "Inflation Rate")

	flagged := 0
	for _, r := range s.Records {
		row := []string{r.Commodity, r.Unit}
		if opts.Prices {
			row = append(row, r.From.Format(opts.Currency), r.To.Format(opts.Currency))
		}
		row = append(row, rate(r.Rate))
		if !r.Rate.OK() {
			flagged++
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No commodity is quoted on both dates.")
		return
	}
	doc.Table(table)
	if flagged > 0 {
		doc.PlainText(fmt.Sprintf("%d rate(s) could not be computed: * marks a missing or zero price.", flagged))
	}

	if rows := InflationBars(s.Records); len(rows) > 0 {
		doc.H3("Inflation by Commodity")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Commodity", "", "Inflation Rate"},
			Rows:      rows,
		})
	}
}

// InflationBars returns the rows of a text bar chart of the valid rates, highest first.
//
// Bars are proportional to the absolute rate; the sign is in the rate column.
func InflationBars(records []pricetracker.InflationRecord) [][]string {
	var valid []pricetracker.InflationRecord
	for _, r := range records {
		if r.Rate.OK() {
			valid = append(valid, r)
		}
	}
	slices.SortStableFunc(valid, func(a, b pricetracker.InflationRecord) int {
		return cmp.Compare(b.Rate.Float(), a.Rate.Float())
	})
	bars := make([]bar, 0, len(valid))
	for _, r := range valid {
		bars = append(bars, bar{fmt.Sprintf("%s (%s)", r.Commodity, r.Unit), r.Rate.Float(), r.Rate.SignedString()})
	}
	return chart(bars)
}

// rate formats a measure, marking the degenerate ones.
func rate(m pricetracker.Measure) string {
	if m.OK() {
		return m.SignedString()
	}
	return m.String() + " *"
}

// writeUnavailable explains why a section has no table.
func writeUnavailable(doc *md.Markdown, err error) {
	reason := "Not available"
	switch {
	case errors.Is(err, pricetracker.ErrInsufficientHistory):
		reason = "Insufficient history"
	case errors.Is(err, pricetracker.ErrNoComparablePeriod):
		reason = "No comparable period"
	case errors.Is(err, pricetracker.ErrEmptyTable):
		reason = "No data"
	}
	doc.PlainText(md.Bold(reason+":") + " " + escape(err.Error()))
}

// escape protects markdown special characters in free text.
func escape(s string) string {
	return strings.NewReplacer("*", `\*`, "_", `\_`, "|", `\|`).Replace(s)
}
