package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/etnz/pricetracker"
	md "github.com/nao1215/markdown"
)

// barWidth is the number of characters of the longest bar in the volatility chart.
const barWidth = 30

// VolatilityMarkdown renders the volatility section: the most volatile commodities, the full
// table and a bar chart.
func VolatilityMarkdown(s pricetracker.VolatilitySection, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Volatility")
	writeVolatility(doc, s, opts)
	return doc.String()
}

func writeVolatility(doc *md.Markdown, s pricetracker.VolatilitySection, opts Options) {
	if s.Err != nil {
		writeUnavailable(doc, s.Err)
		return
	}
	doc.PlainText(fmt.Sprintf("Coefficient of variation of prices on %s and %s.", s.Offset, s.Anchor))

	top := pricetracker.TopVolatile(s.Records, opts.top())
	if len(top) > 0 {
		doc.H3(fmt.Sprintf("Top %d Most Volatile Commodities", len(top)))
		kpi := md.TableSet{Header: []string{}, Rows: [][]string{{}}}
		for _, r := range top {
			kpi.Alignment = append(kpi.Alignment, md.AlignCenter)
			kpi.Header = append(kpi.Header, r.Commodity)
			kpi.Rows[0] = append(kpi.Rows[0], md.Bold(r.CV.String()))
		}
		doc.Table(kpi)
	}

	doc.H3("Volatility Data Table")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Commodity", "Samples", "Mean Price", "Std. Dev.", "CV"},
	}
	for _, r := range s.Records {
		table.Rows = append(table.Rows, []string{
			r.Commodity,
			fmt.Sprint(r.Samples),
			r.Mean.Format(opts.Currency),
			r.StdDev.Format(opts.Currency),
			cv(r.CV),
		})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No commodity is quoted in the window.")
		return
	}
	doc.Table(table)

	if chart := Bars(s.Records); len(chart) > 0 {
		doc.H3("Volatility by Commodity")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Commodity", "", "CV"},
			Rows:      chart,
		})
	}
}

func cv(m pricetracker.Measure) string {
	switch m.Flag {
	case pricetracker.Valid:
		return m.String()
	case pricetracker.Insufficient:
		return "n/a (single price)"
	default:
		return m.String() + " *"
	}
}

// Bars returns the rows of a text bar chart of the valid cvs, most volatile first.
func Bars(records []pricetracker.VolatilityRecord) [][]string {
	var bars []bar
	for _, r := range pricetracker.TopVolatile(records, len(records)) {
		bars = append(bars, bar{r.Commodity, r.CV.Float(), r.CV.String()})
	}
	return chart(bars)
}

// bar is one row of a text bar chart.
type bar struct {
	label string
	value float64
	text  string
}

// chart returns the rows (label, bar, text) of a text bar chart. The longest bar is the
// largest absolute value.
func chart(bars []bar) [][]string {
	if len(bars) == 0 {
		return nil
	}
	highest := 0.0
	for _, b := range bars {
		highest = max(highest, math.Abs(b.value))
	}
	rows := make([][]string, 0, len(bars))
	for _, b := range bars {
		n := 0
		if highest > 0 {
			n = int(math.Round(math.Abs(b.value) / highest * barWidth))
		}
		rows = append(rows, []string{b.label, strings.Repeat("█", n), b.text})
	}
	return rows
}
