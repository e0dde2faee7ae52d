// Package renderer formats the commodity analysis as markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pricetracker"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders all the sections of a dashboard.
func DashboardMarkdown(d *pricetracker.Dashboard, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Commodity Analysis Dashboard")
	if d.Anchor.IsZero() {
		doc.PlainText(fmt.Sprintf("No dated price in %s.", d.Source))
	} else {
		doc.PlainText(fmt.Sprintf("Prices from %s, latest date %s.", d.Source, d.Anchor))
	}

	doc.H2("Yearly Inflation")
	writeInflation(doc, d.Yearly, opts)
	doc.H2("Monthly Inflation")
	writeInflation(doc, d.Monthly, opts)
	doc.H2("Volatility")
	writeVolatility(doc, d.Volatility, opts)
	return doc.String()
}

// ViewMarkdown renders the section of the dashboard selected by v.
func ViewMarkdown(d *pricetracker.Dashboard, v pricetracker.View, opts Options) string {
	if s, ok := d.Inflation(v); ok {
		return InflationMarkdown(s, opts)
	}
	return VolatilityMarkdown(d.Volatility, opts)
}
