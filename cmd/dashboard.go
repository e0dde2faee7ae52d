package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	prices   bool
	top      int
	json     bool
	selector string
}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "display the yearly and monthly inflation and the volatility tables"
}
func (*dashboardCmd) Usage() string {
	return `cpt dashboard [-prices] [-top <n>] [-json [-select <jsonpath>]]

  Displays all the analysis tables at once. A section that cannot be computed,
  for instance because the data file has no price one month before the latest
  date, is reported in place and does not prevent the other sections.

Usage Examples:
# The names of the commodities with a positive yearly inflation.
$ cpt dashboard -select '$.yearly.records[?(@.inflation_rate.value > 0)].commodity'
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.prices, "prices", false, "Display the prices used in the computation")
	f.IntVar(&c.top, "top", pricetracker.TopCount, "Number of most volatile commodities to highlight")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
	f.StringVar(&c.selector, "select", "", "JSONPath expression applied to the JSON result (implies -json)")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.top < 1 {
		fmt.Fprintf(os.Stderr, "Error: -top must be at least 1, got %d\n", c.top)
		return subcommands.ExitUsageError
	}
	t, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d := pricetracker.NewDashboard(t, *dataFile)
	d.Volatility.Top = pricetracker.TopVolatile(d.Volatility.Records, c.top)

	if c.json || c.selector != "" {
		if err := writeJSON(os.Stdout, d, c.selector); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.DashboardMarkdown(d, renderer.Options{Currency: *currency, Prices: c.prices, Top: c.top}))
	}

	if errors.Is(d.Yearly.Err, pricetracker.ErrEmptyTable) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
