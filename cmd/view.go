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

// viewCmd displays one of the analysis views.
type viewCmd struct {
	view     pricetracker.View
	prices   bool
	top      int
	json     bool
	selector string
}

func (c *viewCmd) Name() string { return c.view.String() }
func (c *viewCmd) Synopsis() string {
	switch c.view {
	case pricetracker.VolatilityView:
		return "display the price volatility of each commodity over the last year"
	case pricetracker.MonthlyView:
		return "display the inflation of each commodity over the last month"
	default:
		return "display the inflation of each commodity over the last year"
	}
}
func (c *viewCmd) Usage() string {
	return fmt.Sprintf(`cpt %s [-prices] [-top <n>] [-json [-select <jsonpath>]]

  Displays the %s table computed from the latest date in the data file.
  See 'cpt topic %s' for the computation details.
`, c.view, c.view.Title(), c.view)
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.prices, "prices", false, "Display the prices used in the computation")
	f.IntVar(&c.top, "top", pricetracker.TopCount, "Number of most volatile commodities to highlight")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
	f.StringVar(&c.selector, "select", "", "JSONPath expression applied to the JSON result (implies -json)")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var section any
	var sectionErr error
	if s, ok := d.Inflation(c.view); ok {
		section, sectionErr = s, s.Err
	} else {
		d.Volatility.Top = pricetracker.TopVolatile(d.Volatility.Records, c.top)
		section, sectionErr = d.Volatility, d.Volatility.Err
	}

	if c.json || c.selector != "" {
		if err := writeJSON(os.Stdout, section, c.selector); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.ViewMarkdown(d, c.view, c.options()))
	}

	if sectionErr != nil && !errors.Is(sectionErr, pricetracker.ErrInsufficientHistory) {
		// a data gap is a normal outcome, anything else means the data is unusable.
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *viewCmd) options() renderer.Options {
	return renderer.Options{Currency: *currency, Prices: c.prices, Top: c.top}
}
