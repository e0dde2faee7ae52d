// Package cmd implements the CLI application to analyse commodity prices.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&viewCmd{view: pricetracker.YearlyView}, "analysis")
	c.Register(&viewCmd{view: pricetracker.MonthlyView}, "analysis")
	c.Register(&viewCmd{view: pricetracker.VolatilityView}, "analysis")
	c.Register(&dashboardCmd{}, "analysis")

	c.Register(&cleanCmd{}, "data")
	c.Register(&serveCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataFile = flag.String("data-file", "data/processed/data.csv", "Path to the processed prices file (CSV format)")
	currency = flag.String("currency", "", "Currency code used to format prices (e.g. NPR). Prices are plain numbers when empty.")
	rawMD    = flag.Bool("raw", false, "Print the markdown source instead of rendering it")
	// Verbose enables informational logs.
	Verbose = flag.Bool("v", false, "Verbose output")
)

// defaults not set by a flag
var (
	rawFile    = "data/raw/retail_prices.xlsx"
	listenAddr = "localhost:8501"
)

// Configure sets the defaults of the global flags from cfg.
// It must be called before the flags are parsed.
func Configure(cfg *config.Config) {
	*dataFile = cfg.DataFile
	*currency = cfg.Currency
	*Verbose = cfg.Verbose
	rawFile = cfg.RawFile
	listenAddr = cfg.Addr
}

// debugf logs only in verbose mode.
func debugf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// LoadTable reads the prices from the app data file.
func LoadTable() (pricetracker.Table, error) {
	t, err := pricetracker.LoadCSV(*dataFile)
	if err != nil {
		return pricetracker.Table{}, err
	}
	latest, _ := t.Latest()
	debugf("loaded %d observations from %q, latest date %s", t.Len(), *dataFile, latest)
	return t, nil
}

// printMarkdown renders md to the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if *rawMD {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("Warning: cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("Warning: cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Fprint(os.Stdout, out)
}
