package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/xlsx"
	"github.com/google/subcommands"
)

type cleanCmd struct {
	input  string
	output string
	dryRun bool
}

func (*cleanCmd) Name() string { return "clean" }
func (*cleanCmd) Synopsis() string {
	return "convert the raw price workbook into the processed data file"
}
func (*cleanCmd) Usage() string {
	return `cpt clean [-i <workbook.xlsx>] [-n]

  Reads the first sheet of the raw workbook, one row per commodity and one
  column per date, and writes it in long form (commodity, unit, date, price)
  into the data file (see -data-file).

  Header cells are trimmed, 'Commodities' and 'Unit' are renamed 'commodity'
  and 'unit', and every other column header is read as a date. Cells that are
  not prices are kept as empty prices.
`
}

func (c *cleanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", rawFile, "Raw workbook to convert (XLSX format)")
	f.BoolVar(&c.dryRun, "n", false, "Dry run: print the processed CSV to stdout instead of writing the data file")
}

func (c *cleanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := xlsx.MeltFile(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	debugf("read %d observations from %q", t.Len(), c.input)

	if c.dryRun {
		if err := pricetracker.EncodeCSV(os.Stdout, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := os.MkdirAll(filepath.Dir(*dataFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := pricetracker.SaveCSV(*dataFile, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote %d prices to %s\n", t.Len(), *dataFile)
	return subcommands.ExitSuccess
}
