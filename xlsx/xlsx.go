// Package xlsx imports raw retail price workbooks.
//
// A raw workbook has one row per commodity and unit, and one column per date:
//
//	| Commodities | Unit | 2023-06-10 | 2024-06-10 | ...
//	| Wheat       | Kg   | 20         | 25         | ...
//
// Melt turns it into the long-form table used by package pricetracker.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/date"
	"github.com/xuri/excelize/v2"
)

// Header names of the identity columns in raw workbooks, and the column they are renamed to.
var renames = map[string]string{
	"commodities": pricetracker.ColCommodity,
	"commodity":   pricetracker.ColCommodity,
	"unit":        pricetracker.ColUnit,
}

// ErrNoSheet is returned for a workbook without any sheet.
var ErrNoSheet = errors.New("workbook has no sheet")

// Melt reads the first sheet of a raw price workbook and returns it in long form: one
// observation per commodity, unit and date column, grouped by date column.
//
// Header cells are trimmed. A date header that cannot be parsed yields observations with a
// zero date, and a price cell that cannot be parsed a null price: like the CSV decoder, Melt
// never fails on a malformed cell.
func Melt(r io.Reader) (pricetracker.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return pricetracker.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return melt(f)
}

// MeltFile is like Melt on the named file.
func MeltFile(filename string) (pricetracker.Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return pricetracker.Table{}, fmt.Errorf("failed to open workbook %q: %w", filename, err)
	}
	defer f.Close()
	t, err := melt(f)
	if err != nil {
		return pricetracker.Table{}, fmt.Errorf("%q: %w", filename, err)
	}
	return t, nil
}

func melt(f *excelize.File) (pricetracker.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return pricetracker.Table{}, ErrNoSheet
	}
	// Raw values keep date headers as serial numbers, instead of a locale dependent format.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return pricetracker.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return pricetracker.Table{}, fmt.Errorf("sheet %q: %w", sheets[0], pricetracker.ErrMissingColumn)
	}

	commodityCol, unitCol := -1, -1
	type dateColumn struct {
		index int
		on    date.Date
	}
	var dates []dateColumn
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		switch renames[strings.ToLower(h)] {
		case pricetracker.ColCommodity:
			commodityCol = i
		case pricetracker.ColUnit:
			unitCol = i
		default:
			if h == "" {
				continue
			}
			on := date.Normalize(h)[0]
			if on.IsZero() {
				log.Printf("sheet %q: column %q is not a date", sheets[0], h)
			}
			dates = append(dates, dateColumn{i, on})
		}
	}

	var errs error
	if commodityCol < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w %q", pricetracker.ErrMissingColumn, "Commodities"))
	}
	if unitCol < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w %q", pricetracker.ErrMissingColumn, "Unit"))
	}
	if errs != nil {
		return pricetracker.Table{}, fmt.Errorf("sheet %q: %w", sheets[0], errs)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var observations []pricetracker.Observation
	for _, col := range dates {
		for _, row := range rows[1:] {
			commodity, unit := cell(row, commodityCol), cell(row, unitCol)
			if commodity == "" && unit == "" {
				continue // blank line
			}
			observations = append(observations, pricetracker.Observation{
				Commodity: commodity,
				Unit:      unit,
				On:        col.on,
				Price:     pricetracker.ParsePrice(cell(row, col.index)),
			})
		}
	}
	return pricetracker.NewTable(observations...), nil
}
