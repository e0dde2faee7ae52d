package pricetracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/pricetracker/date"
)

// Columns of the long-form price CSV, in their canonical order.
const (
	ColCommodity = "commodity"
	ColUnit      = "unit"
	ColDate      = "date"
	ColPrice     = "price"
)

var columns = []string{ColCommodity, ColUnit, ColDate, ColPrice}

// DecodeCSV reads a long-form price table.
//
// The first record is the header; columns are found by name, in any order, and extra columns
// are ignored. Unparseable dates and prices do not stop the decoding: they become a zero
// date and a null price respectively. Only a missing column or an unreadable stream is an
// error.
func DecodeCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("empty csv: %w", ErrMissingColumn)
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int)
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	var errs error
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			errs = errors.Join(errs, fmt.Errorf("%w %q", ErrMissingColumn, c))
		}
	}
	if errs != nil {
		return Table{}, errs
	}

	cell := func(record []string, col string) string {
		if i := index[col]; i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var rows []Observation
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		rows = append(rows, Observation{
			Commodity: cell(record, ColCommodity),
			Unit:      cell(record, ColUnit),
			On:        date.Normalize(cell(record, ColDate))[0],
			Price:     ParsePrice(cell(record, ColPrice)),
		})
	}
	return Table{rows: rows}, nil
}

// EncodeCSV writes t in the long-form CSV format read by DecodeCSV.
//
// Missing dates and null prices are written as empty cells.
func EncodeCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, o := range t.rows {
		if err := writer.Write([]string{o.Commodity, o.Unit, o.On.String(), o.Price.String()}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadCSV reads the long-form price table stored in filename.
func LoadCSV(filename string) (Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	t, err := DecodeCSV(f)
	if err != nil {
		return Table{}, fmt.Errorf("decoding %q: %w", filename, err)
	}
	return t, nil
}

// SaveCSV writes t into filename, replacing its content.
func SaveCSV(filename string, t Table) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := EncodeCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("encoding %q: %w", filename, err)
	}
	return f.Close()
}
