package pricetracker

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/pricetracker/date"
)

func TestNewDashboard(t *testing.T) {
	// Year-ago data exists, month-ago data does not.
	table := NewTable(
		obs("wheat", "kg", "2023-06-10", 20),
		obs("rice", "kg", "2023-06-10", 40),
		obs("wheat", "kg", "2024-06-10", 25),
		obs("rice", "kg", "2024-06-10", 60),
	)
	d := NewDashboard(table, "data.csv")

	if d.Anchor != date.MustParse("2024-06-10") {
		t.Errorf("Anchor = %v, want 2024-06-10", d.Anchor)
	}
	if d.Yearly.Err != nil || len(d.Yearly.Records) != 2 {
		t.Errorf("Yearly = %v, %v want 2 records", d.Yearly.Records, d.Yearly.Err)
	}
	if d.Yearly.Summary.Count != 2 || !d.Yearly.Summary.Highest.Value.Equal(50) {
		t.Errorf("Yearly.Summary = %+v, want 2 rates and a highest of 50%%", d.Yearly.Summary)
	}
	if d.Yearly.Offset != date.MustParse("2023-06-10") {
		t.Errorf("Yearly.Offset = %v, want 2023-06-10", d.Yearly.Offset)
	}
	if !errors.Is(d.Monthly.Err, ErrInsufficientHistory) {
		t.Errorf("Monthly.Err = %v, want %v", d.Monthly.Err, ErrInsufficientHistory)
	}
	if d.Monthly.Offset != date.MustParse("2024-05-10") {
		t.Errorf("Monthly.Offset = %v, want 2024-05-10", d.Monthly.Offset)
	}
	if d.Volatility.Err != nil || len(d.Volatility.Records) != 2 {
		t.Errorf("Volatility = %v, %v want 2 records", d.Volatility.Records, d.Volatility.Err)
	}
	if len(d.Volatility.Top) != 2 || d.Volatility.Top[0].Commodity != "rice" {
		t.Errorf("Volatility.Top = %v, want rice first", d.Volatility.Top)
	}

	if s, ok := d.Inflation(MonthlyView); !ok || s.Period != date.Monthly {
		t.Errorf("Inflation(MonthlyView) = %v, %v", s.Period, ok)
	}
	if _, ok := d.Inflation(VolatilityView); ok {
		t.Errorf("Inflation(VolatilityView) should not be an inflation section")
	}
}

func TestNewDashboard_Empty(t *testing.T) {
	d := NewDashboard(NewTable(), "")
	for _, err := range []error{d.Yearly.Err, d.Monthly.Err, d.Volatility.Err} {
		if !errors.Is(err, ErrEmptyTable) {
			t.Errorf("section error = %v, want %v", err, ErrEmptyTable)
		}
	}
}

func TestDashboard_MarshalJSON(t *testing.T) {
	table := NewTable(
		obs("wheat", "kg", "2023-06-10", 20),
		obs("wheat", "kg", "2024-06-10", 25),
	)
	data, err := json.Marshal(NewDashboard(table, "data.csv"))
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	got := string(data)
	for _, want := range []string{
		`"source":"data.csv"`,
		`"anchor":"2024-06-10"`,
		`{"commodity":"wheat","unit":"kg","from_price":20,"to_price":25,"inflation_rate":{"value":25,"flag":"valid"}}`,
		`"summary":{"count":1,"highest":{"value":25,"flag":"valid"},"lowest":{"value":25,"flag":"valid"},"average":{"value":25,"flag":"valid"}}`,
		`"error":"monthly comparison of 2024-06-10: no observation on 2024-05-10"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("json.Marshal() = %s\nwant it to contain %s", got, want)
		}
	}
}
