package pricetracker

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price is a nullable unit price, as read in the source table.
//
// The zero value is the null price: a cell that was empty or could not be parsed.
type Price struct {
	value decimal.Decimal
	valid bool
}

// P returns a valid price.
func P[T float64 | int | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value), valid: true}
}

// NullPrice returns the null price.
func NullPrice() Price { return Price{} }

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// thousands matches a number with comma separated groups of thousands.
var thousands = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParsePrice parses a price cell. Empty or malformed cells become the null price.
//
// Thousands separators are accepted only in groups of three digits ("1,250.50"), so that a
// decimal comma like "12,5" stays malformed.
func ParsePrice(str string) Price {
	str = strings.TrimSpace(str)
	if strings.Contains(str, ",") {
		if !thousands.MatchString(str) {
			return Price{}
		}
		str = strings.ReplaceAll(str, ",", "")
	}
	if str == "" {
		return Price{}
	}
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Price{}
	}
	return Price{value: v, valid: true}
}

// Valid reports whether the price is not null.
func (p Price) Valid() bool { return p.valid }

// Decimal returns the price value and whether it is valid.
func (p Price) Decimal() (decimal.Decimal, bool) { return p.value, p.valid }

// IsZero reports whether the price is a valid zero.
func (p Price) IsZero() bool { return p.valid && p.value.IsZero() }

// Equal reports whether p and q are both null or have the same value.
func (p Price) Equal(q Price) bool {
	if !p.valid || !q.valid {
		return p.valid == q.valid
	}
	return p.value.Equal(q.value)
}

// String returns the price in plain decimal notation, or "" for the null price.
func (p Price) String() string {
	if !p.valid {
		return ""
	}
	return p.value.String()
}

// Format returns the price formatted in the given currency, like "$25.00" for USD.
//
// An unknown or empty currency formats the bare number with two decimals.
func (p Price) Format(currency string) string {
	if !p.valid {
		return "n/a"
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return p.value.StringFixed(2)
	}
	minor := p.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// MarshalJSON encodes the null price as null and others as a JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return []byte(p.value.String()), nil
}

// UnmarshalJSON decodes a JSON number or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Price{}
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*p = Price{value: d, valid: true}
	return nil
}
