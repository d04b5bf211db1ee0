package investor

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents an optional financial figure.
//
// The zero value is the unknown amount: a figure that was never reported.
// Unknown is not zero; a company can report a net debt of 0, which ranks,
// while an unreported net debt does not. Unknown propagates through
// arithmetic instead of failing.
type Amount struct {
	value decimal.Decimal
	known bool
}

// Unknown is the Amount of a figure that was never reported.
var Unknown = Amount{}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value), known: true}
}

// ParseAmount parses s as a decimal figure. The empty string (an empty CSV
// cell or form field) is the unknown amount, not an error.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown, nil
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Unknown, fmt.Errorf("invalid amount %q", s)
	}
	return Amount{value: value, known: true}, nil
}

func (a Amount) Known() bool              { return a.known }
func (a Amount) IsZero() bool             { return a.known && a.value.IsZero() }
func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) Equal(b Amount) bool {
	if a.known != b.known {
		return false
	}
	return !a.known || a.value.Equal(b.value)
}

// Div returns a/b. The result is unknown when either operand is unknown or
// when b is zero.
func (a Amount) Div(b Amount) Amount {
	if !a.known || !b.known || b.value.IsZero() {
		return Unknown
	}
	return Amount{value: a.value.Div(b.value), known: true}
}

// String returns the exact decimal value, or "None" for the unknown amount.
func (a Amount) String() string {
	if !a.known {
		return "None"
	}
	return a.value.String()
}

// StringFixed renders the value rounded to the given number of decimal
// places, or "None" for the unknown amount.
func (a Amount) StringFixed(places int32) string {
	if !a.known {
		return "None"
	}
	return a.value.StringFixed(places)
}

// Value implements driver.Valuer. The unknown amount persists as NULL.
func (a Amount) Value() (driver.Value, error) {
	if !a.known {
		return nil, nil
	}
	return a.value.Value()
}

// Scan implements sql.Scanner. NULL scans as the unknown amount.
func (a *Amount) Scan(value any) error {
	if value == nil {
		*a = Unknown
		return nil
	}
	if err := a.value.Scan(value); err != nil {
		return err
	}
	a.known = true
	return nil
}

// MarshalJSON implements json.Marshaler. The unknown amount is null; known
// amounts are plain JSON numbers, never quoted strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.known {
		return []byte("null"), nil
	}
	return []byte(a.value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. null is the unknown amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Unknown
		return nil
	}
	if err := a.value.UnmarshalJSON(data); err != nil {
		return err
	}
	a.known = true
	return nil
}
