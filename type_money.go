package investor

import (
	"github.com/Rhymond/go-money"
)

// Money couples a reported figure with the currency it is reported in. It
// only exists for display: ratios are currency-free, so the store keeps
// plain amounts and reports tag them with the session currency.
type Money struct {
	amount Amount
	cur    string
}

// M tags an amount with a 3-letter currency code.
func M(a Amount, currency string) Money {
	return Money{amount: a, cur: currency}
}

// String formats the figure the way its currency is conventionally written
// ("$1,000,000.00"), or "None" when the figure is unknown. An unrecognized
// currency code falls back to the bare value followed by the code.
func (m Money) String() string {
	if !m.amount.Known() {
		return "None"
	}
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return m.amount.String() + " " + m.cur
	}
	// go-money formats from the minor unit, so shift by the currency fraction.
	minor := m.amount.Decimal().Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// ValidCurrency reports whether code names a currency go-money knows how to
// format.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
