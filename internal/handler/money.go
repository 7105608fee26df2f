package handler

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amounts cross the API as decimal strings ("1250.50") but are stored and
// computed as int64 minor units (125050). The conversion happens here and
// nowhere else.

var errNotMinorUnits = errors.New("amount has more than two decimal places")

// parseMoney converts a decimal string to minor units
func parseMoney(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, errNotMinorUnits
	}
	return shifted.IntPart(), nil
}

// moneyString renders minor units as a fixed two-decimal string
func moneyString(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}
