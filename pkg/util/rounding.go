package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rounding helpers for price and amount math. All of them operate on
// decimal values so precision is governed by the canonical decimal string,
// never by a binary float approximation. Each one is a no-op when the value
// already fits the target precision: rounding never invents digits.

// DecimalPlaces reports the number of digits after the decimal point in the
// canonical string representation of d. Integers report 0.
func DecimalPlaces(d decimal.Decimal) int32 {
	s := d.String()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return int32(len(s) - dot - 1)
}

// RoundDown rounds d toward zero to at most places decimal places.
func RoundDown(d decimal.Decimal, places int32) decimal.Decimal {
	if DecimalPlaces(d) <= places {
		return d
	}
	return d.RoundFloor(places)
}

// RoundUp rounds d away from zero to at most places decimal places.
func RoundUp(d decimal.Decimal, places int32) decimal.Decimal {
	if DecimalPlaces(d) <= places {
		return d
	}
	return d.RoundCeil(places)
}

// RoundNormal rounds d half away from zero to at most places decimal places.
func RoundNormal(d decimal.Decimal, places int32) decimal.Decimal {
	if DecimalPlaces(d) <= places {
		return d
	}
	return d.Round(places)
}
