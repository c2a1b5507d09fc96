package clob

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TickSize is a market's minimum price increment. Only the four literal
// values below are valid; the tick size also fixes the decimal precision
// used for amount derivation.
type TickSize string

const (
	TickSize01    TickSize = "0.1"
	TickSize001   TickSize = "0.01"
	TickSize0001  TickSize = "0.001"
	TickSize00001 TickSize = "0.0001"
)

var ErrInvalidTickSize = errors.New("invalid tick size")

// RoundConfig is the decimal precision applied at each step of amount
// derivation for a given tick size.
type RoundConfig struct {
	Price  int32
	Size   int32
	Amount int32
}

var roundingConfig = map[TickSize]RoundConfig{
	TickSize01:    {Price: 1, Size: 2, Amount: 3},
	TickSize001:   {Price: 2, Size: 2, Amount: 4},
	TickSize0001:  {Price: 3, Size: 2, Amount: 5},
	TickSize00001: {Price: 4, Size: 2, Amount: 6},
}

// RoundingConfig returns the precision set for a tick size.
func RoundingConfig(tickSize TickSize) (RoundConfig, error) {
	rc, ok := roundingConfig[tickSize]
	if !ok {
		return RoundConfig{}, fmt.Errorf("%w: %q", ErrInvalidTickSize, tickSize)
	}
	return rc, nil
}

// Valid reports whether t is one of the four allowed tick sizes.
func (t TickSize) Valid() bool {
	_, ok := roundingConfig[t]
	return ok
}

func (t TickSize) decimal() decimal.Decimal {
	d, err := decimal.NewFromString(string(t))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IsTickSizeSmaller reports whether a is strictly finer than b.
func IsTickSizeSmaller(a, b TickSize) bool {
	return a.decimal().Cmp(b.decimal()) < 0
}

// PriceValid reports whether price lies in [tickSize, 1-tickSize]. Prices
// can never come within less than one tick of 0 or 1; that band is a
// structural exchange invariant.
func PriceValid(price float64, tickSize TickSize) bool {
	if !tickSize.Valid() {
		return false
	}
	p := decimal.NewFromFloat(price)
	tick := tickSize.decimal()
	return p.Cmp(tick) >= 0 && p.Cmp(decimal.New(1, 0).Sub(tick)) <= 0
}
