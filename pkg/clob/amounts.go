package clob

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/predictlabs/clobsign/pkg/util"
)

// Token amounts are fixed point with 6 decimals, both for collateral and
// conditional tokens.
const tokenDecimals = 6

var (
	ErrInvalidPrice     = errors.New("price out of range for tick size")
	ErrDegenerateAmount = errors.New("order amount rounds to zero")
)

// OrderAmounts converts a limit order's price and size into base-unit maker
// and taker amounts. The derived leg (price*size) is rounded so the signer
// is never overcommitted: when it carries more precision than the tick size
// allows, it is nudged up at amount+4 places to absorb representation error,
// then cut down to the amount precision.
func OrderAmounts(side Side, size, price float64, tickSize TickSize) (makerAmount, takerAmount string, err error) {
	rc, err := RoundingConfig(tickSize)
	if err != nil {
		return "", "", err
	}
	if !PriceValid(price, tickSize) {
		return "", "", fmt.Errorf("%w: price %v, tick size %s", ErrInvalidPrice, price, tickSize)
	}

	rawPrice := util.RoundNormal(decimal.NewFromFloat(price), rc.Price)
	rawShares := util.RoundDown(decimal.NewFromFloat(size), rc.Size)
	rawDerived := fitAmountPrecision(rawShares.Mul(rawPrice), rc.Amount)

	var maker, taker decimal.Decimal
	if side == SELL {
		// Maker gives shares, is owed price*size.
		maker, taker = rawShares, rawDerived
	} else {
		// Maker pays price*size, is owed shares.
		maker, taker = rawDerived, rawShares
	}

	return scaleAmounts(maker, taker)
}

// MarketOrderAmounts converts a market order's amount into base-unit maker
// and taker amounts. For a BUY the amount is collateral to spend and the
// taker leg is amount/price shares; for a SELL the amount is shares and the
// taker leg is amount*price collateral.
func MarketOrderAmounts(side Side, amount, price float64, tickSize TickSize) (makerAmount, takerAmount string, err error) {
	rc, err := RoundingConfig(tickSize)
	if err != nil {
		return "", "", err
	}
	if !PriceValid(price, tickSize) {
		return "", "", fmt.Errorf("%w: price %v, tick size %s", ErrInvalidPrice, price, tickSize)
	}

	rawPrice := util.RoundDown(decimal.NewFromFloat(price), rc.Price)
	rawMaker := util.RoundDown(decimal.NewFromFloat(amount), rc.Size)

	var rawTaker decimal.Decimal
	if side == SELL {
		rawTaker = rawMaker.Mul(rawPrice)
	} else {
		rawTaker = rawMaker.Div(rawPrice)
	}
	rawTaker = fitAmountPrecision(rawTaker, rc.Amount)

	return scaleAmounts(rawMaker, rawTaker)
}

// fitAmountPrecision trims a derived amount that carries more decimals than
// the tick size allows: first round up at amount+4 places (absorbs the tail
// of an inexact product or quotient), then down to the amount precision if
// the value is still too fine.
func fitAmountPrecision(v decimal.Decimal, amountPlaces int32) decimal.Decimal {
	if util.DecimalPlaces(v) > amountPlaces {
		v = util.RoundUp(v, amountPlaces+4)
		if util.DecimalPlaces(v) > amountPlaces {
			v = util.RoundDown(v, amountPlaces)
		}
	}
	return v
}

// scaleAmounts converts both legs to 10^6 base-unit integer strings. A leg
// that rounds to zero for a non-zero trade is a degenerate order, reported
// rather than signed away.
func scaleAmounts(maker, taker decimal.Decimal) (string, string, error) {
	makerUnits := maker.Shift(tokenDecimals)
	takerUnits := taker.Shift(tokenDecimals)

	if makerUnits.IsZero() || takerUnits.IsZero() {
		return "", "", fmt.Errorf("%w: maker %s, taker %s", ErrDegenerateAmount, maker, taker)
	}
	if !makerUnits.IsInteger() || !takerUnits.IsInteger() {
		return "", "", fmt.Errorf("amounts not integral in base units: maker %s, taker %s", maker, taker)
	}

	return makerUnits.String(), takerUnits.String(), nil
}
