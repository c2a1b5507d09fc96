package clob

import (
	"fmt"
	"strconv"
)

// OrderToJSON maps a signed order plus ownership metadata into the exact
// payload shape the exchange expects. The salt becomes a JSON integer; every
// monetary field stays a decimal string so large token amounts survive the
// JSON boundary without precision loss.
func OrderToJSON(order SignedOrder, owner string, orderType OrderType, deferExec bool) (NewOrder, error) {
	salt, err := strconv.ParseInt(order.Salt, 10, 64)
	if err != nil {
		return NewOrder{}, fmt.Errorf("failed to parse salt %q: %w", order.Salt, err)
	}

	// Normalize side through the numeric signing encoding rather than
	// trusting the string value.
	side := SideFromUint8(order.Side.Uint8())

	return NewOrder{
		Order: WireOrder{
			Salt:          salt,
			Maker:         order.Maker,
			Signer:        order.Signer,
			Taker:         order.Taker,
			TokenID:       order.TokenID,
			MakerAmount:   order.MakerAmount,
			TakerAmount:   order.TakerAmount,
			Side:          side,
			Expiration:    order.Expiration,
			Nonce:         order.Nonce,
			FeeRateBps:    order.FeeRateBps,
			SignatureType: int(order.SignatureType),
			Signature:     order.Signature,
		},
		Owner:     owner,
		OrderType: orderType,
		DeferExec: deferExec,
	}, nil
}
