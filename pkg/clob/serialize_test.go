package clob

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
)

func signedOrderFixture(side Side, sigType SignatureType) SignedOrder {
	return SignedOrder{
		Salt:          "1000",
		Maker:         "0x0000000000000000000000000000000000000001",
		Signer:        "0x0000000000000000000000000000000000000002",
		Taker:         "0x0000000000000000000000000000000000000003",
		TokenID:       "1",
		MakerAmount:   "100000000",
		TakerAmount:   "50000000",
		Side:          side,
		Expiration:    "0",
		Nonce:         "1",
		FeeRateBps:    "100",
		SignatureType: sigType,
		Signature:     "0x",
	}
}

func TestOrderToJSON(t *testing.T) {
	cases := []struct {
		name    string
		side    Side
		sigType SignatureType
	}{
		{"buy gnosis safe", BUY, PolyGnosisSafe},
		{"sell proxy", SELL, PolyProxy},
		{"buy eoa", BUY, EOA},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := OrderToJSON(signedOrderFixture(c.side, c.sigType), "aaaa-bbbb-cccc-dddd", GTD, false)
			if err != nil {
				t.Fatalf("OrderToJSON: %v", err)
			}

			if got.Order.Salt != 1000 {
				t.Errorf("salt = %d, want 1000", got.Order.Salt)
			}
			if got.Order.Side != c.side {
				t.Errorf("side = %s, want %s", got.Order.Side, c.side)
			}
			if got.Order.SignatureType != int(c.sigType) {
				t.Errorf("signatureType = %d, want %d", got.Order.SignatureType, c.sigType)
			}
			if got.Owner != "aaaa-bbbb-cccc-dddd" {
				t.Errorf("owner = %q", got.Owner)
			}
			if got.OrderType != GTD {
				t.Errorf("orderType = %s, want GTD", got.OrderType)
			}
			if got.Order.MakerAmount != "100000000" || got.Order.TakerAmount != "50000000" {
				t.Errorf("amounts = %s/%s", got.Order.MakerAmount, got.Order.TakerAmount)
			}
		})
	}
}

// The salt must serialize as a bare JSON integer and the amounts as strings.
func TestOrderToJSONWireShape(t *testing.T) {
	payload, err := OrderToJSON(signedOrderFixture(BUY, EOA), "owner-id", GTC, true)
	if err != nil {
		t.Fatalf("OrderToJSON: %v", err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	order, ok := decoded["order"].(map[string]any)
	if !ok {
		t.Fatalf("order is %T, want object", decoded["order"])
	}
	if _, ok := order["salt"].(float64); !ok {
		t.Errorf("salt is %T, want JSON number", order["salt"])
	}
	if _, ok := order["makerAmount"].(string); !ok {
		t.Errorf("makerAmount is %T, want string", order["makerAmount"])
	}
	if order["side"] != "BUY" {
		t.Errorf("side = %v, want BUY", order["side"])
	}
	if deferExec, ok := decoded["deferExec"].(bool); !ok || !deferExec {
		t.Errorf("deferExec = %v, want true", decoded["deferExec"])
	}
}

// A salt above 2^53 still fits the wire integer; int64 is the real bound.
func TestOrderToJSONLargeSalt(t *testing.T) {
	order := signedOrderFixture(SELL, EOA)
	order.Salt = strconv.FormatInt(1<<53-1, 10)

	got, err := OrderToJSON(order, "owner-id", FOK, false)
	if err != nil {
		t.Fatalf("OrderToJSON: %v", err)
	}
	if got.Order.Salt != 1<<53-1 {
		t.Errorf("salt = %d, want %d", got.Order.Salt, int64(1<<53-1))
	}
}

func TestOrderToJSONBadSalt(t *testing.T) {
	order := signedOrderFixture(BUY, EOA)
	order.Salt = "not-a-number"

	if _, err := OrderToJSON(order, "owner-id", GTC, false); err == nil {
		t.Error("expected error for unparseable salt")
	}

	order.Salt = "123.5"
	if _, err := OrderToJSON(order, "owner-id", GTC, false); err == nil {
		t.Error("expected error for fractional salt")
	}

	var numErr *strconv.NumError
	order.Salt = ""
	_, err := OrderToJSON(order, "owner-id", GTC, false)
	if !errors.As(err, &numErr) {
		t.Errorf("err = %v, want wrapped strconv.NumError", err)
	}
}
