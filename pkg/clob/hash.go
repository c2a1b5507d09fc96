package clob

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/predictlabs/clobsign/pkg/crypto"
)

// HashOrderBook computes the integrity hash of an order-book snapshot:
// SHA-1 over the canonical JSON of the snapshot with its Hash field blanked,
// as lowercase hex. Canonical means the struct's declared field order with
// no extra whitespace; that ordering is part of the contract. The caller's
// snapshot is not touched.
func HashOrderBook(p crypto.Provider, book OrderBookSummary) (string, error) {
	book.Hash = ""
	if book.Bids == nil {
		book.Bids = []OrderSummary{}
	}
	if book.Asks == nil {
		book.Asks = []OrderSummary{}
	}

	raw, err := json.Marshal(book)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order book: %w", err)
	}

	h := p.NewSHA1()
	h.Write(raw)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SealOrderBook returns a copy of the snapshot with Hash populated.
func SealOrderBook(p crypto.Provider, book OrderBookSummary) (OrderBookSummary, error) {
	hash, err := HashOrderBook(p, book)
	if err != nil {
		return OrderBookSummary{}, err
	}
	book.Hash = hash
	return book, nil
}
