package clob

// Side of an order, encoded the way the exchange API expects it on the wire.
type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Uint8 returns the numeric side encoding used inside the signed EIP-712
// order struct (0 = buy, 1 = sell). The wire and signing enumerations are
// tied together through this mapping only.
func (s Side) Uint8() uint8 {
	if s == SELL {
		return 1
	}
	return 0
}

// SideFromUint8 maps the signing encoding back to the wire enumeration.
func SideFromUint8(side uint8) Side {
	if side == 1 {
		return SELL
	}
	return BUY
}

// SignatureType identifies the signing scheme of the maker's wallet. It is
// carried through untouched; it affects which address signs, never the
// amount math.
type SignatureType int

const (
	// EOA: the maker directly owns the signing key.
	EOA SignatureType = 0
	// PolyProxy: the maker is a proxy wallet controlled by the signing key.
	PolyProxy SignatureType = 1
	// PolyGnosisSafe: the maker is a gnosis safe controlled by the signing key.
	PolyGnosisSafe SignatureType = 2
)

// OrderType is the lifetime policy of an order. It does not affect amount or
// signature math; it rides along in the serialized payload.
type OrderType string

const (
	GTC OrderType = "GTC" // good till cancelled
	GTD OrderType = "GTD" // good till date
	FOK OrderType = "FOK" // fill or kill (market order)
)

// UserOrder is a user's intent for a limit order: price per share and size
// in shares.
type UserOrder struct {
	TokenID    string
	Price      float64
	Size       float64
	Side       Side
	FeeRateBps int64
	Nonce      int64
	// Expiration is a unix timestamp in seconds; 0 means no expiration.
	Expiration int64
	// Taker restricts the order to one counterparty; empty means open order.
	Taker string
}

// UserMarketOrder is a user's intent for a market order. For a BUY, Amount
// is the collateral to spend; for a SELL, Amount is the shares to sell.
type UserMarketOrder struct {
	TokenID    string
	Price      float64
	Amount     float64
	Side       Side
	FeeRateBps int64
	Nonce      int64
	Taker      string
}

// SignedOrder is an immutable signed exchange order. Monetary fields are
// decimal strings in 10^6 base units; Salt is a decimal string. A
// SignedOrder is never reused: every signing produces a fresh salt.
type SignedOrder struct {
	Salt          string
	Maker         string
	Signer        string
	Taker         string
	TokenID       string
	MakerAmount   string
	TakerAmount   string
	Side          Side
	Expiration    string
	Nonce         string
	FeeRateBps    string
	SignatureType SignatureType
	Signature     string
}

// WireOrder is the order object inside the POST /order payload. Field names,
// the integer salt and the string-encoded amounts are the exchange's wire
// contract; any deviation is a compatibility break.
type WireOrder struct {
	Salt          int64  `json:"salt"`
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"`
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"`
	TakerAmount   string `json:"takerAmount"`
	Side          Side   `json:"side"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	SignatureType int    `json:"signatureType"`
	Signature     string `json:"signature"`
}

// NewOrder is the full order-placement payload.
type NewOrder struct {
	Order     WireOrder `json:"order"`
	Owner     string    `json:"owner"`
	OrderType OrderType `json:"orderType"`
	DeferExec bool      `json:"deferExec"`
}

// OrderSummary is one price level of an order book.
type OrderSummary struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// OrderBookSummary is an order-book snapshot. Hash is derived from every
// other field; the JSON field order below is part of the hash contract and
// must not be reordered.
type OrderBookSummary struct {
	Market       string         `json:"market"`
	AssetID      string         `json:"asset_id"`
	Timestamp    string         `json:"timestamp"`
	Bids         []OrderSummary `json:"bids"`
	Asks         []OrderSummary `json:"asks"`
	MinOrderSize string         `json:"min_order_size"`
	TickSize     TickSize       `json:"tick_size"`
	NegRisk      bool           `json:"neg_risk"`
	Hash         string         `json:"hash"`
}
