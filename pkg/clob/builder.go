package clob

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/predictlabs/clobsign/params"
	"github.com/predictlabs/clobsign/pkg/crypto"
)

// OrderOptions carries the per-market context an order is signed under.
type OrderOptions struct {
	TickSize TickSize
	// NegRisk selects the neg-risk exchange contract as the signature's
	// verifying contract. It does not change the amount arithmetic.
	NegRisk bool
}

// OrderBuilder turns user intent into signed, exchange-ready orders. The
// signer's key produces the signature; the funder is the exchange-facing
// maker address, which differs from the signer for proxy and safe wallets.
type OrderBuilder struct {
	signer  *crypto.Signer
	chain   params.Chain
	sigType SignatureType
	funder  common.Address
	salt    func() (int64, error)
}

// NewOrderBuilder creates a builder for one wallet on one chain. An empty
// funder means the signer's own address is the maker (EOA signing).
func NewOrderBuilder(signer *crypto.Signer, chain params.Chain, sigType SignatureType, funder string) (*OrderBuilder, error) {
	if _, err := params.Contracts(chain); err != nil {
		return nil, err
	}

	maker := signer.Address()
	if funder != "" {
		maker = common.HexToAddress(funder)
	}

	return &OrderBuilder{
		signer:  signer,
		chain:   chain,
		sigType: sigType,
		funder:  maker,
		salt:    randomSalt,
	}, nil
}

// WithSaltSource overrides salt generation. Orders are deterministic for a
// fixed salt, which is what signature tests rely on; production code keeps
// the random default.
func (b *OrderBuilder) WithSaltSource(salt func() (int64, error)) *OrderBuilder {
	b.salt = salt
	return b
}

// randomSalt draws a fresh random salt per order from [0, 2^53), matching
// the range of a JSON-safe integer. Salts are single-use: they keep distinct
// orders with identical fields from colliding in the exchange contract.
func randomSalt() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		return 0, fmt.Errorf("failed to generate salt: %w", err)
	}
	return n.Int64(), nil
}

// BuildOrder signs a limit order.
func (b *OrderBuilder) BuildOrder(order UserOrder, opts OrderOptions) (SignedOrder, error) {
	makerAmount, takerAmount, err := OrderAmounts(order.Side, order.Size, order.Price, opts.TickSize)
	if err != nil {
		return SignedOrder{}, err
	}

	return b.sign(signingInputs{
		tokenID:     order.TokenID,
		makerAmount: makerAmount,
		takerAmount: takerAmount,
		side:        order.Side,
		feeRateBps:  order.FeeRateBps,
		nonce:       order.Nonce,
		expiration:  order.Expiration,
		taker:       order.Taker,
	}, opts.NegRisk)
}

// BuildMarketOrder signs a market order. Market orders carry no expiration.
func (b *OrderBuilder) BuildMarketOrder(order UserMarketOrder, opts OrderOptions) (SignedOrder, error) {
	makerAmount, takerAmount, err := MarketOrderAmounts(order.Side, order.Amount, order.Price, opts.TickSize)
	if err != nil {
		return SignedOrder{}, err
	}

	return b.sign(signingInputs{
		tokenID:     order.TokenID,
		makerAmount: makerAmount,
		takerAmount: takerAmount,
		side:        order.Side,
		feeRateBps:  order.FeeRateBps,
		nonce:       order.Nonce,
		taker:       order.Taker,
	}, opts.NegRisk)
}

type signingInputs struct {
	tokenID     string
	makerAmount string
	takerAmount string
	side        Side
	feeRateBps  int64
	nonce       int64
	expiration  int64
	taker       string
}

func (b *OrderBuilder) sign(in signingInputs, negRisk bool) (SignedOrder, error) {
	salt, err := b.salt()
	if err != nil {
		return SignedOrder{}, err
	}

	taker := common.Address{}
	if in.taker != "" {
		taker = common.HexToAddress(in.taker)
	}

	exchange, err := params.ExchangeAddress(b.chain, negRisk)
	if err != nil {
		return SignedOrder{}, err
	}

	order := &crypto.ExchangeOrder{
		Salt:          salt,
		Maker:         b.funder,
		Signer:        b.signer.Address(),
		Taker:         taker,
		TokenID:       in.tokenID,
		MakerAmount:   in.makerAmount,
		TakerAmount:   in.takerAmount,
		Expiration:    strconv.FormatInt(in.expiration, 10),
		Nonce:         strconv.FormatInt(in.nonce, 10),
		FeeRateBps:    strconv.FormatInt(in.feeRateBps, 10),
		Side:          in.side.Uint8(),
		SignatureType: uint8(b.sigType),
	}

	signature, err := crypto.NewOrderSigner(big.NewInt(int64(b.chain)), exchange).SignOrder(b.signer, order)
	if err != nil {
		return SignedOrder{}, fmt.Errorf("failed to sign order: %w", err)
	}

	return SignedOrder{
		Salt:          strconv.FormatInt(salt, 10),
		Maker:         order.Maker.Hex(),
		Signer:        order.Signer.Hex(),
		Taker:         order.Taker.Hex(),
		TokenID:       order.TokenID,
		MakerAmount:   order.MakerAmount,
		TakerAmount:   order.TakerAmount,
		Side:          SideFromUint8(order.Side),
		Expiration:    order.Expiration,
		Nonce:         order.Nonce,
		FeeRateBps:    order.FeeRateBps,
		SignatureType: b.sigType,
		Signature:     "0x" + common.Bytes2Hex(signature),
	}, nil
}
