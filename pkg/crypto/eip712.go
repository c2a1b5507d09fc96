package crypto

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// ExchangeOrder is the typed-data message signed for a CTF exchange order.
// Amount and id fields are decimal strings scaled to base units; the field
// set and order must match the exchange contract's Order struct exactly or
// the signature will not verify on-chain.
type ExchangeOrder struct {
	Salt          int64
	Maker         common.Address
	Signer        common.Address
	Taker         common.Address
	TokenID       string
	MakerAmount   string
	TakerAmount   string
	Expiration    string
	Nonce         string
	FeeRateBps    string
	Side          uint8 // 0 = buy, 1 = sell
	SignatureType uint8 // 0 = EOA, 1 = proxy wallet, 2 = gnosis safe
}

// OrderSigner produces EIP-712 signatures bound to one chain and one
// verifying exchange contract.
type OrderSigner struct {
	chainID  *big.Int
	contract common.Address
}

// NewOrderSigner creates an OrderSigner for the given chain and verifying
// contract (the standard exchange, or the neg-risk exchange for neg-risk
// markets).
func NewOrderSigner(chainID *big.Int, verifyingContract common.Address) *OrderSigner {
	return &OrderSigner{chainID: chainID, contract: verifyingContract}
}

// HashOrder computes the EIP-712 digest for an order.
func (s *OrderSigner) HashOrder(order *ExchangeOrder) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Order": []apitypes.Type{
				{Name: "salt", Type: "uint256"},
				{Name: "maker", Type: "address"},
				{Name: "signer", Type: "address"},
				{Name: "taker", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
				{Name: "makerAmount", Type: "uint256"},
				{Name: "takerAmount", Type: "uint256"},
				{Name: "expiration", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
				{Name: "feeRateBps", Type: "uint256"},
				{Name: "side", Type: "uint8"},
				{Name: "signatureType", Type: "uint8"},
			},
		},
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              "Polymarket CTF Exchange",
			Version:           "1",
			ChainId:           (*math.HexOrDecimal256)(s.chainID),
			VerifyingContract: s.contract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"salt":          fmt.Sprintf("%d", order.Salt),
			"maker":         order.Maker.Hex(),
			"signer":        order.Signer.Hex(),
			"taker":         order.Taker.Hex(),
			"tokenId":       order.TokenID,
			"makerAmount":   order.MakerAmount,
			"takerAmount":   order.TakerAmount,
			"expiration":    order.Expiration,
			"nonce":         order.Nonce,
			"feeRateBps":    order.FeeRateBps,
			"side":          fmt.Sprintf("%d", order.Side),
			"signatureType": fmt.Sprintf("%d", order.SignatureType),
		},
	}

	return hashTypedData(typedData)
}

// SignOrder computes the order digest and signs it. For a fixed key, chain,
// contract and order fields (salt included) the signature is reproducible.
func (s *OrderSigner) SignOrder(signer *Signer, order *ExchangeOrder) ([]byte, error) {
	hash, err := s.HashOrder(order)
	if err != nil {
		return nil, fmt.Errorf("failed to hash order: %w", err)
	}

	signature, err := signer.Sign(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to sign order: %w", err)
	}

	return signature, nil
}

const clobAuthMessage = "This message attests that I control the given wallet"

// BuildClobAuthSignature produces the L1 attestation signature used to
// derive API credentials: an EIP-712 signature over the signer's address, a
// timestamp and a nonce, bound to the chain id only.
func BuildClobAuthSignature(signer *Signer, chainID *big.Int, timestamp int64, nonce uint64) (string, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"ClobAuth": []apitypes.Type{
				{Name: "address", Type: "address"},
				{Name: "timestamp", Type: "string"},
				{Name: "nonce", Type: "uint256"},
				{Name: "message", Type: "string"},
			},
		},
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    "ClobAuthDomain",
			Version: "1",
			ChainId: (*math.HexOrDecimal256)(chainID),
		},
		Message: apitypes.TypedDataMessage{
			"address":   signer.Address().Hex(),
			"timestamp": fmt.Sprintf("%d", timestamp),
			"nonce":     fmt.Sprintf("%d", nonce),
			"message":   clobAuthMessage,
		},
	}

	hash, err := hashTypedData(typedData)
	if err != nil {
		return "", err
	}

	signature, err := signer.Sign(hash)
	if err != nil {
		return "", fmt.Errorf("failed to sign auth message: %w", err)
	}

	return "0x" + common.Bytes2Hex(signature), nil
}

// hashTypedData computes keccak256("\x19\x01" || domainSeparator || structHash).
func hashTypedData(typedData apitypes.TypedData) ([]byte, error) {
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to hash domain: %w", err)
	}

	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to hash message: %w", err)
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	digest := crypto.Keccak256Hash(rawData)
	return digest.Bytes(), nil
}
