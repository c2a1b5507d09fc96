package params

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// Chain identifies the network the exchange contracts are deployed on.
type Chain int64

const (
	// Polygon is the Polygon PoS mainnet.
	Polygon Chain = 137
	// Amoy is the Polygon Amoy testnet.
	Amoy Chain = 80002
)

// ContractConfig is the set of exchange-related contract addresses for a
// single chain. Exchange and NegRiskExchange are the two possible EIP-712
// verifying contracts; which one an order is bound to depends on the
// market's neg-risk flag.
type ContractConfig struct {
	Exchange          common.Address
	NegRiskExchange   common.Address
	NegRiskAdapter    common.Address
	Collateral        common.Address
	ConditionalTokens common.Address
}

var contractsByChain = map[Chain]ContractConfig{
	Polygon: {
		Exchange:          common.HexToAddress("0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E"),
		NegRiskExchange:   common.HexToAddress("0xC5d563A36AE78145C45a50134d48A1215220f80a"),
		NegRiskAdapter:    common.HexToAddress("0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296"),
		Collateral:        common.HexToAddress("0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"),
		ConditionalTokens: common.HexToAddress("0x4D97DCd97eC945f40cF65F87097ACe5EA0476045"),
	},
	Amoy: {
		Exchange:          common.HexToAddress("0xdFE02Eb6733538f8Ea35D585af8DE5958AD99E40"),
		NegRiskExchange:   common.HexToAddress("0xC5d563A36AE78145C45a50134d48A1215220f80a"),
		NegRiskAdapter:    common.HexToAddress("0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296"),
		Collateral:        common.HexToAddress("0x9c4e1703476e875070ee25b56a58b008cfb8fa78"),
		ConditionalTokens: common.HexToAddress("0x69308FB605A0B37D44226F6c5BE7b1b0d26f0246"),
	},
}

// Contracts returns the contract set for the given chain.
func Contracts(chain Chain) (ContractConfig, error) {
	cfg, ok := contractsByChain[chain]
	if !ok {
		return ContractConfig{}, fmt.Errorf("no contracts configured for chain %d", chain)
	}
	return cfg, nil
}

// ExchangeAddress picks the verifying contract for an order: the standard
// CTF exchange, or the neg-risk exchange for neg-risk markets.
func ExchangeAddress(chain Chain, negRisk bool) (common.Address, error) {
	cfg, err := Contracts(chain)
	if err != nil {
		return common.Address{}, err
	}
	if negRisk {
		return cfg.NegRiskExchange, nil
	}
	return cfg.Exchange, nil
}

// Config holds client-side signing configuration.
type Config struct {
	Chain         Chain
	PrivateKey    string // hex encoded, with or without 0x prefix
	Funder        string // exchange-facing maker address; empty = signer's own
	SignatureType int    // 0 = EOA, 1 = proxy wallet, 2 = gnosis safe
	APIKey        string
	APISecret     string // base64 encoded
	APIPassphrase string
}

// Default returns a config pointed at Polygon mainnet with EOA signing.
func Default() Config {
	return Config{
		Chain:         Polygon,
		SignatureType: 0,
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if chain := os.Getenv("CLOB_CHAIN_ID"); chain != "" {
		if id, err := strconv.ParseInt(chain, 10, 64); err == nil {
			cfg.Chain = Chain(id)
		}
	}
	if pk := os.Getenv("CLOB_PRIVATE_KEY"); pk != "" {
		cfg.PrivateKey = pk
	}
	if funder := os.Getenv("CLOB_FUNDER"); funder != "" {
		cfg.Funder = funder
	}
	if sigType := os.Getenv("CLOB_SIGNATURE_TYPE"); sigType != "" {
		if st, err := strconv.Atoi(sigType); err == nil {
			cfg.SignatureType = st
		}
	}
	if key := os.Getenv("CLOB_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if secret := os.Getenv("CLOB_API_SECRET"); secret != "" {
		cfg.APISecret = secret
	}
	if passphrase := os.Getenv("CLOB_API_PASSPHRASE"); passphrase != "" {
		cfg.APIPassphrase = passphrase
	}

	return cfg
}
