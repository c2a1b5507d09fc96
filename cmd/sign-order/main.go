package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predictlabs/clobsign/params"
	"github.com/predictlabs/clobsign/pkg/clob"
	"github.com/predictlabs/clobsign/pkg/crypto"
	"github.com/predictlabs/clobsign/pkg/util"
)

func main() {
	var (
		envPath  = flag.String("env", "", "path to .env file (default: ./.env)")
		tokenID  = flag.String("token", "71321045679252212594626385532706912750332728571942532289631379312455583992563", "market token id")
		price    = flag.Float64("price", 0.5, "limit price per share")
		size     = flag.Float64("size", 100, "order size in shares")
		sell     = flag.Bool("sell", false, "sell instead of buy")
		tickSize = flag.String("tick", "0.01", "market tick size")
		negRisk  = flag.Bool("neg-risk", false, "neg-risk market")
	)
	flag.Parse()

	logger, err := util.NewLogger()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := params.LoadFromEnv(*envPath)

	// Step 1: load key from config, or generate a throwaway one for demo use.
	var signer *crypto.Signer
	if cfg.PrivateKey != "" {
		signer, err = crypto.FromPrivateKeyHex(cfg.PrivateKey)
		if err != nil {
			logger.Fatal("failed to load private key", zap.Error(err))
		}
		logger.Info("loaded key from config", zap.String("address", signer.Address().Hex()))
	} else {
		signer, err = crypto.GenerateKey()
		if err != nil {
			logger.Fatal("failed to generate key", zap.Error(err))
		}
		logger.Info("generated throwaway key", zap.String("address", signer.Address().Hex()))
	}

	// Step 2: build and sign the order.
	builder, err := clob.NewOrderBuilder(signer, cfg.Chain, clob.SignatureType(cfg.SignatureType), cfg.Funder)
	if err != nil {
		logger.Fatal("failed to create order builder", zap.Error(err))
	}

	side := clob.BUY
	if *sell {
		side = clob.SELL
	}

	signed, err := builder.BuildOrder(clob.UserOrder{
		TokenID: *tokenID,
		Price:   *price,
		Size:    *size,
		Side:    side,
	}, clob.OrderOptions{
		TickSize: clob.TickSize(*tickSize),
		NegRisk:  *negRisk,
	})
	if err != nil {
		logger.Fatal("failed to build order", zap.Error(err))
	}

	logger.Info("order signed",
		zap.String("maker", signed.Maker),
		zap.String("makerAmount", signed.MakerAmount),
		zap.String("takerAmount", signed.TakerAmount),
		zap.String("side", string(signed.Side)),
	)

	// Step 3: serialize into the order-placement payload.
	owner := cfg.APIKey
	if owner == "" {
		owner = uuid.NewString()
	}
	payload, err := clob.OrderToJSON(signed, owner, clob.GTC, false)
	if err != nil {
		logger.Fatal("failed to serialize order", zap.Error(err))
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.Fatal("failed to marshal payload", zap.Error(err))
	}
	fmt.Println(string(payloadJSON))

	// Step 4: L1 auth attestation for credential derivation.
	now := time.Now().Unix()
	auth, err := crypto.BuildClobAuthSignature(signer, big.NewInt(int64(cfg.Chain)), now, 0)
	if err != nil {
		logger.Fatal("failed to build auth signature", zap.Error(err))
	}
	logger.Info("auth attestation", zap.Int64("timestamp", now), zap.String("signature", auth))

	// Step 5: L2 request signature, when API credentials are configured.
	if cfg.APISecret != "" {
		body, err := json.Marshal(payload)
		if err != nil {
			logger.Fatal("failed to marshal request body", zap.Error(err))
		}
		hmacSig, err := crypto.BuildHMACSignature(crypto.NativeProvider{}, cfg.APISecret, now, "POST", "/order", string(body))
		if err != nil {
			logger.Fatal("failed to build request signature", zap.Error(err))
		}
		logger.Info("request signature", zap.String("POLY_SIGNATURE", hmacSig))
	}
}
