package crypto

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// BuildHMACSignature computes the canonical request signature over
// timestamp + method + path + body (concatenated with no separators) using
// HMAC-SHA256. The secret is base64 encoded; the output is URL-safe base64
// with the "=" padding kept, exactly as the exchange expects.
func BuildHMACSignature(p Provider, secret string, timestamp int64, method, requestPath, body string) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", fmt.Errorf("failed to decode secret: %w", err)
	}

	message := strconv.FormatInt(timestamp, 10) + method + requestPath + body

	mac := hmac.New(p.NewSHA256, key)
	mac.Write([]byte(message))

	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	sig = strings.ReplaceAll(sig, "+", "-")
	sig = strings.ReplaceAll(sig, "/", "_")
	return sig, nil
}

// decodeSecret accepts both standard and URL-safe base64 secrets; the API
// hands out URL-safe ones.
func decodeSecret(secret string) ([]byte, error) {
	if key, err := base64.URLEncoding.DecodeString(secret); err == nil {
		return key, nil
	}
	return base64.StdEncoding.DecodeString(secret)
}
