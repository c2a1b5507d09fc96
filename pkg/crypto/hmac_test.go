package crypto

import (
	"strings"
	"testing"
)

const testSecret = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func TestBuildHMACSignature(t *testing.T) {
	want := "ZwAdJKvoYRlEKDkNMwd5BuwNNtg93kNaR_oU2HrfVvc="

	got, err := BuildHMACSignature(NativeProvider{}, testSecret, 1000000, "test-sign", "/orders", `{"hash": "0x123"}`)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	if got != want {
		t.Errorf("signature = %s, want %s", got, want)
	}
}

func TestBuildHMACSignatureProvidersAgree(t *testing.T) {
	cases := []struct {
		name      string
		timestamp int64
		method    string
		path      string
		body      string
	}{
		{"with body", 1000000, "test-sign", "/orders", `{"hash": "0x123"}`},
		{"no body", 1709948026, "GET", "/book", ""},
		{"delete", 42, "DELETE", "/order/123", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			native, err := BuildHMACSignature(NativeProvider{}, testSecret, c.timestamp, c.method, c.path, c.body)
			if err != nil {
				t.Fatalf("native provider: %v", err)
			}
			simd, err := BuildHMACSignature(SIMDProvider{}, testSecret, c.timestamp, c.method, c.path, c.body)
			if err != nil {
				t.Fatalf("simd provider: %v", err)
			}
			if native != simd {
				t.Errorf("providers diverge: native %s, simd %s", native, simd)
			}
		})
	}
}

func TestBuildHMACSignatureURLSafe(t *testing.T) {
	// Exercise enough inputs that at least one raw digest contains '+' or '/'.
	for ts := int64(0); ts < 64; ts++ {
		sig, err := BuildHMACSignature(NativeProvider{}, testSecret, ts, "POST", "/order", "")
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}
		if strings.ContainsAny(sig, "+/") {
			t.Errorf("signature %q is not URL-safe", sig)
		}
		if !strings.HasSuffix(sig, "=") {
			t.Errorf("signature %q lost its base64 padding", sig)
		}
	}
}

func TestBuildHMACSignatureBadSecret(t *testing.T) {
	if _, err := BuildHMACSignature(NativeProvider{}, "not base64!!!", 1, "GET", "/", ""); err == nil {
		t.Error("expected error for malformed secret")
	}
}
