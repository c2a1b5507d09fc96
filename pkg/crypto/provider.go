package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"hash"

	simd "github.com/minio/sha256-simd"
)

// Provider supplies the hash primitives used for request signing and
// order-book integrity hashes. Two interchangeable implementations exist;
// pick one at construction time and inject it. Both must produce
// byte-identical digests for identical inputs; that equality is pinned by
// tests, not checked at runtime.
type Provider interface {
	NewSHA1() hash.Hash
	NewSHA256() hash.Hash
}

// NativeProvider uses the runtime's standard hash implementations.
type NativeProvider struct{}

func (NativeProvider) NewSHA1() hash.Hash { return sha1.New() }

func (NativeProvider) NewSHA256() hash.Hash { return sha256.New() }

// SIMDProvider uses a SIMD-accelerated SHA-256 implementation. There is no
// accelerated SHA-1 counterpart, so SHA-1 is shared with NativeProvider.
type SIMDProvider struct{}

func (SIMDProvider) NewSHA1() hash.Hash { return sha1.New() }

func (SIMDProvider) NewSHA256() hash.Hash { return simd.New() }
