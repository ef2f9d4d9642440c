// Package rng provides the rejection-sampled uniform field element source
// used to draw word-polynomial coefficients. The entropy source is injected
// so tests can be deterministic without weakening the production path
// (spec.md §4.D, §9 re-architecture guidance).
package rng

import (
	"encoding/binary"
	"errors"

	"github.com/schiavinato/mnemonic-sharing/pkg/field"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

// ErrNoEntropy is returned when the entropy source fails to fill a buffer.
var ErrNoEntropy = errors.New("rng: entropy source unavailable")

// Source fills buf with cryptographically secure random bytes. The
// production Source is backed by crypto/rand.Reader; tests may supply a
// deterministic implementation.
type Source interface {
	Read(buf []byte) (int, error)
}

// CryptoSource wraps pkg/secure's SecureRandom as a Source. Production
// callers use this; it must never be overridden outside tests.
type CryptoSource struct{}

func (CryptoSource) Read(buf []byte) (int, error) {
	b, err := secure.SecureRandom(len(buf))
	if err != nil {
		return 0, err
	}
	copy(buf, b)
	return len(buf), nil
}

// RNG draws uniform integers in [0, max] via rejection sampling over 32-bit
// words, and uniform GF(2053) field elements as the max=2052 special case.
type RNG struct {
	source Source
}

// New constructs an RNG backed by the given entropy Source.
func New(source Source) *RNG {
	return &RNG{source: source}
}

// NewSecure constructs the production RNG, backed by crypto/rand.
func NewSecure() *RNG {
	return New(CryptoSource{})
}

// IntInclusive draws a uniform integer in [0, max] by rejection sampling a
// 32-bit word: limit = 2^32 - (2^32 mod (max+1)); redraw until word < limit;
// return word mod (max+1). The rejection probability per draw is
// (2^32 mod (max+1))/2^32, below (max+1)/2^32 and so under 5e-7 for
// max=2052.
func (r *RNG) IntInclusive(max int) (int, error) {
	if max < 0 {
		return 0, errors.New("rng: max must be non-negative")
	}

	const wordSpace = uint64(1) << 32 // 2^32, one past the max uint32 word
	span := uint64(max) + 1

	// limit is the largest multiple of span that fits in a 32-bit word
	// space; words drawn at or above it are rejected and redrawn so the
	// remaining words divide evenly into [0, span).
	limit := wordSpace - wordSpace%span

	var buf [4]byte
	for {
		if _, err := r.source.Read(buf[:]); err != nil {
			return 0, ErrNoEntropy
		}
		word := uint64(binary.BigEndian.Uint32(buf[:]))
		if word < limit {
			return int(word % span), nil
		}
	}
}

// FieldElement draws a uniform element of GF(2053), i.e. IntInclusive(2052).
func (r *RNG) FieldElement() (int, error) {
	return r.IntInclusive(field.Prime - 1)
}
