// Package secure provides the constant-time comparison and best-effort
// zeroisation primitives spec.md §4.E requires: every checksum comparison in
// pkg/schiavinato's recover path, and the BIP39 checksum comparison in
// pkg/bip39, goes through these functions rather than == or bytes.Equal.
package secure

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"runtime"
)

// CTEqualField reports whether two field elements are equal via a single
// XOR and compare, with no branch whose target depends on either value.
func CTEqualField(a, b int) bool {
	return (a ^ b) == 0
}

// CTEqualBytes compares two byte sequences of possibly differing length in
// constant time: it accumulates the XOR of the lengths and, for every index
// up to the longer sequence, the XOR of the bytes at that index (treating a
// missing byte as 0). There is no early exit and no branch on secret
// content, matching spec.md §4.E exactly.
func CTEqualBytes(a, b []byte) bool {
	diff := len(a) ^ len(b)

	max := len(a)
	if len(b) > max {
		max = len(b)
	}

	for i := 0; i < max; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		diff |= int(av ^ bv)
	}

	return diff == 0
}

// ConstantTimeCompare compares two byte slices in constant time using
// crypto/subtle. Used where both operands are already known to be the same
// length (e.g. two 32-byte SHA-256 digests).
func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}

// Zero overwrites every byte of b with 0. The runtime.KeepAlive call
// prevents the compiler from proving the write is dead and eliding it.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroInts overwrites every element of s with 0, for field-element
// buffers: the word IDs and per-share word-share buffer in split, and the
// recovered word IDs and interpolated row checksum values in recover, on
// every exit path.
func ZeroInts(s []int) {
	for i := range s {
		s[i] = 0
	}
	runtime.KeepAlive(s)
}

// ClearString scrubs a string variable. Go strings are immutable, so this
// only drops the caller's reference; it cannot scrub the original backing
// array, and is best-effort like the rest of this package.
func ClearString(s *string) {
	if s == nil {
		return
	}
	*s = ""
}

// ClearBytes zeroises *b in place and drops the reference.
func ClearBytes(b *[]byte) {
	if b == nil || *b == nil {
		return
	}
	Zero(*b)
	*b = nil
}

// SecureRandom returns size cryptographically secure random bytes.
func SecureRandom(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		Zero(b)
		return nil, fmt.Errorf("secure: failed to generate random bytes: %w", err)
	}
	return b, nil
}
