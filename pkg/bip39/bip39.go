package bip39

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"github.com/schiavinato/mnemonic-sharing/pkg/rng"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

// validWordCounts are the only mnemonic lengths this module accepts. Each
// entry packs to a whole number of checksum bits (wordCount/3) and a whole
// number of entropy bytes, per the BIP39 standard.
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

const wordBits = 11

// ValidateMnemonic normalises m (splits on whitespace, lowercases), rejects
// lengths outside {12,15,18,21,24}, and verifies its embedded SHA-256
// checksum. It returns the mnemonic's entropy bytes on success (spec.md
// §4.F).
func ValidateMnemonic(m string) ([]byte, error) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(m)))
	if !validWordCounts[len(words)] {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidWordCount, len(words))
	}

	ids := make([]int, len(words))
	for i, w := range words {
		id, err := WordToID(w)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		ids[i] = id
	}

	entropy, gotChecksum, checkBits := splitMnemonicBits(ids)
	wantChecksum := checksumBits(entropy, checkBits)

	if !secure.CTEqualBytes(gotChecksum, wantChecksum) {
		return nil, ErrChecksumMismatch
	}

	return entropy, nil
}

// GenerateMnemonic draws entropyBits = wordCount*11 - wordCount/3 bits of
// entropy from source, appends its SHA-256 checksum bits, and renders the
// result as a space-joined mnemonic of wordCount words (spec.md §4.F).
func GenerateMnemonic(wordCount int, source *rng.RNG) (string, error) {
	if !validWordCounts[wordCount] {
		return "", fmt.Errorf("%w: %d", ErrInvalidWordCount, wordCount)
	}

	checkBits := wordCount / 3
	entropyBits := wordCount*wordBits - checkBits
	entropyBytes := entropyBits / 8

	entropy := make([]byte, entropyBytes)
	for i := range entropy {
		b, err := source.IntInclusive(255)
		if err != nil {
			return "", fmt.Errorf("bip39: draw entropy byte %d: %w", i, err)
		}
		entropy[i] = byte(b)
	}

	check := checksumBits(entropy, checkBits)

	acc := new(big.Int).SetBytes(entropy)
	acc.Lsh(acc, uint(checkBits))
	acc.Or(acc, big.NewInt(int64(check[0]>>uint(8-checkBits))))

	mask := big.NewInt((1 << wordBits) - 1)
	ids := make([]int, wordCount)
	tmp := new(big.Int)
	for i := wordCount - 1; i >= 0; i-- {
		tmp.And(acc, mask)
		ids[i] = int(tmp.Int64()) + 1 // 1-based word IDs (spec.md §4.F)
		acc.Rsh(acc, wordBits)
	}

	words := make([]string, wordCount)
	for i, id := range ids {
		w, err := IDToWord(id)
		if err != nil {
			return "", fmt.Errorf("bip39: generated ID %d: %w", id, err)
		}
		words[i] = w
	}

	return strings.Join(words, " "), nil
}

// splitMnemonicBits packs 1-based word IDs into a big-endian bitstring of
// wordCount*11 bits (using 0-based indices internally, per spec.md §4.F),
// then splits it into the leading entropy bytes and the trailing checkBits
// checksum bits, left-aligned into a single byte for comparison.
func splitMnemonicBits(ids []int) (entropy []byte, checksum []byte, checkBits int) {
	checkBits = len(ids) / 3
	entropyBits := len(ids)*wordBits - checkBits

	acc := new(big.Int)
	for _, id := range ids {
		acc.Lsh(acc, wordBits)
		acc.Or(acc, big.NewInt(int64(id-1)))
	}

	checkMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(checkBits)), big.NewInt(1))
	check := new(big.Int).And(acc, checkMask)
	acc.Rsh(acc, uint(checkBits))

	entropyBytes := entropyBits / 8
	raw := acc.Bytes()
	padded := make([]byte, entropyBytes)
	copy(padded[entropyBytes-len(raw):], raw)

	return padded, []byte{byte(check.Int64()) << (8 - checkBits)}, checkBits
}

// checksumBits returns the first checkBits bits of sha256(entropy), left
// aligned into a single byte, matching the layout splitMnemonicBits returns
// for the mnemonic's own trailing checksum bits.
func checksumBits(entropy []byte, checkBits int) []byte {
	sum := sha256.Sum256(entropy)
	mask := byte(0xFF << uint(8-checkBits))
	return []byte{sum[0] & mask}
}
