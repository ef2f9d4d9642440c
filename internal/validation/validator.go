// Package validation implements structural validation for share sets and
// mnemonics (spec.md §4.J), independent of the schiavinato package's Share
// type so recover.go can call it without an import cycle.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/schiavinato/mnemonic-sharing/pkg/field"
)

var (
	ErrTooFewShares         = errors.New("validation: at least 2 shares are required")
	ErrDuplicateShareNumber = errors.New("Duplicate share numbers")
	ErrShareNumberRange     = errors.New("validation: share number out of range")
	ErrWordShareLength      = errors.New("validation: wordShares length mismatch")
	ErrChecksumShareLength  = errors.New("validation: checksumShares length mismatch")
	ErrFieldElementRange    = errors.New("validation: field element out of range")
	ErrInvalidWordCount     = errors.New("validation: word count must be 12 or 24")
)

// ValidateWordCount reports whether wordCount is one of the two share-set
// word counts this scheme supports (spec.md §4.J restricts split/recover to
// 12 or 24, a stricter set than BIP39's own {12,15,18,21,24}).
func ValidateWordCount(wordCount int) error {
	if wordCount != 12 && wordCount != 24 {
		return fmt.Errorf("%w: got %d", ErrInvalidWordCount, wordCount)
	}
	return nil
}

// ValidateShareNumbers checks that shareNumbers has at least 2 entries, all
// distinct, all in [1, 2052] (spec.md §4.J).
func ValidateShareNumbers(shareNumbers []int) error {
	if len(shareNumbers) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewShares, len(shareNumbers))
	}

	seen := make(map[int]bool, len(shareNumbers))
	for _, x := range shareNumbers {
		if x < 1 || x > field.Prime-1 {
			return fmt.Errorf("%w: %d not in [1, %d]", ErrShareNumberRange, x, field.Prime-1)
		}
		if seen[x] {
			return fmt.Errorf("%w: %d", ErrDuplicateShareNumber, x)
		}
		seen[x] = true
	}
	return nil
}

// ValidateFieldElement checks that v is a valid field-element value for a
// word share, checksum share, or global-integrity share: an integer in
// [0, 2052] (spec.md §4.J).
func ValidateFieldElement(v int) error {
	if v < 0 || v > field.Prime-1 {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrFieldElementRange, v, field.Prime-1)
	}
	return nil
}

// ValidateShareShape checks that a single share's wordShares and
// checksumShares slices have the lengths wordCount and wordCount/3 mandate,
// and that every field element (word, checksum, and global-integrity) is in
// range (spec.md §4.J).
func ValidateShareShape(wordShares, checksumShares []int, globalIntegrityCheckShare, wordCount int) error {
	if len(wordShares) != wordCount {
		return fmt.Errorf("%w: expected %d, got %d", ErrWordShareLength, wordCount, len(wordShares))
	}
	if len(checksumShares) != wordCount/3 {
		return fmt.Errorf("%w: expected %d, got %d", ErrChecksumShareLength, wordCount/3, len(checksumShares))
	}

	for i, v := range wordShares {
		if err := ValidateFieldElement(v); err != nil {
			return fmt.Errorf("wordShares[%d]: %w", i, err)
		}
	}
	for i, v := range checksumShares {
		if err := ValidateFieldElement(v); err != nil {
			return fmt.Errorf("checksumShares[%d]: %w", i, err)
		}
	}
	return ValidateFieldElement(globalIntegrityCheckShare)
}

// ValidateMnemonicShape performs the cheap structural checks on a mnemonic
// string that don't require the embedded wordlist: non-empty, whitespace
// splits into a supported BIP39 word count, and every word is lowercase
// ASCII of plausible length. It does not check wordlist membership or the
// checksum; pkg/bip39.ValidateMnemonic does that.
func ValidateMnemonicShape(mnemonic string) error {
	mnemonic = strings.TrimSpace(mnemonic)
	if mnemonic == "" {
		return errors.New("validation: mnemonic cannot be empty")
	}

	words := strings.Fields(mnemonic)
	wordCount := len(words)

	validCounts := map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}
	if !validCounts[wordCount] {
		return fmt.Errorf("validation: mnemonic must have 12, 15, 18, 21, or 24 words (got %d)", wordCount)
	}

	for i, word := range words {
		if len(word) < 3 || len(word) > 8 {
			return fmt.Errorf("validation: word %d has invalid length: %s", i+1, word)
		}
		for _, ch := range word {
			if ch < 'a' || ch > 'z' {
				return fmt.Errorf("validation: word %d contains invalid characters: %s", i+1, word)
			}
		}
	}

	return nil
}
