package bip39

import "errors"

var (
	// ErrUnknownWord is returned by WordToID when the word is not in the
	// embedded wordlist.
	ErrUnknownWord = errors.New("bip39: word not in wordlist")

	// ErrInvalidWordID is returned when a word ID falls outside the field's
	// valid range entirely ([0, 2052] at the standard wordlist size).
	ErrInvalidWordID = errors.New("bip39: word ID out of range")

	// ErrInvalidWordCount is returned when a mnemonic's word count is not
	// one of {12, 15, 18, 21, 24}.
	ErrInvalidWordCount = errors.New("bip39: invalid word count")

	// ErrChecksumMismatch is returned by ValidateMnemonic when the SHA-256
	// checksum bits computed from the entropy don't match the mnemonic's
	// trailing checksum bits.
	ErrChecksumMismatch = errors.New("bip39: checksum mismatch")
)
