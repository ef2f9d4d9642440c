// Package bip39 is a native, dependency-free implementation of the BIP39
// English wordlist and checksum rules (spec.md §4.F): it never calls out to
// a third-party BIP39 library in production code, only the standard library,
// pkg/secure's constant-time comparison and pkg/rng's entropy draws. The
// 2048-word list is embedded
// at build time so the module has no runtime file dependency.
package bip39

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

//go:embed wordlist.txt
var wordlistData string

// wordCount is the fixed size of the BIP39 English wordlist.
const wordCount = 2048

// wordlistDigest is the SHA-256 of the newline-joined canonical wordlist
// (sha256sum over the trimmed file contents). A count check alone would
// miss a reordering that preserves the word count but scrambles IDs
// (spec.md §6); this catches that case at init time.
const wordlistDigest = "187db04a869dd9bc7be80d21a86497d692c0db6abd3aa8cb6be5d618ff757fae"

// Sentinel word IDs outside [1, wordCount] mark values a word-share slot can
// take on that do not correspond to a real wordlist entry: 0 for an unfilled
// slot, and 2049-2052 for the four field values GF(2053) has beyond the
// wordlist range. Split and recover must special-case these before treating
// a value as a wordlist index (spec.md §4.F, §4.H).
const (
	SentinelEmpty       = 0
	SentinelOutOfRangeA = wordCount + 1
	SentinelOutOfRangeB = wordCount + 2
	SentinelOutOfRangeC = wordCount + 3
	SentinelOutOfRangeD = wordCount + 4
)

var (
	wordList []string
	wordMap  map[string]int
)

func init() {
	trimmed := strings.TrimSpace(wordlistData)
	wordList = strings.Split(trimmed, "\n")
	if len(wordList) != WordCount() {
		panic(fmt.Sprintf("bip39: embedded wordlist must contain exactly %d words, got %d", WordCount(), len(wordList)))
	}

	sum := sha256.Sum256([]byte(trimmed))
	want, err := hex.DecodeString(wordlistDigest)
	if err != nil {
		panic(fmt.Sprintf("bip39: invalid embedded wordlist digest constant: %v", err))
	}
	if !secure.ConstantTimeCompare(sum[:], want) {
		panic("bip39: embedded wordlist content does not match its expected digest (reordering or corruption)")
	}

	wordMap = make(map[string]int, wordCount)
	for i, w := range wordList {
		wordMap[w] = i + 1 // 1-based word IDs, matching spec.md §4.F
	}
}

// WordCount returns the number of words in the embedded wordlist.
func WordCount() int {
	return wordCount
}

// WordToID returns the 1-based ID of word in the embedded wordlist.
func WordToID(word string) (int, error) {
	id, ok := wordMap[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return id, nil
}

// IDToWord returns the display form of a share's word-share field element.
// For id in [1, wordCount] that is the canonical wordlist entry; for the
// five sentinel values (0 and wordCount+1..wordCount+4, i.e. 2049-2052 at
// the standard 2048-word size) there is no wordlist entry, so it returns the
// zero-padded decimal string instead, for display purposes only (spec.md
// §4.F). Any other value is out of the field's valid range.
func IDToWord(id int) (string, error) {
	if IsBip39ID(id) {
		return wordList[id-1], nil
	}
	if IsValidShareID(id) {
		return fmt.Sprintf("%04d", id), nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidWordID, id)
}

// IsBip39ID reports whether v is a real wordlist index, v in [1, wordCount].
func IsBip39ID(v int) bool {
	return v >= 1 && v <= wordCount
}

// IsValidShareID reports whether v is any value a word-share field element
// may legitimately take: 0 (empty/sentinel) or [1, Prime-1].
func IsValidShareID(v int) bool {
	return v == SentinelEmpty || (v >= 1 && v <= SentinelOutOfRangeD)
}

// IsSentinel reports whether id is one of the five non-wordlist values a
// word share's field element may take (spec.md §4.F).
func IsSentinel(id int) bool {
	return id == SentinelEmpty || (id > wordCount && id <= SentinelOutOfRangeD)
}
