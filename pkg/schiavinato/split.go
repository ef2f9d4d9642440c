package schiavinato

import (
	"fmt"
	"strings"

	"github.com/schiavinato/mnemonic-sharing/pkg/bip39"
	"github.com/schiavinato/mnemonic-sharing/pkg/checksum"
	"github.com/schiavinato/mnemonic-sharing/pkg/field"
	"github.com/schiavinato/mnemonic-sharing/pkg/polynomial"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

// Split turns mnemonic into n shares such that any k reconstruct it
// (spec.md §4.H). It validates k, n, and the mnemonic before touching
// source, builds one degree-(k-1) polynomial per word plus the row and
// global checksum polynomials, and evaluates all of them at every share
// number 1..n, cross-checking Path A against Path B at each step. Any
// mismatch aborts the entire split — the partial result is never returned.
// source is the injected field-element capability (*rng.RNG in production,
// a deterministic stub in tests), matching spec.md §9's re-architecture
// guidance to pass the RNG as a handle rather than a global.
func Split(mnemonic string, k, n int, source polynomial.Source) ([]Share, error) {
	if k < 2 || k > n || n >= field.Prime {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidArguments, k, n)
	}

	sanitized := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(mnemonic))), " ")
	words := strings.Fields(sanitized)
	wordCount := len(words)
	if wordCount != 12 && wordCount != 24 {
		return nil, fmt.Errorf("%w: word count must be 12 or 24, got %d", ErrInvalidArguments, wordCount)
	}

	if _, err := bip39.ValidateMnemonic(sanitized); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	ids := make([]int, wordCount)
	for i, w := range words {
		id, err := bip39.WordToID(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
		}
		ids[i] = id
	}
	defer secure.ZeroInts(ids)

	wordPolys := make([]polynomial.Polynomial, wordCount)
	defer func() {
		for _, p := range wordPolys {
			polynomial.Zeroise(p)
		}
	}()

	for i, id := range ids {
		p, err := polynomial.Random(id, k-1, source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoEntropy, err)
		}
		wordPolys[i] = p
	}

	rowPolys, err := checksum.ComputeRowCheckPolynomials(wordPolys)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, p := range rowPolys {
			polynomial.Zeroise(p)
		}
	}()

	globalPoly, err := checksum.ComputeGlobalIntegrityCheckPolynomial(wordPolys)
	if err != nil {
		return nil, err
	}
	defer polynomial.Zeroise(globalPoly)

	wordSharesBuf := make([]int, wordCount)
	defer secure.ZeroInts(wordSharesBuf)

	shares := make([]Share, n)

	for x := 1; x <= n; x++ {
		for i, p := range wordPolys {
			wordSharesBuf[i] = polynomial.Evaluate(p, x)
		}

		pathARows, err := checksum.ComputeRowChecks(wordSharesBuf)
		if err != nil {
			return nil, err
		}

		checksumShares := make([]int, len(rowPolys))
		for r, rowPoly := range rowPolys {
			pathB := polynomial.Evaluate(rowPoly, x)
			if pathARows[r] != pathB {
				return nil, &RowPathMismatchError{ShareNumber: x, Row: r, A: pathARows[r], B: pathB}
			}
			checksumShares[r] = pathARows[r]
		}

		pathAGlobal := checksum.ComputeGlobalIntegrityCheck(wordSharesBuf)
		pathBGlobal := polynomial.Evaluate(globalPoly, x)
		if pathAGlobal != pathBGlobal {
			return nil, &GlobalPathMismatchError{ShareNumber: x, A: pathAGlobal, B: pathBGlobal}
		}

		wordShares := make([]int, wordCount)
		copy(wordShares, wordSharesBuf)

		shares[x-1] = Share{
			ShareNumber:               x,
			WordShares:                wordShares,
			ChecksumShares:            checksumShares,
			GlobalIntegrityCheckShare: pathAGlobal,
		}
	}

	return shares, nil
}
