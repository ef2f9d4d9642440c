package schiavinato

import (
	"strings"

	"github.com/schiavinato/mnemonic-sharing/pkg/bip39"
	"github.com/schiavinato/mnemonic-sharing/pkg/checksum"
	"github.com/schiavinato/mnemonic-sharing/pkg/lagrange"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"

	"github.com/schiavinato/mnemonic-sharing/internal/validation"
)

// Recover reconstructs a mnemonic from a set of shares (spec.md §4.I). It
// never returns an error: every failure mode is recorded in the returned
// RecoveryResult's Errors field, and Success reports whether every check
// passed and Mnemonic is set. strictValidation, when true, additionally
// requires the reconstructed mnemonic to pass its own BIP39 checksum
// (spec.md §4.I step 9; spec.md's default is strict).
func Recover(shares []Share, wordCount int, strictValidation bool) RecoveryResult {
	result := RecoveryResult{Errors: RecoveryErrors{Row: []int{}, RowPathMismatch: []int{}}}

	if err := validation.ValidateWordCount(wordCount); err != nil {
		result.Errors.Generic = err.Error()
		return result
	}

	shareNumbers := make([]int, len(shares))
	for i, s := range shares {
		shareNumbers[i] = s.ShareNumber
	}
	if err := validation.ValidateShareNumbers(shareNumbers); err != nil {
		result.Errors.Generic = err.Error()
		return result
	}

	for _, s := range shares {
		if err := validation.ValidateShareShape(s.WordShares, s.ChecksumShares, s.GlobalIntegrityCheckShare, wordCount); err != nil {
			result.Errors.Generic = err.Error()
			return result
		}
	}

	recoveredIds := make([]int, wordCount)
	defer secure.ZeroInts(recoveredIds)

	for i := range recoveredIds {
		points := make([]lagrange.Point, len(shares))
		for j, s := range shares {
			points[j] = lagrange.Point{X: s.ShareNumber, Y: s.WordShares[i]}
		}
		id, err := lagrange.InterpolateAtZero(points)
		if err != nil {
			result.Errors.Generic = err.Error()
			return result
		}
		recoveredIds[i] = id
	}

	rowCount := wordCount / 3
	recoveredRow := make([]int, rowCount)
	defer secure.ZeroInts(recoveredRow)

	for r := 0; r < rowCount; r++ {
		points := make([]lagrange.Point, len(shares))
		for j, s := range shares {
			points[j] = lagrange.Point{X: s.ShareNumber, Y: s.ChecksumShares[r]}
		}
		v, err := lagrange.InterpolateAtZero(points)
		if err != nil {
			result.Errors.Generic = err.Error()
			return result
		}
		recoveredRow[r] = v
	}

	globalPoints := make([]lagrange.Point, len(shares))
	for j, s := range shares {
		globalPoints[j] = lagrange.Point{X: s.ShareNumber, Y: s.GlobalIntegrityCheckShare}
	}
	recoveredGlobal, err := lagrange.InterpolateAtZero(globalPoints)
	if err != nil {
		result.Errors.Generic = err.Error()
		return result
	}

	pathARow, err := checksum.ComputeRowChecks(recoveredIds)
	if err != nil {
		result.Errors.Generic = err.Error()
		return result
	}
	pathAGlobal := checksum.ComputeGlobalIntegrityCheck(recoveredIds)

	for r := range pathARow {
		if !secure.CTEqualField(recoveredRow[r], pathARow[r]) {
			result.Errors.Row = append(result.Errors.Row, r)
			result.Errors.RowPathMismatch = append(result.Errors.RowPathMismatch, r)
		}
	}

	if !secure.CTEqualField(recoveredGlobal, pathAGlobal) {
		result.Errors.Global = true
		result.Errors.GlobalPathMismatch = true
	}

	if len(result.Errors.Row) > 0 || result.Errors.Global {
		return result
	}

	for _, id := range recoveredIds {
		if !bip39.IsBip39ID(id) {
			if bip39.IsSentinel(id) {
				result.Errors.Generic = "recovered word share landed on a non-wordlist sentinel value"
			} else {
				result.Errors.Generic = "recovered word is outside BIP39 range"
			}
			return result
		}
	}

	words := make([]string, wordCount)
	for i, id := range recoveredIds {
		w, err := bip39.IDToWord(id)
		if err != nil {
			result.Errors.Generic = "recovered word is outside BIP39 range"
			return result
		}
		words[i] = w
	}
	mnemonic := strings.Join(words, " ")

	if strictValidation {
		if _, err := bip39.ValidateMnemonic(mnemonic); err != nil {
			result.Errors.Bip39 = true
		}
	}

	result.Success = !result.Errors.Bip39
	if result.Success {
		result.Mnemonic = &mnemonic
	}

	return result
}
