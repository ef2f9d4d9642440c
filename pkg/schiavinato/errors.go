package schiavinato

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is returned by Split for out-of-range k/n and
// unsupported word counts (spec.md §7). Recover does not return it: it
// reports structurally invalid share sets in RecoveryErrors.Generic.
var ErrInvalidArguments = errors.New("schiavinato: invalid arguments")

// ErrInvalidMnemonic is returned by Split when the input mnemonic fails
// BIP39 validation (spec.md §7).
var ErrInvalidMnemonic = errors.New("schiavinato: invalid mnemonic")

// ErrNoEntropy is returned by Split when the injected RNG fails (spec.md
// §7).
var ErrNoEntropy = errors.New("schiavinato: entropy source unavailable")

// RowPathMismatchError is fatal during Split: Path A (direct field-element
// sum) and Path B (polynomial evaluation) disagree on a row's checksum
// share at a given share number, which proves an arithmetic bug rather than
// a legitimate state (spec.md §4.H, §4.G).
type RowPathMismatchError struct {
	ShareNumber int
	Row         int
	A           int
	B           int
}

func (e *RowPathMismatchError) Error() string {
	return fmt.Sprintf("schiavinato: row path mismatch at share %d, row %d: pathA=%d pathB=%d", e.ShareNumber, e.Row, e.A, e.B)
}

// GlobalPathMismatchError is the global-checksum analogue of
// RowPathMismatchError.
type GlobalPathMismatchError struct {
	ShareNumber int
	A           int
	B           int
}

func (e *GlobalPathMismatchError) Error() string {
	return fmt.Sprintf("schiavinato: global path mismatch at share %d: pathA=%d pathB=%d", e.ShareNumber, e.A, e.B)
}
