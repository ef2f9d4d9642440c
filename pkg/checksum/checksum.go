// Package checksum implements the dual-path row and global integrity checks
// (spec.md §4.G): Path A sums field elements directly, Path B sums and
// evaluates polynomials. The two paths must agree bit-exactly at every share
// number; disagreement is treated as fault detection, never a legitimate
// outcome (spec.md §4.H, §8 property 5).
package checksum

import (
	"errors"
	"fmt"

	"github.com/schiavinato/mnemonic-sharing/pkg/field"
	"github.com/schiavinato/mnemonic-sharing/pkg/polynomial"
)

// ErrNotDivisibleByThree is returned when the number of word IDs or word
// polynomials is not a multiple of 3, so rows cannot be formed.
var ErrNotDivisibleByThree = errors.New("checksum: word count must be divisible by 3")

// ComputeRowChecks returns, for each row r = 0..len(ids)/3-1, the sum of
// ids[3r], ids[3r+1], ids[3r+2] mod p (spec.md §4.G Path A).
func ComputeRowChecks(ids []int) ([]int, error) {
	if len(ids)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNotDivisibleByThree, len(ids))
	}

	rows := make([]int, len(ids)/3)
	for r := range rows {
		rows[r] = field.Add(field.Add(ids[3*r], ids[3*r+1]), ids[3*r+2])
	}
	return rows, nil
}

// ComputeGlobalIntegrityCheck returns Sigma ids mod p (spec.md §4.G Path A).
func ComputeGlobalIntegrityCheck(ids []int) int {
	acc := 0
	for _, id := range ids {
		acc = field.Add(acc, id)
	}
	return acc
}

// ComputeRowCheckPolynomials returns, for each row, the coefficient-wise sum
// of the three word polynomials in that row (spec.md §4.G Path B).
func ComputeRowCheckPolynomials(wordPolys []polynomial.Polynomial) ([]polynomial.Polynomial, error) {
	if len(wordPolys)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNotDivisibleByThree, len(wordPolys))
	}

	rows := make([]polynomial.Polynomial, len(wordPolys)/3)
	for r := range rows {
		sum, err := polynomial.Sum(wordPolys[3*r], wordPolys[3*r+1], wordPolys[3*r+2])
		if err != nil {
			return nil, err
		}
		rows[r] = sum
	}
	return rows, nil
}

// ComputeGlobalIntegrityCheckPolynomial returns the coefficient-wise sum of
// every word polynomial (spec.md §4.G Path B).
func ComputeGlobalIntegrityCheckPolynomial(wordPolys []polynomial.Polynomial) (polynomial.Polynomial, error) {
	return polynomial.Sum(wordPolys...)
}
