// Package lagrange implements Lagrange interpolation at x=0 over GF(2053),
// the step that turns k word/checksum shares back into the original secret.
package lagrange

import (
	"errors"

	"github.com/schiavinato/mnemonic-sharing/pkg/field"
)

// ErrTooFewShares is returned when fewer than two points are supplied.
var ErrTooFewShares = errors.New("lagrange: at least 2 points are required")

// ErrZeroShareNumber is returned when a point has x=0; share numbers are
// never zero by construction (spec.md share numbers range over [1, 2052]).
var ErrZeroShareNumber = errors.New("lagrange: share number cannot be zero")

// ErrDuplicateShareNumber is returned when two points share the same x.
var ErrDuplicateShareNumber = errors.New("lagrange: duplicate share numbers")

// Point is one (x, y) sample of a polynomial, keyed by share number.
type Point struct {
	X int
	Y int
}

func validateXs(xs []int) error {
	if len(xs) < 2 {
		return ErrTooFewShares
	}

	seen := make(map[int]bool, len(xs))
	for _, x := range xs {
		x = field.Mod(x)
		if x == 0 {
			return ErrZeroShareNumber
		}
		if seen[x] {
			return ErrDuplicateShareNumber
		}
		seen[x] = true
	}

	return nil
}

// Multipliers returns the vector gamma_j = prod_{m != j} (-x_m) / (x_j - x_m)
// for the given share-number set, with no dependence on the y values. This
// lets a human precompute gamma for a chosen share set and later reconstruct
// the secret with only k multiplications and additions (spec.md §4.C).
func Multipliers(shareNumbers []int) ([]int, error) {
	if err := validateXs(shareNumbers); err != nil {
		return nil, err
	}

	gammas := make([]int, len(shareNumbers))

	for j, xj := range shareNumbers {
		num, den := 1, 1
		for m, xm := range shareNumbers {
			if m == j {
				continue
			}
			num = field.Mul(num, field.Sub(0, xm))
			den = field.Mul(den, field.Sub(xj, xm))
		}

		denInv, err := field.Inv(den)
		if err != nil {
			// Unreachable given validateXs rejects duplicate x's, which is
			// the only way den can be zero.
			return nil, err
		}

		gammas[j] = field.Mul(num, denInv)
	}

	return gammas, nil
}

// InterpolateAtZero returns f(0) given k distinct points (x_j, y_j) on a
// degree-(k-1) polynomial f, x_j != 0.
func InterpolateAtZero(points []Point) (int, error) {
	xs := make([]int, len(points))
	for i, p := range points {
		xs[i] = p.X
	}

	gammas, err := Multipliers(xs)
	if err != nil {
		return 0, err
	}

	acc := 0
	for i, p := range points {
		acc = field.Add(acc, field.Mul(gammas[i], p.Y))
	}

	return acc, nil
}
