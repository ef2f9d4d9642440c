// Package polynomial builds and evaluates polynomials over GF(2053), the
// secret-sharing primitive word IDs and checksums are encoded into.
package polynomial

import (
	"errors"

	"github.com/schiavinato/mnemonic-sharing/pkg/field"
)

// ErrDegreeMismatch is returned by Sum when polynomials have differing
// coefficient counts.
var ErrDegreeMismatch = errors.New("polynomial: degree mismatch")

// Source supplies uniform field elements for random coefficients. It is
// satisfied by *rng.RNG.
type Source interface {
	FieldElement() (int, error)
}

// Polynomial is an ordered coefficient list [a0, a1, ..., a_{k-1}]
// representing a0 + a1*x + ... + a_{k-1}*x^(k-1). a0 is always the secret.
type Polynomial []int

// Random builds a degree-`degree` polynomial with constant term `secret`
// and uniformly random higher-order coefficients drawn from src. Degree 0
// is allowed and yields the constant polynomial [secret].
func Random(secret, degree int, src Source) (Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("polynomial: degree must be non-negative")
	}

	p := make(Polynomial, degree+1)
	p[0] = field.Mod(secret)

	for i := 1; i <= degree; i++ {
		c, err := src.FieldElement()
		if err != nil {
			return nil, err
		}
		p[i] = c
	}

	return p, nil
}

// Evaluate computes p(x) mod 2053 using Horner's method, starting from the
// highest-degree coefficient.
func Evaluate(p Polynomial, x int) int {
	x = field.Mod(x)
	acc := 0
	for i := len(p) - 1; i >= 0; i-- {
		acc = field.Add(field.Mul(acc, x), p[i])
	}
	return acc
}

// Sum returns the coefficient-wise sum of polys in GF(2053). All polynomials
// must share the same length.
func Sum(polys ...Polynomial) (Polynomial, error) {
	if len(polys) == 0 {
		return Polynomial{}, nil
	}

	n := len(polys[0])
	for _, p := range polys[1:] {
		if len(p) != n {
			return nil, ErrDegreeMismatch
		}
	}

	out := make(Polynomial, n)
	for _, p := range polys {
		for i, c := range p {
			out[i] = field.Add(out[i], c)
		}
	}

	return out, nil
}

// Zeroise overwrites every coefficient with 0 in place. Callers must still
// drop their last reference; this only defeats recovery of the values while
// the backing array is alive.
func Zeroise(p Polynomial) {
	for i := range p {
		p[i] = 0
	}
}
