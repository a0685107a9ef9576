// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primes

import (
	"github.com/primescan/primescan/uint4096"
)

// DefaultRounds is the number of Miller-Rabin witness rounds used by callers
// that do not have a reason to choose otherwise.  It exercises the entire
// fixed witness set.
const DefaultRounds = 5

// witnesses is the fixed set of Miller-Rabin witness bases, consumed in
// order.  See the package documentation for the bound below which this set
// is exhaustive.
var witnesses = [...]uint64{2, 3, 5, 7, 11}

// ModExp computes base^exponent mod modulus using the square-and-multiply
// method and returns the result as a new uint4096.  None of the operands are
// modified.
//
// A zero modulus fails with an error kind of ErrZeroModulus.
func ModExp(base, exponent, modulus *uint4096.Uint4096) (*uint4096.Uint4096, error) {
	if modulus.IsZero() {
		return nil, makeError(ErrZeroModulus, "modular exponentiation with "+
			"zero modulus")
	}

	// The modulus is known to be nonzero for the remainder of the function,
	// so the errors from Mod are impossible and intentionally ignored.
	result := new(uint4096.Uint4096).SetUint64(1)
	b := new(uint4096.Uint4096).Set(base)
	b, _ = b.Mod(modulus)

	// Consume the exponent bit by bit from its least significant end,
	// multiplying the running result by the current base whenever the low
	// bit is set and squaring the base every iteration.  Reducing after
	// every multiplication keeps both operands below the modulus.
	e := new(uint4096.Uint4096).Set(exponent)
	for !e.IsZero() {
		if e.IsOdd() {
			result, _ = result.Mul(b).Mod(modulus)
		}
		e.Rsh(1)
		b, _ = b.Mul(b).Mod(modulus)
	}
	return result, nil
}

// IsPrime determines whether or not the passed uint4096 is prime with the
// Miller-Rabin probabilistic primality test using up to the given number of
// rounds of the fixed witness bases 2, 3, 5, 7, and 11, consumed in order.
// Requesting more rounds than there are witnesses is treated as requesting
// every witness.  The operand is not modified.
//
// A true result is a probabilistic declaration of primality rather than a
// proof.  See the package documentation for the exhaustiveness bound of the
// witness set and the false-positive probability.
func IsPrime(n *uint4096.Uint4096, rounds int) bool {
	// Values of one or less are composite by definition, two and three are
	// prime by definition, and every other even value is composite.
	if n.CmpUint64(1) <= 0 {
		return false
	}
	if n.EqUint64(2) || n.EqUint64(3) {
		return true
	}
	if !n.IsOdd() {
		return false
	}

	// Decompose n-1 = d * 2^r by shifting out the trailing zero bits.
	nMinusOne := new(uint4096.Uint4096).Set(n).SubUint64(1)
	d := new(uint4096.Uint4096).Set(nMinusOne)
	r := 0
	for !d.IsOdd() {
		d.Rsh(1)
		r++
	}

	if rounds > len(witnesses) {
		rounds = len(witnesses)
	}
	base := new(uint4096.Uint4096)
	for i := 0; i < rounds; i++ {
		// A witness that is not strictly between 1 and n-1 reduces to a
		// trivial residue and can never prove anything about n, so skip any
		// base at or beyond n.  This only affects n in {5, 7, 11}, each of
		// which is still fully classified by the smaller witnesses.
		if n.CmpUint64(witnesses[i]) <= 0 {
			continue
		}

		// The modulus n is at least five here, so the error from ModExp is
		// impossible.
		base.SetUint64(witnesses[i])
		x, _ := ModExp(base, d, n)
		if x.EqUint64(1) || x.Eq(nMinusOne) {
			continue
		}

		// Square x up to r-1 times looking for n-1.  Reaching n-1 means this
		// witness does not prove n composite; running out of squarings means
		// n is definitely composite.
		passed := false
		for j := 1; j < r; j++ {
			x, _ = x.Mul(x).Mod(n)
			if x.Eq(nMinusOne) {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}
