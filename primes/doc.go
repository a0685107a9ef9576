// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package primes provides number-theoretic primitives built on unsigned
4096-bit fixed-precision integers.

It includes modular exponentiation via the square-and-multiply method and
probabilistic primality testing via the Miller-Rabin test with the fixed
witness bases 2, 3, 5, 7, and 11.

A positive result from the primality test is probabilistic rather than a
proof.  The fixed witness set is only exhaustive for values below
2152302898747 = 6763 * 10627 * 29947, which is the smallest strong
pseudoprime to all five bases, so that composite (and potentially larger
ones) is reported as prime.  The false-positive probability for random
composite inputs is bounded by 4^-rounds.

The package is purely computational and performs no logging or I/O.

# Errors

Errors returned by this package have full support for the standard library
errors.Is function, so callers can check against the exported ErrorKind
constants such as ErrZeroModulus to determine the reason for a failure.
*/
package primes
