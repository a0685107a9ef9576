// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/primescan/primescan/primes"
	"github.com/primescan/primescan/uint4096"
)

// isPrime wraps the primality test with the default witness rounds.
func isPrime(n *uint4096.Uint4096) bool {
	return primes.IsPrime(n, primes.DefaultRounds)
}

// nthPrime scans upward from two counting primes until the nth one is found
// and returns it.  The nth value must be at least one.
//
// The context is polled between successive primality checks since the
// underlying test offers no interruption mechanism, so cancellation takes
// effect at the next candidate.
func nthPrime(ctx context.Context, nth *uint4096.Uint4096) (*uint4096.Uint4096, error) {
	count := new(uint4096.Uint4096)
	candidate := new(uint4096.Uint4096).SetUint64(2)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isPrime(candidate) {
			count.AddUint64(1)
			if count.Eq(nth) {
				return candidate, nil
			}
		}
		candidate.AddUint64(1)
	}
}

// primeLE scans downward from the passed limit for the largest prime at or
// below it and returns it.  The returned value is nil without an error when
// no such prime exists, which is only the case for limits below two.
//
// The context is polled between successive primality checks.
func primeLE(ctx context.Context, limit *uint4096.Uint4096) (*uint4096.Uint4096, error) {
	candidate := new(uint4096.Uint4096).Set(limit)
	for candidate.CmpUint64(2) >= 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isPrime(candidate) {
			return candidate, nil
		}
		candidate.SubUint64(1)
	}
	return nil, nil
}

// allPrimesLE scans upward from two collecting every prime at or below the
// passed limit in ascending order.
//
// The context is polled between successive primality checks.  On
// cancellation the primes found so far are returned along with the context
// error so the caller can still persist partial results.
func allPrimesLE(ctx context.Context, limit *uint4096.Uint4096) ([]*uint4096.Uint4096, error) {
	var found []*uint4096.Uint4096
	candidate := new(uint4096.Uint4096).SetUint64(2)
	for !candidate.Gt(limit) {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		if isPrime(candidate) {
			found = append(found, new(uint4096.Uint4096).Set(candidate))
		}
		candidate.AddUint64(1)
	}
	return found, nil
}

// writePrimes persists the passed primes to the given file, one decimal value
// per line.
func writePrimes(path string, found []*uint4096.Uint4096) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, p := range found {
		if _, err := fmt.Fprintln(w, p); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
