// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uint4096 implements fixed precision unsigned 4096-bit integer
arithmetic.

All arithmetic is performed modulo 2^4096, so callers may rely on "wrap
around" semantics for addition, subtraction, and multiplication.  Division and
modulo by zero are the only failing operations and are reported via errors
rather than panics.

The package is purely computational.  It performs no logging, no I/O beyond
decimal text conversion, and offers no internal synchronization.  Values are
not safe for concurrent mutation without external locking.

# Errors

Errors returned by this package have full support for the standard library
errors.Is function, so callers can check against the exported ErrorKind
constants such as ErrDivideByZero to determine the reason for a failure.
*/
package uint4096
