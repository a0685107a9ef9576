// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint4096

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// numWords is the number of 64-bit unsigned integer words that compose a
	// single uint4096.
	numWords = 64

	// numBits is the total bit width of a uint4096.
	numBits = numWords * 64

	// numBytes is the total byte width of a uint4096.
	numBytes = numBits / 8
)

// Uint4096 implements unsigned 4096-bit fixed-precision arithmetic.  All
// arithmetic operations are performed modulo 2^4096, so callers may rely on
// "wrap around" semantics.
//
// It implements the primary arithmetic operations (addition, subtraction,
// multiplication, division, modulo), bitwise operations (lsh, rsh, not, or,
// and, xor), comparison operations (equals, less, greater, cmp), interpreting
// and producing big endian bytes, and decimal text conversion in both
// directions.
//
// Should it be absolutely necessary, conversion to the standard library
// math/big.Int can be achieved via the Bytes method.
type Uint4096 struct {
	// The integer is represented as 64 unsigned 64-bit integers in base 2^64
	// with the least-significant word first:
	//
	//  ---------------------------------------------------------------------
	// |     n[63]       |      ...       |      n[1]      |      n[0]      |
	// | Mult: 2^(64*63) |      ...       | Mult: 2^(64*1) | Mult: 2^(64*0) |
	//  ---------------------------------------------------------------------
	//
	// The full 4096-bit value is then sum(n[i] * 2^(64i)) for i in [0, 63].
	n [numWords]uint64
}

// Set sets the uint4096 equal to the same value as the passed one.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n := new(Uint4096).Set(n2).AddUint64(1) so that n = n2 + 1 where n2 is not
// modified.
func (n *Uint4096) Set(n2 *Uint4096) *Uint4096 {
	*n = *n2
	return n
}

// SetUint64 sets the uint4096 to the passed unsigned 64-bit integer.  This is
// a convenience function since it is fairly common to perform arithmetic with
// small native integers.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n := new(Uint4096).SetUint64(2).Mul(n2) so that n = 2 * n2.
func (n *Uint4096) SetUint64(n2 uint64) *Uint4096 {
	n.Zero()
	n.n[0] = n2
	return n
}

// SetString sets the uint4096 to the value represented by the passed decimal
// string and returns it to support chaining.
//
// The value is accumulated left to right as value = value*10 + digit for
// every byte in the range '0' through '9'.  Any other byte is silently
// skipped rather than treated as an error, so, for example, "1,000" and
// "1000" produce the same value.  Callers that require the entire input to be
// a well-formed decimal token should use Parse instead.  Values that exceed
// 2^4096 - 1 wrap around per the usual arithmetic semantics.
func (n *Uint4096) SetString(s string) *Uint4096 {
	n.Zero()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		n.mulUint64(10).AddUint64(uint64(c - '0'))
	}
	return n
}

// SetBytes interprets the provided array as a 4096-bit big-endian unsigned
// integer and sets the uint4096 to the result.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n := new(Uint4096).SetBytes(&b).AddUint64(1) so that n = b + 1.
func (n *Uint4096) SetBytes(b *[numBytes]byte) *Uint4096 {
	for i := 0; i < numWords; i++ {
		offset := numBytes - 8*(i+1)
		n.n[i] = binary.BigEndian.Uint64(b[offset : offset+8])
	}
	return n
}

// SetByteSlice interprets the provided slice as a 4096-bit big-endian
// unsigned integer (meaning it is truncated to the final 512 bytes so that it
// is modulo 2^4096) and sets the uint4096 to the result.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) SetByteSlice(b []byte) *Uint4096 {
	if len(b) > numBytes {
		b = b[len(b)-numBytes:]
	}
	var b512 [numBytes]byte
	copy(b512[numBytes-len(b):], b)
	return n.SetBytes(&b512)
}

// PutBytes unpacks the uint4096 to a 512-byte big-endian value using the
// passed byte array.
//
// This is a variant of the Bytes method that allows the caller to reuse a
// buffer instead of allocating a new one.
func (n *Uint4096) PutBytes(b *[numBytes]byte) {
	for i := 0; i < numWords; i++ {
		offset := numBytes - 8*(i+1)
		binary.BigEndian.PutUint64(b[offset:offset+8], n.n[i])
	}
}

// Bytes unpacks the uint4096 to a 512-byte big-endian value.
//
// See PutBytes for a variant that allows a buffer to be reused.
func (n *Uint4096) Bytes() [numBytes]byte {
	var b [numBytes]byte
	n.PutBytes(&b)
	return b
}

// Zero sets the uint4096 to zero.  A newly created uint4096 is already set to
// zero.  This function can be useful to clear an existing uint4096 for reuse.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) Zero() *Uint4096 {
	for i := range n.n {
		n.n[i] = 0
	}
	return n
}

// IsZero returns whether or not the uint4096 is equal to zero.
func (n *Uint4096) IsZero() bool {
	for i := range n.n {
		if n.n[i] != 0 {
			return false
		}
	}
	return true
}

// IsOdd returns whether or not the uint4096 is odd.
func (n *Uint4096) IsOdd() bool {
	return n.n[0]&1 == 1
}

// IsUint64 returns whether or not the uint4096 can be converted to a uint64
// without any loss of precision.  In other words, 0 <= n < 2^64.
func (n *Uint4096) IsUint64() bool {
	for i := 1; i < numWords; i++ {
		if n.n[i] != 0 {
			return false
		}
	}
	return true
}

// Uint64 returns the uint64 representation of the value.  In other words, it
// returns the low-order 64 bits of the value, which will be the entire value
// when IsUint64 reports true.
func (n *Uint4096) Uint64() uint64 {
	return n.n[0]
}

// BitLen returns the minimum number of bits required to represent the
// uint4096.  The result is 0 when the value is 0.
func (n *Uint4096) BitLen() int {
	for i := numWords - 1; i >= 0; i-- {
		if w := n.n[i]; w != 0 {
			return i*64 + bits.Len64(w)
		}
	}
	return 0
}

// Eq returns whether or not the two uint4096s represent the same value.
func (n *Uint4096) Eq(n2 *Uint4096) bool {
	return n.n == n2.n
}

// EqUint64 returns whether or not the uint4096 represents the same value as
// the given uint64.
func (n *Uint4096) EqUint64(n2 uint64) bool {
	return n.n[0] == n2 && n.IsUint64()
}

// Lt returns whether or not the uint4096 is less than the given one.  That
// is, it returns true when n < n2.
func (n *Uint4096) Lt(n2 *Uint4096) bool {
	for i := numWords - 1; i >= 0; i-- {
		if n.n[i] != n2.n[i] {
			return n.n[i] < n2.n[i]
		}
	}
	return false
}

// Gt returns whether or not the uint4096 is greater than the given one.  That
// is, it returns true when n > n2.
func (n *Uint4096) Gt(n2 *Uint4096) bool {
	return n2.Lt(n)
}

// Cmp compares the two uint4096s and returns -1, 0, or 1 depending on whether
// the uint4096 is less than, equal to, or greater than the given one.
func (n *Uint4096) Cmp(n2 *Uint4096) int {
	for i := numWords - 1; i >= 0; i-- {
		switch {
		case n.n[i] < n2.n[i]:
			return -1
		case n.n[i] > n2.n[i]:
			return 1
		}
	}
	return 0
}

// CmpUint64 compares the uint4096 with the given uint64 and returns -1, 0, or
// 1 depending on whether the uint4096 is less than, equal to, or greater than
// the uint64.
func (n *Uint4096) CmpUint64(n2 uint64) int {
	if !n.IsUint64() {
		return 1
	}
	switch {
	case n.n[0] < n2:
		return -1
	case n.n[0] > n2:
		return 1
	}
	return 0
}

// Add adds the passed uint4096 to the existing one modulo 2^4096 and stores
// the result in n.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n.Add(n2).AddUint64(1) so that n = n + n2 + 1.
func (n *Uint4096) Add(n2 *Uint4096) *Uint4096 {
	var c uint64
	for i := 0; i < numWords; i++ {
		n.n[i], c = bits.Add64(n.n[i], n2.n[i], c)
	}
	// The final carry is discarded per the wrap around semantics.
	return n
}

// AddUint64 adds the passed uint64 to the existing uint4096 modulo 2^4096 and
// stores the result in n.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) AddUint64(n2 uint64) *Uint4096 {
	var c uint64
	n.n[0], c = bits.Add64(n.n[0], n2, 0)
	for i := 1; i < numWords && c != 0; i++ {
		n.n[i], c = bits.Add64(n.n[i], 0, c)
	}
	return n
}

// Sub subtracts the passed uint4096 from the existing one modulo 2^4096 and
// stores the result in n.  When the passed value is larger, the result wraps
// to 2^4096 minus the difference per the usual two's complement behavior.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) Sub(n2 *Uint4096) *Uint4096 {
	var borrow uint64
	for i := 0; i < numWords; i++ {
		n.n[i], borrow = bits.Sub64(n.n[i], n2.n[i], borrow)
	}
	// The final borrow is discarded per the wrap around semantics.
	return n
}

// SubUint64 subtracts the passed uint64 from the existing uint4096 modulo
// 2^4096 and stores the result in n.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) SubUint64(n2 uint64) *Uint4096 {
	var borrow uint64
	n.n[0], borrow = bits.Sub64(n.n[0], n2, 0)
	for i := 1; i < numWords && borrow != 0; i++ {
		n.n[i], borrow = bits.Sub64(n.n[i], 0, borrow)
	}
	return n
}

// Mul2 multiplies the passed uint4096s together modulo 2^4096 and stores the
// result in n.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n3.Mul2(n, n2).AddUint64(1) so that n3 = (n * n2) + 1.
func (n *Uint4096) Mul2(n1, n2 *Uint4096) *Uint4096 {
	// Schoolbook long multiplication over 64-bit words.  Any partial product
	// that would land at or beyond word 64 necessarily exceeds 2^4096 and is
	// dropped, which truncates the result modulo 2^4096.
	var res Uint4096
	for i := 0; i < numWords; i++ {
		if n1.n[i] == 0 {
			continue
		}
		var c uint64
		for j := 0; i+j < numWords; j++ {
			hi, lo := bits.Mul64(n1.n[i], n2.n[j])
			var carry uint64
			lo, carry = bits.Add64(lo, res.n[i+j], 0)
			hi += carry
			lo, carry = bits.Add64(lo, c, 0)
			hi += carry
			res.n[i+j] = lo
			c = hi
		}
	}
	n.n = res.n
	return n
}

// Mul multiplies the passed uint4096 by the existing one modulo 2^4096 and
// stores the result in n.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) Mul(n2 *Uint4096) *Uint4096 {
	return n.Mul2(n, n2)
}

// mulUint64 multiplies the uint4096 by the passed uint64 modulo 2^4096 and
// stores the result in n.  It is used by the decimal conversion code.
func (n *Uint4096) mulUint64(n2 uint64) *Uint4096 {
	var c uint64
	for i := 0; i < numWords; i++ {
		hi, lo := bits.Mul64(n.n[i], n2)
		var carry uint64
		lo, carry = bits.Add64(lo, c, 0)
		n.n[i] = lo
		c = hi + carry
	}
	return n
}

// divModUint64 divides the uint4096 by the passed nonzero uint64, stores the
// quotient in n, and returns the remainder.  It is used by the decimal
// conversion code.
func (n *Uint4096) divModUint64(divisor uint64) uint64 {
	var rem uint64
	for i := numWords - 1; i >= 0; i-- {
		n.n[i], rem = bits.Div64(rem, n.n[i], divisor)
	}
	return rem
}

// divMod computes the quotient and remainder of n divided by the passed
// divisor using bit-serial binary long division and stores them in q and r
// respectively.  The divisor must not be zero and q and r must not alias n or
// the divisor.
func (n *Uint4096) divMod(divisor, q, r *Uint4096) {
	q.Zero()
	r.Zero()

	// The remainder is strictly less than twice the divisor immediately
	// after the shift below, so the remainder bookkeeping only needs to
	// cover the words the divisor occupies plus one more.
	window := (divisor.BitLen()+63)/64 + 1
	if window > numWords {
		window = numWords
	}

	// Walk the dividend from its most significant bit to its least
	// significant one.  Leading zero bits shift zeros into an empty
	// remainder and therefore contribute nothing, so start at the bit
	// length.
	for i := n.BitLen() - 1; i >= 0; i-- {
		// r = r<<1 | (bit i of the dividend).
		carry := (n.n[i/64] >> (uint(i) % 64)) & 1
		for w := 0; w < window; w++ {
			out := r.n[w] >> 63
			r.n[w] = r.n[w]<<1 | carry
			carry = out
		}

		// When the remainder meets or exceeds the divisor, subtract the
		// divisor from it and set the corresponding quotient bit.
		ge := true
		for w := window - 1; w >= 0; w-- {
			if r.n[w] != divisor.n[w] {
				ge = r.n[w] > divisor.n[w]
				break
			}
		}
		if ge {
			var borrow uint64
			for w := 0; w < window; w++ {
				r.n[w], borrow = bits.Sub64(r.n[w], divisor.n[w], borrow)
			}
			q.n[i/64] |= 1 << (uint(i) % 64)
		}
	}
}

// Div divides the existing uint4096 by the passed one, stores the quotient in
// n, and returns n to support chaining.
//
// Dividing by zero fails with an error kind of ErrDivideByZero and leaves
// both operands unmodified.
func (n *Uint4096) Div(divisor *Uint4096) (*Uint4096, error) {
	if divisor.IsZero() {
		return nil, makeError(ErrDivideByZero, "division by zero")
	}
	var q, r Uint4096
	n.divMod(divisor, &q, &r)
	n.n = q.n
	return n, nil
}

// Mod computes the remainder of the existing uint4096 divided by the passed
// one, stores the remainder in n, and returns n to support chaining.
//
// A zero modulus fails with an error kind of ErrDivideByZero and leaves both
// operands unmodified.
func (n *Uint4096) Mod(divisor *Uint4096) (*Uint4096, error) {
	if divisor.IsZero() {
		return nil, makeError(ErrDivideByZero, "modulo by zero")
	}
	var q, r Uint4096
	n.divMod(divisor, &q, &r)
	n.n = r.n
	return n, nil
}

// And computes the bitwise and of the uint4096 and the passed uint4096 and
// stores the result in n.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) And(n2 *Uint4096) *Uint4096 {
	for i := 0; i < numWords; i++ {
		n.n[i] &= n2.n[i]
	}
	return n
}

// Or computes the bitwise or of the uint4096 and the passed uint4096 and
// stores the result in n.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) Or(n2 *Uint4096) *Uint4096 {
	for i := 0; i < numWords; i++ {
		n.n[i] |= n2.n[i]
	}
	return n
}

// Xor computes the bitwise exclusive or of the uint4096 and the passed
// uint4096 and stores the result in n.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) Xor(n2 *Uint4096) *Uint4096 {
	for i := 0; i < numWords; i++ {
		n.n[i] ^= n2.n[i]
	}
	return n
}

// Not computes the bitwise not of the uint4096 and stores the result in n.
// All 4096 bits participate since every bit is semantically part of the
// value.
//
// The uint4096 is returned to support chaining.
func (n *Uint4096) Not() *Uint4096 {
	for i := 0; i < numWords; i++ {
		n.n[i] = ^n.n[i]
	}
	return n
}

// Lsh shifts the uint4096 to the left by the given number of bits and stores
// the result in n.  Bits shifted beyond the most significant bit are
// discarded.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n.Lsh(2).AddUint64(1) so that n = (n << 2) + 1.
func (n *Uint4096) Lsh(shift uint32) *Uint4096 {
	if shift == 0 {
		return n
	}
	if shift >= numBits {
		return n.Zero()
	}

	wordShift := int(shift / 64)
	bitShift := shift % 64
	for i := numWords - 1; i >= 0; i-- {
		var w uint64
		if i >= wordShift {
			// Note that shifts by 64 or more bits produce zero in Go, so the
			// bitShift == 0 case needs no special handling here.
			w = n.n[i-wordShift] << bitShift
			if bitShift != 0 && i > wordShift {
				w |= n.n[i-wordShift-1] >> (64 - bitShift)
			}
		}
		n.n[i] = w
	}
	return n
}

// Rsh shifts the uint4096 to the right by the given number of bits and stores
// the result in n.  Bits shifted beyond the least significant bit are
// discarded.
//
// The uint4096 is returned to support chaining.  This enables syntax like:
// n.Rsh(2).AddUint64(1) so that n = (n >> 2) + 1.
func (n *Uint4096) Rsh(shift uint32) *Uint4096 {
	if shift == 0 {
		return n
	}
	if shift >= numBits {
		return n.Zero()
	}

	wordShift := int(shift / 64)
	bitShift := shift % 64
	for i := 0; i < numWords; i++ {
		var w uint64
		if i+wordShift < numWords {
			w = n.n[i+wordShift] >> bitShift
			if bitShift != 0 && i+wordShift+1 < numWords {
				w |= n.n[i+wordShift+1] << (64 - bitShift)
			}
		}
		n.n[i] = w
	}
	return n
}

// String returns the decimal representation of the uint4096 with no sign, no
// leading zeros, and no grouping separators.  The zero value renders as "0".
func (n Uint4096) String() string {
	if n.IsZero() {
		return "0"
	}

	// Convert by repeatedly dividing out the largest power of 10 that fits a
	// single word, capturing 19 decimal digits per division.
	const chunkDigits = 19
	const chunkBase = uint64(1e19)
	var chunks []uint64
	for !n.IsZero() {
		chunks = append(chunks, n.divModUint64(chunkBase))
	}

	var buf strings.Builder
	buf.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	const zeroPad = "0000000000000000000"
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(chunks[i], 10)
		buf.WriteString(zeroPad[:chunkDigits-len(s)])
		buf.WriteString(s)
	}
	return buf.String()
}

// asciiSpace returns whether or not the passed byte is an ASCII whitespace
// character.
func asciiSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Parse interprets the passed string as a single whitespace-delimited decimal
// token and returns the resulting uint4096.
//
// Leading whitespace is skipped.  An empty token or any characters remaining
// after the token, including trailing whitespace, fail with an error kind of
// ErrMalformedNumber.  The token itself is interpreted with the lenient
// SetString semantics, so non-digit bytes embedded in the token are silently
// skipped.
func Parse(s string) (*Uint4096, error) {
	start := 0
	for start < len(s) && asciiSpace(s[start]) {
		start++
	}
	end := start
	for end < len(s) && !asciiSpace(s[end]) {
		end++
	}
	if end == start {
		str := "no decimal token in " + strconv.Quote(s)
		return nil, makeError(ErrMalformedNumber, str)
	}
	if end != len(s) {
		str := "unconsumed input after decimal token in " + strconv.Quote(s)
		return nil, makeError(ErrMalformedNumber, str)
	}
	return new(Uint4096).SetString(s[start:end]), nil
}
