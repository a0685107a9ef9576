// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint4096

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
	"time"
)

// randBenchVal houses values used throughout the benchmarks that are randomly
// generated with each run to ensure they are not overfitted.
type randBenchVal struct {
	buf1  [numBytes]byte
	buf2  [numBytes]byte
	n1    *Uint4096
	n2    *Uint4096
	bigN1 *big.Int
	bigN2 *big.Int
}

// randBenchVals houses a slice of the aforementioned randomly-generated
// values to be used throughout the benchmarks to ensure they are not
// overfitted.
var randBenchVals = func() []randBenchVal {
	// Use a unique random seed each benchmark instance.
	seed := time.Now().Unix()
	rng := rand.New(rand.NewSource(seed))
	var zeroArr [numBytes]byte

	vals := make([]randBenchVal, 32)
	for i := 0; i < len(vals); i++ {
		val := &vals[i]
		if _, err := rng.Read(val.buf1[:]); err != nil {
			panic(fmt.Sprintf("failed to read random: %v", err))
		}
		for val.buf2 == zeroArr {
			if _, err := rng.Read(val.buf2[:]); err != nil {
				panic(fmt.Sprintf("failed to read random: %v", err))
			}
		}

		val.n1 = new(Uint4096).SetBytes(&val.buf1)
		val.n2 = new(Uint4096).SetBytes(&val.buf2)
		val.bigN1 = new(big.Int).SetBytes(val.buf1[:])
		val.bigN2 = new(big.Int).SetBytes(val.buf2[:])
	}
	return vals
}()

// BenchmarkUint4096Add benchmarks adding unsigned 4096-bit integers with the
// specialized type.
func BenchmarkUint4096Add(b *testing.B) {
	n := new(Uint4096)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			val := &vals[j]
			n.Set(val.n1).Add(val.n2)
		}
	}
}

// BenchmarkBigIntAdd benchmarks adding unsigned 4096-bit integers with stdlib
// big integers.
func BenchmarkBigIntAdd(b *testing.B) {
	n := new(big.Int)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			val := &vals[j]
			n.Add(val.bigN1, val.bigN2)
		}
	}
}

// BenchmarkUint4096Mul benchmarks multiplying unsigned 4096-bit integers with
// the specialized type.
func BenchmarkUint4096Mul(b *testing.B) {
	n := new(Uint4096)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			val := &vals[j]
			n.Mul2(val.n1, val.n2)
		}
	}
}

// BenchmarkBigIntMul benchmarks multiplying unsigned 4096-bit integers with
// stdlib big integers.
func BenchmarkBigIntMul(b *testing.B) {
	n := new(big.Int)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			val := &vals[j]
			n.Mul(val.bigN1, val.bigN2)
		}
	}
}

// BenchmarkUint4096Div benchmarks dividing unsigned 4096-bit integers with
// the specialized type.
func BenchmarkUint4096Div(b *testing.B) {
	n := new(Uint4096)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			val := &vals[j]
			n.Set(val.n1)
			if _, err := n.Div(val.n2); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

// BenchmarkBigIntDiv benchmarks dividing unsigned 4096-bit integers with
// stdlib big integers.
func BenchmarkBigIntDiv(b *testing.B) {
	n := new(big.Int)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			val := &vals[j]
			n.Div(val.bigN1, val.bigN2)
		}
	}
}

// BenchmarkUint4096String benchmarks decimal rendering of unsigned 4096-bit
// integers with the specialized type.
func BenchmarkUint4096String(b *testing.B) {
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			_ = vals[j].n1.String()
		}
	}
}

// BenchmarkBigIntString benchmarks decimal rendering of unsigned 4096-bit
// integers with stdlib big integers.
func BenchmarkBigIntString(b *testing.B) {
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			_ = vals[j].bigN1.String()
		}
	}
}
