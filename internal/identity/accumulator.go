// Copyright (c) 2026 EngineKit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package identity hashes strings and handle identities for shard
// selection and hashed containers.
package identity

import (
	"github.com/twmb/murmur3"
)

const (
	_hashSeed uint64 = 23
	_hashFold uint64 = 31
)

// StringHash returns the murmur3 hash of s. Used to pick a registry shard;
// bucket selection only, equality is decided on the full text.
//go:nosplit
func StringHash(s string) uint64 {
	return murmur3.StringSum64(s)
}

// Accumulator is a folding hash accumulator.
type Accumulator uint64

// NewAccumulator creates a new Accumulator with a default seed value.
//go:nosplit
func NewAccumulator() Accumulator {
	return Accumulator(_hashSeed)
}

// AddString hashes s and folds it into the accumulator.
//go:nosplit
func (a Accumulator) AddString(s string) Accumulator {
	return a + (Accumulator(murmur3.StringSum64(s)) * Accumulator(_hashFold))
}

// AddUint64 folds u64 into the accumulator.
//go:nosplit
func (a Accumulator) AddUint64(u64 uint64) Accumulator {
	return a + Accumulator(u64*_hashFold)
}

// Value returns the accumulated value.
//go:nosplit
func (a Accumulator) Value() uint64 {
	return uint64(a)
}
