/*
 * cabaliser - Word-aligned bit-slice primitives
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package bits implements the fixed-length, word-aligned bit-vector
// primitives the tableau rewrite rules are built from. A Slice is a
// sequence of machine words treated as one flat bit vector; every
// operation here is branch-free over whole words, matching the
// "#pragma GCC unroll 8" sweeps in the engine this package is derived
// from.
package bits

import (
	"math/bits"
	"unsafe"
)

// WordBits is the width of the machine word a Slice is packed into.
const WordBits = 64

// CTZSentinel is returned by Ctz when no set bit exists within limit.
const CTZSentinel = -1

// CacheLineBytes is the typical x86/arm64 cache line size buffers are
// aligned to (spec.md P1: "all slice buffers are aligned to cache-line
// size").
const CacheLineBytes = 64

const wordsPerCacheLine = CacheLineBytes / 8

// Slice is one qubit's column (or the shared phase column) of a tableau:
// a packed bit vector across slice_len machine words.
type Slice []uint64

// NewSlice allocates a zeroed Slice of sliceLen words, with no
// alignment guarantee beyond what the allocator gives a []uint64. Used
// where a buffer is short-lived and never handed to the parallel sweep
// path (e.g. test fixtures); tableau columns use NewAlignedSlice.
func NewSlice(sliceLen int) Slice {
	return make(Slice, sliceLen)
}

// NewAlignedSlice allocates a zeroed Slice wide enough to hold sliceLen
// words, over-allocating by up to one cache line so the returned
// slice's backing array starts on a 64-byte boundary. This is the
// Go-native equivalent of the original's `posix_memalign(CACHE_SIZE,
// ...)` call: a plain make([]uint64, n) carries no stronger alignment
// guarantee than the word size, which is not enough to keep two
// qubits' columns from sharing a cache line (spec.md P1).
func NewAlignedSlice(sliceLen int) Slice {
	buf := make(Slice, sliceLen+wordsPerCacheLine-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	pad := (CacheLineBytes - int(addr%CacheLineBytes)) % CacheLineBytes
	start := pad / 8
	return buf[start : start+sliceLen : start+sliceLen]
}

// XorInto computes a[i] ^= b[i] for every word.
func XorInto(a, b Slice) {
	for i := range a {
		a[i] ^= b[i]
	}
}

// And computes dst[i] = a[i] & b[i] for every word.
func And(dst, a, b Slice) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Or computes dst[i] = a[i] | b[i] for every word.
func Or(dst, a, b Slice) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Not computes dst[i] = ^a[i] for every word.
func Not(dst, a Slice) {
	for i := range dst {
		dst[i] = ^a[i]
	}
}

// AndNot computes dst[i] = a[i] &^ b[i] for every word.
func AndNot(dst, a, b Slice) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

// GetBit reads bit k of v (0 indexed, word 0 holds bits [0, WordBits)).
func GetBit(v Slice, k int) uint8 {
	word := k / WordBits
	shift := uint(k % WordBits)
	return uint8((v[word] >> shift) & 1)
}

// SetBit sets or clears bit k of v.
func SetBit(v Slice, k int, x uint8) {
	word := k / WordBits
	shift := uint(k % WordBits)
	if x != 0 {
		v[word] |= 1 << shift
	} else {
		v[word] &^= 1 << shift
	}
}

// Ctz returns the index of the lowest set bit in v within the first
// limit bits, or CTZSentinel if none is set. Mirrors tableau_ctz.
func Ctz(v Slice, limit int) int {
	words := (limit + WordBits - 1) / WordBits
	for i := 0; i < words && i < len(v); i++ {
		w := v[i]
		if i == words-1 {
			rem := limit - i*WordBits
			if rem < WordBits {
				mask := uint64(1)<<uint(rem) - 1
				w &= mask
			}
		}
		if w != 0 {
			return i*WordBits + bits.TrailingZeros64(w)
		}
	}
	return CTZSentinel
}

// ClearAbove zeroes every bit at position >= n, enforcing the boundary
// invariant that slices never carry garbage past the live qubit count.
func ClearAbove(v Slice, n int) {
	word := n / WordBits
	shift := uint(n % WordBits)
	if word < len(v) {
		if shift != 0 {
			v[word] &= 1<<shift - 1
		} else {
			v[word] = 0
		}
	}
	for i := word + 1; i < len(v); i++ {
		v[i] = 0
	}
}
