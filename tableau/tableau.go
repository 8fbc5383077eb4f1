/*
 * cabaliser - Stabilizer tableau
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

// Package tableau holds the Heisenberg-picture stabilizer tableau: one
// packed bit-vector column per qubit for the X and Z blocks, plus a
// single shared phase column. Storage is qubit-major, matching the
// physical slices_x[targ]/slices_z[targ] layout the rewrite rules sweep
// over one qubit at a time (see SPEC_FULL.md Storage orientation).
package tableau

import (
	"golang.org/x/sys/cpu"

	"github.com/ahtoms/cabaliser/bits"
)

// Tableau is a bit-matrix encoding of a stabilizer group on up to NMax
// qubits.
type Tableau struct {
	N        int // live qubit count
	NMax     int // hard cap on qubit count
	SliceLen int // words per column, ceil(NMax / bits.WordBits)

	X     []bits.Slice // X[t] is qubit t's column across all generator rows
	Z     []bits.Slice // Z[t] is qubit t's column across all generator rows
	Phase bits.Slice   // shared across all qubits, indexed by generator row

	_ cpu.CacheLinePad
}

// New allocates an identity tableau (X = I, Z = 0, phase = 0) on n
// qubits with room to grow to nMax. Each column is its own
// cache-line-aligned buffer (bits.NewAlignedSlice) rather than a slab
// carved out of one big backing array, so that concurrent ParRule
// workers sweeping different qubits' columns (spec.md P1, §5) never
// false-share a line; the CacheLinePad above additionally keeps two
// Tableau structs' own header fields off each other's lines.
func New(n, nMax int) *Tableau {
	sliceLen := (nMax + bits.WordBits - 1) / bits.WordBits

	tab := &Tableau{
		N:        n,
		NMax:     nMax,
		SliceLen: sliceLen,
		X:        make([]bits.Slice, nMax),
		Z:        make([]bits.Slice, nMax),
		Phase:    bits.NewAlignedSlice(sliceLen),
	}
	for t := 0; t < nMax; t++ {
		tab.X[t] = bits.NewAlignedSlice(sliceLen)
		tab.Z[t] = bits.NewAlignedSlice(sliceLen)
		if t < n {
			bits.SetBit(tab.X[t], t, 1)
		}
	}
	return tab
}

// Rowsum adds generator row j into generator row i (symplectic row
// addition over GF(2)), including the Aaronson-Gottesman phase
// correction that tracks products of i-phases of Pauli operators.
// Unlike the single-qubit rules this is not vectorizable over
// SliceLen: it touches bit position i and j of every qubit's column,
// not one qubit's whole column (see SPEC_FULL.md §3).
func (tab *Tableau) Rowsum(i, j int) {
	sum := 2*phaseBit(tab.Phase, i) + 2*phaseBit(tab.Phase, j)
	for q := 0; q < tab.N; q++ {
		x1 := bits.GetBit(tab.X[q], j)
		z1 := bits.GetBit(tab.Z[q], j)
		x2 := bits.GetBit(tab.X[q], i)
		z2 := bits.GetBit(tab.Z[q], i)
		sum += g(x1, z1, x2, z2)
	}
	sum &= 3
	bits.SetBit(tab.Phase, i, boolBit(sum == 2))

	for q := 0; q < tab.N; q++ {
		xi := bits.GetBit(tab.X[q], i) ^ bits.GetBit(tab.X[q], j)
		zi := bits.GetBit(tab.Z[q], i) ^ bits.GetBit(tab.Z[q], j)
		bits.SetBit(tab.X[q], i, xi)
		bits.SetBit(tab.Z[q], i, zi)
	}
}

// g is the Aaronson-Gottesman exponent-of-i lookup used by Rowsum: it
// returns, for Pauli factors (x1,z1) composed with (x2,z2) on the same
// qubit, the power of i contributed to the phase accumulator (as a
// value in {-1,0,1}, reduced mod 4 by the caller).
func g(x1, z1, x2, z2 uint8) int {
	switch {
	case x1 == 0 && z1 == 0:
		return 0
	case x1 == 1 && z1 == 1:
		return int(z2) - int(x2)
	case x1 == 1 && z1 == 0:
		return int(z2) * (2*int(x2) - 1)
	default: // x1 == 0 && z1 == 1
		return int(x2) * (1 - 2*int(z2))
	}
}

func phaseBit(phase bits.Slice, i int) int {
	return int(bits.GetBit(phase, i))
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// ClearBoundary enforces invariant T1: bits at positions >= n are zero
// in every slice after a public operation.
func (tab *Tableau) ClearBoundary() {
	for t := 0; t < tab.NMax; t++ {
		bits.ClearAbove(tab.X[t], tab.N)
		bits.ClearAbove(tab.Z[t], tab.N)
	}
	bits.ClearAbove(tab.Phase, tab.N)
}

// Grow extends the live qubit count by one row, used by RZ
// teleportation to allocate a fresh stabilizer row for the ancilla.
// The new row starts as the identity generator X[n] bit n set.
func (tab *Tableau) Grow() (newRow int, err error) {
	if tab.N+1 >= tab.NMax {
		return 0, ErrCapacityExceeded
	}
	newRow = tab.N
	tab.N++
	bits.SetBit(tab.X[newRow], newRow, 1)
	return newRow, nil
}
