/*
 * cabaliser - End-of-stream normal-form passes
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

// Package normalform runs the four end-of-stream canonicalization
// passes: flush the queue, eliminate zero X-columns, zero the Z
// diagonal, and upper-triangularize the X block. Transliterated from
// tableau_remove_zero_X_columns / tableau_Z_zero_diagonal /
// tableau_X_diagonal, with the two open questions those functions
// raise resolved as documented in SPEC_FULL.md §4 and §9.
package normalform

import (
	"github.com/ahtoms/cabaliser/bits"
	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/widget"
)

// Run executes all four passes in order against w.
func Run(w *widget.Widget) {
	flushQueue(w)
	removeZeroXColumns(w)
	zeroZDiagonal(w)
	w.Que.FlushAll(w.Tab)
	xTriangularize(w)
}

// flushQueue is pass 1: drain every qubit's pending Clifford into the
// tableau before canonicalization begins.
func flushQueue(w *widget.Widget) {
	w.Que.FlushAll(w.Tab)
}

// removeZeroXColumns is pass 2: any qubit whose X column is entirely
// zero gets a Hadamard applied directly to the tableau (not queued,
// since the queue was just drained) and recorded into OutputBasis for
// downstream bookkeeping — not into Que, which must stay clean for the
// corrections pass 3 queues next (see SPEC_FULL.md's bookkeeping
// resolution).
func removeZeroXColumns(w *widget.Widget) {
	for i := 0; i < w.Tab.N; i++ {
		if bits.Ctz(w.Tab.X[i], w.Tab.N) == bits.CTZSentinel {
			clifford.Apply(w.Tab, clifford.H, i)
			w.OutputBasis[i] = clifford.ComposeTable[w.OutputBasis[i]][clifford.H]
		}
	}
}

// zeroZDiagonal is pass 3: queue an S on every qubit whose diagonal Z
// bit is currently set, so that the following flush clears it. This is
// the resolved polarity (S when Z[i][i]==1, I otherwise) — the literal
// source's ternary does the opposite and cannot zero the diagonal, see
// SPEC_FULL.md §9.
func zeroZDiagonal(w *widget.Widget) {
	for i := 0; i < w.Tab.N; i++ {
		if bits.GetBit(w.Tab.Z[i], i) == 1 {
			w.Que.PushRight(i, clifford.S)
		} else {
			w.Que.PushRight(i, clifford.I)
		}
	}
}

// xTriangularize is pass 4: for each generator row i, wherever row i
// has an X bit on another qubit j (bit i of X[j]), add row j into
// row i via Rowsum(i, j). The
// ascending sweep covers j > i; the descending sweep covers j < i
// including j == 0 — the resolved reading of the open question over
// whether the source's "j > 0" bound was intentional (it is treated
// here as a boundary bug per SPEC_FULL.md §9).
func xTriangularize(w *widget.Widget) {
	for i := 0; i < w.Tab.N; i++ {
		for j := i + 1; j < w.Tab.N; j++ {
			if bits.GetBit(w.Tab.X[j], i) == 1 {
				w.Tab.Rowsum(i, j)
			}
		}
		for j := i - 1; j >= 0; j-- {
			if bits.GetBit(w.Tab.X[j], i) == 1 {
				w.Tab.Rowsum(i, j)
			}
		}
	}
}
