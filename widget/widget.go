/*
 * cabaliser - Widget: tableau + queue + qubit remap orchestration
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

// Package widget owns a compile's tableau, queue, qubit remap, and
// per-qubit byproduct bookkeeping, and performs RZ teleportation
// bookkeeping on them. It does not run a compile itself: decoding the
// instruction stream (decoder.Run) and the normal-form passes
// (normalform.Run) are driven by the caller against a *Widget.
package widget

import (
	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/queue"
	"github.com/ahtoms/cabaliser/tableau"
	"github.com/ahtoms/cabaliser/workerpool"
)

// NonCliffordSlot records a teleported RZ rotation's angle tag, if any
// was assigned to this tableau row.
type NonCliffordSlot struct {
	Present  bool
	AngleTag uint64
}

// Widget owns every piece of state a single compile touches.
type Widget struct {
	Tab *tableau.Tableau
	Que *queue.Queue

	NQubits   int // logically live qubit count, grows on RZ teleportation
	MaxQubits int // hard cap; exceeding it is a compile failure

	QMap []int // input-circuit qubit index -> current tableau row, initially identity

	NonClifford []NonCliffordSlot // per-row optional angle tag

	// OutputBasis accumulates, per row, the local Clifford folded into
	// that row's canonical form by the normal-form passes. It is
	// distinct from Que: Que is only ever flushed into the tableau,
	// while OutputBasis is pure bookkeeping for the emitted widget and
	// is never itself flushed (see SPEC_FULL.md §4, "Normal-form
	// bookkeeping resolution").
	OutputBasis []clifford.Op
}

// New allocates a widget starting with n live qubits and room to grow
// to maxQubits via RZ teleportation.
func New(n, maxQubits int) *Widget {
	qMap := make([]int, maxQubits)
	nonClifford := make([]NonCliffordSlot, maxQubits)
	outputBasis := make([]clifford.Op, maxQubits)
	for i := range qMap {
		qMap[i] = i
	}

	return &Widget{
		Tab:         tableau.New(n, maxQubits),
		Que:         queue.New(maxQubits),
		NQubits:     n,
		MaxQubits:   maxQubits,
		QMap:        qMap,
		NonClifford: nonClifford,
		OutputBasis: outputBasis,
	}
}

// ConfigureWorkers wires the parallel apply path (spec.md §5, C15
// workerpool) into w's flush queue: workers <= 1 leaves the sequential
// path in place, matching a single-threaded compile's default. Called
// once a config has been loaded, since workers/chunkWidth are
// config-driven (config.Workers, config.ChunkWidth).
func (w *Widget) ConfigureWorkers(workers, chunkWidth int) {
	if workers <= 1 {
		return
	}
	w.Que.SetPool(workerpool.New(workers), chunkWidth)
}

// Teleport performs the gate-teleportation bookkeeping for an RZ
// instruction on input-circuit qubit arg: it allocates a fresh
// stabilizer row, records angleTag against the old row, and retargets
// arg to the fresh row. Returns CapacityExceeded if growth would meet
// or exceed MaxQubits.
func (w *Widget) Teleport(arg uint32, angleTag uint64) error {
	if w.NQubits+1 >= w.MaxQubits {
		return tableau.ErrCapacityExceeded
	}

	freshRow, err := w.Tab.Grow()
	if err != nil {
		return err
	}
	w.Que.Grow()
	w.NQubits++

	idx := w.QMap[arg]
	w.NonClifford[idx] = NonCliffordSlot{Present: true, AngleTag: angleTag}
	w.QMap[arg] = freshRow

	return nil
}

// Snapshot is the normalized, read-only product of a completed
// compile: the canonicalized tableau plus the bookkeeping needed by a
// downstream emitter. Emission format itself is out of scope.
type Snapshot struct {
	X, Z        []uint64
	N           int
	OutputBasis []clifford.Op
	NonClifford []NonCliffordSlot
	QMap        []int
}

// Snapshot captures the widget's final state for a downstream emitter.
// It flattens each qubit's single-word column (valid for n <= 64,
// the common case exercised by this compiler) for easy serialization;
// wider tableaux are read directly off w.Tab by a custom emitter.
func (w *Widget) Snapshot() Snapshot {
	x := make([]uint64, w.NQubits)
	z := make([]uint64, w.NQubits)
	for i := 0; i < w.NQubits; i++ {
		if len(w.Tab.X[i]) > 0 {
			x[i] = w.Tab.X[i][0]
		}
		if len(w.Tab.Z[i]) > 0 {
			z[i] = w.Tab.Z[i][0]
		}
	}
	return Snapshot{
		X:           x,
		Z:           z,
		N:           w.NQubits,
		OutputBasis: append([]clifford.Op(nil), w.OutputBasis[:w.NQubits]...),
		NonClifford: append([]NonCliffordSlot(nil), w.NonClifford[:w.NQubits]...),
		QMap:        append([]int(nil), w.QMap...),
	}
}
