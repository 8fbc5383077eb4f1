/*
 * cabaliser - Deferred single-qubit Clifford queue
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

// Package queue holds, per qubit, the single pending Clifford element
// "owed" to the tableau but not yet applied. It is not a FIFO: pushing
// a second gate onto a qubit composes it with whatever is already
// queued rather than appending to a list.
package queue

import (
	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/tableau"
	"github.com/ahtoms/cabaliser/workerpool"
)

// Queue is a fixed-size table of pending single-qubit Cliffords, one
// per qubit, all initially the identity.
type Queue struct {
	q []clifford.Op

	pool       *workerpool.Pool // nil: Flush sweeps on the caller's goroutine
	chunkWidth int
}

// SetPool wires the parallel apply path (spec.md §5) into Flush/
// FlushAll: each flushed rule is partitioned into chunkWidth-sized word
// ranges and dispatched across pool instead of swept inline. Passing a
// nil pool reverts to the sequential path.
func (que *Queue) SetPool(pool *workerpool.Pool, chunkWidth int) {
	que.pool = pool
	que.chunkWidth = chunkWidth
}

// New allocates a queue for n qubits, every entry the identity.
func New(n int) *Queue {
	return &Queue{q: make([]clifford.Op, n)}
}

// Pending returns the Clifford currently owed to qubit i.
func (que *Queue) Pending(i int) clifford.Op {
	return que.q[i]
}

// PushRight right-composes op onto whatever is already queued for
// qubit i: q[i] <- COMPOSE[q[i]][op], i.e. op is applied after the
// queued element.
func (que *Queue) PushRight(i int, op clifford.Op) {
	que.q[i] = clifford.ComposeTable[que.q[i]][op]
}

// Flush applies the queued Clifford at qubit i to tab and resets the
// slot to the identity. When a pool has been wired in via SetPool, the
// rule runs through clifford.ApplyParallel instead of clifford.Apply so
// the sweep fans out across workers (spec.md §5); either way, the
// dispatching goroutine owns this call exclusively, so Que/QMap
// mutation stays single-threaded as §5 requires.
func (que *Queue) Flush(tab *tableau.Tableau, i int) {
	if que.pool != nil {
		clifford.ApplyParallel(que.pool, tab, que.q[i], i, que.chunkWidth)
	} else {
		clifford.Apply(tab, que.q[i], i)
	}
	que.q[i] = clifford.I
}

// FlushAll drains every qubit's pending Clifford into tab, in
// ascending qubit order, as the first normal-form pass requires.
func (que *Queue) FlushAll(tab *tableau.Tableau) {
	for i := range que.q {
		que.Flush(tab, i)
	}
}

// Grow extends the queue by one identity slot, mirroring a tableau
// row allocated by RZ teleportation.
func (que *Queue) Grow() {
	que.q = append(que.q, clifford.I)
}
