/*
 * cabaliser - Barrier-synchronous chunk dispatcher
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

// Package workerpool is the parallel seam a single-qubit Clifford rule
// can run through: partition a word range into disjoint chunks, run a
// pure per-chunk function across a fixed goroutine pool, and block
// until every chunk finishes. The dispatching thread only ever hands
// out disjoint ranges; workers never touch Queue or q_map, which stay
// the sequential decoder's exclusive property. Modelled on the
// channel-of-tasks-plus-WaitGroup worker pool pattern, trimmed of its
// progress-reporting goroutine since a compile's chunk counts don't
// warrant one.
package workerpool

import (
	"runtime"
	"sync"
)

// Pool runs ChunkFuncs across a fixed number of goroutines.
type Pool struct {
	numWorkers int
}

// ChunkFunc processes the half-open word range [start, end).
type ChunkFunc func(start, end int)

// New builds a Pool with numWorkers goroutines. numWorkers <= 0 means
// runtime.NumCPU().
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{numWorkers: numWorkers}
}

// Run partitions [0, n) into chunks of at most chunkWidth words,
// dispatches each chunk to fn across the pool, and blocks until every
// chunk has completed — the barrier required before the next
// instruction in the stream may be decoded.
func (p *Pool) Run(n, chunkWidth int, fn ChunkFunc) {
	if n <= 0 {
		return
	}
	if chunkWidth <= 0 {
		chunkWidth = n
	}

	type chunk struct{ start, end int }
	chunks := make(chan chunk, (n+chunkWidth-1)/chunkWidth)
	for start := 0; start < n; start += chunkWidth {
		end := start + chunkWidth
		if end > n {
			end = n
		}
		chunks <- chunk{start, end}
	}
	close(chunks)

	var wg sync.WaitGroup
	workers := p.numWorkers
	if workers > n {
		workers = n
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunks {
				fn(c.start, c.end)
			}
		}()
	}
	wg.Wait()
}
