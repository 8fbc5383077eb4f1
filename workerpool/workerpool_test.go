package workerpool

import (
	"sync/atomic"
	"testing"
)

func TestRunCoversEveryWordExactlyOnce(t *testing.T) {
	const n = 100
	var touched [n]int32

	p := New(4)
	p.Run(n, 7, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&touched[i], 1)
		}
	})

	for i, v := range touched {
		if v != 1 {
			t.Fatalf("word %d touched %d times, want 1", i, v)
		}
	}
}

func TestRunOnEmptyRangeDoesNothing(t *testing.T) {
	called := false
	p := New(2)
	p.Run(0, 8, func(start, end int) { called = true })
	if called {
		t.Fatalf("expected no chunks dispatched for n=0")
	}
}

func TestRunWithSingleWorkerIsStillExhaustive(t *testing.T) {
	const n = 37
	var sum int64
	p := New(1)
	p.Run(n, 5, func(start, end int) {
		atomic.AddInt64(&sum, int64(end-start))
	})
	if sum != n {
		t.Fatalf("sum of chunk widths: got %d, want %d", sum, n)
	}
}
