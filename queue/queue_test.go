package queue

import (
	"testing"

	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/tableau"
	"github.com/ahtoms/cabaliser/workerpool"
)

func TestPushRightComposesNotAppends(t *testing.T) {
	que := New(2)
	que.PushRight(0, clifford.H)
	que.PushRight(0, clifford.S)
	if que.Pending(0) != clifford.ComposeTable[clifford.H][clifford.S] {
		t.Fatalf("PushRight should compose via COMPOSE, not append")
	}
}

func TestFlushMatchesSequentialApplication(t *testing.T) {
	seqTab := tableau.New(2, 2)
	clifford.Apply(seqTab, clifford.H, 0)
	clifford.Apply(seqTab, clifford.S, 0)
	clifford.Apply(seqTab, clifford.H, 0)

	queuedTab := tableau.New(2, 2)
	que := New(2)
	que.PushRight(0, clifford.H)
	que.PushRight(0, clifford.S)
	que.PushRight(0, clifford.H)
	que.Flush(queuedTab, 0)

	if seqTab.X[0][0] != queuedTab.X[0][0] || seqTab.Z[0][0] != queuedTab.Z[0][0] || seqTab.Phase[0] != queuedTab.Phase[0] {
		t.Fatalf("queued flush diverged from sequential application")
	}
	if que.Pending(0) != clifford.I {
		t.Fatalf("Flush should reset the slot to identity")
	}
}

func TestFlushThroughPoolMatchesSequentialApplication(t *testing.T) {
	seqTab := tableau.New(2, 2)
	clifford.Apply(seqTab, clifford.H, 0)
	clifford.Apply(seqTab, clifford.S, 0)
	clifford.Apply(seqTab, clifford.H, 0)

	pooledTab := tableau.New(2, 2)
	que := New(2)
	que.SetPool(workerpool.New(4), 1)
	que.PushRight(0, clifford.H)
	que.PushRight(0, clifford.S)
	que.PushRight(0, clifford.H)
	que.Flush(pooledTab, 0)

	if seqTab.X[0][0] != pooledTab.X[0][0] || seqTab.Z[0][0] != pooledTab.Z[0][0] || seqTab.Phase[0] != pooledTab.Phase[0] {
		t.Fatalf("pooled flush diverged from sequential application")
	}
	if que.Pending(0) != clifford.I {
		t.Fatalf("Flush should reset the slot to identity")
	}
}

func TestFlushAllDrainsEveryQubit(t *testing.T) {
	tab := tableau.New(3, 3)
	que := New(3)
	que.PushRight(1, clifford.H)
	que.FlushAll(tab)
	for i := 0; i < 3; i++ {
		if que.Pending(i) != clifford.I {
			t.Fatalf("qubit %d not reset to identity after FlushAll", i)
		}
	}
}
