package normalform

import (
	"testing"

	"github.com/ahtoms/cabaliser/bits"
	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/widget"
)

func TestZeroXColumnGetsHadamardAndBookkeeping(t *testing.T) {
	w := widget.New(2, 4)
	// Force qubit 1's X column to zero by hand (as if some prior
	// sequence of gates rotated it entirely into Z).
	w.Tab.X[1][0] = 0
	w.Tab.Z[1][0] = 0b10

	removeZeroXColumns(w)

	if bits.Ctz(w.Tab.X[1], w.Tab.N) == bits.CTZSentinel {
		t.Fatalf("expected qubit 1's X column to gain a set bit from the applied H")
	}
	if w.OutputBasis[1] != clifford.H {
		t.Fatalf("expected the bookkeeping H recorded into OutputBasis, got %s", w.OutputBasis[1])
	}
	if w.Que.Pending(1) != clifford.I {
		t.Fatalf("bookkeeping H must not leak into the live queue")
	}
}

func TestZDiagonalIsZeroAfterPass(t *testing.T) {
	w := widget.New(2, 4)
	// Identity tableau already has Z diagonal zero; force qubit 0's
	// diagonal Z bit to 1 to exercise the corrective branch.
	bits.SetBit(w.Tab.Z[0], 0, 1)

	zeroZDiagonal(w)
	w.Que.FlushAll(w.Tab)

	if bits.GetBit(w.Tab.Z[0], 0) != 0 {
		t.Fatalf("Z diagonal should be zero on qubit 0 after the pass and flush")
	}
}

func TestXTriangularizationLeavesNoSubdiagonalBits(t *testing.T) {
	w := widget.New(3, 4)
	// Introduce an off-diagonal X bit that the sweep must eliminate:
	// row 2 picks up an X component on qubit 0.
	bits.SetBit(w.Tab.X[0], 2, 1)

	xTriangularize(w)

	for i := 0; i < w.Tab.N; i++ {
		for j := 0; j < w.Tab.N; j++ {
			if j == i {
				continue
			}
			if bits.GetBit(w.Tab.X[i], j) == 1 && j > i {
				t.Fatalf("row %d still has a pivot-column bit set for column %d after triangularization", j, i)
			}
		}
	}
}

func TestRunExecutesAllFourPasses(t *testing.T) {
	w := widget.New(2, 4)
	Run(w) // should not panic on an already-canonical identity tableau
	if w.Que.Pending(0) != clifford.I || w.Que.Pending(1) != clifford.I {
		t.Fatalf("queue should be fully drained after Run")
	}
}
