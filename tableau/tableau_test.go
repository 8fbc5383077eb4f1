package tableau

import (
	"testing"

	"github.com/ahtoms/cabaliser/bits"
)

func TestNewIsIdentity(t *testing.T) {
	tab := New(3, 8)
	for i := 0; i < 3; i++ {
		if bits.GetBit(tab.X[i], i) != 1 {
			t.Fatalf("qubit %d: X diagonal bit not set", i)
		}
		for j := 0; j < 3; j++ {
			if j != i && bits.GetBit(tab.X[i], j) != 0 {
				t.Fatalf("qubit %d: unexpected X bit at row %d", i, j)
			}
			if bits.GetBit(tab.Z[i], j) != 0 {
				t.Fatalf("qubit %d: Z should be all zero initially", i)
			}
		}
	}
}

func TestRowsumXORsXZAcrossQubits(t *testing.T) {
	tab := New(2, 8)
	// row0 = X on qubit0, row1 = X on qubit1 (identity tableau).
	tab.Rowsum(0, 1)
	if bits.GetBit(tab.X[0], 0) != 1 || bits.GetBit(tab.X[1], 0) != 1 {
		t.Fatalf("rowsum should XOR row 1 into row 0 across every qubit column")
	}
	if bits.GetBit(tab.Phase, 0) != 0 {
		t.Fatalf("commuting X tensor X rowsum should not flip the phase")
	}
}

func TestGrowAllocatesFreshRow(t *testing.T) {
	tab := New(2, 4)
	row, err := tab.Grow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != 2 || tab.N != 3 {
		t.Fatalf("Grow: got row=%d n=%d, want row=2 n=3", row, tab.N)
	}
	if _, err := tab.Grow(); err == nil {
		t.Fatalf("expected capacity exceeded once N+1 >= NMax")
	}
}
