package decoder

import (
	"errors"
	"testing"

	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/opcode"
	"github.com/ahtoms/cabaliser/stream"
	"github.com/ahtoms/cabaliser/widget"
)

func TestHOnQubitZeroSwapsColumnsAfterFlush(t *testing.T) {
	w := widget.New(2, 4)
	records, err := stream.Decode(stream.NewBuilder().LocalClifford(clifford.H, 0).Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := Run(w, records); err != nil {
		t.Fatalf("Run: %v", err)
	}
	w.Que.Flush(w.Tab, 0)

	if w.Tab.X[0][0]&1 != 0 || w.Tab.Z[0][0]&1 == 0 {
		t.Fatalf("expected X/Z columns swapped on qubit 0 after H and flush")
	}
}

func TestCXZeroToOne(t *testing.T) {
	w := widget.New(2, 4)
	records, _ := stream.Decode(stream.NewBuilder().NonLocalClifford(opcode.CX, 0, 1).Bytes())
	if err := Run(w, records); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if w.Tab.X[1][0]&1 == 0 {
		t.Fatalf("expected CX to propagate X from control to target")
	}
}

func TestFourSGatesReturnToIdentity(t *testing.T) {
	w := widget.New(2, 4)
	b := stream.NewBuilder()
	for i := 0; i < 4; i++ {
		b.LocalClifford(clifford.S, 1)
	}
	records, _ := stream.Decode(b.Bytes())
	if err := Run(w, records); err != nil {
		t.Fatalf("Run: %v", err)
	}
	w.Que.Flush(w.Tab, 1)

	if w.Tab.X[1][0] != 0b10 || w.Tab.Z[1][0] != 0 || w.Tab.Phase[0] != 0 {
		t.Fatalf("four S gates should leave the tableau at identity, got X=%x Z=%x r=%x",
			w.Tab.X[1][0], w.Tab.Z[1][0], w.Tab.Phase[0])
	}
}

func TestRZGrowsAndRecordsAngleTag(t *testing.T) {
	w := widget.New(2, 4)
	records, _ := stream.Decode(stream.NewBuilder().RZ(0, 0xDEADBEEF).Bytes())
	if err := Run(w, records); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if w.NQubits != 3 {
		t.Fatalf("NQubits: got %d, want 3", w.NQubits)
	}
	if w.QMap[0] != 2 {
		t.Fatalf("QMap[0]: got %d, want 2", w.QMap[0])
	}
	if !w.NonClifford[0].Present || w.NonClifford[0].AngleTag != 0xDEADBEEF {
		t.Fatalf("NonClifford[0]: got %+v, want angle tag recorded", w.NonClifford[0])
	}
}

func TestInvalidQubitIndexIsFatal(t *testing.T) {
	w := widget.New(2, 4)
	records, _ := stream.Decode(stream.NewBuilder().LocalClifford(clifford.H, 99).Bytes())
	err := Run(w, records)
	var target *InvalidQubitIndexError
	if !errors.As(err, &target) {
		t.Fatalf("expected InvalidQubitIndexError, got %v", err)
	}
}
