package pandora

import (
	"math"
	"testing"

	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/stream"
)

func i32(v int32) *int32     { return &v }
func f64(v float64) *float64 { return &v }

func TestAppendRowLocalClifford(t *testing.T) {
	b := stream.NewBuilder()
	if err := appendRow(b, "H", nil, i32(3), nil, nil); err != nil {
		t.Fatalf("appendRow: %v", err)
	}
	records, err := stream.Decode(b.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Kind != stream.KindLocalClifford || records[0].Op != clifford.H || records[0].Arg != 3 {
		t.Fatalf("unexpected record: %+v", records)
	}
}

func TestAppendRowCX(t *testing.T) {
	b := stream.NewBuilder()
	if err := appendRow(b, "CX", nil, i32(0), i32(1), nil); err != nil {
		t.Fatalf("appendRow: %v", err)
	}
	records, _ := stream.Decode(b.Bytes())
	if len(records) != 1 || records[0].Kind != stream.KindNonLocalClifford || records[0].Ctrl != 0 || records[0].Targ != 1 {
		t.Fatalf("unexpected record: %+v", records)
	}
}

func TestAppendRowRZPreservesAngleBits(t *testing.T) {
	b := stream.NewBuilder()
	angle := 0.78539816339 // pi/4
	if err := appendRow(b, "RZ", f64(angle), i32(2), nil, nil); err != nil {
		t.Fatalf("appendRow: %v", err)
	}
	records, _ := stream.Decode(b.Bytes())
	if len(records) != 1 || records[0].Kind != stream.KindRZ || records[0].AngleTag != math.Float64bits(angle) {
		t.Fatalf("unexpected record: %+v", records)
	}
}

func TestAppendRowUnknownGateErrors(t *testing.T) {
	b := stream.NewBuilder()
	if err := appendRow(b, "BOGUS", nil, i32(0), nil, nil); err == nil {
		t.Fatalf("expected error for unrecognized gate type")
	}
}

func TestAppendRowMissingOperandErrors(t *testing.T) {
	b := stream.NewBuilder()
	if err := appendRow(b, "CX", nil, i32(0), nil, nil); err == nil {
		t.Fatalf("expected error for CX missing target operand")
	}
}
