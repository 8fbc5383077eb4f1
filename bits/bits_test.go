package bits

import (
	"testing"
	"unsafe"
)

func TestXorInto(t *testing.T) {
	a := Slice{0b1010, 0}
	b := Slice{0b0110, 0}
	XorInto(a, b)
	if a[0] != 0b1100 {
		t.Fatalf("XorInto: got %b, want %b", a[0], 0b1100)
	}
}

func TestGetSetBit(t *testing.T) {
	v := NewSlice(2)
	SetBit(v, 3, 1)
	SetBit(v, 70, 1)
	if GetBit(v, 3) != 1 {
		t.Fatalf("bit 3 not set")
	}
	if GetBit(v, 70) != 1 {
		t.Fatalf("bit 70 not set")
	}
	if GetBit(v, 4) != 0 {
		t.Fatalf("bit 4 unexpectedly set")
	}
	SetBit(v, 3, 0)
	if GetBit(v, 3) != 0 {
		t.Fatalf("bit 3 not cleared")
	}
}

func TestCtzSentinel(t *testing.T) {
	v := NewSlice(2)
	if got := Ctz(v, 128); got != CTZSentinel {
		t.Fatalf("Ctz on zero slice: got %d, want sentinel", got)
	}
	SetBit(v, 65, 1)
	if got := Ctz(v, 128); got != 65 {
		t.Fatalf("Ctz: got %d, want 65", got)
	}
}

func TestCtzRespectsLimit(t *testing.T) {
	v := NewSlice(1)
	SetBit(v, 40, 1)
	if got := Ctz(v, 40); got != CTZSentinel {
		t.Fatalf("Ctz should not see bit at the limit boundary, got %d", got)
	}
	if got := Ctz(v, 41); got != 40 {
		t.Fatalf("Ctz: got %d, want 40", got)
	}
}

func TestNewAlignedSliceIsCacheLineAligned(t *testing.T) {
	for _, sliceLen := range []int{0, 1, 7, 8, 9, 100} {
		v := NewAlignedSlice(sliceLen)
		if len(v) != sliceLen {
			t.Fatalf("NewAlignedSlice(%d): len=%d", sliceLen, len(v))
		}
		if sliceLen == 0 {
			continue
		}
		addr := uintptr(unsafe.Pointer(&v[0]))
		if addr%CacheLineBytes != 0 {
			t.Fatalf("NewAlignedSlice(%d): addr %x not %d-byte aligned", sliceLen, addr, CacheLineBytes)
		}
	}
}

func TestClearAbove(t *testing.T) {
	v := Slice{^uint64(0), ^uint64(0)}
	ClearAbove(v, 70)
	if GetBit(v, 70) != 0 || GetBit(v, 69) != 1 {
		t.Fatalf("ClearAbove did not clear at the boundary correctly")
	}
	ClearAbove(v, 64)
	if v[1] != 0 {
		t.Fatalf("ClearAbove(64) should zero the whole second word")
	}
}
