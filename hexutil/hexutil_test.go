package hexutil

import (
	"strings"
	"testing"
)

func TestFormatWord64(t *testing.T) {
	var sb strings.Builder
	FormatWord64(&sb, 0xDEADBEEF)
	if sb.String() != "00000000DEADBEEF" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestFormatBytesWithSpaces(t *testing.T) {
	var sb strings.Builder
	FormatBytes(&sb, true, []byte{0x01, 0xFF})
	if sb.String() != "01 FF " {
		t.Fatalf("got %q", sb.String())
	}
}

func TestFormatAngleTag(t *testing.T) {
	var sb strings.Builder
	FormatAngleTag(&sb, 1)
	if sb.String() != "0x0000000000000001" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestFormatBit(t *testing.T) {
	var sb strings.Builder
	FormatBit(&sb, 1)
	FormatBit(&sb, 0)
	if sb.String() != "10" {
		t.Fatalf("got %q", sb.String())
	}
}
