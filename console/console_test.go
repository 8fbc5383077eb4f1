package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ahtoms/cabaliser/widget"
)

func TestMatchListPrefixMatching(t *testing.T) {
	if len(matchList("sh")) != 1 {
		t.Fatalf("expected unique prefix match for 'sh'")
	}
	if len(matchList("q")) != 1 {
		t.Fatalf("expected unique prefix match for 'q'")
	}
	if len(matchList("zzz")) != 0 {
		t.Fatalf("expected no match for unrelated prefix")
	}
}

func TestShowTableauWritesOneLinePerQubit(t *testing.T) {
	w := widget.New(2, 4)
	var out bytes.Buffer
	cl := &cmdLine{line: "tableau"}
	quit, err := show(cl, w, &out)
	if err != nil || quit {
		t.Fatalf("show: quit=%v err=%v", quit, err)
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Fatalf("expected 2 lines for 2 qubits, got %q", out.String())
	}
}

func TestFlushDrainsQueue(t *testing.T) {
	w := widget.New(1, 2)
	var out bytes.Buffer
	quit, err := flush(nil, w, &out)
	if err != nil || quit {
		t.Fatalf("flush: quit=%v err=%v", quit, err)
	}
	if !strings.Contains(out.String(), "flushed") {
		t.Fatalf("expected confirmation message, got %q", out.String())
	}
}

func TestQuitRequestsExit(t *testing.T) {
	var out bytes.Buffer
	quit, err := quit(nil, nil, &out)
	if err != nil || !quit {
		t.Fatalf("quit: quit=%v err=%v", quit, err)
	}
}
