package debugopt

import "testing"

func TestEnableUnknownCategoryErrors(t *testing.T) {
	if err := Enable("BOGUS"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestEnableThenEnabled(t *testing.T) {
	if err := Enable("QUEUE"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !Enabled(Queue) {
		t.Fatalf("expected Queue category enabled")
	}
	if Enabled(Pandora) {
		t.Fatalf("expected Pandora category to remain disabled")
	}
}
