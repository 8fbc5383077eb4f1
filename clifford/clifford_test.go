package clifford

import (
	"testing"

	"github.com/ahtoms/cabaliser/tableau"
	"github.com/ahtoms/cabaliser/workerpool"
)

func snapshot(tab *tableau.Tableau, targ int) (x, z, r uint64) {
	return tab.X[targ][0], tab.Z[targ][0], tab.Phase[0]
}

func TestInvolutions(t *testing.T) {
	cases := []struct {
		name string
		fn   func(tab *tableau.Tableau, targ int)
	}{
		{"H;H", func(tab *tableau.Tableau, targ int) { Apply(tab, H, targ); Apply(tab, H, targ) }},
		{"S^4", func(tab *tableau.Tableau, targ int) {
			for i := 0; i < 4; i++ {
				Apply(tab, S, targ)
			}
		}},
		{"X;X", func(tab *tableau.Tableau, targ int) { Apply(tab, X, targ); Apply(tab, X, targ) }},
		{"Y;Y", func(tab *tableau.Tableau, targ int) { Apply(tab, Y, targ); Apply(tab, Y, targ) }},
		{"Z;Z", func(tab *tableau.Tableau, targ int) { Apply(tab, Z, targ); Apply(tab, Z, targ) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tab := tableau.New(2, 2)
			x0, z0, r0 := snapshot(tab, 0)
			c.fn(tab, 0)
			x1, z1, r1 := snapshot(tab, 0)
			if x0 != x1 || z0 != z1 || r0 != r1 {
				t.Fatalf("%s is not an involution: before=(%x,%x,%x) after=(%x,%x,%x)", c.name, x0, z0, r0, x1, z1, r1)
			}
		})
	}
}

func TestComposeTableMatchesSequentialApplication(t *testing.T) {
	for a := Op(0); a < numOps; a++ {
		for b := Op(0); b < numOps; b++ {
			seq := tableau.New(2, 2)
			Apply(seq, a, 0)
			Apply(seq, b, 0)

			fused := tableau.New(2, 2)
			Apply(fused, ComposeTable[a][b], 0)

			sx, sz, sr := snapshot(seq, 0)
			fx, fz, fr := snapshot(fused, 0)
			if sx != fx || sz != fz || sr != fr {
				t.Fatalf("compose(%s,%s)=%s mismatch: sequential=(%x,%x,%x) fused=(%x,%x,%x)",
					a, b, ComposeTable[a][b], sx, sz, sr, fx, fz, fr)
			}
		}
	}
}

func TestHSHMatchesThreeStepSequence(t *testing.T) {
	seq := tableau.New(3, 3)
	Apply(seq, H, 0)
	Apply(seq, S, 0)
	Apply(seq, H, 0)

	fused := tableau.New(3, 3)
	Apply(fused, HSH, 0)

	sx, sz, sr := snapshot(seq, 0)
	fx, fz, fr := snapshot(fused, 0)
	if sx != fx || sz != fz || sr != fr {
		t.Fatalf("HSH mismatch: sequential=(%x,%x,%x) fused=(%x,%x,%x)", sx, sz, sr, fx, fz, fr)
	}
}

// CX propagates X from control to target and Z from target to control
// (Aaronson-Gottesman CNOT rule). Starting from the identity tableau
// X=I, Z=0, only the X block can change: there is no Z component on
// either generator to propagate backward yet.
func TestCXPropagatesXControlToTarget(t *testing.T) {
	tab := tableau.New(2, 2)
	CX(tab, 0, 1)
	if tab.X[1][0]&1 == 0 {
		t.Fatalf("CX: target's X column should gain the control generator's X bit")
	}
	if tab.Z[0][0] != 0 || tab.Z[1][0] != 0 {
		t.Fatalf("CX: Z block should stay zero when no Z component exists to propagate")
	}
}

func TestCZSymmetricOnXOnlyGenerators(t *testing.T) {
	tab := tableau.New(2, 2)
	CZ(tab, 0, 1)
	if tab.Z[0][0]&2 == 0 || tab.Z[1][0]&1 == 0 {
		t.Fatalf("CZ: each qubit's Z column should gain the other's X bit")
	}
}

// ApplyParallel, run with a multi-worker pool and a narrow chunk width
// (forcing several disjoint ranges per rule), must match Apply's
// single-threaded result for every one of the 24 rules.
func TestApplyParallelMatchesApplyForEveryRule(t *testing.T) {
	pool := workerpool.New(4)
	for op := Op(0); op < numOps; op++ {
		seq := tableau.New(130, 130)
		Apply(seq, op, 0)

		par := tableau.New(130, 130)
		ApplyParallel(pool, par, op, 0, 1)

		for i := range seq.Phase {
			if seq.X[0][i] != par.X[0][i] || seq.Z[0][i] != par.Z[0][i] || seq.Phase[i] != par.Phase[i] {
				t.Fatalf("%s: parallel apply diverged from sequential at word %d", op, i)
			}
		}
	}
}
