package clifford

import "github.com/ahtoms/cabaliser/tableau"

// ComposeTable is the precomputed right-composition table:
// ComposeTable[a][b] is the single rule equivalent to applying a then
// b (b composed onto a, i.e. "b after a"). It has 24*24 = 576 entries.
//
// Rather than hand-deriving the algebra for all 576 pairs, the table
// is built once at init time by applying a then b to a small signature
// tableau and matching the result against each of the 24 atomic rules
// applied to a fresh signature tableau of the same shape — exactly the
// "verifiable by brute-force enumeration on small n" method the
// rewrite rules themselves invite.
var ComposeTable [int(numOps)][int(numOps)]Op

func init() {
	signatures := make([]signature, numOps)
	for op := Op(0); op < numOps; op++ {
		signatures[op] = signatureOf(op)
	}

	for a := Op(0); a < numOps; a++ {
		for b := Op(0); b < numOps; b++ {
			got := composedSignature(a, b)
			found := false
			for op := Op(0); op < numOps; op++ {
				if got == signatures[op] {
					ComposeTable[a][b] = op
					found = true
					break
				}
			}
			if !found {
				panic("clifford: composition of " + a.String() + " and " + b.String() + " did not match any atomic rule")
			}
		}
	}
}

// signature captures a rule's image on three probe generators packed
// one per bit of a single word: bit 0 = X, bit 1 = Y, bit 2 = Z. A
// single-qubit Clifford coset is fully determined by where it sends X
// and Z (Y follows), so this pins down any of the 24 elements exactly.
type signature struct {
	x, z uint64
	r    uint64
}

func signatureOf(op Op) signature {
	tab := newSignatureTableau()
	Apply(tab, op, 0)
	return extractSignature(tab)
}

func composedSignature(a, b Op) signature {
	tab := newSignatureTableau()
	Apply(tab, a, 0)
	Apply(tab, b, 0)
	return extractSignature(tab)
}

// newSignatureTableau builds a single-qubit, single-word tableau whose
// three probe generators are X (bit 0), Y = XZ (bit 1), and Z (bit 2).
func newSignatureTableau() *tableau.Tableau {
	tab := tableau.New(1, 1)
	tab.X[0] = []uint64{0b011}
	tab.Z[0] = []uint64{0b110}
	return tab
}

func extractSignature(tab *tableau.Tableau) signature {
	return signature{
		x: tab.X[0][0] & 0b111,
		z: tab.Z[0][0] & 0b111,
		r: tab.Phase[0] & 0b111,
	}
}
