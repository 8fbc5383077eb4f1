/*
 * cabaliser - Single and two qubit Clifford rewrite rules
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package clifford implements every single-qubit Clifford coset
// representative (24 elements, modulo global phase) as an in-place
// sweep over a Tableau column, plus the two-qubit CX/CZ symplectic
// update. Every rule here is transliterated bit-for-bit from the
// reference tableau_operations rewrite rules; the per-rule comments
// carry the same generator-composition derivation as the source so the
// bitwise formula can be checked by hand.
package clifford

import (
	"github.com/ahtoms/cabaliser/tableau"
	"github.com/ahtoms/cabaliser/workerpool"
)

// Op names a single-qubit Clifford coset representative.
type Op uint8

const (
	I Op = iota
	H
	S
	Z
	R
	X
	Y
	HX
	SX
	RX
	HZ
	HY
	SH
	RH
	HS
	HR
	HSX
	HRX
	SHY
	RHY
	HSH
	HRH
	RHS
	SHR
	numOps
)

// NumOps is the size of the single-qubit Clifford coset group (24,
// modulo global phase): the valid range for an Op is [0, NumOps).
const NumOps = int(numOps)

var names = [numOps]string{
	I: "I", H: "H", S: "S", Z: "Z", R: "R", X: "X", Y: "Y",
	HX: "HX", SX: "SX", RX: "RX", HZ: "HZ", HY: "HY", SH: "SH", RH: "RH",
	HS: "HS", HR: "HR", HSX: "HSX", HRX: "HRX", SHY: "SHY", RHY: "RHY",
	HSH: "HSH", HRH: "HRH", RHS: "RHS", SHR: "SHR",
}

// String returns the rule's mnemonic.
func (op Op) String() string {
	if int(op) < int(numOps) {
		return names[op]
	}
	return "?"
}

var byName map[string]Op

func init() {
	byName = make(map[string]Op, numOps)
	for op := Op(0); op < numOps; op++ {
		byName[names[op]] = op
	}
}

// ByName looks up a Clifford mnemonic ("H", "CX" is not one of these —
// see the opcode package for two-qubit operators). Used by external
// fetchers that only have a gate name string to work from.
func ByName(name string) (Op, bool) {
	op, ok := byName[name]
	return op, ok
}

// Rule is a pure sweep over one qubit's column of a tableau.
type Rule func(tab *tableau.Tableau, targ int)

func swap(tab *tableau.Tableau, targ int) {
	tab.X[targ], tab.Z[targ] = tab.Z[targ], tab.X[targ]
}

func ruleI(_ *tableau.Tableau, _ int) {}

// H: phase ^= X & Z; swap X <-> Z.
func ruleH(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] & z[i]
	}
	swap(tab, targ)
}

// S: phase ^= X & Z; Z ^= X.
func ruleS(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] & z[i]
		z[i] ^= x[i]
	}
}

// Z = S^2: phase ^= X.
func ruleZ(tab *tableau.Tableau, targ int) {
	x, r := tab.X[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i]
	}
}

// R = S^3 = S-dagger: phase ^= X & ~Z; Z ^= X.
func ruleR(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] & ^z[i]
		z[i] ^= x[i]
	}
}

// X = HZH: phase ^= Z.
func ruleX(tab *tableau.Tableau, targ int) {
	z, r := tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= z[i]
	}
}

// Y = XZ: phase ^= X ^ Z.
func ruleY(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= z[i] ^ x[i]
	}
}

// HX = H . X: phase ^= ~X & Z; swap X <-> Z.
func ruleHX(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= ^x[i] & z[i]
	}
	swap(tab, targ)
}

// SX = S . X: phase ^= ~X & Z; Z ^= X.
func ruleSX(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= ^x[i] & z[i]
		z[i] ^= x[i]
	}
}

// RX = R . X: phase ^= X | Z; Z ^= X.
func ruleRX(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] | z[i]
		z[i] ^= x[i]
	}
}

// HZ = H . Z: phase ^= X & ~Z; swap X <-> Z.
func ruleHZ(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= ^z[i] & x[i]
	}
	swap(tab, targ)
}

// HY = H . Y: phase ^= X | Z; swap X <-> Z.
func ruleHY(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] | z[i]
	}
	swap(tab, targ)
}

// SH = S . H: X ^= Z; swap X <-> Z. No phase contribution (cancels).
func ruleSH(tab *tableau.Tableau, targ int) {
	x, z := tab.X[targ], tab.Z[targ]
	for i := range x {
		x[i] ^= z[i]
	}
	swap(tab, targ)
}

// RH = R . H: phase ^= Z; X ^= Z; swap X <-> Z.
func ruleRH(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= z[i]
		x[i] ^= z[i]
	}
	swap(tab, targ)
}

// HS = H . S: phase ^= X; Z ^= X; swap X <-> Z.
func ruleHS(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i]
		z[i] ^= x[i]
	}
	swap(tab, targ)
}

// HR = H . R: Z ^= X; swap X <-> Z.
func ruleHR(tab *tableau.Tableau, targ int) {
	x, z := tab.X[targ], tab.Z[targ]
	for i := range z {
		z[i] ^= x[i]
	}
	swap(tab, targ)
}

// HSX = H . S . X: phase ^= X ^ Z; Z ^= X; swap X <-> Z.
func ruleHSX(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] ^ z[i]
		z[i] ^= x[i]
	}
	swap(tab, targ)
}

// HRX = H . R . X: phase ^= Z; Z ^= X; swap X <-> Z.
func ruleHRX(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= z[i]
		z[i] ^= x[i]
	}
	swap(tab, targ)
}

// SHY = S . H . Y: phase ^= X ^ Z; X ^= Z; swap X <-> Z.
func ruleSHY(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= z[i] ^ x[i]
		x[i] ^= z[i]
	}
	swap(tab, targ)
}

// RHY = R . H . Y: phase ^= X; X ^= Z; swap X <-> Z.
func ruleRHY(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i]
		x[i] ^= z[i]
	}
	swap(tab, targ)
}

// HSH = H . S . H: phase ^= ~X & Z; X ^= Z. No final swap: the
// Hadamards bracket the S and cancel the basis change.
func ruleHSH(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= ^x[i] & z[i]
		x[i] ^= z[i]
	}
}

// HRH = H . R . H: phase ^= X & Z; X ^= Z.
func ruleHRH(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] & z[i]
		x[i] ^= z[i]
	}
}

// RHS = R . H . S: phase ^= X | Z; X ^= Z.
func ruleRHS(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] | z[i]
		x[i] ^= z[i]
	}
}

// SHR = S . H . R: phase ^= X & ~Z; X ^= Z.
func ruleSHR(tab *tableau.Tableau, targ int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := range r {
		r[i] ^= x[i] & ^z[i]
		x[i] ^= z[i]
	}
}

// SingleQubitOperations is the compile-time dispatch table mapping each
// Op to its sweep. Indexed directly by Op, mirroring the original
// SINGLE_QUBIT_OPERATIONS function-pointer array.
var SingleQubitOperations = [numOps]Rule{
	I: ruleI, H: ruleH, S: ruleS, Z: ruleZ, R: ruleR, X: ruleX, Y: ruleY,
	HX: ruleHX, SX: ruleSX, RX: ruleRX, HZ: ruleHZ, HY: ruleHY,
	SH: ruleSH, RH: ruleRH, HS: ruleHS, HR: ruleHR,
	HSX: ruleHSX, HRX: ruleHRX, SHY: ruleSHY, RHY: ruleRHY,
	HSH: ruleHSH, HRH: ruleHRH, RHS: ruleRHS, SHR: ruleSHR,
}

// Apply runs op's sweep on tab at qubit targ.
func Apply(tab *tableau.Tableau, op Op, targ int) {
	SingleQubitOperations[op](tab, targ)
}

// ParRule is op's sweep expressed as a pure function of a disjoint word
// range [start, end) of tab's X[targ]/Z[targ]/Phase slices: the form
// spec.md §5's parallel seam requires, safe to call concurrently from
// workers holding non-overlapping ranges of the same qubit's column.
// The X<->Z pointer swap any H-containing rule needs runs once, after
// every worker's range has completed, never inside ParRule itself.
type ParRule func(tab *tableau.Tableau, targ, start, end int)

// swaps reports whether op's single-threaded Rule ends in an X<->Z
// pointer swap, so the dispatching goroutine can replay that step once
// the barrier clears instead of racing it into the per-range sweep.
var swaps = [numOps]bool{
	H: true, HX: true, HZ: true, HY: true,
	SH: true, RH: true, HS: true, HR: true,
	HSX: true, HRX: true, SHY: true, RHY: true,
}

// Swaps reports whether op's sweep ends with an X<->Z column swap.
func Swaps(op Op) bool {
	return swaps[op]
}

func parRuleI(_ *tableau.Tableau, _, _, _ int) {}

func parRuleH(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] & z[i]
	}
}

func parRuleS(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] & z[i]
		z[i] ^= x[i]
	}
}

func parRuleZ(tab *tableau.Tableau, targ, start, end int) {
	x, r := tab.X[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i]
	}
}

func parRuleR(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] & ^z[i]
		z[i] ^= x[i]
	}
}

func parRuleX(tab *tableau.Tableau, targ, start, end int) {
	z, r := tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= z[i]
	}
}

func parRuleY(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= z[i] ^ x[i]
	}
}

func parRuleHX(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= ^x[i] & z[i]
	}
}

func parRuleSX(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= ^x[i] & z[i]
		z[i] ^= x[i]
	}
}

func parRuleRX(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] | z[i]
		z[i] ^= x[i]
	}
}

func parRuleHZ(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= ^z[i] & x[i]
	}
}

func parRuleHY(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] | z[i]
	}
}

func parRuleSH(tab *tableau.Tableau, targ, start, end int) {
	x, z := tab.X[targ], tab.Z[targ]
	for i := start; i < end; i++ {
		x[i] ^= z[i]
	}
}

func parRuleRH(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= z[i]
		x[i] ^= z[i]
	}
}

func parRuleHS(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i]
		z[i] ^= x[i]
	}
}

func parRuleHR(tab *tableau.Tableau, targ, start, end int) {
	x, z := tab.X[targ], tab.Z[targ]
	for i := start; i < end; i++ {
		z[i] ^= x[i]
	}
}

func parRuleHSX(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] ^ z[i]
		z[i] ^= x[i]
	}
}

func parRuleHRX(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= z[i]
		z[i] ^= x[i]
	}
}

func parRuleSHY(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= z[i] ^ x[i]
		x[i] ^= z[i]
	}
}

func parRuleRHY(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i]
		x[i] ^= z[i]
	}
}

func parRuleHSH(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= ^x[i] & z[i]
		x[i] ^= z[i]
	}
}

func parRuleHRH(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] & z[i]
		x[i] ^= z[i]
	}
}

func parRuleRHS(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] | z[i]
		x[i] ^= z[i]
	}
}

func parRuleSHR(tab *tableau.Tableau, targ, start, end int) {
	x, z, r := tab.X[targ], tab.Z[targ], tab.Phase
	for i := start; i < end; i++ {
		r[i] ^= x[i] & ^z[i]
		x[i] ^= z[i]
	}
}

// SingleQubitParOperations is SINGLE_QUBIT_OPERATIONS's parallel twin:
// the same 24 rules, each restricted to a caller-supplied word range so
// independent workers can sweep disjoint ranges of the same qubit's
// column concurrently (spec.md §4.2, §5). The X<->Z swap `Rule` performs
// in-line is deliberately omitted here; ApplyParallel below performs it
// once, on the dispatching goroutine, after every range has completed.
var SingleQubitParOperations = [numOps]ParRule{
	I: parRuleI, H: parRuleH, S: parRuleS, Z: parRuleZ, R: parRuleR, X: parRuleX, Y: parRuleY,
	HX: parRuleHX, SX: parRuleSX, RX: parRuleRX, HZ: parRuleHZ, HY: parRuleHY,
	SH: parRuleSH, RH: parRuleRH, HS: parRuleHS, HR: parRuleHR,
	HSX: parRuleHSX, HRX: parRuleHRX, SHY: parRuleSHY, RHY: parRuleRHY,
	HSH: parRuleHSH, HRH: parRuleHRH, RHS: parRuleRHS, SHR: parRuleSHR,
}

// ApplyRange runs op's parallel sweep on tab at qubit targ, restricted
// to word range [start, end). Safe to call concurrently with other
// ApplyRange calls for the same op/targ over disjoint ranges; the
// caller is responsible for the post-barrier swap (see Swaps).
func ApplyRange(tab *tableau.Tableau, op Op, targ, start, end int) {
	SingleQubitParOperations[op](tab, targ, start, end)
}

// ApplyParallel runs op's sweep on tab at qubit targ through pool,
// partitioning tab's Phase column (length SliceLen words) into
// chunkWidth-sized ranges dispatched across the pool, then performing
// the post-barrier X<->Z swap on the calling goroutine once every
// worker's range has returned — exactly the sequencing spec.md §5
// requires ("the pointer-swap step ... occurs on the dispatching
// thread after the barrier"). Equivalent to Apply but exercises the
// parallel seam instead of sweeping on the caller alone.
func ApplyParallel(pool *workerpool.Pool, tab *tableau.Tableau, op Op, targ, chunkWidth int) {
	pool.Run(len(tab.Phase), chunkWidth, func(start, end int) {
		ApplyRange(tab, op, targ, start, end)
	})
	if swaps[op] {
		swap(tab, targ)
	}
}

// CX applies the controlled-X symplectic update to (ctrl, targ): the
// standard stabilizer-formalism rule propagating X from control to
// target and Z from target to control, with the usual phase
// correction for the shared overlap term.
func CX(tab *tableau.Tableau, ctrl, targ int) {
	xc, zc := tab.X[ctrl], tab.Z[ctrl]
	xt, zt := tab.X[targ], tab.Z[targ]
	r := tab.Phase
	for i := range r {
		r[i] ^= xc[i] & zt[i] & (xt[i] ^ zc[i] ^ bits64Ones)
		xt[i] ^= xc[i]
		zc[i] ^= zt[i]
	}
}

// CZ applies the controlled-Z symplectic update to (ctrl, targ):
// equivalent to H(targ); CX(ctrl,targ); H(targ), expressed as a single
// fused sweep. Z on either qubit accumulates the other's X; phase picks
// up the overlap correction.
func CZ(tab *tableau.Tableau, ctrl, targ int) {
	xc, zc := tab.X[ctrl], tab.Z[ctrl]
	xt, zt := tab.X[targ], tab.Z[targ]
	r := tab.Phase
	for i := range r {
		r[i] ^= xc[i] & xt[i] & (zt[i] ^ zc[i])
		zt[i] ^= xc[i]
		zc[i] ^= xt[i]
	}
}

const bits64Ones = ^uint64(0)
