/*
 * cabaliser - Wire opcode constants
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

// Package opcode defines the wire-format constants for instruction
// records: the 3-bit type tag in byte 0 bits 7-5 and the operator
// subfield in bits 4-0, following the flat constant-block style of the
// mainframe opcode map this engine's dispatch layer is modelled on.
package opcode

// Type is the 3-bit tag selecting a record kind.
type Type uint8

const (
	LocalClifford    Type = 0b001
	NonLocalClifford Type = 0b010
	RZ               Type = 0b100
)

const (
	typeShift = 5
	typeMask  = 0b111
	opMask    = 0b11111
)

// Pack combines a type tag and operator subfield into byte 0 of a
// record.
func Pack(t Type, operator uint8) byte {
	return byte(t)<<typeShift | operator&opMask
}

// Unpack splits byte 0 of a record back into its type tag and
// operator subfield.
func Unpack(b byte) (Type, uint8) {
	return Type((b >> typeShift) & typeMask), b & opMask
}

// Two-qubit operator subfields (NonLocalClifford records only).
const (
	CX uint8 = iota
	CZ
)
