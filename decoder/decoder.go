/*
 * cabaliser - Instruction decoder
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

// Package decoder is the flat, branch-predictable dispatch loop that
// walks a decoded instruction stream and drives a widget: local
// Cliffords right-compose into the queue, two-qubit gates flush both
// operands then apply the symplectic update, and RZ instructions
// perform gate-teleportation bookkeeping. Modelled on the fetch/decode
// dispatch loop of the teaching engine's CPU core.
package decoder

import (
	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/opcode"
	"github.com/ahtoms/cabaliser/stream"
	"github.com/ahtoms/cabaliser/widget"
)

// Run dispatches every record in order against w. Unknown opcodes or
// out-of-range qubit indices are fatal: the decoder does not skip
// silently. Tableau state from a failed run is not meant to be reused.
func Run(w *widget.Widget, records []stream.Record) error {
	for _, rec := range records {
		if err := dispatch(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(w *widget.Widget, rec stream.Record) error {
	switch rec.Kind {
	case stream.KindLocalClifford:
		return dispatchLocalClifford(w, rec)
	case stream.KindNonLocalClifford:
		return dispatchNonLocalClifford(w, rec)
	case stream.KindRZ:
		return dispatchRZ(w, rec)
	default:
		return &InvalidOpcodeError{}
	}
}

func dispatchLocalClifford(w *widget.Widget, rec stream.Record) error {
	if err := checkQubit(w, rec.Arg); err != nil {
		return err
	}
	if int(rec.Op) >= clifford.NumOps {
		return &InvalidOpcodeError{}
	}
	t := w.QMap[rec.Arg]
	w.Que.PushRight(t, rec.Op)
	return nil
}

func dispatchNonLocalClifford(w *widget.Widget, rec stream.Record) error {
	if err := checkQubit(w, rec.Ctrl); err != nil {
		return err
	}
	if err := checkQubit(w, rec.Targ); err != nil {
		return err
	}

	c := w.QMap[rec.Ctrl]
	r := w.QMap[rec.Targ]
	w.Que.Flush(w.Tab, c)
	w.Que.Flush(w.Tab, r)

	switch rec.Operator {
	case opcode.CX:
		clifford.CX(w.Tab, c, r)
	case opcode.CZ:
		clifford.CZ(w.Tab, c, r)
	default:
		return &InvalidOpcodeError{}
	}
	return nil
}

func dispatchRZ(w *widget.Widget, rec stream.Record) error {
	if err := checkQubit(w, rec.Arg); err != nil {
		return err
	}
	return w.Teleport(rec.Arg, rec.AngleTag)
}

func checkQubit(w *widget.Widget, q uint32) error {
	if int(q) >= w.MaxQubits {
		return &InvalidQubitIndexError{Index: q}
	}
	return nil
}
