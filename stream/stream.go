/*
 * cabaliser - Packed instruction stream codec
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

// Package stream encodes and decodes the packed instruction records
// the decoder consumes: byte 0 carries the type tag and operator
// subfield (package opcode), followed by big-endian qubit indices and,
// for RZ, a big-endian angle tag. Qubit indices are 4 bytes wide since
// max_qubits is not fixed at 256; the angle tag is an opaque 8-byte
// identifier (see SPEC_FULL.md "Wire record layout").
package stream

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/opcode"
)

// Kind distinguishes the three decoded record shapes.
type Kind int

const (
	KindLocalClifford Kind = iota
	KindNonLocalClifford
	KindRZ
)

// Record is a decoded instruction: exactly one of the Kind-tagged
// field groups below is meaningful, mirroring the tagged union the
// wire format itself encodes.
type Record struct {
	Kind     Kind
	Op       clifford.Op // LocalClifford
	Arg      uint32      // LocalClifford / RZ: input-circuit qubit index
	Operator uint8       // NonLocalClifford: opcode.CX or opcode.CZ
	Ctrl     uint32      // NonLocalClifford
	Targ     uint32      // NonLocalClifford
	AngleTag uint64      // RZ
}

// Builder accumulates packed instruction bytes, one method per record
// kind, in the style of a mnemonic-to-bytes assembler.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// LocalClifford appends a single-qubit Clifford record.
func (b *Builder) LocalClifford(op clifford.Op, arg uint32) *Builder {
	b.buf = append(b.buf, opcode.Pack(opcode.LocalClifford, uint8(op)))
	b.buf = appendUint32(b.buf, arg)
	return b
}

// NonLocalClifford appends a two-qubit gate record.
func (b *Builder) NonLocalClifford(operator uint8, ctrl, targ uint32) *Builder {
	b.buf = append(b.buf, opcode.Pack(opcode.NonLocalClifford, operator))
	b.buf = appendUint32(b.buf, ctrl)
	b.buf = appendUint32(b.buf, targ)
	return b
}

// RZ appends a non-Clifford rotation record.
func (b *Builder) RZ(arg uint32, angleTag uint64) *Builder {
	b.buf = append(b.buf, opcode.Pack(opcode.RZ, 0))
	b.buf = appendUint32(b.buf, arg)
	b.buf = appendUint64(b.buf, angleTag)
	return b
}

// Bytes returns the accumulated packed stream.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// Decode parses every record out of buf. An empty buf is not an error
// (EmptyStream): it yields a nil slice.
func Decode(buf []byte) ([]Record, error) {
	var records []Record
	pos := 0
	for pos < len(buf) {
		rec, next, err := decodeOne(buf, pos)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		pos = next
	}
	return records, nil
}

func decodeOne(buf []byte, pos int) (Record, int, error) {
	t, operator := opcode.Unpack(buf[pos])
	pos++

	switch t {
	case opcode.LocalClifford:
		arg, pos, err := readUint32(buf, pos)
		if err != nil {
			return Record{}, 0, err
		}
		return Record{Kind: KindLocalClifford, Op: clifford.Op(operator), Arg: arg}, pos, nil

	case opcode.NonLocalClifford:
		ctrl, pos, err := readUint32(buf, pos)
		if err != nil {
			return Record{}, 0, err
		}
		targ, pos, err := readUint32(buf, pos)
		if err != nil {
			return Record{}, 0, err
		}
		return Record{Kind: KindNonLocalClifford, Operator: operator, Ctrl: ctrl, Targ: targ}, pos, nil

	case opcode.RZ:
		arg, pos, err := readUint32(buf, pos)
		if err != nil {
			return Record{}, 0, err
		}
		tag, pos, err := readUint64(buf, pos)
		if err != nil {
			return Record{}, 0, err
		}
		return Record{Kind: KindRZ, Arg: arg, AngleTag: tag}, pos, nil

	default:
		return Record{}, 0, &InvalidOpcodeError{Byte: buf[pos-1]}
	}
}

func readUint32(buf []byte, pos int) (uint32, int, error) {
	if pos+4 > len(buf) {
		return 0, 0, &TruncatedRecordError{}
	}
	return binary.BigEndian.Uint32(buf[pos : pos+4]), pos + 4, nil
}

func readUint64(buf []byte, pos int) (uint64, int, error) {
	if pos+8 > len(buf) {
		return 0, 0, &TruncatedRecordError{}
	}
	return binary.BigEndian.Uint64(buf[pos : pos+8]), pos + 8, nil
}

// InvalidOpcodeError reports an unrecognized type tag.
type InvalidOpcodeError struct {
	Byte byte
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("stream: invalid opcode byte 0x%02x", e.Byte)
}

// TruncatedRecordError reports a record cut off mid-field.
type TruncatedRecordError struct{}

func (*TruncatedRecordError) Error() string {
	return "stream: truncated record"
}

// Disassemble renders decoded records as a human-readable listing, one
// instruction per line, for console and diagnostic use.
func Disassemble(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		switch r.Kind {
		case KindLocalClifford:
			b.WriteString(r.Op.String())
			b.WriteByte(' ')
			b.WriteString(strconv.FormatUint(uint64(r.Arg), 10))
		case KindNonLocalClifford:
			if r.Operator == opcode.CX {
				b.WriteString("CX ")
			} else {
				b.WriteString("CZ ")
			}
			b.WriteString(strconv.FormatUint(uint64(r.Ctrl), 10))
			b.WriteByte(' ')
			b.WriteString(strconv.FormatUint(uint64(r.Targ), 10))
		case KindRZ:
			b.WriteString("RZ ")
			b.WriteString(strconv.FormatUint(uint64(r.Arg), 10))
			b.WriteByte(' ')
			b.WriteString(strconv.FormatUint(r.AngleTag, 16))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
