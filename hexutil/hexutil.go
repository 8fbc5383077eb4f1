/*
 * cabaliser - Hex/binary formatting for tableau words and wire bytes
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

// Package hexutil renders tableau words, opcode bytes, and angle tags
// for debug logging and the console's show commands.
package hexutil

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatWord64 writes a 64-bit tableau column word as 16 hex digits.
func FormatWord64(str *strings.Builder, word uint64) {
	shift := 60
	for range 16 {
		str.WriteByte(hexMap[(word>>shift)&0xf])
		shift -= 4
	}
}

// FormatSlice writes each word of a tableau column, space-separated.
func FormatSlice(str *strings.Builder, words []uint64) {
	for _, w := range words {
		FormatWord64(str, w)
		str.WriteByte(' ')
	}
}

// FormatByte writes a single byte (an opcode record's first byte) as
// two hex digits.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// FormatBytes writes a byte slice as hex, optionally space-separated.
func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for _, by := range data {
		FormatByte(str, by)
		if space {
			str.WriteByte(' ')
		}
	}
}

// FormatAngleTag writes a 64-bit angle tag as 16 hex digits prefixed
// with 0x, the form used throughout the console and debug log lines.
func FormatAngleTag(str *strings.Builder, tag uint64) {
	str.WriteString("0x")
	FormatWord64(str, tag)
}

// FormatBit writes a single stabilizer bit as '0' or '1'.
func FormatBit(str *strings.Builder, bit uint8) {
	if bit != 0 {
		str.WriteByte('1')
	} else {
		str.WriteByte('0')
	}
}
