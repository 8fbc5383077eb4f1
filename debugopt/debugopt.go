/*
 * cabaliser - Debug category bitmask and gated log output
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

// Package debugopt is the named-category debug bitmask shared by the
// tableau, queue, decoder, normal-form, and pandora packages, and the
// gated slog output those categories drive. Modelled on the CPU core's
// debugMsk/debugOption pattern, generalized to a compiler pipeline's
// categories instead of a CPU's.
package debugopt

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	Tableau = 1 << iota
	Queue
	Decode
	NormalForm
	Pandora
)

var names = map[string]int{
	"TABLEAU":    Tableau,
	"QUEUE":      Queue,
	"DECODE":     Decode,
	"NORMALFORM": NormalForm,
	"PANDORA":    Pandora,
}

var mask int

// Enable turns on a named category ("TABLEAU", "QUEUE", "DECODE",
// "NORMALFORM", "PANDORA"). Unknown names are reported rather than
// silently ignored.
func Enable(name string) error {
	bit, ok := names[name]
	if !ok {
		return errors.New("debugopt: unknown category " + name)
	}
	mask |= bit
	return nil
}

// Enabled reports whether category is currently turned on.
func Enabled(category int) bool {
	return mask&category != 0
}

// Logf emits a debug line through logger at Debug level only when
// category is enabled, so disabled categories cost a single branch
// per call site instead of a formatted string allocation.
func Logf(logger *slog.Logger, category int, format string, a ...any) {
	if !Enabled(category) {
		return
	}
	logger.Debug(fmt.Sprintf(format, a...))
}
