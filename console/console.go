/*
 * cabaliser - Interactive console
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

// Package console is a small `liner`-backed interactive shell over a
// widget: show tableau, show queue, show stats, flush, quit. Modelled
// on the emulator's own console reader — a liner prompt loop dispatching
// through a minimum-prefix command table — trimmed to the handful of
// commands a compile inspector needs instead of a full device-control
// language.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/ahtoms/cabaliser/hexutil"
	"github.com/ahtoms/cabaliser/widget"
)

type cmd struct {
	name    string
	min     int
	process func(*cmdLine, *widget.Widget, io.Writer) (bool, error)
}

var cmdList = []cmd{
	{name: "show", min: 1, process: show},
	{name: "flush", min: 1, process: flush},
	{name: "quit", min: 1, process: quit},
}

type cmdLine struct {
	line string
	pos  int
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && l.line[l.pos] == ' ' {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && l.line[l.pos] != ' ' {
		l.pos++
	}
	return l.line[start:l.pos]
}

func matchCommand(c cmd, word string) bool {
	if word == "" || len(word) > len(c.name) {
		return false
	}
	if c.name[:len(word)] != word {
		return false
	}
	return len(word) >= c.min
}

func matchList(word string) []cmd {
	var matches []cmd
	for _, c := range cmdList {
		if matchCommand(c, word) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Run starts the prompt loop against w, writing output to out, until
// quit or end-of-input.
func Run(w *widget.Widget, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		names := make([]string, 0, len(cmdList))
		for _, c := range matchList(partial) {
			names = append(names, c.name)
		}
		return names
	})

	for {
		input, err := line.Prompt("cabaliser> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line.AppendHistory(input)

		cl := &cmdLine{line: input}
		word := cl.getWord()
		matches := matchList(word)
		switch {
		case len(matches) == 0:
			fmt.Fprintln(out, "Error: command not found:", word)
			continue
		case len(matches) > 1:
			fmt.Fprintln(out, "Error: ambiguous command:", word)
			continue
		}

		quit, err := matches[0].process(cl, w, out)
		if err != nil {
			fmt.Fprintln(out, "Error:", err.Error())
		}
		if quit {
			return nil
		}
	}
}

func show(cl *cmdLine, w *widget.Widget, out io.Writer) (bool, error) {
	switch strings.ToLower(cl.getWord()) {
	case "tableau":
		showTableau(w, out)
	case "queue":
		showQueue(w, out)
	case "stats":
		showStats(w, out)
	default:
		return false, errors.New("show: unknown target")
	}
	return false, nil
}

func showTableau(w *widget.Widget, out io.Writer) {
	var sb strings.Builder
	for i := 0; i < w.Tab.N; i++ {
		sb.WriteString("q")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" X=")
		hexutil.FormatSlice(&sb, w.Tab.X[i])
		sb.WriteString("Z=")
		hexutil.FormatSlice(&sb, w.Tab.Z[i])
		sb.WriteByte('\n')
	}
	fmt.Fprint(out, sb.String())
}

func showQueue(w *widget.Widget, out io.Writer) {
	for i := 0; i < w.Tab.N; i++ {
		fmt.Fprintf(out, "q%d pending=%s\n", i, w.Que.Pending(i))
	}
}

func showStats(w *widget.Widget, out io.Writer) {
	fmt.Fprintf(out, "n_qubits=%d max_qubits=%d\n", w.NQubits, w.MaxQubits)
}

func flush(_ *cmdLine, w *widget.Widget, out io.Writer) (bool, error) {
	w.Que.FlushAll(w.Tab)
	fmt.Fprintln(out, "queue flushed")
	return false, nil
}

func quit(_ *cmdLine, _ *widget.Widget, out io.Writer) (bool, error) {
	fmt.Fprintln(out, "bye")
	return true, nil
}
