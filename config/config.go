/*
 * cabaliser - Compile-time configuration file parser
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

// Package config parses the compiler's flat configuration file:
//
//	<line> := <key> <whitespace> <value> *(',' <value>) | '#' comment
//
// Grammar and scanner style (skipSpace/getName/getValue, a
// position cursor over one line at a time) are carried over from the
// device-model config loader this compiler grew out of; the pluggable
// per-device-type registry is gone since this schema is fixed rather
// than extensible.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Config is the full set of options a compile run accepts.
type Config struct {
	MaxQubits       int      // hard cap on live + teleported qubits
	Workers         int      // worker pool size for the parallel seam
	ChunkWidth      int      // tableau words per dispatched chunk
	PandoraDSN      string   // postgres connection string, empty if unused
	DebugCategories []string // names passed to debugopt.Enable
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{
		MaxQubits:  1 << 16,
		Workers:    1,
		ChunkWidth: 4096,
	}
}

// Load reads and parses a configuration file, starting from Default().
func Load(name string) (Config, error) {
	cfg := Default()

	file, err := os.Open(name)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		raw, err := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return cfg, err
		}
		if parseErr := parseLine(&cfg, raw, lineNumber); parseErr != nil {
			return cfg, parseErr
		}
		if err != nil && errors.Is(err, io.EOF) {
			break
		}
	}
	return cfg, nil
}

type scanLine struct {
	line string
	pos  int
}

func (l *scanLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *scanLine) isEOL() bool {
	return l.pos >= len(l.line) || l.line[l.pos] == '#'
}

func (l *scanLine) getName() string {
	start := l.pos
	for l.pos < len(l.line) {
		by := l.line[l.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsDigit(rune(by)) || by == '_' {
			l.pos++
			continue
		}
		break
	}
	return l.line[start:l.pos]
}

func (l *scanLine) getValue() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) {
		by := l.line[l.pos]
		if by == ',' || by == '#' || unicode.IsSpace(rune(by)) {
			break
		}
		l.pos++
	}
	return l.line[start:l.pos]
}

func parseLine(cfg *Config, raw string, lineNumber int) error {
	l := &scanLine{line: raw}
	l.skipSpace()
	if l.isEOL() {
		return nil
	}

	key := strings.ToLower(l.getName())
	if key == "" {
		return fmt.Errorf("config: unreadable key at line %d", lineNumber)
	}
	l.skipSpace()

	switch key {
	case "max_qubits":
		v, err := strconv.Atoi(l.getValue())
		if err != nil {
			return fmt.Errorf("config: max_qubits at line %d: %w", lineNumber, err)
		}
		cfg.MaxQubits = v

	case "workers":
		v, err := strconv.Atoi(l.getValue())
		if err != nil {
			return fmt.Errorf("config: workers at line %d: %w", lineNumber, err)
		}
		cfg.Workers = v

	case "chunk_width":
		v, err := strconv.Atoi(l.getValue())
		if err != nil {
			return fmt.Errorf("config: chunk_width at line %d: %w", lineNumber, err)
		}
		cfg.ChunkWidth = v

	case "pandora_dsn":
		cfg.PandoraDSN = l.getValue()

	case "debug":
		for {
			v := l.getName()
			if v != "" {
				cfg.DebugCategories = append(cfg.DebugCategories, strings.ToUpper(v))
			}
			l.skipSpace()
			if l.isEOL() || l.line[l.pos] != ',' {
				break
			}
			l.pos++
			l.skipSpace()
		}

	default:
		return fmt.Errorf("config: unknown key %q at line %d", key, lineNumber)
	}
	return nil
}
