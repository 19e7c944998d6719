// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Comment markers. A line is cut at the first of either.
var CommentDelimiters = []string{"#", "//"}

// DebugDelimiter introduces the debug instruction of a line. The debug
// instruction is the text after its last occurrence.
const DebugDelimiter = ";"

// Assembler is a single pass assembler for ReTI source text.
//
// Lines without an instruction after comment removal are dropped, and do
// not occupy an address.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// SplitLine splits a source line into its primary and debug instruction
// text, both trimmed.
func SplitLine(text string) (primary string, debug string) {
	parts := strings.Split(text, DebugDelimiter)
	if len(parts) > 1 {
		debug = strings.TrimSpace(parts[len(parts)-1])
	}

	primary = parts[0]
	for _, delim := range CommentDelimiters {
		primary, _, _ = strings.Cut(primary, delim)
	}
	primary = strings.TrimSpace(primary)

	return
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{Name: "equ"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 int32
		value32, err = ParseNumber(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}

// parseLine expands $(...) expressions and equates of a line, and handles
// .equ directives.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = make(map[string]string)
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		primary, debug := SplitLine(line)

		var words []string
		words, err = asm.parseLine(primary)
		if err != nil {
			return
		}

		// Directive or comment only; the debug instruction goes with it.
		if len(words) == 0 {
			continue
		}

		opcode := Opcode{LineNo: lineno}
		opcode.Instruction, err = Decode(words)
		if err != nil {
			err = &ErrInstruction{Words: words, Err: err}
			return
		}

		words, err = asm.parseLine(debug)
		if err != nil {
			return
		}
		if len(words) != 0 {
			var dbg Instruction
			dbg, err = Decode(words)
			if err != nil {
				err = &ErrInstruction{Words: words, Err: err}
				return
			}
			opcode.Debug = &dbg
		}

		asm.Opcode = append(asm.Opcode, opcode)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
