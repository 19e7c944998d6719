package cpu

import (
	"iter"
)

// Opcode is a source line of assembled code, with its optional debug
// instruction.
type Opcode struct {
	LineNo      int          // Source line number, from 1.
	Instruction Instruction  // Primary instruction.
	Debug       *Instruction // Debug instruction, or nil.
}

// Program is an ordered list of opcodes. The program counter indexes it.
type Program struct {
	Opcodes []Opcode
}

// Len returns the number of addressable opcodes.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Opcodes)
}

// Fetch returns the opcode at a program counter, or false if the program
// counter is outside of the program.
func (prog *Program) Fetch(pc int32) (op *Opcode, ok bool) {
	if pc < 0 || int(pc) >= prog.Len() {
		return
	}

	return &prog.Opcodes[pc], true
}

// Instructions iterates over the primary instructions by address.
func (prog *Program) Instructions() iter.Seq2[int32, Instruction] {
	return func(yield func(pc int32, ins Instruction) bool) {
		for n := range prog.Len() {
			if !yield(int32(n), prog.Opcodes[n].Instruction) {
				return
			}
		}
	}
}
