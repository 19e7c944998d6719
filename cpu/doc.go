// Package cpu implements the machine state, instruction set and assembler for
// the ReTI register machine.
//
// The machine consists of four signed 32-bit registers (ACC, IN1, IN2 and PC)
// and a sparse, word-addressed memory. Instructions are decoded from their
// textual form into an Instruction with all optional arguments resolved, and
// executed against the Cpu one at a time.
//
// The assembler turns ReTI source text into a Program, stripping comments,
// extracting debug annotations, and evaluating .equ constants and $(...)
// compile-time expressions.
package cpu
