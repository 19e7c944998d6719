package cpu

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/reti/io"
)

// Cpu is the state of the ReTI machine: the register bank and memory.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]int32 // Register bank.
	Memory   Memory                // Sparse data memory.

	Console *io.Console // Console used by PRINT, INPUT and TEST.
}

// NewCpu creates a new CPU attached to a console.
func NewCpu(console *io.Console) (cpu *Cpu) {
	if console == nil {
		console = &io.Console{}
	}

	cpu = &Cpu{
		Console: console,
	}

	return
}

// Reset clears the registers and memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Memory.Reset()
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() int32 {
	return cpu.Register[REG_PC]
}

// String returns the register state as a string.
func (cpu *Cpu) String() (text string) {
	for reg, value := range cpu.Registers() {
		if len(text) != 0 {
			text += ", "
		}
		text += fmt.Sprintf("%v = %d", reg, value)
	}

	return
}

// Registers iterates over the register bank.
func (cpu *Cpu) Registers() iter.Seq2[Register, int32] {
	return func(yield func(reg Register, value int32) bool) {
		for reg := range Register(REGISTER_COUNT) {
			if !yield(reg, cpu.Register[reg]) {
				return
			}
		}
	}
}

// ReadRegister reads a register by name.
func (cpu *Cpu) ReadRegister(name string) (value int32, err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	value = cpu.Register[reg]
	return
}

// WriteRegister writes a register by name.
func (cpu *Cpu) WriteRegister(name string, value int32) (err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	cpu.Register[reg] = value
	return
}

// Dispatch decodes and executes a single instruction.
func (cpu *Cpu) Dispatch(words ...string) (explicitPc bool, err error) {
	ins, err := Decode(words)
	if err != nil {
		err = &ErrInstruction{Words: words, Err: err}
		return
	}

	return cpu.Execute(ins)
}

// Execute executes a single decoded instruction. It returns true if the
// instruction set PC itself, and PC must not be advanced.
//
// All reads happen before any write, so a failing instruction leaves the
// machine unchanged.
func (cpu *Cpu) Execute(ins Instruction) (explicitPc bool, err error) {
	defer func() {
		if err != nil {
			explicitPc = false
			err = &ErrInstruction{Words: ins.Words, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc(), ins)
	}

	if !ins.Dst.Valid() {
		err = ErrParseRegister(ins.Dst.String())
		return
	}
	if !ins.Src.Valid() {
		err = ErrParseRegister(ins.Src.String())
		return
	}

	reg := &cpu.Register

	switch ins.Op {
	case OP_NOP:
		// pass
	case OP_LOAD, OP_LOADIN1, OP_LOADIN2:
		var value int32
		value, err = cpu.Memory.Read(cpu.address(ins))
		if err != nil {
			return
		}
		explicitPc = cpu.set(ins.Dst, value)
	case OP_LOADI:
		explicitPc = cpu.set(ins.Dst, ins.Imm)
	case OP_STORE, OP_STOREIN1, OP_STOREIN2:
		cpu.Memory.Write(cpu.address(ins), reg[REG_ACC])
	case OP_MOVE:
		explicitPc = cpu.set(ins.Dst, reg[ins.Src])
	case OP_SUBI, OP_ADDI, OP_OPLUSI, OP_ORI, OP_ANDI:
		explicitPc = cpu.set(ins.Dst, doAlu(ins.Op, reg[ins.Dst], ins.Imm))
	case OP_SUB, OP_ADD, OP_OPLUS, OP_OR, OP_AND:
		var value int32
		value, err = cpu.Memory.Read(cpu.address(ins))
		if err != nil {
			return
		}
		explicitPc = cpu.set(ins.Dst, doAlu(ins.Op, reg[ins.Dst], value))
	case OP_JUMP:
		if ins.Cond.Holds(reg[REG_ACC]) {
			reg[REG_PC] += ins.Imm
			explicitPc = true
		}
	case OP_PRINT:
		if ins.Memory {
			var value int32
			value, err = cpu.Memory.Read(cpu.address(ins))
			if err != nil {
				return
			}
			err = cpu.Console.Println(f("~~ M(%v) = %v", uint32(ins.Imm), value))
		} else {
			err = cpu.Console.Println(f("~~ %v = %v", ins.Dst, reg[ins.Dst]))
		}
	case OP_INPUT:
		var prompt string
		if ins.Memory {
			prompt = f(">> M(%v) = ", uint32(ins.Imm))
		} else {
			prompt = f(">> %v = ", ins.Dst)
		}
		var line string
		line, err = cpu.Console.ReadLine(prompt)
		if err != nil {
			return
		}
		var value int32
		value, err = ParseNumber(line)
		if err != nil {
			return
		}
		if ins.Memory {
			cpu.Memory.Write(cpu.address(ins), value)
		} else {
			// INPUT is a probe; writing PC does not count as a jump.
			cpu.set(ins.Dst, value)
		}
	case OP_TEST:
		err = cpu.Console.Println(f("TEST %v", ins.Args))
	default:
		err = ErrParseOpcode(ins.Op.String())
	}

	return
}

// address returns the effective memory address of an instruction.
func (cpu *Cpu) address(ins Instruction) uint32 {
	switch ins.Op {
	case OP_LOADIN1, OP_STOREIN1:
		return uint32(ins.Imm + cpu.Register[REG_IN1])
	case OP_LOADIN2, OP_STOREIN2:
		return uint32(ins.Imm + cpu.Register[REG_IN2])
	}

	return uint32(ins.Imm)
}

// set writes a register, and returns true if it was PC.
func (cpu *Cpu) set(reg Register, value int32) bool {
	cpu.Register[reg] = value
	return reg == REG_PC
}

// doAlu performs the arithmetic of an immediate or memory compute
// instruction. Overflow wraps around.
func doAlu(op Op, input int32, value int32) (output int32) {
	switch op {
	case OP_SUBI, OP_SUB:
		output = input - value
	case OP_ADDI, OP_ADD:
		output = input + value
	case OP_OPLUSI, OP_OPLUS:
		output = input ^ value
	case OP_ORI, OP_OR:
		output = input | value
	case OP_ANDI, OP_AND:
		output = input & value
	}

	return
}
