// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs ReTI programs: it fetches the instruction at the
// program counter, executes it and its debug instruction, and advances the
// program counter until it leaves the program.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/reti/cpu"
	"github.com/ezrec/reti/internal"
	"github.com/ezrec/reti/io"
)

// Emulator state. CPU + program + operator console.
type Emulator struct {
	Verbose  bool         // If set, traces every step to the console.
	Stepping bool         // If set, waits for an operator line before every step.
	Debug    bool         // If set, executes debug instructions.
	MaxSteps int          // If non-zero, the maximum number of steps to run.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Console io.Console // Operator console.

	Steps int // Steps executed since reset.
	Jumps int // Steps whose primary instruction set PC.

	stepBanner bool
}

// NewEmulator creates a new emulator, with debug instructions enabled.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Debug:   true,
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Console)

	return
}

// Reset the machine state and statistics.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Console.Rewind()
	emu.Steps = 0
	emu.Jumps = 0
	emu.stepBanner = false
}

// Halted returns true once the program counter is outside of the program.
func (emu *Emulator) Halted() bool {
	_, ok := emu.Program.Fetch(emu.Cpu.Pc())
	return !ok
}

// LineNo returns the source line number of the instruction at the program
// counter, or 0 when halted.
func (emu *Emulator) LineNo() int {
	op, ok := emu.Program.Fetch(emu.Cpu.Pc())
	if !ok {
		return 0
	}

	return op.LineNo
}

// Cells iterates over the registers, then the written memory cells in
// insertion order.
func (emu *Emulator) Cells() iter.Seq2[string, int32] {
	registers := internal.IterSeq2MapKey(emu.Cpu.Registers(), cpu.Register.String)
	memory := internal.IterSeq2MapKey(emu.Cpu.Memory.All(), func(addr uint32) string {
		return fmt.Sprintf("M(%d)", addr)
	})

	return internal.IterSeq2Concat(registers, memory)
}

// step waits for the operator before a step.
func (emu *Emulator) step() (err error) {
	if !emu.stepBanner {
		emu.stepBanner = true
		err = emu.Console.Println(f("~~~~~~ Stepping mode enabled! Use ENTER to step through code ~~~~~~"))
		if err != nil {
			return
		}
	}

	_, err = emu.Console.ReadLine("")
	if errors.Is(err, io.ErrConsoleClosed) {
		// Nobody left to wait for.
		emu.Stepping = false
		err = nil
	}

	return
}

// trace prints the state and the instruction about to execute.
func (emu *Emulator) trace(op *cpu.Opcode) (err error) {
	var cells []string
	for name, value := range emu.Cells() {
		cells = append(cells, fmt.Sprintf("%v = %d", name, value))
	}

	text := strings.Repeat("-", 80) + "\n" +
		f("State: %v", strings.Join(cells, " , ")) + "\n" +
		"\n" +
		f("Instruction: %v", op.Instruction) + "\n"

	return emu.Console.Print(text)
}

// Tick performs a single step of the emulator. done is true, and nothing
// is executed, when the program counter is outside of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.Cpu.Pc()
	op, ok := emu.Program.Fetch(pc)
	if !ok {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: op.LineNo, Pc: pc, Err: err}
		}
	}()

	if emu.MaxSteps > 0 && emu.Steps >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	if emu.Stepping {
		err = emu.step()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		err = emu.trace(op)
		if err != nil {
			return
		}
	}

	explicitPc, err := emu.Cpu.Execute(op.Instruction)
	if err != nil {
		return
	}

	// The debug instruction sees, and may change, the state left by the
	// primary instruction. Only the primary decides on the PC advance.
	if emu.Debug && op.Debug != nil {
		err = emu.Console.Print(f("~ Debug(%v):   ", op.Debug))
		if err != nil {
			return
		}
		_, err = emu.Cpu.Execute(*op.Debug)
		if err != nil {
			return
		}
	}

	if explicitPc {
		emu.Jumps++
	} else {
		emu.Cpu.Register[cpu.REG_PC]++
	}
	emu.Steps++

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
