package emulator

import (
	"fmt"
	"io"
	"strings"
)

// WriteState writes the registers and the memory map.
func (emu *Emulator) WriteState(w io.Writer) (err error) {
	var text strings.Builder

	text.WriteString(f("Registers:") + "\n")
	for reg, value := range emu.Cpu.Registers() {
		fmt.Fprintf(&text, "    %-3v = %d\n", reg, value)
	}

	text.WriteString(f("Memory:") + "\n")
	fmt.Fprintf(&text, "    %-10s | %v\n", f("Address"), f("Value"))
	for addr, value := range emu.Cpu.Memory.All() {
		fmt.Fprintf(&text, "    %10d | %10d\n", addr, value)
	}

	_, err = io.WriteString(w, text.String())
	return
}

// WriteReport writes the end of run report: the final state and the run
// statistics.
func (emu *Emulator) WriteReport(w io.Writer) (err error) {
	banner := strings.Repeat("~", 76)

	_, err = io.WriteString(w, "\n"+
		f("~~~~~~ Reached end of code or jumped to invalid address. Final state: ~~~~~~")+"\n\n")
	if err != nil {
		return
	}

	err = emu.WriteState(w)
	if err != nil {
		return
	}

	var text strings.Builder
	text.WriteString("\n" + f("Stats:") + "\n")
	fmt.Fprintf(&text, "    %-13v: %d\n", f("Total steps"), emu.Steps)
	fmt.Fprintf(&text, "    %-13v: %d\n", f("Jumps taken"), emu.Jumps)
	fmt.Fprintf(&text, "    %-13v: %d\n", f("Memory usage"), emu.Cpu.Memory.Len())
	text.WriteString("\n" + banner + "\n")

	_, err = io.WriteString(w, text.String())
	return
}
