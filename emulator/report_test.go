package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteState(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, []string{
		"LOADI 7",
		"STORE 3",
		"LOADI -2 IN1",
		"STORE 1",
	}, t)

	out := &bytes.Buffer{}
	assert.NoError(emu.WriteState(out))

	assert.Equal(strings.Join([]string{
		"Registers:",
		"    ACC = 7",
		"    IN1 = -2",
		"    IN2 = 0",
		"    PC  = 4",
		"Memory:",
		"    Address    | Value",
		"             3 |          7",
		"             1 |          7",
		"",
	}, "\n"), out.String())
}

func TestWriteReport(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, []string{
		"LOADI 1",
		"JUMP 2",
		"NOP",
		"STORE 0",
	}, t)

	out := &bytes.Buffer{}
	assert.NoError(emu.WriteReport(out))

	text := out.String()
	assert.True(strings.HasPrefix(text, "\n~~~~~~ Reached end of code or jumped to invalid address. Final state: ~~~~~~\n\nRegisters:\n"))
	assert.Contains(text, "    Total steps  : 3\n")
	assert.Contains(text, "    Jumps taken  : 1\n")
	assert.Contains(text, "    Memory usage : 1\n")
	assert.True(strings.HasSuffix(text, "\n"+strings.Repeat("~", 76)+"\n"))
}
