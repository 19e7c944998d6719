package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/reti/cpu"
)

func TestReport(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	load(t, emu, []string{
		"LOADI 1",
		"",
		"ADD 5 IN2",
	})

	err := emu.Run()
	assert.Error(err)

	out := &bytes.Buffer{}
	status := Report(out, err)
	assert.Equal(1, status)
	assert.Equal("ERROR at `ADD 5 IN2` ::\n"+
		"  UninitializedMemory(\"M(5) read before written\")\n"+
		"  -- line 3, pc 1\n", out.String())
}

func TestReportSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	_, err := asm.Parse(strings.NewReader("NOP\nJUMP 1 <>"))

	out := &bytes.Buffer{}
	assert.Equal(1, Report(out, err))
	assert.Equal("ERROR at `JUMP 1 <>` ::\n"+
		"  InvalidComparator(\"'<>' is not a comparator\")\n"+
		"  -- line 2\n", out.String())
}

func TestReportOther(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.Equal(0, Report(out, nil))
	assert.Empty(out.String())

	assert.Equal(1, Report(out, &ErrRuntime{LineNo: 4, Pc: 2, Err: ErrStepLimit}))
	assert.Equal("ERROR at `?` ::\n"+
		"  Error(\"step limit reached\")\n"+
		"  -- line 4, pc 2\n", out.String())

	out.Reset()
	assert.Equal(1, Report(out, errors.New("boom")))
	assert.Equal("ERROR at `?` ::\n  Error(\"boom\")\n", out.String())
}

func TestErrRuntime(t *testing.T) {
	assert := assert.New(t)

	err := &ErrRuntime{LineNo: 3, Pc: 1, Err: cpu.ErrUninitialized(5)}
	assert.Equal("line 3 pc 1 M(5) read before written", err.Error())
	assert.ErrorIs(err, cpu.ErrMemoryUninitialized)
}
