package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	table := [](struct {
		line     string
		expected Instruction
	}){
		{"NOP", Instruction{Op: OP_NOP}},
		{"LOAD 4", Instruction{Op: OP_LOAD, Imm: 4}},
		{"LOAD 4 IN1", Instruction{Op: OP_LOAD, Imm: 4, Dst: REG_IN1}},
		{"LOADIN2 -2 PC", Instruction{Op: OP_LOADIN2, Imm: -2, Dst: REG_PC}},
		{"LOADI 0x10", Instruction{Op: OP_LOADI, Imm: 16}},
		{"LOADI 010", Instruction{Op: OP_LOADI, Imm: 10}},
		{"LOADI -0b101", Instruction{Op: OP_LOADI, Imm: -5}},
		{"STOREIN1 3", Instruction{Op: OP_STOREIN1, Imm: 3}},
		{"MOVE IN2 PC", Instruction{Op: OP_MOVE, Dst: REG_IN2, Src: REG_PC}},
		{"OPLUS 1 IN2", Instruction{Op: OP_OPLUS, Imm: 1, Dst: REG_IN2}},
		{"JUMP -3", Instruction{Op: OP_JUMP, Imm: -3}},
		{"JUMP 2 !=", Instruction{Op: OP_JUMP, Imm: 2, Cond: COND_NE}},
		{"PRINT", Instruction{Op: OP_PRINT}},
		{"PRINT IN1", Instruction{Op: OP_PRINT, Dst: REG_IN1}},
		{"INPUT 17", Instruction{Op: OP_INPUT, Imm: 17, Memory: true}},
		{"TEST", Instruction{Op: OP_TEST, Args: []string{}}},
		{"TEST x y z", Instruction{Op: OP_TEST, Args: []string{"x", "y", "z"}}},
	}

	for _, entry := range table {
		assert := assert.New(t)

		words := strings.Fields(entry.line)
		ins, err := Decode(words)
		assert.NoError(err, entry.line)

		entry.expected.Words = words
		assert.Equal(entry.expected, ins, entry.line)
		assert.Equal(entry.line, ins.String())
	}
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(nil)
	assert.ErrorIs(err, ErrOpcodeUnknown)

	ins, err := Decode([]string{"JUMP"})
	assert.ErrorIs(err, ErrArityMismatch)
	assert.Equal(Instruction{}, ins)

	var ea *ErrArity
	if assert.ErrorAs(err, &ea) {
		assert.Equal(OP_JUMP, ea.Op)
		assert.Equal(0, ea.Got)
		assert.Equal(1, ea.Min)
		assert.Equal(2, ea.Max)
	}

	ins, err = Decode([]string{"ADDI", "3", "IN3"})
	assert.ErrorIs(err, ErrRegisterUnknown)
	assert.Equal(Instruction{}, ins)
	assert.Equal("'IN3' is not a register", err.Error())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP", Instruction{Op: OP_NOP}.String())
	assert.Equal("LOADI 3 ACC", Instruction{Op: OP_LOADI, Imm: 3}.String())
	assert.Equal("STORE 4", Instruction{Op: OP_STORE, Imm: 4}.String())
	assert.Equal("MOVE PC IN1", Instruction{Op: OP_MOVE, Dst: REG_PC, Src: REG_IN1}.String())
	assert.Equal("JUMP 2", Instruction{Op: OP_JUMP, Imm: 2}.String())
	assert.Equal("JUMP 2 <=", Instruction{Op: OP_JUMP, Imm: 2, Cond: COND_LE}.String())
	assert.Equal("PRINT 9", Instruction{Op: OP_PRINT, Imm: 9, Memory: true}.String())
	assert.Equal("INPUT IN2", Instruction{Op: OP_INPUT, Dst: REG_IN2}.String())
	assert.Equal("TEST a", Instruction{Op: OP_TEST, Args: []string{"a"}}.String())
}

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	for text, expected := range map[string]int32{
		"0":           0,
		"+7":          7,
		"-7":          -7,
		"007":         7,
		"0x1f":        31,
		"-0x80000000": -0x80000000,
		"0o17":        15,
		"2147483647":  2147483647,
	} {
		value, err := ParseNumber(text)
		assert.NoError(err, text)
		assert.Equal(expected, value, text)
	}

	for _, text := range []string{"", "-", "x", "0x", "1.5", "2147483648", "1_000", "ACC"} {
		_, err := ParseNumber(text)
		assert.ErrorIs(err, ErrNotANumber, text)
	}
}

func TestParseComparator(t *testing.T) {
	assert := assert.New(t)

	for text, expected := range map[string]Comparator{
		"":   COND_ALWAYS,
		">":  COND_GT,
		"=":  COND_EQ,
		">=": COND_GE,
		"<":  COND_LT,
		"!=": COND_NE,
		"<=": COND_LE,
	} {
		cond, err := ParseComparator(text)
		assert.NoError(err, text)
		assert.Equal(expected, cond, text)
	}

	_, err := ParseComparator("always")
	assert.ErrorIs(err, ErrComparatorInvalid)
	_, err = ParseComparator("==")
	assert.ErrorIs(err, ErrComparatorInvalid)
}

func TestComparator_Holds(t *testing.T) {
	assert := assert.New(t)

	assert.True(COND_ALWAYS.Holds(-1))
	assert.True(COND_GT.Holds(1))
	assert.False(COND_GT.Holds(0))
	assert.True(COND_LE.Holds(0))
	assert.False(COND_NE.Holds(0))
	assert.False(Comparator(42).Holds(0))
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	for _, reg := range []Register{REG_ACC, REG_IN1, REG_IN2, REG_PC} {
		parsed, err := ParseRegister(reg.String())
		assert.NoError(err)
		assert.Equal(reg, parsed)
		assert.True(reg.Valid())
	}

	assert.False(Register(REGISTER_COUNT).Valid())

	_, err := ParseRegister("SP")
	assert.ErrorIs(err, ErrRegisterUnknown)
}
