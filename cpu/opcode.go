package cpu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Register is one of the ReTI registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_ACC = Register(0) // ACC
	REG_IN1 = Register(1) // IN1
	REG_IN2 = Register(2) // IN2
	REG_PC  = Register(3) // PC
)

// REGISTER_COUNT is the size of the register bank.
const REGISTER_COUNT = 4

// Valid returns true if the register is part of the register bank.
func (reg Register) Valid() bool {
	return reg >= REG_ACC && reg < REGISTER_COUNT
}

// Op is an instruction opcode.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP      = Op(0)  // NOP
	OP_LOAD     = Op(1)  // LOAD
	OP_LOADIN1  = Op(2)  // LOADIN1
	OP_LOADIN2  = Op(3)  // LOADIN2
	OP_LOADI    = Op(4)  // LOADI
	OP_STORE    = Op(5)  // STORE
	OP_STOREIN1 = Op(6)  // STOREIN1
	OP_STOREIN2 = Op(7)  // STOREIN2
	OP_MOVE     = Op(8)  // MOVE
	OP_SUBI     = Op(9)  // SUBI
	OP_ADDI     = Op(10) // ADDI
	OP_OPLUSI   = Op(11) // OPLUSI
	OP_ORI      = Op(12) // ORI
	OP_ANDI     = Op(13) // ANDI
	OP_SUB      = Op(14) // SUB
	OP_ADD      = Op(15) // ADD
	OP_OPLUS    = Op(16) // OPLUS
	OP_OR       = Op(17) // OR
	OP_AND      = Op(18) // AND
	OP_JUMP     = Op(19) // JUMP
	OP_PRINT    = Op(20) // PRINT
	OP_INPUT    = Op(21) // INPUT
	OP_TEST     = Op(22) // TEST
)

// OP_COUNT is the number of opcodes.
const OP_COUNT = 23

// Comparator is a JUMP condition, tested against ACC.
type Comparator int

//go:generate go tool stringer -linecomment -type=Comparator
const (
	COND_ALWAYS = Comparator(0) // always
	COND_GT     = Comparator(1) // >
	COND_EQ     = Comparator(2) // =
	COND_GE     = Comparator(3) // >=
	COND_LT     = Comparator(4) // <
	COND_NE     = Comparator(5) // !=
	COND_LE     = Comparator(6) // <=
)

// Holds returns true if the comparison of acc against zero holds.
func (cond Comparator) Holds(acc int32) bool {
	switch cond {
	case COND_ALWAYS:
		return true
	case COND_GT:
		return acc > 0
	case COND_EQ:
		return acc == 0
	case COND_GE:
		return acc >= 0
	case COND_LT:
		return acc < 0
	case COND_NE:
		return acc != 0
	case COND_LE:
		return acc <= 0
	}

	return false
}

// opMap maps opcode mnemonics to opcodes.
var opMap = map[string]Op{}

// registerMap maps register names to registers.
var registerMap = map[string]Register{}

// comparatorMap maps jump condition tokens to comparators.
var comparatorMap = map[string]Comparator{
	"": COND_ALWAYS,
}

func init() {
	for op := range Op(OP_COUNT) {
		opMap[op.String()] = op
	}
	for reg := range Register(REGISTER_COUNT) {
		registerMap[reg.String()] = reg
	}
	for cond := COND_GT; cond <= COND_LE; cond++ {
		comparatorMap[cond.String()] = cond
	}
}

// arity is the allowed argument count of an opcode; max of -1 is unbounded.
type arity struct {
	min int
	max int
}

var opArity = [OP_COUNT]arity{
	OP_NOP:      {0, 0},
	OP_LOAD:     {1, 2},
	OP_LOADIN1:  {1, 2},
	OP_LOADIN2:  {1, 2},
	OP_LOADI:    {1, 2},
	OP_STORE:    {1, 1},
	OP_STOREIN1: {1, 1},
	OP_STOREIN2: {1, 1},
	OP_MOVE:     {2, 2},
	OP_SUBI:     {1, 2},
	OP_ADDI:     {1, 2},
	OP_OPLUSI:   {1, 2},
	OP_ORI:      {1, 2},
	OP_ANDI:     {1, 2},
	OP_SUB:      {1, 2},
	OP_ADD:      {1, 2},
	OP_OPLUS:    {1, 2},
	OP_OR:       {1, 2},
	OP_AND:      {1, 2},
	OP_JUMP:     {1, 2},
	OP_PRINT:    {0, 1},
	OP_INPUT:    {0, 1},
	OP_TEST:     {0, -1},
}

// Instruction is a decoded instruction with every optional argument resolved.
type Instruction struct {
	Op     Op         // Opcode.
	Imm    int32      // Immediate value, address or jump offset.
	Dst    Register   // Destination register; ACC when omitted.
	Src    Register   // Source register of MOVE.
	Cond   Comparator // JUMP condition; COND_ALWAYS when omitted.
	Memory bool       // PRINT/INPUT target the memory cell Imm instead of Dst.
	Args   []string   // Free-form arguments of TEST.
	Words  []string   // Source words.
}

// String returns the source text of the instruction.
func (ins Instruction) String() string {
	if len(ins.Words) != 0 {
		return strings.Join(ins.Words, " ")
	}

	switch ins.Op {
	case OP_NOP:
		return ins.Op.String()
	case OP_STORE, OP_STOREIN1, OP_STOREIN2:
		return fmt.Sprintf("%v %d", ins.Op, ins.Imm)
	case OP_MOVE:
		return fmt.Sprintf("%v %v %v", ins.Op, ins.Dst, ins.Src)
	case OP_JUMP:
		if ins.Cond == COND_ALWAYS {
			return fmt.Sprintf("%v %d", ins.Op, ins.Imm)
		}
		return fmt.Sprintf("%v %d %v", ins.Op, ins.Imm, ins.Cond)
	case OP_PRINT, OP_INPUT:
		if ins.Memory {
			return fmt.Sprintf("%v %d", ins.Op, ins.Imm)
		}
		return fmt.Sprintf("%v %v", ins.Op, ins.Dst)
	case OP_TEST:
		return strings.Join(append([]string{ins.Op.String()}, ins.Args...), " ")
	}

	return fmt.Sprintf("%v %d %v", ins.Op, ins.Imm, ins.Dst)
}

// ParseNumber parses a signed 32-bit literal. Literals are decimal unless
// prefixed by 0x, 0b or 0o.
func ParseNumber(word string) (value int32, err error) {
	digits := strings.TrimLeft(word, "+-")
	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'b', 'B', 'o', 'O':
			base = 0
		}
	}

	v64, err := strconv.ParseInt(word, base, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int32(v64)
	return
}

// ParseRegister parses a register name.
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := registerMap[word]
	if !ok {
		err = ErrParseRegister(word)
	}
	return
}

// ParseComparator parses a JUMP condition. The empty string is COND_ALWAYS.
func ParseComparator(word string) (cond Comparator, err error) {
	cond, ok := comparatorMap[word]
	if !ok {
		err = ErrParseComparator(word)
	}
	return
}

// isDecimal returns true if word is a non-empty run of decimal digits.
func isDecimal(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Decode decodes the words of an instruction: the opcode followed by its
// arguments. Omitted trailing arguments take their defaults.
func Decode(words []string) (ins Instruction, err error) {
	defer func() {
		if err != nil {
			ins = Instruction{}
		}
	}()

	if len(words) == 0 {
		err = ErrParseOpcode("")
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrParseOpcode(words[0])
		return
	}

	args := words[1:]
	bounds := opArity[op]
	if len(args) < bounds.min || (bounds.max >= 0 && len(args) > bounds.max) {
		err = &ErrArity{Op: op, Got: len(args), Min: bounds.min, Max: bounds.max}
		return
	}

	ins = Instruction{
		Op:    op,
		Dst:   REG_ACC,
		Cond:  COND_ALWAYS,
		Words: slices.Clone(words),
	}

	switch op {
	case OP_NOP:
		// pass
	case OP_LOAD, OP_LOADIN1, OP_LOADIN2, OP_LOADI,
		OP_SUBI, OP_ADDI, OP_OPLUSI, OP_ORI, OP_ANDI,
		OP_SUB, OP_ADD, OP_OPLUS, OP_OR, OP_AND:
		ins.Imm, err = ParseNumber(args[0])
		if err != nil {
			return
		}
		if len(args) > 1 {
			ins.Dst, err = ParseRegister(args[1])
		}
	case OP_STORE, OP_STOREIN1, OP_STOREIN2:
		ins.Imm, err = ParseNumber(args[0])
	case OP_MOVE:
		ins.Dst, err = ParseRegister(args[0])
		if err != nil {
			return
		}
		ins.Src, err = ParseRegister(args[1])
	case OP_JUMP:
		ins.Imm, err = ParseNumber(args[0])
		if err != nil {
			return
		}
		if len(args) > 1 {
			ins.Cond, err = ParseComparator(args[1])
		}
	case OP_PRINT, OP_INPUT:
		if len(args) == 0 {
			break
		}
		if isDecimal(args[0]) {
			ins.Memory = true
			ins.Imm, err = ParseNumber(args[0])
		} else {
			ins.Dst, err = ParseRegister(args[0])
		}
	case OP_TEST:
		ins.Args = slices.Clone(args)
	}

	return
}
