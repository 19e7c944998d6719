package cpu

import (
	"errors"
	"strings"

	"github.com/ezrec/reti/translate"
)

var f = translate.From

var (
	// Instruction errors
	ErrOpcodeUnknown       = errors.New(f("unknown opcode"))
	ErrArityMismatch       = errors.New(f("wrong number of arguments"))
	ErrNotANumber          = errors.New(f("not a number"))
	ErrRegisterUnknown     = errors.New(f("unknown register"))
	ErrMemoryUninitialized = errors.New(f("uninitialized memory"))
	ErrComparatorInvalid   = errors.New(f("invalid comparator"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

// ErrorClass is the taxonomy of instruction failures.
type ErrorClass int

//go:generate go tool stringer -linecomment -type=ErrorClass
const (
	ERROR_CLASS_NONE                 = ErrorClass(0) // None
	ERROR_CLASS_UNKNOWN_OPCODE       = ErrorClass(1) // UnknownOpcode
	ERROR_CLASS_ARITY_MISMATCH       = ErrorClass(2) // ArityMismatch
	ERROR_CLASS_NOT_A_NUMBER         = ErrorClass(3) // NotANumber
	ERROR_CLASS_UNKNOWN_REGISTER     = ErrorClass(4) // UnknownRegister
	ERROR_CLASS_UNINITIALIZED_MEMORY = ErrorClass(5) // UninitializedMemory
	ERROR_CLASS_INVALID_COMPARATOR   = ErrorClass(6) // InvalidComparator
)

// Classify returns the taxonomy class of an error chain.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ERROR_CLASS_NONE
	case errors.Is(err, ErrOpcodeUnknown):
		return ERROR_CLASS_UNKNOWN_OPCODE
	case errors.Is(err, ErrArityMismatch):
		return ERROR_CLASS_ARITY_MISMATCH
	case errors.Is(err, ErrNotANumber):
		return ERROR_CLASS_NOT_A_NUMBER
	case errors.Is(err, ErrRegisterUnknown):
		return ERROR_CLASS_UNKNOWN_REGISTER
	case errors.Is(err, ErrMemoryUninitialized):
		return ERROR_CLASS_UNINITIALIZED_MEMORY
	case errors.Is(err, ErrComparatorInvalid):
		return ERROR_CLASS_INVALID_COMPARATOR
	}

	return ERROR_CLASS_NONE
}

type ErrParseOpcode string

func (err ErrParseOpcode) Error() string {
	return f("'%v' is not an opcode", string(err))
}

func (err ErrParseOpcode) Unwrap() error {
	return ErrOpcodeUnknown
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrNotANumber
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Unwrap() error {
	return ErrRegisterUnknown
}

type ErrParseComparator string

func (err ErrParseComparator) Error() string {
	return f("'%v' is not a comparator", string(err))
}

func (err ErrParseComparator) Unwrap() error {
	return ErrComparatorInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrUninitialized is a read of a memory address that was never written.
type ErrUninitialized uint32

func (err ErrUninitialized) Error() string {
	return f("M(%v) read before written", uint32(err))
}

func (err ErrUninitialized) Unwrap() error {
	return ErrMemoryUninitialized
}

// ErrArity reports an argument count outside of an opcode's bounds.
type ErrArity struct {
	Op  Op
	Got int
	Min int
	Max int // -1 for unbounded
}

func (err *ErrArity) Error() string {
	if err.Min == err.Max {
		return f("%v takes %v arguments, got %v", err.Op, err.Min, err.Got)
	}
	return f("%v takes %v to %v arguments, got %v", err.Op, err.Min, err.Max, err.Got)
}

func (err *ErrArity) Unwrap() error {
	return ErrArityMismatch
}

// ErrInstruction identifies the instruction that failed.
type ErrInstruction struct {
	Words []string
	Err   error
}

func (err *ErrInstruction) Error() string {
	return f("'%v' %v", strings.Join(err.Words, " "), err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
