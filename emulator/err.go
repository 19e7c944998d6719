package emulator

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/reti/cpu"
	"github.com/ezrec/reti/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     int32
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc %d %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// Report writes the diagnostic of a failed run, and returns the process exit
// status to use.
func Report(w io.Writer, err error) (status int) {
	if err == nil {
		return
	}

	status = 1

	words := []string{"?"}
	var ei *cpu.ErrInstruction
	if errors.As(err, &ei) {
		words = ei.Words
	}

	// The innermost cause, without the location wrappers.
	cause := err
	for {
		next := errors.Unwrap(cause)
		if next == nil {
			break
		}
		switch cause.(type) {
		case *cpu.ErrInstruction, *cpu.ErrSyntax, *ErrRuntime:
			cause = next
			continue
		}
		break
	}

	class := cpu.Classify(err)
	name := class.String()
	if class == cpu.ERROR_CLASS_NONE {
		name = "Error"
	}

	var where []string
	var es *cpu.ErrSyntax
	if errors.As(err, &es) {
		where = append(where, f("line %d", es.LineNo))
	}
	var er *ErrRuntime
	if errors.As(err, &er) {
		where = append(where, f("line %d", er.LineNo), f("pc %d", er.Pc))
	}

	text := f("ERROR at `%v` ::", strings.Join(words, " ")) + "\n" +
		fmt.Sprintf("  %v(%q)", name, cause.Error()) + "\n"
	if len(where) != 0 {
		text += "  -- " + strings.Join(where, ", ") + "\n"
	}

	io.WriteString(w, text)

	return
}
