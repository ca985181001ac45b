package vm

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrorKind enumerates the fourteen execution error kinds of spec.md §7.
// It exists for tests and callers that want to switch on the failure
// category without string-matching the message.
type ErrorKind int

const (
	ErrStackUnderflow ErrorKind = iota
	ErrStackAddrOverflow
	ErrSegmentOverflow
	ErrHeapAddrOverflow
	ErrPointerSegment
	ErrArithOverflow
	ErrArithUnderflow
	ErrCtrlFlow
	ErrMultiDef
	ErrArgCount
	ErrReadIO
	ErrReadNumFormat
	ErrReadNumOverflow
	ErrProgrammer
)

// ExecError is the single error type that propagates, unwrapped, from an
// opcode handler up through the dispatch loop (spec.md §7's "no error is
// caught locally" propagation policy). It carries enough to reproduce the
// original's exact `Error: <message>` wire format.
type ExecError struct {
	Kind    ErrorKind
	Message string
	Pos     Pos
}

func (e *ExecError) Error() string {
	if e.Pos.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Pos)
}

// newExecErr builds an *ExecError; kept small so every call site below
// reads like the macro it's grounded on in original_source/src/exec.c.
func newExecErr(kind ErrorKind, pos Pos, format string, args ...any) *ExecError {
	return &ExecError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func errStackUnderflow(pos Pos) *ExecError {
	return newExecErr(ErrStackUnderflow, pos, "stack underflow")
}

func errPointerSegment(addr int, pos Pos) *ExecError {
	return newExecErr(ErrPointerSegment, pos,
		"can't access pointer segment at `%d` (max. index is 1)", addr)
}

func errHeapAddrOverflow(inst Instruction, addr int) *ExecError {
	return newExecErr(ErrHeapAddrOverflow, inst.Pos,
		"address overflow: `%s` tries to access heap at %d", inst, addr)
}

func errStackAddrOverflow(inst Instruction, addr, maxAddr int) *ExecError {
	return newExecErr(ErrStackAddrOverflow, inst.Pos,
		"stack address overflow: `%s` tries to access stack at %d (limit is at %d)",
		inst, addr, maxAddr)
}

func errSegmentOverflow(inst Instruction, segSize int) *ExecError {
	return newExecErr(ErrSegmentOverflow, inst.Pos,
		"address overflow in `%s`: segment has %d entries", inst, segSize)
}

func errAddOverflow(x, y Word, sum Wordbuf, pos Pos) *ExecError {
	return newExecErr(ErrArithOverflow, pos,
		"addition overflow: %d + %d = %d > %d", x, y, sum, Bit16Limit)
}

func errSubUnderflow(x, y Word, pos Pos) *ExecError {
	diff := int(x) - int(y)
	return newExecErr(ErrArithUnderflow, pos,
		"subtraction underflow: %d - %d = %d < 0", x, y, diff)
}

func errCtrlFlow(ident string, pos Pos) *ExecError {
	if ident == "Sys.init" {
		return newExecErr(ErrCtrlFlow, pos, "can't jump to function `Sys.init`; Write it!")
	}
	return newExecErr(ErrCtrlFlow, pos, "can't jump to %s", ident)
}

func errMultiDef(kind SymKind, ident string, pos Pos) *ExecError {
	return newExecErr(ErrMultiDef, pos,
		"can't jump to %s %s because it's defined multiple times", kind, ident)
}

func errNargs(nargs, sp int, pos Pos) *ExecError {
	return newExecErr(ErrArgCount, pos,
		"given number of stack arguments (%d) is wrong. There are only %d elements on the stack!",
		nargs, sp)
}

func errReadIO(pos Pos) *ExecError {
	return newExecErr(ErrReadIO, pos, "system read failed.")
}

func errReadNumChar(pos Pos) *ExecError {
	return newExecErr(ErrReadNumFormat, pos, "invalid input, `Sys.read_num` only accepts digits.")
}

func errReadNumOverflow(pos Pos, num int) *ExecError {
	return newExecErr(ErrReadNumOverflow, pos,
		"number %d read by `Sys.read_num` is too large. The limit is %d", num, Bit16Limit)
}

func errProgrammer(inst Instruction) *ExecError {
	return newExecErr(ErrProgrammer, inst.Pos,
		"invalid instruction `%s`; programmer mistake", inst)
}

// ansi Select Graphic Rendition codes, used the same way
// original_source/src/utils.h's err/errf macros embed them directly
// (`\033[31m...\033[m`) rather than through a formatting library.
const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[m"
)

// Report writes "Error: <message>" to w, in red when out is a terminal
// (or forceColor is set) and uncolored otherwise, mirroring exec.c's
// err/errf while deciding TTY-ness the idiomatic Go way.
func (e *ExecError) Report(w io.Writer, out *os.File, forceColor, noColor bool) {
	colorize := !noColor && (forceColor || isTerminal(out))
	if colorize {
		fmt.Fprintf(w, "%sError:%s %s\n", ansiRed, ansiReset, e.Error())
	} else {
		fmt.Fprintf(w, "Error: %s\n", e.Error())
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
