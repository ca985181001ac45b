package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecCallArgumentCountError(t *testing.T) {
	symbols := NewSymbolTable()
	symbols.Define("F", SymFunc, SymVal{InstAddr: 0, NLocals: 0})
	f := NewFile("t.vm", []Instruction{{Op: OpReturn}}, symbols)
	p := NewProgram([]*File{f}, 0, strings.NewReader(""), &bytes.Buffer{})

	err := execCall(p, Instruction{Ident: "F", Nargs: 3})
	require.NotNil(t, err)
	require.Equal(t, ErrArgCount, err.Kind)
}

func TestExecCallSetsFrameRegisters(t *testing.T) {
	symbols := NewSymbolTable()
	symbols.Define("F", SymFunc, SymVal{InstAddr: 0, NLocals: 3})
	f := NewFile("t.vm", []Instruction{{Op: OpReturn}}, symbols)
	p := NewProgram([]*File{f}, 0, strings.NewReader(""), &bytes.Buffer{})

	p.Stack.Push(1)
	p.Stack.Push(2)

	err := execCall(p, Instruction{Ident: "F", Nargs: 2})
	require.Nil(t, err)

	require.Equal(t, 0, p.Stack.Arg())
	require.Equal(t, 2, p.Stack.ArgLen())
	require.Equal(t, 3, p.Stack.LclLen())
	require.Equal(t, 10+3, p.Stack.SP()) // 2 args + 8 frame words + 3 locals
}
