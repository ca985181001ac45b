package asm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hvm/vm"
)

func TestLoadRunsAcrossFiles(t *testing.T) {
	var out bytes.Buffer
	program, err := Load([]Source{
		{Name: "main.vm", Text: `
			function Sys.init 0
			push constant 10
			call F 1
			call Sys.print_num
		`},
		{Name: "f.vm", Text: `
			function F 2
			push argument 0
			push constant 1
			add
			return
		`},
	}, WithIO(strings.NewReader(""), &out))
	require.NoError(t, err)

	require.Nil(t, program.Run())
	require.Equal(t, "11", out.String())
}

func TestLoadFailsWithoutSysInit(t *testing.T) {
	_, err := Load([]Source{
		{Name: "main.vm", Text: `push constant 1`},
	})
	require.Error(t, err)
}

func TestLoadFailsOnDuplicateSysInit(t *testing.T) {
	_, err := Load([]Source{
		{Name: "a.vm", Text: `function Sys.init 0
			return`},
		{Name: "b.vm", Text: `function Sys.init 0
			return`},
	})
	require.Error(t, err)
}

func TestLoadWithStartupSurvivesTrailingReturn(t *testing.T) {
	var out bytes.Buffer
	program, err := Load([]Source{
		{Name: "main.vm", Text: `
			function Sys.init 0
			push constant 7
			call Sys.print_num
			push constant 0
			return
		`},
	}, WithIO(strings.NewReader(""), &out), WithStartup())
	require.NoError(t, err)
	require.Nil(t, program.Run())
	require.Equal(t, "7", out.String())
}

func TestLoadAppliesMaxIdentLen(t *testing.T) {
	program, err := Load([]Source{
		{Name: "main.vm", Text: `function Sys.init 0
			return`},
	}, WithMaxIdentLen(4))
	require.NoError(t, err)
	_, ok := program.Files[0].Symbols.Lookup("Sys.", vm.SymFunc)
	require.True(t, ok, "Sys.init should have been truncated to 4 characters")
}

func TestLoadAppliesMemorySizes(t *testing.T) {
	program, err := Load([]Source{
		{Name: "main.vm", Text: `function Sys.init 0
			return`},
	}, WithMemorySizes(1024, 16, 4))
	require.NoError(t, err)
	require.Equal(t, 1024, program.Heap.Size())
	require.Equal(t, 16, program.Files[0].Mem.StaticSize())
	require.Equal(t, 4, program.Files[0].Mem.TempSize())
}
