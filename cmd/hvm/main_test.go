package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCmdDefaults(t *testing.T) {
	root := newRootCmd()
	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	heapSize, err := run.Flags().GetInt("heap-size")
	require.NoError(t, err)
	require.Equal(t, 65536, heapSize)
}

func TestRunCmdRequiresAtLeastOneFile(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"run"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	require.Error(t, err)
}

func TestRunFilesReportsMissingSysInit(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.vm"
	require.NoError(t, os.WriteFile(path, []byte("push constant 1\n"), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", path})

	err := root.Execute()
	require.Error(t, err)
}
