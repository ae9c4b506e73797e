package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestTreeCmd(t *testing.T) {
	path := writeTempFile(t, "module1.bas", "Dim x As Integer\n")

	cmd := newTreeCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{path})
	assert.NoError(t, cmd.Execute())
}

func TestTreeCmdJSON(t *testing.T) {
	path := writeTempFile(t, "module1.bas", "Dim x As Integer\n")

	cmd := newTreeCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--json", path})
	assert.NoError(t, cmd.Execute())
}

func TestTreeCmdMissingFile(t *testing.T) {
	cmd := newTreeCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.bas")})
	assert.Error(t, cmd.Execute())
}

func TestProjectCmd(t *testing.T) {
	path := writeTempFile(t, "project1.vbp", "Type=Exe\r\nTitle=\"Project1\"\r\n")

	cmd := newProjectCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{path})
	assert.NoError(t, cmd.Execute())
}

func TestCheckCmdCleanFile(t *testing.T) {
	path := writeTempFile(t, "module1.bas", "Option Explicit\nDim x As Integer\n")

	cmd := newCheckCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{path})
	assert.NoError(t, cmd.Execute())
}

func TestServeCmdHasAddrFlag(t *testing.T) {
	cmd := newServeCmd()
	flag := cmd.Flags().Lookup("addr")
	require.NotNil(t, flag)
	assert.Equal(t, ":8080", flag.DefValue)
}
