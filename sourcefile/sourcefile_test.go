package sourcefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePassesThroughUTF8(t *testing.T) {
	sf, err := Decode("module1.bas", []byte("Dim x As Integer\n"))
	require.NoError(t, err)
	assert.Equal(t, "module1.bas", sf.FileName())
	assert.Equal(t, "Dim x As Integer\n", sf.Contents())
}

func TestDecodeWindows1252(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid on its own in UTF-8
	raw := []byte{'s', 0xE9, 'n', 'a', 'l'}
	sf, err := Decode("form1.frm", raw)
	require.NoError(t, err)
	assert.Equal(t, "sénal", sf.Contents())
}

func TestDecodeStripsBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Option Explicit\n")...)
	sf, err := Decode("module1.bas", raw)
	require.NoError(t, err)
	assert.Equal(t, "Option Explicit\n", sf.Contents())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module1.bas")
	require.NoError(t, os.WriteFile(path, []byte("Dim x\n"), 0o644))

	sf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "module1.bas", sf.FileName())
	assert.Equal(t, "Dim x\n", sf.Contents())

	_, err = Load(filepath.Join(dir, "missing.bas"))
	assert.Error(t, err)
}

func TestStream(t *testing.T) {
	sf := New("module1.bas", "Dim x\n")
	s := sf.Stream()
	assert.Equal(t, "module1.bas", s.FileName())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "Dim", s.ConsumeToken().Literal)
}
