package sourcefile

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/navionguy/vb6parse/stream"
)

// SourceFile is a decoded legacy source file: UTF-8 contents plus
// the stable name diagnostics report against. The IDE wrote these
// files in the Windows-1252 codepage, so raw bytes get decoded
// before any parsing happens.
type SourceFile struct {
	name     string
	contents string
}

// New wraps already-decoded text, for callers that did their own
// I/O.
func New(name, contents string) *SourceFile {
	return &SourceFile{name: name, contents: contents}
}

// Decode converts raw file bytes into a SourceFile. Valid UTF-8
// passes through untouched; anything else is treated as
// Windows-1252, which decodes every possible byte so this cannot
// fail on codepage grounds.
func Decode(name string, raw []byte) (*SourceFile, error) {
	raw = stripBOM(raw)

	if utf8.Valid(raw) {
		return &SourceFile{name: name, contents: string(raw)}, nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, err
	}
	return &SourceFile{name: name, contents: string(decoded)}, nil
}

// Load reads and decodes the file at path. The source name is the
// base name of the path.
func Load(path string) (*SourceFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(filepath.Base(path), raw)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripBOM(raw []byte) []byte {
	return bytes.TrimPrefix(raw, utf8BOM)
}

// FileName is the diagnostics identifier for this file.
func (sf *SourceFile) FileName() string {
	return sf.name
}

// Contents is the decoded text.
func (sf *SourceFile) Contents() string {
	return sf.contents
}

// Stream tokenizes the contents and hands back a fresh cursor.
func (sf *SourceFile) Stream() *stream.SourceStream {
	return stream.New(sf.name, sf.contents)
}
