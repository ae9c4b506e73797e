package vb6diag

import (
	"fmt"

	"github.com/navionguy/vb6parse/token"
)

// Severity ranks how bad a diagnostic is. Nothing here ever stops
// a parse; severity only matters to whoever reports the results.
type Severity int

const (
	Note Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Diagnostic codes.
const (
	UnknownToken = iota + 1
	UnexpectedEndOfStream
	VariableNameTooLong
	ParameterLineUnknown
	MalformedSectionHeader
	MissingPropertyValue
	MissingLikelyDueToTypo
)

// Diagnostic is one structured parse anomaly. Detail carries the
// code-specific payload: the offending token text, the property
// name, whatever the code needs to render a message without going
// back to the source.
type Diagnostic struct {
	Code     int
	Severity Severity
	Span     token.Span
	Detail   string
}

// Message renders the human readable text for the diagnostic.
func (d Diagnostic) Message() string {
	switch d.Code {
	case UnknownToken:
		return fmt.Sprintf("unknown token %q", d.Detail)
	case UnexpectedEndOfStream:
		return "unexpected end of stream"
	case VariableNameTooLong:
		return fmt.Sprintf("variable name %q is too long, the limit is 255 characters", d.Detail)
	case ParameterLineUnknown:
		return fmt.Sprintf("unknown parameter line %q", d.Detail)
	case MalformedSectionHeader:
		return "malformed section header"
	case MissingPropertyValue:
		return fmt.Sprintf("property %q has no value", d.Detail)
	case MissingLikelyDueToTypo:
		return fmt.Sprintf("unrecognized name %q, possibly a typo", d.Detail)
	}
	return "unprintable diagnostic"
}

// ParserContext is the file scoped diagnostics sink. The core
// parser and the property-line handlers all report through it;
// collecting never fails and never aborts the parse.
type ParserContext struct {
	fileName string
	source   string
	diags    []Diagnostic
}

// NewContext builds an empty context for one file.
func NewContext(fileName, source string) *ParserContext {
	return &ParserContext{fileName: fileName, source: source}
}

func (c *ParserContext) FileName() string {
	return c.fileName
}

// Error appends an error severity diagnostic.
func (c *ParserContext) Error(span token.Span, code int, detail string) {
	c.append(Error, span, code, detail)
}

// Warning appends a warning severity diagnostic.
func (c *ParserContext) Warning(span token.Span, code int, detail string) {
	c.append(Warning, span, code, detail)
}

// Note appends a note severity diagnostic.
func (c *ParserContext) Note(span token.Span, code int, detail string) {
	c.append(Note, span, code, detail)
}

func (c *ParserContext) append(sev Severity, span token.Span, code int, detail string) {
	c.diags = append(c.diags, Diagnostic{
		Code:     code,
		Severity: sev,
		Span:     span,
		Detail:   detail,
	})
}

// IntoErrors yields the collected diagnostics in detection order,
// which for a single forward pass is source order. The context is
// done once this is called.
func (c *ParserContext) IntoErrors() []Diagnostic {
	diags := c.diags
	c.diags = nil
	return diags
}

// LineAt maps a span start back to its 1-based line number, for
// renderers that want file:line output.
func (c *ParserContext) LineAt(span token.Span) int {
	line := 1
	limit := span.Start
	if limit > len(c.source) {
		limit = len(c.source)
	}
	for i := 0; i < limit; i++ {
		if c.source[i] == '\n' {
			line++
		}
	}
	return line
}
