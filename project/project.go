package project

import (
	"strconv"
	"strings"

	"github.com/navionguy/vb6parse/sourcefile"
	"github.com/navionguy/vb6parse/stream"
	"github.com/navionguy/vb6parse/token"
	"github.com/navionguy/vb6parse/vb6diag"
)

// FileReference is a "Name; Path" pair the way Module and Class
// lines carry them.
type FileReference struct {
	Name string
	Path string
}

// Project is the parsed view of a .vbp project file.
type Project struct {
	Type string

	Modules       []FileReference
	Classes       []FileReference
	Forms         []string
	UserControls  []string
	UserDocuments []string
	Designers     []string
	RelatedDocs   []string
	PropertyPages []string
	References    []string
	Objects       []string

	ResFile32   string
	IconForm    string
	Startup     string
	HelpFile    string
	Title       string
	ExeName32   string
	Path32      string
	Command32   string
	Name        string
	Description string

	MajorVer         int
	MinorVer         int
	RevisionVer      int
	AutoIncrementVer int

	VersionCompanyName     string
	VersionFileDescription string
	VersionLegalCopyright  string
	VersionLegalTrademarks string
	VersionProductName     string
	VersionComments        string

	CompatibleMode   string
	CompilationType  int
	OptimizationType int

	// properties under a third-party [Section] header, grouped
	// by section name
	OtherProperties map[string]map[string]string
}

// propertyHandler consumes exactly one property line's value,
// through the newline, and reports problems via the context.
type propertyHandler func(ctx *vb6diag.ParserContext, s *stream.SourceStream, proj *Project, name string)

// Parse decodes and parses a project source file.
func Parse(sf *sourcefile.SourceFile) (*Project, []vb6diag.Diagnostic) {
	return ParseText(sf.FileName(), sf.Contents())
}

// ParseText parses project file contents. The Project comes back
// even when the diagnostics list is not empty; unknown lines are
// reported and skipped, never fatal.
func ParseText(fileName, contents string) (*Project, []vb6diag.Diagnostic) {
	s := stream.New(fileName, contents)
	ctx := vb6diag.NewContext(fileName, contents)
	proj := &Project{OtherProperties: map[string]map[string]string{}}
	otherGroup := ""

	for !s.IsEmpty() {
		s.TakeAsciiWhitespaces()
		if s.TakeNewline() {
			continue
		}
		if s.IsEmpty() {
			break
		}

		if s.AtToken(token.LBRACKET) {
			if group, ok := parseSectionHeader(ctx, s); ok {
				otherGroup = group
			}
			continue
		}

		name, ok := takePropertyName(ctx, s)
		if !ok {
			continue
		}

		if otherGroup != "" {
			proj.setOther(otherGroup, name, takeValue(s))
			continue
		}

		handler, known := handlers[name]
		if !known {
			ctx.Error(s.SpanAt(s.StartOfLine()), vb6diag.ParameterLineUnknown, name)
			s.ForwardToNextLine()
			continue
		}
		handler(ctx, s, proj, name)
	}

	return proj, ctx.IntoErrors()
}

func (p *Project) setOther(group, name, value string) {
	if p.OtherProperties[group] == nil {
		p.OtherProperties[group] = map[string]string{}
	}
	p.OtherProperties[group][name] = value
}

// parseSectionHeader consumes a "[Name]" line. A header with no
// closing bracket before the newline is reported and skipped.
func parseSectionHeader(ctx *vb6diag.ParserContext, s *stream.SourceStream) (string, bool) {
	start := s.Offset()
	s.ConsumeToken() // [

	var name strings.Builder
	for {
		if s.IsEmpty() || s.AtToken(token.EOL) {
			ctx.Error(s.SpanAt(start), vb6diag.MalformedSectionHeader, "")
			s.ForwardToNextLine()
			return "", false
		}
		tok := s.ConsumeToken()
		if tok.Type == token.RBRACKET {
			break
		}
		name.WriteString(tok.Literal)
	}
	s.ForwardToNextLine()
	return strings.TrimSpace(name.String()), true
}

// takePropertyName consumes "Name=" and hands back the name. On a
// line that doesn't have that shape the rest of the line is
// skipped.
func takePropertyName(ctx *vb6diag.ParserContext, s *stream.SourceStream) (string, bool) {
	tok := s.ConsumeToken()
	if tok.Type == token.EOL {
		return "", false
	}
	name := tok.Literal

	s.TakeAsciiWhitespaces()
	if !s.AtToken(token.ASSIGN) {
		ctx.Error(token.Span{Start: tok.Start, End: tok.End}, vb6diag.MissingPropertyValue, name)
		s.ForwardToNextLine()
		return "", false
	}
	s.ConsumeToken() // =
	return name, true
}

// takeValue consumes the rest of the line and returns the value
// text, trimmed and with surrounding quotes removed.
func takeValue(s *stream.SourceStream) string {
	var raw strings.Builder
	for !s.IsEmpty() {
		tok := s.ConsumeToken()
		if tok.Type == token.EOL {
			break
		}
		raw.WriteString(tok.Literal)
	}
	return unquote(strings.TrimSpace(raw.String()))
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
		value = strings.ReplaceAll(value, `""`, `"`)
	}
	return value
}

// --- handler table ---

// handlers maps recognized property names to their parse
// functions. The table never changes at runtime, lookups replace
// what would otherwise be one giant switch.
var handlers = buildHandlers()

func buildHandlers() map[string]propertyHandler {
	h := map[string]propertyHandler{}

	// file references
	h["Type"] = stringProp(func(p *Project) *string { return &p.Type })
	h["Module"] = refProp(func(p *Project) *[]FileReference { return &p.Modules })
	h["Class"] = refProp(func(p *Project) *[]FileReference { return &p.Classes })
	h["Form"] = listProp(func(p *Project) *[]string { return &p.Forms })
	h["UserControl"] = listProp(func(p *Project) *[]string { return &p.UserControls })
	h["UserDocument"] = listProp(func(p *Project) *[]string { return &p.UserDocuments })
	h["Designer"] = listProp(func(p *Project) *[]string { return &p.Designers })
	h["RelatedDoc"] = listProp(func(p *Project) *[]string { return &p.RelatedDocs })
	h["PropertyPage"] = listProp(func(p *Project) *[]string { return &p.PropertyPages })
	h["Reference"] = listProp(func(p *Project) *[]string { return &p.References })
	h["Object"] = listProp(func(p *Project) *[]string { return &p.Objects })

	// metadata
	h["ResFile32"] = stringProp(func(p *Project) *string { return &p.ResFile32 })
	h["IconForm"] = stringProp(func(p *Project) *string { return &p.IconForm })
	h["Startup"] = stringProp(func(p *Project) *string { return &p.Startup })
	h["HelpFile"] = stringProp(func(p *Project) *string { return &p.HelpFile })
	h["Title"] = stringProp(func(p *Project) *string { return &p.Title })
	h["ExeName32"] = stringProp(func(p *Project) *string { return &p.ExeName32 })
	h["Path32"] = stringProp(func(p *Project) *string { return &p.Path32 })
	h["Command32"] = stringProp(func(p *Project) *string { return &p.Command32 })
	h["Name"] = stringProp(func(p *Project) *string { return &p.Name })
	h["Description"] = stringProp(func(p *Project) *string { return &p.Description })
	h["CompatibleMode"] = stringProp(func(p *Project) *string { return &p.CompatibleMode })

	// version numbers
	h["MajorVer"] = intProp(func(p *Project) *int { return &p.MajorVer })
	h["MinorVer"] = intProp(func(p *Project) *int { return &p.MinorVer })
	h["RevisionVer"] = intProp(func(p *Project) *int { return &p.RevisionVer })
	h["AutoIncrementVer"] = intProp(func(p *Project) *int { return &p.AutoIncrementVer })
	h["CompilationType"] = intProp(func(p *Project) *int { return &p.CompilationType })
	h["OptimizationType"] = intProp(func(p *Project) *int { return &p.OptimizationType })

	// version strings
	h["VersionCompanyName"] = stringProp(func(p *Project) *string { return &p.VersionCompanyName })
	h["VersionFileDescription"] = stringProp(func(p *Project) *string { return &p.VersionFileDescription })
	h["VersionLegalCopyright"] = stringProp(func(p *Project) *string { return &p.VersionLegalCopyright })
	h["VersionLegalTrademarks"] = stringProp(func(p *Project) *string { return &p.VersionLegalTrademarks })
	h["VersionProductName"] = stringProp(func(p *Project) *string { return &p.VersionProductName })
	h["VersionComments"] = stringProp(func(p *Project) *string { return &p.VersionComments })

	return h
}

func stringProp(field func(*Project) *string) propertyHandler {
	return func(ctx *vb6diag.ParserContext, s *stream.SourceStream, proj *Project, name string) {
		*field(proj) = takeValue(s)
	}
}

func listProp(field func(*Project) *[]string) propertyHandler {
	return func(ctx *vb6diag.ParserContext, s *stream.SourceStream, proj *Project, name string) {
		list := field(proj)
		*list = append(*list, takeValue(s))
	}
}

// refProp handles the "Name; Path" shaped values.
func refProp(field func(*Project) *[]FileReference) propertyHandler {
	return func(ctx *vb6diag.ParserContext, s *stream.SourceStream, proj *Project, name string) {
		value := takeValue(s)
		ref := FileReference{Name: value}
		if at := strings.Index(value, ";"); at >= 0 {
			ref.Name = strings.TrimSpace(value[:at])
			ref.Path = strings.TrimSpace(value[at+1:])
		}
		list := field(proj)
		*list = append(*list, ref)
	}
}

func intProp(field func(*Project) *int) propertyHandler {
	return func(ctx *vb6diag.ParserContext, s *stream.SourceStream, proj *Project, name string) {
		start := s.Offset()
		value := takeValue(s)
		n, err := strconv.Atoi(value)
		if err != nil {
			ctx.Warning(s.SpanAt(start), vb6diag.MissingPropertyValue, name)
			return
		}
		*field(proj) = n
	}
}
