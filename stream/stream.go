package stream

import (
	"github.com/navionguy/vb6parse/lexer"
	"github.com/navionguy/vb6parse/token"
)

// SourceStream is the read head the parsers share. It wraps the
// token sequence for one file and only ever moves forward; lookahead
// is bounded and never consumes.
type SourceStream struct {
	fileName string
	source   string
	tokens   []token.Token
	pos      int
}

// New tokenizes source and wraps it in a stream.
func New(fileName, source string) *SourceStream {
	return &SourceStream{
		fileName: fileName,
		source:   source,
		tokens:   lexer.Tokenize(source),
	}
}

// FileName is the identifier diagnostics report against.
func (s *SourceStream) FileName() string {
	return s.fileName
}

// Source is the full decoded text the tokens were cut from.
func (s *SourceStream) Source() string {
	return s.source
}

// IsEmpty reports whether the cursor has reached end of input.
func (s *SourceStream) IsEmpty() bool {
	return s.pos >= len(s.tokens)
}

// Peek looks at the current token without consuming it.
func (s *SourceStream) Peek() (token.Token, bool) {
	return s.PeekNth(0)
}

// PeekNth looks n tokens past the cursor without consuming.
func (s *SourceStream) PeekNth(n int) (token.Token, bool) {
	at := s.pos + n
	if at >= len(s.tokens) {
		return token.Token{}, false
	}
	return s.tokens[at], true
}

// ConsumeToken returns the current token and advances past it.
// Calling it on an empty stream is a caller bug, check IsEmpty
// first.
func (s *SourceStream) ConsumeToken() token.Token {
	if s.IsEmpty() {
		panic("stream: ConsumeToken called at end of input")
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// AtToken reports whether the current token has the given type.
func (s *SourceStream) AtToken(tt token.TokenType) bool {
	tok, ok := s.Peek()
	return ok && tok.Type == tt
}

// TakeAsciiWhitespaces consumes a run of horizontal whitespace.
// Returns whether anything was consumed.
func (s *SourceStream) TakeAsciiWhitespaces() bool {
	took := false
	for s.AtToken(token.WS) {
		s.pos++
		took = true
	}
	return took
}

// TakeNewline consumes exactly one newline token if present.
func (s *SourceStream) TakeNewline() bool {
	if s.AtToken(token.EOL) {
		s.pos++
		return true
	}
	return false
}

// ForwardToNextLine consumes everything up to and including the
// next newline. Error recovery leans on this to skip a line it
// couldn't make sense of.
func (s *SourceStream) ForwardToNextLine() {
	for !s.IsEmpty() {
		tok := s.ConsumeToken()
		if tok.Type == token.EOL {
			return
		}
	}
}

// Offset is the byte offset of the cursor in the source text.
func (s *SourceStream) Offset() int {
	if s.IsEmpty() {
		return len(s.source)
	}
	return s.tokens[s.pos].Start
}

// StartOfLine walks back from the cursor to the byte offset just
// past the previous newline.
func (s *SourceStream) StartOfLine() int {
	at := s.Offset()
	for at > 0 && s.source[at-1] != '\n' && s.source[at-1] != '\r' {
		at--
	}
	return at
}

// SpanAt builds a span from the given start offset to the cursor.
func (s *SourceStream) SpanAt(start int) token.Span {
	return token.Span{Start: start, End: s.Offset()}
}

// PeekSignificant skips horizontal whitespace and line
// continuations and returns the first token past them, without
// moving the cursor. It stays on the logical line; a plain newline
// or a comment comes back as-is.
func (s *SourceStream) PeekSignificant() (token.Token, bool) {
	for n := 0; ; n++ {
		tok, ok := s.PeekNth(n)
		if !ok {
			return token.Token{}, false
		}
		if tok.Type == token.WS {
			continue
		}
		if tok.Type == token.UNDERSCORE {
			if skip, isCont := s.continuationLen(n); isCont {
				n += skip - 1
				continue
			}
		}
		return tok, true
	}
}

// PeekKeywords collects the types of the next count significant
// tokens on the logical line. Statement dispatch uses two of these
// to tell apart "Private Sub" from "Private x As Long" and the
// like. Lookahead rides over line continuations but never crosses
// a plain newline or a comment.
func (s *SourceStream) PeekKeywords(count int) []token.TokenType {
	var types []token.TokenType
	for n := 0; len(types) < count; n++ {
		tok, ok := s.PeekNth(n)
		if !ok {
			break
		}
		if tok.Type == token.WS {
			continue
		}
		if tok.Type == token.UNDERSCORE {
			if skip, isCont := s.continuationLen(n); isCont {
				n += skip - 1
				continue
			}
		}
		if tok.Type == token.EOL || tok.Type == token.COMMENT || tok.Type == token.REMCOMMENT {
			break
		}
		types = append(types, tok.Type)
	}
	return types
}

// continuationLen reports how many tokens an "_ [ws] newline" line
// continuation takes up, starting at lookahead offset n, or false
// when the underscore there is not a continuation.
func (s *SourceStream) continuationLen(n int) (int, bool) {
	next, ok := s.PeekNth(n + 1)
	if !ok {
		return 0, false
	}
	if next.Type == token.EOL {
		return 2, true
	}
	if next.Type != token.WS {
		return 0, false
	}
	after, ok := s.PeekNth(n + 2)
	if ok && after.Type == token.EOL {
		return 3, true
	}
	return 0, false
}
