package lexer

import (
	"strings"

	"github.com/navionguy/vb6parse/token"
)

// Lexer walks the raw source text and hands back one classified
// token at a time. Nothing is ever dropped: whitespace, newlines,
// comments and even bytes the scanner can't classify all come back
// as tokens, so concatenating every literal rebuilds the file.
type Lexer struct {
	input string
	pos   int
}

func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize runs the lexer over the whole input.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token

	for {
		tok, ok := l.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// NextToken scans the next token. ok is false once the input is
// exhausted; the lexer itself never fails.
func (l *Lexer) NextToken() (token.Token, bool) {
	if l.pos >= len(l.input) {
		return token.Token{}, false
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch == '\r':
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '\n' {
			l.pos++
		}
		return l.emit(token.EOL, start), true

	case ch == '\n':
		l.pos++
		return l.emit(token.EOL, start), true

	case ch == ' ' || ch == '\t':
		for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
			l.pos++
		}
		return l.emit(token.WS, start), true

	case ch == '\'':
		l.skipToLineEnd()
		return l.emit(token.COMMENT, start), true

	case isLetter(ch):
		if l.atRemComment() {
			l.skipToLineEnd()
			return l.emit(token.REMCOMMENT, start), true
		}
		return l.readIdentifier(start), true

	case isDigit(ch):
		return l.readNumber(start), true

	case ch == '"':
		return l.readString(start), true

	case ch == '#':
		if tok, ok := l.readDate(start); ok {
			return tok, true
		}
		// no closing '#' on this line, emit the plain symbol
		l.pos++
		return l.emit(token.OCTOTHORPE, start), true

	default:
		if text, tt, ok := token.LookupSymbol(l.input[l.pos:]); ok {
			l.pos += len(text)
			return l.emit(tt, start), true
		}
		// unclassifiable byte, keep it anyway
		l.pos++
		return l.emit(token.UNKNOWN, start), true
	}
}

func (l *Lexer) emit(tt token.TokenType, start int) token.Token {
	return token.Token{
		Type:    tt,
		Literal: l.input[start:l.pos],
		Start:   start,
		End:     l.pos,
	}
}

// skipToLineEnd advances to the next newline without consuming it.
func (l *Lexer) skipToLineEnd() {
	for l.pos < len(l.input) && l.input[l.pos] != '\r' && l.input[l.pos] != '\n' {
		l.pos++
	}
}

// atRemComment checks for a REM comment. "REM" only starts a
// comment when the next byte can't extend it into an identifier,
// so names like RemoveItem still lex normally.
func (l *Lexer) atRemComment() bool {
	if l.pos+3 > len(l.input) {
		return false
	}
	if !strings.EqualFold(l.input[l.pos:l.pos+3], "rem") {
		return false
	}
	if l.pos+3 == len(l.input) {
		return true
	}
	return !isIdentByte(l.input[l.pos+3])
}

// readIdentifier scans an identifier run and classifies it against
// the keyword table. A keyword immediately followed by '$' merges
// into a single identifier token (Chr$, UCase$ and friends).
func (l *Lexer) readIdentifier(start int) token.Token {
	l.pos++
	for l.pos < len(l.input) && isIdentByte(l.input[l.pos]) {
		l.pos++
	}

	tt := token.LookupIdent(l.input[start:l.pos])
	if tt != token.IDENT && l.pos < len(l.input) && l.input[l.pos] == '$' {
		l.pos++
		tt = token.IDENT
	}
	return l.emit(tt, start)
}

// readNumber scans integer and floating literals, including the
// E/D exponent forms and the single character type suffixes.
func (l *Lexer) readNumber(start int) token.Token {
	isFloat := false

	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}

	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		isFloat = true
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}

	if l.pos < len(l.input) && isExponentMarker(l.input[l.pos]) && l.hasExponentDigits() {
		isFloat = true
		l.pos++
		if l.input[l.pos] == '+' || l.input[l.pos] == '-' {
			l.pos++
		}
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}

	tt := token.TokenType(token.INT)
	if isFloat {
		tt = token.DOUBLE
	}

	if l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '%':
			tt = token.INT
			l.pos++
		case '&':
			tt = token.LONG
			l.pos++
		case '!':
			tt = token.SINGLE
			l.pos++
		case '#':
			tt = token.DOUBLE
			l.pos++
		case '@':
			tt = token.DECIMAL
			l.pos++
		}
	}
	return l.emit(tt, start)
}

// hasExponentDigits peeks past an E/D marker for a digit run so
// that "10End" lexes as a number followed by a keyword instead of
// swallowing the E.
func (l *Lexer) hasExponentDigits() bool {
	at := l.pos + 1
	if at < len(l.input) && (l.input[at] == '+' || l.input[at] == '-') {
		at++
	}
	return at < len(l.input) && isDigit(l.input[at])
}

// readString scans a quoted string literal. Doubled quotes stay
// inside the literal. An unterminated string runs to the end of
// the line and is still emitted, the parser decides what to make
// of it.
func (l *Lexer) readString(start int) token.Token {
	l.pos++
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\r' || ch == '\n' {
			break
		}
		if ch == '"' {
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == '"' {
				l.pos += 2
				continue
			}
			l.pos++
			break
		}
		l.pos++
	}
	return l.emit(token.STRING, start)
}

// readDate tries to scan a #...# date literal on one line. If no
// closing octothorpe shows up before the newline the scan rolls
// back and reports no match.
func (l *Lexer) readDate(start int) (token.Token, bool) {
	at := l.pos + 1
	for at < len(l.input) {
		ch := l.input[at]
		if ch == '\r' || ch == '\n' {
			return token.Token{}, false
		}
		if ch == '#' {
			l.pos = at + 1
			return l.emit(token.DATE, start), true
		}
		at++
	}
	return token.Token{}, false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentByte(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isExponentMarker(ch byte) bool {
	return ch == 'e' || ch == 'E' || ch == 'd' || ch == 'D'
}
