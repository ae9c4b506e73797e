package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"Dim", DIM},
		{"dim", DIM},
		{"DIM", DIM},
		{"WithEvents", WITHEVENTS},
		{"withevents", WITHEVENTS},
		{"Integer", INTEGER},
		{"ElseIf", ELSEIF},
		{"x", IDENT},
		{"m_button", IDENT},
		{"Dimension", IDENT},
		{"Remainder", IDENT},
	}

	for _, tt := range tests {
		assert.EqualValues(t, tt.expected, LookupIdent(tt.ident), "LookupIdent(%q)", tt.ident)
	}
}

func TestLookupSymbol(t *testing.T) {
	tests := []struct {
		input    string
		text     string
		expected TokenType
	}{
		{"<>", "<>", NOT_EQ},
		{"<=5", "<=", LTE},
		{">=", ">=", GTE},
		{"<5", "<", LT},
		{"=1", "=", ASSIGN},
		{"(x)", "(", LPAREN},
		{"^2", "^", CARET},
		{"_", "_", UNDERSCORE},
	}

	for _, tt := range tests {
		text, tokType, ok := LookupSymbol(tt.input)
		assert.True(t, ok, "LookupSymbol(%q)", tt.input)
		assert.Equal(t, tt.text, text)
		assert.EqualValues(t, tt.expected, tokType)
	}

	_, _, ok := LookupSymbol("`junk")
	assert.False(t, ok)
}

func TestIsTrivia(t *testing.T) {
	assert.True(t, IsTrivia(WS))
	assert.True(t, IsTrivia(EOL))
	assert.True(t, IsTrivia(COMMENT))
	assert.True(t, IsTrivia(REMCOMMENT))
	assert.False(t, IsTrivia(IDENT))
	assert.False(t, IsTrivia(DIM))
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword(DIM))
	assert.True(t, IsKeyword(WITHEVENTS))
	assert.False(t, IsKeyword(IDENT))
	assert.False(t, IsKeyword(WS))
	assert.False(t, IsKeyword(ASSIGN))
}

func TestSpan(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "x", Start: 4, End: 5}
	assert.Equal(t, Span{Start: 4, End: 5}, tok.Span())
}
