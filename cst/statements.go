package cst

import (
	"github.com/navionguy/vb6parse/token"
	"github.com/navionguy/vb6parse/vb6diag"
)

// maxNameLen is the longest identifier the language allows.
const maxNameLen = 255

// parseDeclaration handles Dim, ReDim, Const and the visibility
// prefixed forms. The shape is a head keyword run followed by a
// comma separated declarator list, ending at the newline.
//
//	Dim x As Integer
//	Private WithEvents m_button As CommandButton
//	Const MAX As Long = 100, MIN = 0
//	ReDim Preserve arr(1 To 20)
func (p *Parser) parseDeclaration(kind Kind) {
	p.b.StartNode(kind)

	// head: Dim | ReDim [Preserve] | [visibility] Const | visibility
	p.bump()
	p.eatSpace()
	switch kind {
	case ReDimStatement:
		if p.bumpIf(token.PRESERVE) {
			p.eatSpace()
		}
	case ConstStatement:
		// a visibility keyword may have been the first bump
		if p.bumpIf(token.CONST) {
			p.eatSpace()
		}
	}

	for {
		if !p.parseDeclarator() {
			break
		}
		p.eatSpace()
		if !p.bumpIf(token.COMMA) {
			break
		}
	}

	p.eatLineEnd()
	p.b.FinishNode()
}

// parseDeclarator parses one clause of a declaration list:
// optional WithEvents marker, the name, optional array bounds,
// optional As [New] type, optional initializer. Returns false when
// the clause could not even get started, in which case the rest of
// the line is wrapped as Unknown inside the declaration node.
func (p *Parser) parseDeclarator() bool {
	p.eatSpace()
	if p.s.IsEmpty() {
		p.unexpectedEnd()
		return false
	}
	if p.atLineEnd() {
		return false
	}

	p.b.StartNode(Declarator)

	if p.bumpIf(token.WITHEVENTS) {
		p.eatSpace()
	}

	tok, _ := p.s.Peek()
	if tok.Type != token.IDENT {
		p.ctx.Error(tok.Span(), vb6diag.UnknownToken, tok.Literal)
		p.b.FinishNode()
		p.b.StartNode(Unknown)
		p.consumeRestOfLine()
		p.b.FinishNode()
		return false
	}
	if len(tok.Literal) > maxNameLen {
		p.ctx.Error(tok.Span(), vb6diag.VariableNameTooLong, tok.Literal)
	}
	p.bump()

	p.eatSpace()
	if p.s.AtToken(token.LPAREN) {
		p.parseArrayBounds()
		p.eatSpace()
	}

	if p.s.AtToken(token.AS) {
		p.parseAsClause()
		p.eatSpace()
	}

	if p.s.AtToken(token.ASSIGN) {
		p.b.StartNode(Initializer)
		p.bump()
		p.eatSpace()
		if p.s.IsEmpty() || p.atLineEnd() {
			p.unexpectedEnd()
		} else {
			p.parseExpression(LOWEST)
		}
		p.b.FinishNode()
	}

	p.b.FinishNode()
	return true
}

// parseArrayBounds parses "( [lower To] upper, ... )". Bounds may
// be empty for a dynamic array: "Dim arr()".
func (p *Parser) parseArrayBounds() {
	p.b.StartNode(ArrayBounds)
	p.bump() // (

	for {
		p.eatSpace()
		if p.s.IsEmpty() {
			p.unexpectedEnd()
			break
		}
		if p.bumpIf(token.RPAREN) {
			break
		}
		if p.atLineEnd() {
			p.unexpectedEnd()
			break
		}

		p.parseExpression(LOWEST)
		p.eatSpace()
		if p.bumpIf(token.TO) {
			p.eatSpace()
			p.parseExpression(LOWEST)
			p.eatSpace()
		}
		if p.bumpIf(token.COMMA) {
			continue
		}
		if p.bumpIf(token.RPAREN) {
			break
		}
		// something that is neither comma nor close paren,
		// keep it and bail out of the bounds
		if !p.s.IsEmpty() && !p.atLineEnd() {
			tok, _ := p.s.Peek()
			p.ctx.Error(tok.Span(), vb6diag.UnknownToken, tok.Literal)
			p.bump()
		}
	}
	p.b.FinishNode()
}

// parseAsClause parses "As [New] TypeName" where the type may be a
// dotted name (VB.CommandButton) or a fixed length string
// (String * 40).
func (p *Parser) parseAsClause() {
	p.b.StartNode(AsClause)
	p.bump() // As
	p.eatSpace()

	if p.s.IsEmpty() || p.atLineEnd() {
		p.unexpectedEnd()
		p.b.FinishNode()
		return
	}

	if p.bumpIf(token.NEW) {
		p.eatSpace()
		if p.s.IsEmpty() || p.atLineEnd() {
			p.unexpectedEnd()
			p.b.FinishNode()
			return
		}
	}

	// the type name itself: a builtin type keyword or an
	// identifier, possibly dotted
	p.bump()
	for {
		if !p.s.AtToken(token.PERIOD) {
			break
		}
		p.bump()
		if p.s.IsEmpty() || p.atLineEnd() {
			p.unexpectedEnd()
			break
		}
		p.bump()
	}

	// fixed length string form
	p.eatSpace()
	if p.s.AtToken(token.ASTERISK) {
		p.bump()
		p.eatSpace()
		if p.s.IsEmpty() || p.atLineEnd() {
			p.unexpectedEnd()
		} else {
			p.parseExpression(LOWEST)
		}
	}

	p.b.FinishNode()
}

// parseFlatStatement wraps a whole logical line in a node of the
// given kind without building expression structure inside it. The
// simple builtin statements (Randomize, RSet, Beep, ChDir and
// friends) and the assignment/call lines all use this shape: the
// tree stays lossless, just flat.
func (p *Parser) parseFlatStatement(kind Kind) {
	p.b.StartNode(kind)
	p.consumeToLineEnd()
	p.b.FinishNode()
}

// consumeRestOfLine bumps everything up to, but not including, the
// newline. Declarator recovery uses it so the statement node still
// gets to own its closing newline.
func (p *Parser) consumeRestOfLine() {
	for !p.s.IsEmpty() && !p.s.AtToken(token.EOL) {
		if p.atLineContinuation() {
			p.bump()
			p.bumpIf(token.WS)
			p.bumpIf(token.EOL)
			continue
		}
		p.bump()
	}
}
