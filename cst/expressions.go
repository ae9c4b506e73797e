package cst

import (
	"github.com/navionguy/vb6parse/token"
	"github.com/navionguy/vb6parse/vb6diag"
)

// Operator precedence, lowest binding first. The logical operators
// sit under the comparisons, concatenation under the arithmetic,
// exponentiation on top.
const (
	_ int = iota
	LOWEST
	IMPPREC // Imp
	EQVPREC // Eqv
	XORPREC // Xor
	ORPREC  // Or
	ANDPREC // And
	COMPARE // = <> < <= > >= Is Like
	CONCAT  // &
	SUM     // + -
	MODPREC // Mod
	INTDIV  // \
	PRODUCT // * /
	UNARY   // -x, Not x
	POWER   // ^
)

var precedences = map[token.TokenType]int{
	token.IMP:       IMPPREC,
	token.EQV:       EQVPREC,
	token.XOR:       XORPREC,
	token.OR:        ORPREC,
	token.AND:       ANDPREC,
	token.ASSIGN:    COMPARE,
	token.NOT_EQ:    COMPARE,
	token.LT:        COMPARE,
	token.LTE:       COMPARE,
	token.GT:        COMPARE,
	token.GTE:       COMPARE,
	token.IS:        COMPARE,
	token.LIKE:      COMPARE,
	token.AMPERSAND: CONCAT,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.MOD:       MODPREC,
	token.BSLASH:    INTDIV,
	token.ASTERISK:  PRODUCT,
	token.SLASH:     PRODUCT,
	token.CARET:     POWER,
}

// parseExpression is the precedence climbing loop. The left
// operand is built first; when an operator with a higher binding
// power shows up, a BinaryExpression node is spliced in around
// what was already built, via the builder checkpoint.
func (p *Parser) parseExpression(precedence int) {
	cp := p.b.Checkpoint()
	p.parsePrimary()

	for {
		op, ok := p.s.PeekSignificant()
		if !ok {
			return
		}
		opPrec, isOp := precedences[op.Type]
		if !isOp || opPrec <= precedence {
			return
		}

		p.eatSpace()
		p.b.StartNodeAt(cp, BinaryExpression)
		p.bump() // the operator
		p.eatSpace()
		if p.s.IsEmpty() || p.atLineEnd() {
			p.unexpectedEnd()
		} else if op.Type == token.CARET {
			// exponentiation associates to the right
			p.parseExpression(opPrec - 1)
		} else {
			p.parseExpression(opPrec)
		}
		p.b.FinishNode()
	}
}

// parsePrimary parses one operand: a literal, a name with its
// member/call postfixes, a parenthesized subexpression, or a unary
// operator application.
func (p *Parser) parsePrimary() {
	p.eatSpace()
	if p.s.IsEmpty() || p.atLineEnd() {
		p.unexpectedEnd()
		return
	}

	tok, _ := p.s.Peek()
	switch tok.Type {
	case token.MINUS, token.PLUS, token.NOT:
		p.b.StartNode(UnaryExpression)
		p.bump()
		p.eatSpace()
		p.parseExpression(UNARY)
		p.b.FinishNode()

	case token.LPAREN:
		p.b.StartNode(ParenExpression)
		p.bump()
		p.parseExpression(LOWEST)
		p.eatSpace()
		if !p.bumpIf(token.RPAREN) {
			p.unexpectedEnd()
		}
		p.b.FinishNode()

	case token.INT, token.LONG, token.SINGLE, token.DOUBLE, token.DECIMAL,
		token.STRING, token.DATE,
		token.TRUE, token.FALSE, token.NOTHING, token.NULL, token.EMPTY:
		p.bump()

	case token.IDENT, token.ME, token.PERIOD:
		p.parseNameExpression()

	default:
		if token.IsKeyword(tok.Type) {
			// keywords double as builtin function names: Date,
			// String(n, ch), Mid(s, 1) and so on
			p.parseNameExpression()
			return
		}
		// a symbol that can't start an operand
		p.ctx.Error(tok.Span(), vb6diag.UnknownToken, tok.Literal)
		p.bump()
	}
}

// parseNameExpression parses an identifier followed by any run of
// member accesses and call/index applications. Each postfix wraps
// what came before it, so a.b(1).c nests the way you'd expect.
func (p *Parser) parseNameExpression() {
	cp := p.b.Checkpoint()

	// a leading period is a With-block member reference
	if p.bumpIf(token.PERIOD) {
		if !p.bumpIf(token.IDENT) {
			p.bumpKeywordAsName()
		}
		p.b.StartNodeAt(cp, MemberExpression)
		p.b.FinishNode()
	} else {
		p.bump()
	}

	for {
		tok, ok := p.s.PeekSignificant()
		if !ok {
			return
		}
		switch tok.Type {
		case token.PERIOD:
			p.eatSpace()
			p.b.StartNodeAt(cp, MemberExpression)
			p.bump()
			if !p.bumpIf(token.IDENT) {
				p.bumpKeywordAsName()
			}
			p.b.FinishNode()

		case token.LPAREN:
			p.eatSpace()
			p.b.StartNodeAt(cp, CallExpression)
			p.bump()
			p.parseArguments()
			p.b.FinishNode()

		default:
			return
		}
	}
}

// bumpKeywordAsName accepts a keyword where a member name is
// expected; properties named Name or Type show up all the time.
func (p *Parser) bumpKeywordAsName() {
	tok, ok := p.s.Peek()
	if !ok {
		p.unexpectedEnd()
		return
	}
	if token.IsKeyword(tok.Type) {
		p.bump()
		return
	}
	p.ctx.Error(tok.Span(), vb6diag.UnknownToken, tok.Literal)
}

// parseArguments parses the comma separated list inside a call or
// index application, through the closing parenthesis.
func (p *Parser) parseArguments() {
	for {
		p.eatSpace()
		if p.s.IsEmpty() || p.atLineEnd() {
			p.unexpectedEnd()
			return
		}
		if p.bumpIf(token.RPAREN) {
			return
		}
		if p.bumpIf(token.COMMA) {
			continue
		}
		p.parseExpression(LOWEST)
	}
}
