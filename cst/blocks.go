package cst

import (
	"github.com/navionguy/vb6parse/token"
)

// parseCodeBlock parses statements until stop says the enclosing
// construct's boundary keyword is up next. Running out of input
// first means the block never terminated; that surfaces as an
// UnexpectedEndOfStream and the partial tree is kept.
func (p *Parser) parseCodeBlock(stop func() bool) {
	for {
		p.eatSpace()
		if p.s.IsEmpty() {
			p.unexpectedEnd()
			return
		}
		if stop() {
			return
		}
		p.parseStatement()
	}
}

func (p *Parser) atKeywordPair(first, second token.TokenType) bool {
	kws := p.s.PeekKeywords(2)
	return len(kws) >= 2 && kws[0] == first && kws[1] == second
}

func (p *Parser) atKeyword(tt token.TokenType) bool {
	kws := p.s.PeekKeywords(1)
	return len(kws) >= 1 && kws[0] == tt
}

// parseIf handles both the block form and the single-line form.
//
//	If cond Then
//	  ...
//	ElseIf cond Then
//	  ...
//	Else
//	  ...
//	End If
//
//	If cond Then DoSomething
func (p *Parser) parseIf() {
	p.b.StartNode(IfStatement)
	p.bump() // If
	p.eatSpace()
	p.parseExpression(LOWEST)
	p.eatSpace()
	p.bumpIf(token.THEN)
	p.eatSpace()

	if !p.atLineEnd() {
		// single-line If: the consequent rides on the same line
		p.consumeToLineEnd()
		p.b.FinishNode()
		return
	}
	p.eatLineEnd()
	p.parseCodeBlock(p.atIfBoundary)

	for p.atKeyword(token.ELSEIF) {
		p.b.StartNode(ElseIfClause)
		p.bump()
		p.eatSpace()
		p.parseExpression(LOWEST)
		p.eatSpace()
		p.bumpIf(token.THEN)
		p.eatLineEnd()
		p.parseCodeBlock(p.atIfBoundary)
		p.b.FinishNode()
		p.eatSpace()
	}

	if p.atKeyword(token.ELSE) {
		p.b.StartNode(ElseClause)
		p.bump()
		p.eatLineEnd()
		p.parseCodeBlock(func() bool { return p.atKeywordPair(token.END, token.IF) })
		p.b.FinishNode()
		p.eatSpace()
	}

	if p.atKeywordPair(token.END, token.IF) {
		p.bump()
		p.eatSpace()
		p.bump()
		p.eatLineEnd()
	}
	p.b.FinishNode()
}

func (p *Parser) atIfBoundary() bool {
	if p.atKeyword(token.ELSEIF) || p.atKeyword(token.ELSE) {
		return true
	}
	return p.atKeywordPair(token.END, token.IF)
}

// parseFor handles both counted loops and For Each.
func (p *Parser) parseFor() {
	p.b.StartNode(ForStatement)
	p.bump() // For
	p.eatSpace()
	if p.bumpIf(token.EACH) {
		p.eatSpace()
	}
	p.bumpIf(token.IDENT)
	p.eatSpace()
	if p.bumpIf(token.ASSIGN) {
		p.eatSpace()
		p.parseExpression(LOWEST)
		p.eatSpace()
	}
	if p.bumpIf(token.IN) {
		p.eatSpace()
		p.parseExpression(LOWEST)
		p.eatSpace()
	}
	if p.bumpIf(token.TO) {
		p.eatSpace()
		p.parseExpression(LOWEST)
		p.eatSpace()
	}
	if p.bumpIf(token.STEP) {
		p.eatSpace()
		p.parseExpression(LOWEST)
		p.eatSpace()
	}
	p.eatLineEnd()

	p.parseCodeBlock(func() bool { return p.atKeyword(token.NEXT) })
	if p.atKeyword(token.NEXT) {
		p.consumeToLineEnd()
	}
	p.b.FinishNode()
}

// parseDo handles Do [While|Until cond] ... Loop [While|Until cond].
func (p *Parser) parseDo() {
	p.b.StartNode(DoStatement)
	p.bump() // Do
	p.eatSpace()
	if p.bumpIf(token.WHILE) || p.bumpIf(token.UNTIL) {
		p.eatSpace()
		p.parseExpression(LOWEST)
	}
	p.eatLineEnd()

	p.parseCodeBlock(func() bool { return p.atKeyword(token.LOOP) })
	if p.atKeyword(token.LOOP) {
		p.consumeToLineEnd()
	}
	p.b.FinishNode()
}

// parseWhile handles the older While ... Wend loop.
func (p *Parser) parseWhile() {
	p.b.StartNode(WhileStatement)
	p.bump() // While
	p.eatSpace()
	p.parseExpression(LOWEST)
	p.eatLineEnd()

	p.parseCodeBlock(func() bool { return p.atKeyword(token.WEND) })
	if p.atKeyword(token.WEND) {
		p.consumeToLineEnd()
	}
	p.b.FinishNode()
}

// parseSelect handles Select Case blocks. Each Case line's arm
// list (values, ranges, Is comparisons, Else) stays a flat run;
// the clause bodies parse as normal statement lists.
func (p *Parser) parseSelect() {
	p.b.StartNode(SelectStatement)
	p.bump() // Select
	p.eatSpace()
	p.bumpIf(token.CASE)
	p.eatSpace()
	p.parseExpression(LOWEST)
	p.eatLineEnd()

	for {
		p.eatSpace()
		if p.s.IsEmpty() {
			p.unexpectedEnd()
			break
		}
		if p.atKeyword(token.CASE) {
			p.b.StartNode(CaseClause)
			p.bump()
			p.consumeRestOfLine()
			p.bumpIf(token.EOL)
			p.parseCodeBlock(p.atCaseBoundary)
			p.b.FinishNode()
			continue
		}
		if p.atKeywordPair(token.END, token.SELECT) {
			p.bump()
			p.eatSpace()
			p.bump()
			p.eatLineEnd()
			break
		}
		// stray line between Select Case and the first Case
		p.parseStatement()
	}
	p.b.FinishNode()
}

func (p *Parser) atCaseBoundary() bool {
	return p.atKeyword(token.CASE) || p.atKeywordPair(token.END, token.SELECT)
}

// parseWith handles With expr ... End With.
func (p *Parser) parseWith() {
	p.b.StartNode(WithStatement)
	p.bump() // With
	p.eatSpace()
	p.parseExpression(LOWEST)
	p.eatLineEnd()

	p.parseCodeBlock(func() bool { return p.atKeywordPair(token.END, token.WITH) })
	if p.atKeywordPair(token.END, token.WITH) {
		p.bump()
		p.eatSpace()
		p.bump()
		p.eatLineEnd()
	}
	p.b.FinishNode()
}

// procTerminator maps a procedure node kind to the keyword that
// closes it.
func procTerminator(kind Kind) token.TokenType {
	switch kind {
	case SubStatement:
		return token.SUB
	case FunctionStatement:
		return token.FUNCTION
	}
	return token.PROPERTY
}

// parseProcedure handles Sub, Function and Property blocks,
// including the optional visibility prefix, the parameter list and
// the return type clause.
func (p *Parser) parseProcedure(kind Kind) {
	p.b.StartNode(kind)

	// visibility/lifetime prefix, if any
	tok, _ := p.s.Peek()
	switch tok.Type {
	case token.PUBLIC, token.PRIVATE, token.FRIEND, token.STATIC:
		p.bump()
		p.eatSpace()
	}
	p.bump() // Sub | Function | Property
	p.eatSpace()

	if kind == PropertyStatement {
		// Get, Let or Set
		if p.bumpIf(token.GET) || p.bumpIf(token.LET) || p.bumpIf(token.SET) {
			p.eatSpace()
		}
	}

	p.bumpIf(token.IDENT)
	p.eatSpace()
	if p.s.AtToken(token.LPAREN) {
		p.parseParameterList()
		p.eatSpace()
	}
	if p.s.AtToken(token.AS) {
		p.parseAsClause()
	}
	p.eatLineEnd()

	term := procTerminator(kind)
	p.parseCodeBlock(func() bool { return p.atKeywordPair(token.END, term) })
	if p.atKeywordPair(token.END, term) {
		p.bump()
		p.eatSpace()
		p.bump()
		p.eatLineEnd()
	}
	p.b.FinishNode()
}

// parseParameterList parses "( param, param, ... )" where each
// parameter may carry Optional/ByVal/ByRef/ParamArray markers, an
// array marker, an As clause and a default value.
func (p *Parser) parseParameterList() {
	p.b.StartNode(ParameterList)
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

		p.parseParameter()
		p.eatSpace()
		if p.bumpIf(token.COMMA) {
			continue
		}
		if p.bumpIf(token.RPAREN) {
			break
		}
	}
	p.b.FinishNode()
}

func (p *Parser) parseParameter() {
	p.b.StartNode(Parameter)

	for {
		if p.bumpIf(token.OPTIONAL) || p.bumpIf(token.BYVAL) ||
			p.bumpIf(token.BYREF) || p.bumpIf(token.PARAMARRAY) {
			p.eatSpace()
			continue
		}
		break
	}

	p.bumpIf(token.IDENT)
	p.eatSpace()

	// array marker: name()
	if p.s.AtToken(token.LPAREN) {
		next, ok := p.s.PeekNth(1)
		if ok && next.Type == token.RPAREN {
			p.bump()
			p.bump()
			p.eatSpace()
		}
	}

	if p.s.AtToken(token.AS) {
		p.parseAsClause()
		p.eatSpace()
	}
	if p.s.AtToken(token.ASSIGN) {
		p.b.StartNode(Initializer)
		p.bump()
		p.eatSpace()
		p.parseExpression(LOWEST)
		p.b.FinishNode()
	}
	p.b.FinishNode()
}

// parseBeginBlock handles the Begin ... End property blocks that
// open form and class files. The head line names the control or
// class, the property lines inside stay flat, and nested Begin
// blocks recurse. A bare End line closes the block.
func (p *Parser) parseBeginBlock() {
	p.b.StartNode(BeginBlock)
	p.consumeToLineEnd() // Begin VB.Form Form1

	for {
		p.eatSpace()
		if p.s.IsEmpty() {
			p.unexpectedEnd()
			break
		}
		if p.atKeyword(token.BEGIN) {
			p.parseBeginBlock()
			continue
		}
		if p.atKeyword(token.END) {
			p.consumeToLineEnd()
			break
		}
		p.consumeToLineEnd()
	}
	p.b.FinishNode()
}

// parseMemberBlock handles Type and Enum blocks. The member lines
// inside stay flat; only the head line and the End terminator have
// structure worth modeling.
func (p *Parser) parseMemberBlock(kind Kind, term token.TokenType) {
	p.b.StartNode(kind)
	p.consumeToLineEnd() // head line

	for {
		p.eatSpace()
		if p.s.IsEmpty() {
			p.unexpectedEnd()
			break
		}
		if p.atKeywordPair(token.END, term) {
			p.bump()
			p.eatSpace()
			p.bump()
			p.eatLineEnd()
			break
		}
		p.consumeToLineEnd()
	}
	p.b.FinishNode()
}
