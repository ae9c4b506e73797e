package cst

import (
	"github.com/navionguy/vb6parse/stream"
	"github.com/navionguy/vb6parse/token"
	"github.com/navionguy/vb6parse/vb6diag"
)

// Parser drives the cursor and the builder over one file. The
// grammar functions live across parser.go, statements.go,
// blocks.go and expressions.go; they all share the rule that a
// statement consumes exactly its own tokens, trivia included, and
// leaves the cursor at the start of the next construct.
type Parser struct {
	s   *stream.SourceStream
	b   *Builder
	ctx *vb6diag.ParserContext
}

// Parse tokenizes source and builds the module tree. The tree and
// the diagnostics are independent halves of the result: malformed
// input still yields a tree, with the bad spots wrapped in Unknown
// nodes and pinpointed by the diagnostics.
func Parse(source, fileName string) (*Tree, []vb6diag.Diagnostic) {
	s := stream.New(fileName, source)
	ctx := vb6diag.NewContext(fileName, source)
	p := &Parser{s: s, b: NewBuilder(), ctx: ctx}

	p.parseModule()
	return &Tree{FileName: fileName, Root: p.b.Finish()}, ctx.IntoErrors()
}

func (p *Parser) parseModule() {
	p.b.StartNode(Module)
	for !p.s.IsEmpty() {
		p.parseStatement()
	}
	p.b.FinishNode()
}

// parseStatement dispatches on the first one or two significant
// tokens of the line. Every branch consumes at least one token, so
// the module loop always makes progress.
func (p *Parser) parseStatement() {
	p.eatSpace()
	if p.s.IsEmpty() {
		return
	}

	kws := p.s.PeekKeywords(2)
	if len(kws) == 0 {
		// blank line or a comment line
		p.bump()
		return
	}

	switch kws[0] {
	case token.COLON:
		// statement separator, the rest of the line dispatches on
		// its own
		p.bump()

	case token.DIM:
		p.parseDeclaration(DimStatement)
	case token.REDIM:
		p.parseDeclaration(ReDimStatement)
	case token.CONST:
		p.parseDeclaration(ConstStatement)

	case token.PUBLIC, token.PRIVATE, token.FRIEND, token.STATIC:
		p.parsePrefixedStatement(kws)

	case token.SUB:
		p.parseProcedure(SubStatement)
	case token.FUNCTION:
		p.parseProcedure(FunctionStatement)
	case token.PROPERTY:
		p.parseProcedure(PropertyStatement)

	case token.IF:
		p.parseIf()
	case token.FOR:
		p.parseFor()
	case token.DO:
		p.parseDo()
	case token.WHILE:
		p.parseWhile()
	case token.SELECT:
		p.parseSelect()
	case token.WITH:
		p.parseWith()

	case token.OPTION:
		p.parseFlatStatement(OptionStatement)
	case token.ATTRIBUTE:
		p.parseFlatStatement(AttributeStatement)
	case token.ERASE:
		p.parseFlatStatement(EraseStatement)
	case token.EXIT:
		p.parseFlatStatement(ExitStatement)
	case token.CALL:
		p.parseFlatStatement(CallStatement)
	case token.ON:
		p.parseFlatStatement(OnErrorStatement)
	case token.GOTO, token.GOSUB, token.RETURN:
		p.parseFlatStatement(GotoStatement)
	case token.RESUME:
		p.parseFlatStatement(ResumeStatement)
	case token.STOP:
		p.parseFlatStatement(StopStatement)
	case token.END:
		// block parsers claim their own End pairs, so an End pair
		// reaching the dispatcher has no open block to close
		if len(kws) >= 2 && isBlockTerminator(kws[1]) {
			p.parseUnknownLine()
		} else {
			// the bare End statement
			p.parseFlatStatement(StopStatement)
		}
	case token.RAISEEVENT:
		p.parseFlatStatement(RaiseEventStatement)
	case token.IMPLEMENTS:
		p.parseFlatStatement(ImplementsStatement)
	case token.RANDOMIZE:
		p.parseFlatStatement(RandomizeStatement)
	case token.RSET:
		p.parseFlatStatement(RSetStatement)
	case token.LSET:
		p.parseFlatStatement(LSetStatement)
	case token.BEEP:
		p.parseFlatStatement(BeepStatement)
	case token.CHDIR:
		p.parseFlatStatement(ChDirStatement)
	case token.CHDRIVE:
		p.parseFlatStatement(ChDriveStatement)
	case token.APPACTIVATE:
		p.parseFlatStatement(AppActivateStatement)

	case token.OPEN:
		p.parseFlatStatement(OpenStatement)
	case token.CLOSE:
		p.parseFlatStatement(CloseStatement)
	case token.PRINT:
		p.parseFlatStatement(PrintStatement)
	case token.INPUT:
		p.parseFlatStatement(InputStatement)
	case token.WRITE:
		p.parseFlatStatement(WriteStatement)
	case token.GET:
		p.parseFlatStatement(GetStatement)
	case token.PUT:
		p.parseFlatStatement(PutStatement)
	case token.LINE:
		p.parseFlatStatement(LineStatement)
	case token.NAME:
		p.parseFlatStatement(NameStatement)
	case token.LOCK:
		p.parseFlatStatement(LockStatement)
	case token.ERROR:
		p.parseFlatStatement(ErrorStatement)

	case token.DECLARE:
		p.parseFlatStatement(DeclareStatement)
	case token.EVENT:
		p.parseFlatStatement(EventStatement)
	case token.TYPE:
		p.parseMemberBlock(TypeStatement, token.TYPE)
	case token.ENUM:
		p.parseMemberBlock(EnumStatement, token.ENUM)

	case token.VERSION:
		p.parseFlatStatement(VersionStatement)
	case token.BEGIN:
		p.parseBeginBlock()

	case token.LET, token.SET:
		p.parseFlatStatement(AssignmentStatement)

	case token.IDENT, token.ME, token.PERIOD:
		if p.isAtAssignment() {
			p.parseFlatStatement(AssignmentStatement)
		} else {
			p.parseFlatStatement(CallStatement)
		}

	default:
		p.parseUnknownLine()
	}
}

// parsePrefixedStatement routes lines that open with a visibility
// or lifetime keyword. The second significant token decides what
// the line really is.
func (p *Parser) parsePrefixedStatement(kws []token.TokenType) {
	if len(kws) < 2 {
		p.parseUnknownLine()
		return
	}

	switch kws[1] {
	case token.SUB:
		p.parseProcedure(SubStatement)
	case token.FUNCTION:
		p.parseProcedure(FunctionStatement)
	case token.PROPERTY:
		p.parseProcedure(PropertyStatement)
	case token.CONST:
		p.parseDeclaration(ConstStatement)
	case token.DECLARE:
		p.parseFlatStatement(DeclareStatement)
	case token.EVENT:
		p.parseFlatStatement(EventStatement)
	case token.TYPE:
		p.parseMemberBlock(TypeStatement, token.TYPE)
	case token.ENUM:
		p.parseMemberBlock(EnumStatement, token.ENUM)
	default:
		// Private x As Long, Public WithEvents btn As CommandButton, ...
		p.parseDeclaration(DimStatement)
	}
}

// isBlockTerminator reports whether the keyword closes a block
// construct when paired with End.
func isBlockTerminator(tt token.TokenType) bool {
	switch tt {
	case token.IF, token.SUB, token.FUNCTION, token.PROPERTY,
		token.SELECT, token.WITH, token.TYPE, token.ENUM:
		return true
	}
	return false
}

// parseUnknownLine wraps a line the dispatcher had no handler for.
// The tokens still land in the tree, under an Unknown node, and a
// diagnostic records what tripped us up.
func (p *Parser) parseUnknownLine() {
	tok, ok := p.s.Peek()
	if !ok {
		return
	}

	p.ctx.Error(tok.Span(), vb6diag.UnknownToken, tok.Literal)
	p.b.StartNode(Unknown)
	p.consumeToLineEnd()
	p.b.FinishNode()
}

// --- cursor/builder plumbing ---

// bump moves one token from the stream into the open node.
func (p *Parser) bump() {
	p.b.Token(p.s.ConsumeToken())
}

// bumpIf bumps the current token when it has the given type.
func (p *Parser) bumpIf(tt token.TokenType) bool {
	if p.s.AtToken(tt) {
		p.bump()
		return true
	}
	return false
}

// eatSpace consumes horizontal whitespace plus any line
// continuations, so callers see logical lines rather than
// physical ones.
func (p *Parser) eatSpace() {
	for {
		if p.s.AtToken(token.WS) {
			p.bump()
			continue
		}
		if p.atLineContinuation() {
			p.bump() // underscore
			p.bumpIf(token.WS)
			p.bumpIf(token.EOL)
			continue
		}
		return
	}
}

// atLineContinuation checks for the underscore-then-newline shape,
// allowing whitespace between the two.
func (p *Parser) atLineContinuation() bool {
	if !p.s.AtToken(token.UNDERSCORE) {
		return false
	}
	next, ok := p.s.PeekNth(1)
	if !ok {
		return false
	}
	if next.Type == token.EOL {
		return true
	}
	if next.Type != token.WS {
		return false
	}
	after, ok := p.s.PeekNth(2)
	return ok && after.Type == token.EOL
}

// atLineEnd reports whether only trivia remains on this line.
func (p *Parser) atLineEnd() bool {
	if p.s.IsEmpty() {
		return true
	}
	tok, _ := p.s.Peek()
	switch tok.Type {
	case token.EOL, token.COMMENT, token.REMCOMMENT:
		return true
	}
	return false
}

// eatLineEnd consumes trailing whitespace, a trailing comment and
// the newline closing the current line.
func (p *Parser) eatLineEnd() {
	p.eatSpace()
	p.bumpIf(token.COMMENT)
	p.bumpIf(token.REMCOMMENT)
	p.bumpIf(token.EOL)
}

// consumeToLineEnd bumps everything through the next newline,
// riding over line continuations.
func (p *Parser) consumeToLineEnd() {
	for !p.s.IsEmpty() {
		if p.atLineContinuation() {
			p.bump()
			p.bumpIf(token.WS)
			p.bumpIf(token.EOL)
			continue
		}
		if p.s.AtToken(token.EOL) {
			p.bump()
			return
		}
		p.bump()
	}
}

// isAtAssignment scans the rest of the line for a top-level '='
// before committing to the assignment shape. Parentheses are
// tracked so index expressions on the target don't fool it.
func (p *Parser) isAtAssignment() bool {
	depth := 0
	for n := 0; ; n++ {
		tok, ok := p.s.PeekNth(n)
		if !ok || tok.Type == token.EOL {
			return false
		}
		switch tok.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.ASSIGN:
			if depth == 0 {
				return true
			}
		}
	}
}

// unexpectedEnd reports running out of input mid-construct.
func (p *Parser) unexpectedEnd() {
	at := p.s.Offset()
	p.ctx.Error(token.Span{Start: at, End: at}, vb6diag.UnexpectedEndOfStream, "")
}
