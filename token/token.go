package token

import "strings"

type TokenType string

const (
	UNKNOWN = "UNKNOWN"

	// Trivia - kept as real tokens so the tree can reproduce
	// the file byte for byte
	WS         = "WS"
	EOL        = "EOL"
	COMMENT    = "COMMENT"
	REMCOMMENT = "REM_COMMENT"

	// Identifiers + literals
	IDENT   = "IDENT"
	INT     = "INT"     // 42, 42%
	LONG    = "LONG"    // 42&
	SINGLE  = "SINGLE"  // 42!
	DOUBLE  = "DOUBLE"  // 3.14, 2.5E+01, 42#
	DECIMAL = "DECIMAL" // 42@
	STRING  = "STRING"  // "a string literal"
	DATE    = "DATE"    // #12/31/1999#

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	BSLASH   = "\\"
	CARET    = "^"

	LT     = "<"
	GT     = ">"
	NOT_EQ = "<>"
	LTE    = "<="
	GTE    = ">="

	// Delimiters and markers
	PERIOD     = "."
	COMMA      = ","
	SEMICOLON  = ";"
	COLON      = ":"
	AMPERSAND  = "&"
	DOLLAR     = "$"
	UNDERSCORE = "_"
	PERCENT    = "%"
	OCTOTHORPE = "#"
	BANG       = "!"
	AT         = "@"

	LPAREN   = "("
	RPAREN   = ")"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	ACCESS        = "Access"
	ADDRESSOF     = "AddressOf"
	ALIAS         = "Alias"
	AND           = "And"
	APPACTIVATE   = "AppActivate"
	APPEND        = "Append"
	AS            = "As"
	ATTRIBUTE     = "Attribute"
	BASE          = "Base"
	BEEP          = "Beep"
	BEGIN         = "Begin"
	BINARY        = "Binary"
	BOOLEAN       = "Boolean"
	BYREF         = "ByRef"
	BYTE          = "Byte"
	BYVAL         = "ByVal"
	CALL          = "Call"
	CASE          = "Case"
	CHDIR         = "ChDir"
	CHDRIVE       = "ChDrive"
	CLASS         = "Class"
	CLOSE         = "Close"
	COMPARE       = "Compare"
	CONST         = "Const"
	CURRENCY      = "Currency"
	DATABASE      = "Database"
	DATEKW        = "Date"
	DECIMALKW     = "Decimal"
	DECLARE       = "Declare"
	DIM           = "Dim"
	DO            = "Do"
	DOUBLEKW      = "Double"
	EACH          = "Each"
	ELSE          = "Else"
	ELSEIF        = "ElseIf"
	EMPTY         = "Empty"
	END           = "End"
	ENUM          = "Enum"
	EQV           = "Eqv"
	ERASE         = "Erase"
	ERROR         = "Error"
	EVENT         = "Event"
	EXIT          = "Exit"
	EXPLICIT      = "Explicit"
	FALSE         = "False"
	FOR           = "For"
	FRIEND        = "Friend"
	FUNCTION      = "Function"
	GET           = "Get"
	GOSUB         = "GoSub"
	GOTO          = "Goto"
	IF            = "If"
	IMP           = "Imp"
	IMPLEMENTS    = "Implements"
	IN            = "In"
	INPUT         = "Input"
	INTEGER       = "Integer"
	IS            = "Is"
	LET           = "Let"
	LIB           = "Lib"
	LIKE          = "Like"
	LINE          = "Line"
	LOCK          = "Lock"
	LONGKW        = "Long"
	LOOP          = "Loop"
	LSET          = "LSet"
	ME            = "Me"
	MOD           = "Mod"
	MODULE        = "Module"
	NAME          = "Name"
	NEW           = "New"
	NEXT          = "Next"
	NOT           = "Not"
	NOTHING       = "Nothing"
	NULL          = "Null"
	OBJECT        = "Object"
	ON            = "On"
	OPEN          = "Open"
	OPTION        = "Option"
	OPTIONAL      = "Optional"
	OR            = "Or"
	OUTPUT        = "Output"
	PARAMARRAY    = "ParamArray"
	PRESERVE      = "Preserve"
	PRINT         = "Print"
	PRIVATE       = "Private"
	PROPERTY      = "Property"
	PUBLIC        = "Public"
	PUT           = "Put"
	RAISEEVENT    = "RaiseEvent"
	RANDOM        = "Random"
	RANDOMIZE     = "Randomize"
	READ          = "Read"
	REDIM         = "ReDim"
	RESUME        = "Resume"
	RETURN        = "Return"
	RSET          = "RSet"
	SELECT        = "Select"
	SET           = "Set"
	SINGLEKW      = "Single"
	STATIC        = "Static"
	STEP          = "Step"
	STOP          = "Stop"
	STRINGKW      = "String"
	SUB           = "Sub"
	THEN          = "Then"
	TO            = "To"
	TRUE          = "True"
	TYPE          = "Type"
	UNTIL         = "Until"
	VARIANT       = "Variant"
	VERSION       = "Version"
	WEND          = "Wend"
	WHILE         = "While"
	WITH          = "With"
	WITHEVENTS    = "WithEvents"
	WRITE         = "Write"
	XOR           = "Xor"
)

// Span is a half open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Token carries its exact source text plus the byte range it came
// from so the tree can always rebuild the original file.
type Token struct {
	Type    TokenType
	Literal string
	Start   int
	End     int
}

func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

var keywords = map[string]TokenType{
	"access":      ACCESS,
	"addressof":   ADDRESSOF,
	"alias":       ALIAS,
	"and":         AND,
	"appactivate": APPACTIVATE,
	"append":      APPEND,
	"as":          AS,
	"attribute":   ATTRIBUTE,
	"base":        BASE,
	"beep":        BEEP,
	"begin":       BEGIN,
	"binary":      BINARY,
	"boolean":     BOOLEAN,
	"byref":       BYREF,
	"byte":        BYTE,
	"byval":       BYVAL,
	"call":        CALL,
	"case":        CASE,
	"chdir":       CHDIR,
	"chdrive":     CHDRIVE,
	"class":       CLASS,
	"close":       CLOSE,
	"compare":     COMPARE,
	"const":       CONST,
	"currency":    CURRENCY,
	"database":    DATABASE,
	"date":        DATEKW,
	"decimal":     DECIMALKW,
	"declare":     DECLARE,
	"dim":         DIM,
	"do":          DO,
	"double":      DOUBLEKW,
	"each":        EACH,
	"else":        ELSE,
	"elseif":      ELSEIF,
	"empty":       EMPTY,
	"end":         END,
	"enum":        ENUM,
	"eqv":         EQV,
	"erase":       ERASE,
	"error":       ERROR,
	"event":       EVENT,
	"exit":        EXIT,
	"explicit":    EXPLICIT,
	"false":       FALSE,
	"for":         FOR,
	"friend":      FRIEND,
	"function":    FUNCTION,
	"get":         GET,
	"gosub":       GOSUB,
	"goto":        GOTO,
	"if":          IF,
	"imp":         IMP,
	"implements":  IMPLEMENTS,
	"in":          IN,
	"input":       INPUT,
	"integer":     INTEGER,
	"is":          IS,
	"let":         LET,
	"lib":         LIB,
	"like":        LIKE,
	"line":        LINE,
	"lock":        LOCK,
	"long":        LONGKW,
	"loop":        LOOP,
	"lset":        LSET,
	"me":          ME,
	"mod":         MOD,
	"module":      MODULE,
	"name":        NAME,
	"new":         NEW,
	"next":        NEXT,
	"not":         NOT,
	"nothing":     NOTHING,
	"null":        NULL,
	"object":      OBJECT,
	"on":          ON,
	"open":        OPEN,
	"option":      OPTION,
	"optional":    OPTIONAL,
	"or":          OR,
	"output":      OUTPUT,
	"paramarray":  PARAMARRAY,
	"preserve":    PRESERVE,
	"print":       PRINT,
	"private":     PRIVATE,
	"property":    PROPERTY,
	"public":      PUBLIC,
	"put":         PUT,
	"raiseevent":  RAISEEVENT,
	"random":      RANDOM,
	"randomize":   RANDOMIZE,
	"read":        READ,
	"redim":       REDIM,
	"resume":      RESUME,
	"return":      RETURN,
	"rset":        RSET,
	"select":      SELECT,
	"set":         SET,
	"single":      SINGLEKW,
	"static":      STATIC,
	"step":        STEP,
	"stop":        STOP,
	"string":      STRINGKW,
	"sub":         SUB,
	"then":        THEN,
	"to":          TO,
	"true":        TRUE,
	"type":        TYPE,
	"until":       UNTIL,
	"variant":     VARIANT,
	"version":     VERSION,
	"wend":        WEND,
	"while":       WHILE,
	"with":        WITH,
	"withevents":  WITHEVENTS,
	"write":       WRITE,
	"xor":         XOR,
}

// LookupIdent classifies an identifier run. Keyword matching is
// case insensitive, the token literal keeps the source spelling.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// symbols is ordered so multi-byte operators win over their
// single byte prefixes.
var symbols = []struct {
	Text string
	Type TokenType
}{
	{"<>", NOT_EQ},
	{"<=", LTE},
	{">=", GTE},
	{"=", ASSIGN},
	{"$", DOLLAR},
	{"_", UNDERSCORE},
	{"&", AMPERSAND},
	{"%", PERCENT},
	{"#", OCTOTHORPE},
	{"<", LT},
	{">", GT},
	{"(", LPAREN},
	{")", RPAREN},
	{",", COMMA},
	{"+", PLUS},
	{"-", MINUS},
	{"*", ASTERISK},
	{"\\", BSLASH},
	{"/", SLASH},
	{".", PERIOD},
	{":", COLON},
	{"^", CARET},
	{"!", BANG},
	{"[", LBRACKET},
	{"]", RBRACKET},
	{";", SEMICOLON},
	{"@", AT},
}

// LookupSymbol matches the longest operator/delimiter at the front
// of text. Returns the matched text and type, or ok == false.
func LookupSymbol(text string) (string, TokenType, bool) {
	for _, sym := range symbols {
		if strings.HasPrefix(text, sym.Text) {
			return sym.Text, sym.Type, true
		}
	}
	return "", UNKNOWN, false
}

// IsTrivia reports whether a token is whitespace, a newline, or a
// comment. Trivia still lands in the tree, the parser just skips
// over it when deciding what construct comes next.
func IsTrivia(tt TokenType) bool {
	switch tt {
	case WS, EOL, COMMENT, REMCOMMENT:
		return true
	}
	return false
}

var keywordTypes = buildKeywordSet()

func buildKeywordSet() map[TokenType]bool {
	set := make(map[TokenType]bool, len(keywords))
	for _, tt := range keywords {
		set[tt] = true
	}
	return set
}

// IsKeyword reports whether the token type is a reserved word.
func IsKeyword(tt TokenType) bool {
	return keywordTypes[tt]
}
