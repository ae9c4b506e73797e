package cst

// Kind names the grammar construct a tree node represents.
type Kind string

const (
	Module Kind = "Module"

	// declarations
	DimStatement    Kind = "DimStatement"
	ReDimStatement  Kind = "ReDimStatement"
	ConstStatement  Kind = "ConstStatement"
	Declarator      Kind = "Declarator"
	ArrayBounds     Kind = "ArrayBounds"
	AsClause        Kind = "AsClause"
	Initializer     Kind = "Initializer"

	// blocks
	IfStatement       Kind = "IfStatement"
	ElseIfClause      Kind = "ElseIfClause"
	ElseClause        Kind = "ElseClause"
	ForStatement      Kind = "ForStatement"
	DoStatement       Kind = "DoStatement"
	WhileStatement    Kind = "WhileStatement"
	SelectStatement   Kind = "SelectStatement"
	CaseClause        Kind = "CaseClause"
	WithStatement     Kind = "WithStatement"
	SubStatement      Kind = "SubStatement"
	FunctionStatement Kind = "FunctionStatement"
	PropertyStatement Kind = "PropertyStatement"
	ParameterList     Kind = "ParameterList"
	Parameter         Kind = "Parameter"

	// line statements
	AssignmentStatement  Kind = "AssignmentStatement"
	CallStatement        Kind = "CallStatement"
	ExitStatement        Kind = "ExitStatement"
	OptionStatement      Kind = "OptionStatement"
	AttributeStatement   Kind = "AttributeStatement"
	EraseStatement       Kind = "EraseStatement"
	OnErrorStatement     Kind = "OnErrorStatement"
	GotoStatement        Kind = "GotoStatement"
	ResumeStatement      Kind = "ResumeStatement"
	StopStatement        Kind = "StopStatement"
	RaiseEventStatement  Kind = "RaiseEventStatement"
	ImplementsStatement  Kind = "ImplementsStatement"
	RandomizeStatement   Kind = "RandomizeStatement"
	RSetStatement        Kind = "RSetStatement"
	LSetStatement        Kind = "LSetStatement"
	BeepStatement        Kind = "BeepStatement"
	ChDirStatement       Kind = "ChDirStatement"
	ChDriveStatement     Kind = "ChDriveStatement"
	AppActivateStatement Kind = "AppActivateStatement"

	// file I/O statements
	OpenStatement  Kind = "OpenStatement"
	CloseStatement Kind = "CloseStatement"
	PrintStatement Kind = "PrintStatement"
	InputStatement Kind = "InputStatement"
	WriteStatement Kind = "WriteStatement"
	GetStatement   Kind = "GetStatement"
	PutStatement   Kind = "PutStatement"
	LineStatement  Kind = "LineStatement"
	NameStatement  Kind = "NameStatement"
	LockStatement  Kind = "LockStatement"
	ErrorStatement Kind = "ErrorStatement"

	// expressions
	BinaryExpression Kind = "BinaryExpression"
	UnaryExpression  Kind = "UnaryExpression"
	ParenExpression  Kind = "ParenExpression"
	CallExpression   Kind = "CallExpression"
	MemberExpression Kind = "MemberExpression"

	// module level declarations that stay flat or member-listed
	DeclareStatement Kind = "DeclareStatement"
	EventStatement   Kind = "EventStatement"
	TypeStatement    Kind = "TypeStatement"
	EnumStatement    Kind = "EnumStatement"

	// form and class file headers
	VersionStatement Kind = "VersionStatement"
	BeginBlock       Kind = "BeginBlock"

	// recovery
	Unknown Kind = "Unknown"
)
