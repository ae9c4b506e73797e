package cst

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navionguy/vb6parse/vb6diag"
)

func TestDimStatement(t *testing.T) {
	tree, diags := Parse("Dim x As Integer\n", "test.bas")

	assert.Empty(t, diags)
	assert.Equal(t, Module, tree.RootKind())
	require.True(t, tree.ContainsKind(DimStatement))

	dump := tree.DebugTree()
	assert.Contains(t, dump, "DimStatement")
	assert.Contains(t, dump, "Declarator")
	assert.Contains(t, dump, "AsClause")
	assert.Contains(t, dump, `Integer`)
	assert.Equal(t, "Dim x As Integer\n", tree.Text())
}

func TestWithEventsDeclaration(t *testing.T) {
	input := "Private WithEvents m_button As CommandButton\n"
	tree, diags := Parse(input, "form1.frm")

	assert.Empty(t, diags)
	require.True(t, tree.ContainsKind(DimStatement))

	dump := tree.DebugTree()
	assert.Contains(t, dump, "WithEvents")
	assert.Contains(t, dump, "m_button")
	assert.Contains(t, dump, "CommandButton")
	assert.Equal(t, input, tree.Text())
}

func TestRandomizeIsAFlatRun(t *testing.T) {
	tree, diags := Parse("Randomize 42\n", "test.bas")

	assert.Empty(t, diags)
	nodes := tree.FindChildrenByKind(RandomizeStatement)
	require.Len(t, nodes, 1)

	// flat: keyword, whitespace, the literal, newline, and no
	// nested expression nodes
	assert.Len(t, nodes[0].Children, 4)
	assert.Equal(t, "Randomize 42\n", tree.Text())
}

func TestTruncatedDeclaration(t *testing.T) {
	tree, diags := Parse("Dim x As ", "test.bas")

	require.Len(t, diags, 1)
	assert.Equal(t, vb6diag.UnexpectedEndOfStream, diags[0].Code)

	// the prefix that was consumed is all still in the tree
	assert.Equal(t, "Dim x As ", tree.Text())
	assert.True(t, tree.ContainsKind(DimStatement))
}

func TestDeclarationVariants(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"Dim arr(10) As String\n", DimStatement},
		{"Dim arr(1 To 20, 0 To 5)\n", DimStatement},
		{"Dim s As String * 40\n", DimStatement},
		{"Dim o As New VB.Collection\n", DimStatement},
		{"Dim a, b As Long, c\n", DimStatement},
		{"Public g_count As Long\n", DimStatement},
		{"Const MAX As Long = 100\n", ConstStatement},
		{"Private Const GREETING = \"hi\"\n", ConstStatement},
		{"ReDim Preserve arr(1 To 20)\n", ReDimStatement},
		{"Static hits As Integer\n", DimStatement},
	}

	for _, tt := range tests {
		tree, diags := Parse(tt.input, "test.bas")
		assert.Empty(t, diags, "input %q", tt.input)
		assert.True(t, tree.ContainsKind(tt.kind), "input %q missing %s", tt.input, tt.kind)
		assert.Equal(t, tt.input, tree.Text(), "input %q", tt.input)
	}
}

func TestLineContinuation(t *testing.T) {
	input := "Dim a, _\n    b As Long\n"
	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.Equal(t, input, tree.Text())

	// one statement, two declarators
	assert.Len(t, tree.FindChildrenByKind(DimStatement), 1)
	assert.Len(t, tree.FindChildrenByKind(Declarator), 2)
}

// a continuation between operand and operator keeps the logical
// line, and the expression, going
func TestLineContinuationInExpression(t *testing.T) {
	input := "Const V = 1 _\n    + 2\n"
	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(BinaryExpression))
	assert.False(t, tree.ContainsKind(Unknown))
	assert.Equal(t, input, tree.Text())
}

func TestColonSeparatedStatements(t *testing.T) {
	input := "Dim x As Long: x = 1\n"
	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(DimStatement))
	assert.True(t, tree.ContainsKind(AssignmentStatement))
	assert.Equal(t, input, tree.Text())
}

func TestIfBlock(t *testing.T) {
	input := strings.Join([]string{
		"If x > 1 Then",
		"    y = 2",
		"ElseIf x < 0 Then",
		"    y = 0",
		"Else",
		"    y = 3",
		"End If",
		"",
	}, "\n")

	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(IfStatement))
	assert.True(t, tree.ContainsKind(ElseIfClause))
	assert.True(t, tree.ContainsKind(ElseClause))
	assert.True(t, tree.ContainsKind(BinaryExpression))
	assert.Len(t, tree.FindChildrenByKind(AssignmentStatement), 3)
	assert.Equal(t, input, tree.Text())
}

func TestSingleLineIf(t *testing.T) {
	input := "If done Then Beep\n"
	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.Len(t, tree.FindChildrenByKind(IfStatement), 1)
	assert.Equal(t, input, tree.Text())
}

func TestLoops(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"For i = 1 To 10 Step 2\n    total = total + i\nNext i\n", ForStatement},
		{"For Each item In list\n    Beep\nNext\n", ForStatement},
		{"Do While x < 10\n    x = x + 1\nLoop\n", DoStatement},
		{"Do\n    x = x + 1\nLoop Until x > 10\n", DoStatement},
		{"While x < 3\n    x = x + 1\nWend\n", WhileStatement},
	}

	for _, tt := range tests {
		tree, diags := Parse(tt.input, "test.bas")
		assert.Empty(t, diags, "input %q", tt.input)
		assert.True(t, tree.ContainsKind(tt.kind), "input %q missing %s", tt.input, tt.kind)
		assert.Equal(t, tt.input, tree.Text(), "input %q", tt.input)
	}
}

func TestSelectCase(t *testing.T) {
	input := strings.Join([]string{
		"Select Case n",
		"Case 1",
		"    Beep",
		"Case 2 To 5",
		"    Beep",
		"Case Else",
		"    Beep",
		"End Select",
		"",
	}, "\n")

	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(SelectStatement))
	assert.Len(t, tree.FindChildrenByKind(CaseClause), 3)
	assert.Equal(t, input, tree.Text())
}

func TestWithBlock(t *testing.T) {
	input := "With frm.Caption\n    .Value = 1\nEnd With\n"
	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(WithStatement))
	assert.True(t, tree.ContainsKind(MemberExpression))
	assert.Equal(t, input, tree.Text())
}

func TestProcedures(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"Private Sub Form_Load()\n    Randomize\nEnd Sub\n", SubStatement},
		{"Public Function Add(a As Long, b As Long) As Long\n    Add = a + b\nEnd Function\n", FunctionStatement},
		{"Property Get Count() As Long\n    Count = m_count\nEnd Property\n", PropertyStatement},
		{"Sub Log(Optional msg As String = \"\")\n    Beep\nEnd Sub\n", SubStatement},
	}

	for _, tt := range tests {
		tree, diags := Parse(tt.input, "test.bas")
		assert.Empty(t, diags, "input %q", tt.input)
		assert.True(t, tree.ContainsKind(tt.kind), "input %q missing %s", tt.input, tt.kind)
		assert.Equal(t, tt.input, tree.Text(), "input %q", tt.input)
	}
}

func TestFileStatements(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"Open \"data.txt\" For Input As #1\n", OpenStatement},
		{"Close #1\n", CloseStatement},
		{"Print #1, \"hello\"\n", PrintStatement},
		{"Get #1, , rec\n", GetStatement},
		{"Put #1, , rec\n", PutStatement},
		{"Name \"old.txt\" As \"new.txt\"\n", NameStatement},
	}

	for _, tt := range tests {
		tree, diags := Parse(tt.input, "test.bas")
		assert.Empty(t, diags, "input %q", tt.input)
		assert.True(t, tree.ContainsKind(tt.kind), "input %q missing %s", tt.input, tt.kind)
		assert.Equal(t, tt.input, tree.Text(), "input %q", tt.input)
	}
}

func TestExpressionPrecedence(t *testing.T) {
	// the multiplication binds tighter, so it must sit deeper in
	// the tree than the addition
	tree, diags := Parse("x = 1 + 2 * 3\n", "test.bas")
	assert.Empty(t, diags)

	// assignment lines stay flat, so test through a declaration
	// initializer instead
	tree, diags = Parse("Const V = 1 + 2 * 3\n", "test.bas")
	assert.Empty(t, diags)

	bins := tree.FindChildrenByKind(BinaryExpression)
	require.Len(t, bins, 2)

	// the outer node spans the whole expression, the inner one
	// only the product
	outer := bins[0].Span()
	inner := bins[1].Span()
	assert.True(t, outer.Start < inner.Start || outer.End > inner.End,
		"expected the product nested inside the sum")
	assert.Equal(t, "2 * 3", strings.TrimSpace(nodeText(bins[1])))
}

func TestRightAssociativeExponent(t *testing.T) {
	tree, diags := Parse("Const V = 2 ^ 3 ^ 2\n", "test.bas")
	assert.Empty(t, diags)

	bins := tree.FindChildrenByKind(BinaryExpression)
	require.Len(t, bins, 2)
	assert.Equal(t, "3 ^ 2", strings.TrimSpace(nodeText(bins[1])))
}

func TestCallAndMemberExpressions(t *testing.T) {
	tree, diags := Parse("Const V = a.b(1).c\n", "test.bas")
	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(MemberExpression))
	assert.True(t, tree.ContainsKind(CallExpression))
}

func TestCallWithSpaceBeforeParen(t *testing.T) {
	input := "Const V = Foo (1)\n"
	tree, diags := Parse(input, "test.bas")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(CallExpression))
	assert.Equal(t, input, tree.Text())
}

func TestFormHeader(t *testing.T) {
	input := strings.Join([]string{
		`VERSION 5.00`,
		`Begin VB.Form Form1`,
		`   Caption         =   "Form1"`,
		`   ClientHeight    =   3195`,
		`   Begin VB.CommandButton Command1`,
		`      Caption         =   "OK"`,
		`   End`,
		`End`,
		`Attribute VB_Name = "Form1"`,
		``,
	}, "\r\n")

	tree, diags := Parse(input, "form1.frm")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(VersionStatement))
	assert.Len(t, tree.FindChildrenByKind(BeginBlock), 2)
	assert.True(t, tree.ContainsKind(AttributeStatement))
	assert.Equal(t, input, tree.Text())
}

func TestClassHeader(t *testing.T) {
	input := strings.Join([]string{
		`VERSION 1.0 CLASS`,
		`BEGIN`,
		`  MultiUse = -1  'True`,
		`END`,
		`Attribute VB_Name = "CWidget"`,
		``,
	}, "\r\n")

	tree, diags := Parse(input, "cwidget.cls")

	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(VersionStatement))
	assert.True(t, tree.ContainsKind(BeginBlock))
	assert.Equal(t, input, tree.Text())
}

// an End pair with no open block is a problem worth reporting, a
// bare End statement is not
func TestStrayEndPair(t *testing.T) {
	tree, diags := Parse("End If\n", "test.bas")
	require.Len(t, diags, 1)
	assert.Equal(t, vb6diag.UnknownToken, diags[0].Code)
	assert.True(t, tree.ContainsKind(Unknown))
	assert.Equal(t, "End If\n", tree.Text())

	tree, diags = Parse("End\n", "test.bas")
	assert.Empty(t, diags)
	assert.True(t, tree.ContainsKind(StopStatement))
}

func TestUnknownLineRecovery(t *testing.T) {
	input := "Dim x As Integer\n&garbage here\nRandomize\n"
	tree, diags := Parse(input, "test.bas")

	// exactly one diagnostic for the one bad line
	require.Len(t, diags, 1)
	assert.Equal(t, vb6diag.UnknownToken, diags[0].Code)
	assert.Equal(t, "&", diags[0].Detail)

	// the neighbors still parsed, and nothing was lost
	assert.True(t, tree.ContainsKind(DimStatement))
	assert.True(t, tree.ContainsKind(RandomizeStatement))
	assert.True(t, tree.ContainsKind(Unknown))
	assert.Equal(t, input, tree.Text())
}

func TestDiagnosticsAreInSourceOrder(t *testing.T) {
	input := "&one\nDim y As Integer\n&two\n"
	_, diags := Parse(input, "test.bas")

	require.Len(t, diags, 2)
	assert.LessOrEqual(t, diags[0].Span.Start, diags[1].Span.Start)
}

func TestVariableNameTooLong(t *testing.T) {
	name := strings.Repeat("x", 300)
	_, diags := Parse("Dim "+name+" As Integer\n", "test.bas")

	require.Len(t, diags, 1)
	assert.Equal(t, vb6diag.VariableNameTooLong, diags[0].Code)
}

// the round-trip law: leaf concatenation equals the input exactly,
// diagnostics or not
func TestLosslessRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"' only a comment\n",
		"Option Explicit\n\nDim x As Integer ' inline\nx = x + 1\n",
		"Attribute VB_Name = \"Module1\"\n",
		"If a Then\nEnd If\n",
		"If broken\n",
		"Sub Dangling()\n    Beep\n",
		"&& complete garbage ))\nDim ok As Long\n",
		"Type Point\n    x As Long\n    y As Long\nEnd Type\n",
		"Enum Colors\n    Red\n    Green\nEnd Enum\n",
		"Declare Function GetTickCount Lib \"kernel32\" () As Long\n",
		"On Error Resume Next\nErase arr\nExit Sub\n",
		"RSet padded = value\nLSet padded = value\n",
		"Call DoWork(1, 2)\nDoWork 1, 2\n",
		"no newline at the end",
	}

	for _, input := range inputs {
		tree, _ := Parse(input, "test.bas")
		assert.Equal(t, input, tree.Text(), "round trip failed for %q", input)
	}
}

func TestJSONProjectionIsStable(t *testing.T) {
	input := "Dim x As Integer\n"

	first, _ := Parse(input, "test.bas")
	second, _ := Parse(input, "test.bas")

	a, err := json.Marshal(first.ToJSON())
	require.NoError(t, err)
	b, err := json.Marshal(second.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	var round JSONNode
	require.NoError(t, json.Unmarshal(a, &round))
	assert.Equal(t, "Module", round.Kind)
	require.NotEmpty(t, round.Children)
	assert.Equal(t, "DimStatement", round.Children[0].Kind)
}

func nodeText(n *Node) string {
	var out strings.Builder
	collectText(n, &out)
	return out.String()
}

func collectText(n *Node, out *strings.Builder) {
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Leaf:
			out.WriteString(c.Tok.Literal)
		case *Node:
			collectText(c, out)
		}
	}
}
