package cst

import (
	"fmt"

	"github.com/navionguy/vb6parse/token"
)

// Builder assembles the tree while the grammar functions walk the
// token stream. It is a stack of open nodes: StartNode pushes,
// Token appends to the top, FinishNode pops and attaches.
//
// Balance is a hard contract. A grammar function that starts a
// node and forgets to finish it is a bug in the parser, never a
// property of the input, so imbalance panics instead of turning
// into a diagnostic.
type Builder struct {
	stack []*Node
	root  *Node
}

func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode opens a node of the given kind.
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &Node{Kind: kind})
}

// Token appends tok as a leaf of the open node.
func (b *Builder) Token(tok token.Token) {
	if len(b.stack) == 0 {
		panic("cst: Token with no open node")
	}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, &Leaf{Tok: tok})
}

// FinishNode closes the open node and attaches it to its parent,
// or records it as the root when the stack empties.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("cst: FinishNode with no open node")
	}
	done := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if len(b.stack) == 0 {
		if b.root != nil {
			panic("cst: more than one root node")
		}
		b.root = done
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, done)
}

// Checkpoint marks a position in the open node so a wrapper node
// can be spliced in later. The expression parser uses this to wrap
// an already-built left operand into a BinaryExpression once it
// sees the operator.
type Checkpoint struct {
	depth    int
	children int
}

func (b *Builder) Checkpoint() Checkpoint {
	if len(b.stack) == 0 {
		panic("cst: Checkpoint with no open node")
	}
	top := b.stack[len(b.stack)-1]
	return Checkpoint{depth: len(b.stack), children: len(top.Children)}
}

// StartNodeAt opens a node of the given kind that adopts every
// child added to the checkpointed node since the checkpoint. The
// new node still needs its own FinishNode.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if len(b.stack) != cp.depth {
		panic(fmt.Sprintf("cst: StartNodeAt across frames, depth %d at checkpoint, %d now", cp.depth, len(b.stack)))
	}
	top := b.stack[len(b.stack)-1]
	if cp.children > len(top.Children) {
		panic("cst: stale checkpoint")
	}

	wrapped := &Node{Kind: kind}
	wrapped.Children = append(wrapped.Children, top.Children[cp.children:]...)
	top.Children = top.Children[:cp.children]
	b.stack = append(b.stack, wrapped)
}

// Finish hands back the root. The stack must be empty, anything
// else means a grammar function lost track of its nodes.
func (b *Builder) Finish() *Node {
	if len(b.stack) != 0 {
		panic(fmt.Sprintf("cst: Finish with %d unfinished node(s)", len(b.stack)))
	}
	if b.root == nil {
		panic("cst: Finish with no root node")
	}
	return b.root
}
