package cst

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/navionguy/vb6parse/token"
)

// Element is either a Node or a Leaf. The two together make the
// tree lossless: every byte of the file sits in exactly one leaf.
type Element interface {
	element()
}

// Node is a typed interior node. Children hold nodes and leaves in
// source order.
type Node struct {
	Kind     Kind
	Children []Element
}

func (n *Node) element() {}

// Leaf wraps one token from the lexer.
type Leaf struct {
	Tok token.Token
}

func (l *Leaf) element() {}

// Span covers the node's first through last leaf. A node with no
// leaves reports a zero span.
func (n *Node) Span() token.Span {
	first, ok := firstLeaf(n)
	if !ok {
		return token.Span{}
	}
	last, _ := lastLeaf(n)
	return token.Span{Start: first.Tok.Start, End: last.Tok.End}
}

func firstLeaf(n *Node) (*Leaf, bool) {
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Leaf:
			return c, true
		case *Node:
			if leaf, ok := firstLeaf(c); ok {
				return leaf, true
			}
		}
	}
	return nil, false
}

func lastLeaf(n *Node) (*Leaf, bool) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		switch c := n.Children[i].(type) {
		case *Leaf:
			return c, true
		case *Node:
			if leaf, ok := lastLeaf(c); ok {
				return leaf, true
			}
		}
	}
	return nil, false
}

// Tree owns the finished root node for one file. It is immutable
// once the parse returns it.
type Tree struct {
	FileName string
	Root     *Node
}

// RootKind is the kind of the root node.
func (t *Tree) RootKind() Kind {
	return t.Root.Kind
}

// Text rebuilds the source by concatenating every leaf in order.
// For a correct parse this equals the original input exactly.
func (t *Tree) Text() string {
	var out bytes.Buffer
	writeText(&out, t.Root)
	return out.String()
}

func writeText(out *bytes.Buffer, n *Node) {
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Leaf:
			out.WriteString(c.Tok.Literal)
		case *Node:
			writeText(out, c)
		}
	}
}

// DebugTree renders an indented dump of the tree, node kinds with
// byte ranges and token leaves with their text. Handy in tests and
// when staring at a parse that went sideways.
func (t *Tree) DebugTree() string {
	var out bytes.Buffer
	writeDebug(&out, t.Root, 0)
	return out.String()
}

func writeDebug(out *bytes.Buffer, n *Node, depth int) {
	span := n.Span()
	fmt.Fprintf(out, "%s%s@%d..%d\n", strings.Repeat("  ", depth), n.Kind, span.Start, span.End)
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Leaf:
			fmt.Fprintf(out, "%s%s@%d..%d %q\n",
				strings.Repeat("  ", depth+1), c.Tok.Type, c.Tok.Start, c.Tok.End, c.Tok.Literal)
		case *Node:
			writeDebug(out, c, depth+1)
		}
	}
}

// FindChildrenByKind collects every descendant node of the given
// kind, in source order.
func (t *Tree) FindChildrenByKind(kind Kind) []*Node {
	var found []*Node
	collectKind(t.Root, kind, &found)
	return found
}

func collectKind(n *Node, kind Kind, found *[]*Node) {
	for _, child := range n.Children {
		if c, ok := child.(*Node); ok {
			if c.Kind == kind {
				*found = append(*found, c)
			}
			collectKind(c, kind, found)
		}
	}
}

// ContainsKind reports whether any descendant node has the kind.
func (t *Tree) ContainsKind(kind Kind) bool {
	return len(t.FindChildrenByKind(kind)) > 0
}

// ChildCount is the number of direct children under the root.
func (t *Tree) ChildCount() int {
	return len(t.Root.Children)
}

// JSONNode is the serializable projection of the tree, one entry
// per node or token, children recursively.
type JSONNode struct {
	Kind     string     `json:"kind"`
	Text     string     `json:"text,omitempty"`
	IsToken  bool       `json:"is_token,omitempty"`
	Children []JSONNode `json:"children,omitempty"`
}

// ToJSON projects the tree for snapshot tests and API consumers.
func (t *Tree) ToJSON() JSONNode {
	return projectNode(t.Root)
}

func projectNode(n *Node) JSONNode {
	jn := JSONNode{Kind: string(n.Kind)}
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Leaf:
			jn.Children = append(jn.Children, JSONNode{
				Kind:    string(c.Tok.Type),
				Text:    c.Tok.Literal,
				IsToken: true,
			})
		case *Node:
			jn.Children = append(jn.Children, projectNode(c))
		}
	}
	return jn
}
