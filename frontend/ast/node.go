package ast

import (
	"slices"

	"github.com/cottand/sugar/frontend/intern"
)

// Node is a node of the mutable syntax tree produced by the parser and rewritten by the front end passes.
//
// A Node owns its children. Absent children are None nodes, never nil.
// Rewrites happen in place: either by editing children or through Replace,
// which keeps the Node's identity and therefore its position in its parent.
type Node struct {
	Range
	kind Kind
	// Name is the text of ID and literal nodes
	Name     intern.Symbol
	children []*Node
	parent   *Node
	// Scope is set on nodes which introduce a lexical scope
	Scope bool
}

// New builds a Node of kind anchored at the source range of at.
// nil children are turned into None placeholders.
func New(kind Kind, at Positioner, children ...*Node) *Node {
	n := &Node{kind: kind, Range: RangeOf(at)}
	n.children = make([]*Node, 0, len(children))
	for _, child := range children {
		n.Append(child)
	}
	return n
}

// NewScoped is like New but marks the node as opening a scope
func NewScoped(kind Kind, at Positioner, children ...*Node) *Node {
	n := New(kind, at, children...)
	n.Scope = true
	return n
}

// NewNone builds an absent-child placeholder
func NewNone(at Positioner) *Node {
	return New(None, at)
}

func NewID(at Positioner, name intern.Symbol) *Node {
	return NewNamed(ID, at, name)
}

// NewNamed builds a leaf that carries text, such as a literal
func NewNamed(kind Kind, at Positioner, name intern.Symbol) *Node {
	n := New(kind, at)
	n.Name = name
	return n
}

func (n *Node) Kind() Kind {
	if n == nil {
		return None
	}
	return n.kind
}

// SetKind retags a node in place, keeping its children.
// It is how absent placeholders become capabilities or sequences.
func (n *Node) SetKind(kind Kind) {
	n.kind = kind
}

// Symbol returns the Name of n, or the empty Symbol if n is nil
func (n *Node) Symbol() intern.Symbol {
	if n == nil {
		return intern.Symbol{}
	}
	return n.Name
}

func (n *Node) IsNone() bool {
	return n == nil || n.kind == None
}

func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i-th child, or nil if there is none
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the children of n. The returned slice may be modified freely.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

// Last returns the last child, or nil if there are none
func (n *Node) Last() *Node {
	return n.Child(len(n.children) - 1)
}

// Index returns the position of n in its parent, or -1 if it has none
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// Sibling returns the next child of n's parent, or nil
func (n *Node) Sibling() *Node {
	i := n.Index()
	if i < 0 {
		return nil
	}
	return n.parent.Child(i + 1)
}

// Append adds child as the last child of n
func (n *Node) Append(child *Node) {
	if child == nil {
		child = NewNone(n.Range)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// SetChild replaces the i-th child of n with child
func (n *Node) SetChild(i int, child *Node) {
	if child == nil {
		child = NewNone(n.children[i].Range)
	}
	n.children[i].parent = nil
	child.parent = n
	n.children[i] = child
}

// Replace overwrites n with the contents of with, which must be a freshly built subtree.
// n keeps its identity and its slot in its parent; with must not be used afterwards.
func (n *Node) Replace(with *Node) {
	parent := n.parent
	*n = *with
	n.parent = parent
	for _, child := range n.children {
		child.parent = n
	}
	with.children = nil
}

// Nearest returns the closest ancestor of n (including n itself) of the given kind, or nil
func (n *Node) Nearest(kind Kind) *Node {
	for p := n; p != nil; p = p.parent {
		if p.kind == kind {
			return p
		}
	}
	return nil
}

// EnclosingType returns the closest type definition containing n, or nil
func (n *Node) EnclosingType() *Node {
	for p := n; p != nil; p = p.parent {
		if p.kind.IsTypeDefinition() {
			return p
		}
	}
	return nil
}
