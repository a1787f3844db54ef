package ast

import (
	"strconv"
	"strings"
)

// maxLineWidth is the width above which Pretty breaks a node over several lines
const maxLineWidth = 80

// String renders n as a single-line S-expression, in the syntax Parse reads
func (n *Node) String() string {
	ctx := newShowContext()
	ctx.showFlat(n)
	return ctx.String()
}

// Pretty renders n as an indented, multi-line S-expression
func Pretty(n *Node) string {
	ctx := newShowContext()
	ctx.showIndented(n)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	indent    int
	indentStr string
}

func newShowContext() *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		indentStr: "  ",
		indent:    0,
	}
}

func (ctx *showContext) currentIndent() string {
	return strings.Repeat(ctx.indentStr, ctx.indent)
}

func (ctx *showContext) showLeaf(n *Node) bool {
	switch {
	case n == nil || n.kind == None:
		ctx.WriteString(None.String())
	case n.kind == String:
		ctx.WriteString("(string " + strconv.Quote(n.Name.String()) + ")")
	case n.kind.HasName():
		ctx.WriteString("(" + n.kind.String() + " " + n.Name.String() + ")")
	case len(n.children) == 0:
		ctx.WriteString(n.kind.String())
	default:
		return false
	}
	return true
}

func (ctx *showContext) showFlat(n *Node) {
	if ctx.showLeaf(n) {
		return
	}
	ctx.WriteString("(" + n.kind.String())
	for _, child := range n.children {
		ctx.WriteString(" ")
		ctx.showFlat(child)
	}
	ctx.WriteString(")")
}

func (ctx *showContext) showIndented(n *Node) {
	if ctx.showLeaf(n) {
		return
	}
	flat := n.String()
	if len(flat)+len(ctx.currentIndent()) <= maxLineWidth {
		ctx.WriteString(flat)
		return
	}
	ctx.WriteString("(" + n.kind.String())
	ctx.indent++
	for _, child := range n.children {
		ctx.WriteString("\n")
		ctx.WriteString(ctx.currentIndent())
		ctx.showIndented(child)
	}
	ctx.indent--
	ctx.WriteString(")")
}
