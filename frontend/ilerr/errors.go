package ilerr

import (
	"fmt"
	"go/token"
	"runtime/debug"
	"strings"

	"github.com/cottand/sugar/frontend/ast"
)

// DebugErrorPrinting makes errors include the frame that created them when printed
var DebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

// stackFrameLine is the line of a debug.Stack dump naming the caller of New
const stackFrameLine = 6

type ErrCode int

const (
	None ErrCode = iota
	Parse
	MalformedNode
	ClashesWithAutogeneratedCtor
	UnexpectedResultType
	FallthroughWithoutBody
)

type IleError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

func FormatWithCode(e IleError) string {
	if DebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			if lines := strings.Split(stack, "\n"); len(lines) > stackFrameLine {
				stack = strings.TrimSpace(lines[stackFrameLine])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatWithCodeAndSource prefixes FormatWithCode with the source location of e
func FormatWithCodeAndSource(e IleError, fset *token.FileSet) string {
	if fset == nil || !e.Pos().IsValid() {
		return FormatWithCode(e)
	}
	return fmt.Sprintf("%v: %s", fset.Position(e.Pos()), FormatWithCode(e))
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewParse struct {
	ast.Positioner
	ParserMessage string
	stack         []byte
}

func (e NewParse) Error() string {
	return e.ParserMessage
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewMalformedNode is reported when a node does not have the children its kind requires
type NewMalformedNode struct {
	ast.Positioner
	Kind   ast.Kind
	Reason string
	stack  []byte
}

func (e NewMalformedNode) Error() string {
	return fmt.Sprintf("malformed %v node: %s", e.Kind, e.Reason)
}
func (e NewMalformedNode) Code() ErrCode    { return MalformedNode }
func (e NewMalformedNode) getStack() []byte { return e.stack }
func (e NewMalformedNode) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewClashesWithAutogeneratedCtor struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewClashesWithAutogeneratedCtor) Error() string {
	return fmt.Sprintf("member %s clashes with autogenerated constructor", e.Name)
}
func (e NewClashesWithAutogeneratedCtor) Code() ErrCode    { return ClashesWithAutogeneratedCtor }
func (e NewClashesWithAutogeneratedCtor) getStack() []byte { return e.stack }
func (e NewClashesWithAutogeneratedCtor) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewUnexpectedResultType signals a constructor or behaviour which reached desugaring
// with a result type other than the one desugaring gives it
type NewUnexpectedResultType struct {
	ast.Positioner
	Method   ast.Kind
	Found    string
	Expected string
	stack    []byte
}

func (e NewUnexpectedResultType) Error() string {
	return fmt.Sprintf("%v has result type %s, but only %s is allowed", e.Method, e.Found, e.Expected)
}
func (e NewUnexpectedResultType) Code() ErrCode    { return UnexpectedResultType }
func (e NewUnexpectedResultType) getStack() []byte { return e.stack }
func (e NewUnexpectedResultType) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewFallthroughWithoutBody struct {
	ast.Positioner
	stack []byte
}

func (e NewFallthroughWithoutBody) Error() string {
	return "case has no body and no following case to take one from"
}
func (e NewFallthroughWithoutBody) Code() ErrCode    { return FallthroughWithoutBody }
func (e NewFallthroughWithoutBody) getStack() []byte { return e.stack }
func (e NewFallthroughWithoutBody) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
