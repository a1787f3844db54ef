package ast

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/cottand/sugar/frontend/intern"
	"github.com/cottand/sugar/util"
	"github.com/pkg/errors"
)

// Parse reads a single tree written as an S-expression, the syntax Node.String prints:
//
//	(class (id Foo) x x x (members (fun x (id apply) x x x x (seq true))))
//
// Bare words are childless nodes of that kind, x is an absent child, and
// id, int, float and string nodes carry their text as their only element.
//
// The file is registered in fset so node positions can be reported.
// Malformed input yields a *SyntaxError.
func Parse(fset *token.FileSet, filename string, src []byte, in intern.Interner) (*Node, error) {
	file := fset.AddFile(filename, -1, len(src))
	r := &reader{file: file, fset: fset, interner: in}
	r.s.Init(bytes.NewReader(src))
	r.s.Filename = filename
	r.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings |
		scanner.ScanComments | scanner.SkipComments
	r.s.IsIdentRune = func(ch rune, i int) bool {
		return ch == '_' || ch == '$' || ch == '\'' && i > 0 || unicode.IsLetter(ch) || unicode.IsDigit(ch) && i > 0
	}
	r.s.Error = func(s *scanner.Scanner, msg string) {
		if r.scanErr == nil {
			r.scanErr = r.errorAt(file.Pos(s.Pos().Offset), "%s", msg)
		}
	}
	return r.read()
}

// ParseString is Parse for a standalone source string
func ParseString(src string, in intern.Interner) (*Node, error) {
	return Parse(token.NewFileSet(), "<input>", []byte(src), in)
}

type reader struct {
	s        scanner.Scanner
	file     *token.File
	fset     *token.FileSet
	interner intern.Interner
	scanErr  error

	open util.Stack[*Node]
	root *Node
}

func (r *reader) pos() token.Pos {
	return r.file.Pos(r.s.Position.Offset)
}

// SyntaxError is a tree that could not be read
type SyntaxError struct {
	Range
	Position token.Position
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Position, e.Msg)
}

func (r *reader) errorAt(pos token.Pos, format string, args ...any) error {
	return errors.WithStack(&SyntaxError{
		Range:    Range{PosStart: pos, PosEnd: pos},
		Position: r.fset.Position(pos),
		Msg:      fmt.Sprintf(format, args...),
	})
}

func (r *reader) errorf(format string, args ...any) error {
	return r.errorAt(r.pos(), format, args...)
}

func (r *reader) read() (*Node, error) {
	for tok := r.s.Scan(); tok != scanner.EOF; tok = r.s.Scan() {
		if r.scanErr != nil {
			return nil, r.scanErr
		}
		start := r.pos()
		switch tok {
		case '(':
			n, err := r.openNode(start)
			if err != nil {
				return nil, err
			}
			r.open.Push(n)

		case ')':
			n, ok := r.open.Pop()
			if !ok {
				return nil, r.errorf("unbalanced ')'")
			}
			n.PosEnd = r.file.Pos(r.s.Position.Offset + 1)
			if err := r.attach(n); err != nil {
				return nil, err
			}

		case scanner.Ident:
			text := r.s.TokenText()
			kind, ok := KindNamed(text)
			if !ok {
				return nil, r.errorf("unknown node kind %q", text)
			}
			if kind.HasName() {
				return nil, r.errorf("%v nodes must be written as (%v text)", kind, kind)
			}
			n := New(kind, Range{start, r.file.Pos(r.s.Position.Offset + len(text))})
			if err := r.attach(n); err != nil {
				return nil, err
			}

		default:
			return nil, r.errorf("unexpected %q", r.s.TokenText())
		}
	}
	if r.scanErr != nil {
		return nil, r.scanErr
	}
	if unclosed, ok := r.open.Peek(); ok {
		return nil, r.errorAt(unclosed.Pos(), "unclosed (%v", unclosed.Kind())
	}
	if r.root == nil {
		return nil, r.errorAt(r.file.Pos(0), "no tree found in input")
	}
	return r.root, nil
}

func (r *reader) openNode(start token.Pos) (*Node, error) {
	if r.s.Scan() != scanner.Ident {
		return nil, r.errorf("expected a node kind after '(', found %q", r.s.TokenText())
	}
	text := r.s.TokenText()
	kind, ok := KindNamed(text)
	if !ok {
		return nil, r.errorf("unknown node kind %q", text)
	}
	if !kind.HasName() {
		return New(kind, Range{start, start}), nil
	}
	name, err := r.readName(kind)
	if err != nil {
		return nil, err
	}
	return NewNamed(kind, Range{start, start}, r.interner.Intern(name)), nil
}

func (r *reader) readName(kind Kind) (string, error) {
	tok := r.s.Scan()
	negative := false
	if tok == '-' && (kind == Int || kind == Float) {
		negative = true
		tok = r.s.Scan()
	}
	text := r.s.TokenText()
	switch {
	case tok == scanner.String:
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return "", r.errorf("bad string literal %s", text)
		}
		return unquoted, nil
	case kind == ID && tok == scanner.Ident,
		kind == Int && tok == scanner.Int,
		kind == Float && (tok == scanner.Float || tok == scanner.Int):
		if negative {
			return "-" + text, nil
		}
		return text, nil
	default:
		return "", r.errorf("unexpected %q in %v node", text, kind)
	}
}

func (r *reader) attach(n *Node) error {
	if parent, ok := r.open.Peek(); ok {
		parent.Append(n)
		return nil
	}
	if r.root != nil {
		return r.errorAt(n.Pos(), "more than one tree in input")
	}
	r.root = n
	return nil
}
