package sugar

import (
	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/cottand/sugar/frontend/intern"
)

// sugarFor lowers
//
//	for pattern in iter do body else otherwise end
//
// to a while loop over an iterator held in a hygienic temporary:
//
//	$N = iter
//	while $N.has_next() do
//	  pattern = $N.next()
//	  body
//	else
//	  otherwise
//	end
//
// Any value with has_next and next methods can be iterated over.
func (p *Pass) sugarFor(loop *ast.Node) (Outcome, error) {
	if !p.expectChildren(loop, 5) {
		return Failed, nil
	}
	pattern := loop.Child(ast.ForIdSeq)
	patternType := loop.Child(ast.ForType)
	iter := loop.Child(ast.ForIter)
	body := loop.Child(ast.ForBody)
	elseClause := loop.Child(ast.ForElse)

	outcome := Replaced
	if !validPattern(pattern) {
		p.reporter.Report(ilerr.New(ilerr.NewMalformedNode{
			Positioner: ast.RangeOf(pattern),
			Kind:       pattern.Kind(),
			Reason:     "for loop variables must be identifiers",
		}))
		outcome = Failed
	}

	p.expandNone(elseClause)
	iterName := p.interner.Intern(p.namer.Fresh(loop))

	lowered := ast.NewScoped(ast.Seq, loop,
		ast.New(ast.Assign, loop,
			ast.New(ast.Var, loop, ast.New(ast.IdSeq, loop, ast.NewID(loop, iterName)), nil),
			iter,
		),
		ast.NewScoped(ast.While, loop,
			p.callOn(loop, iterName, p.names.hasNext),
			ast.NewScoped(ast.Seq, loop,
				// errors about the loop variables are reported at the pattern
				ast.New(ast.Assign, pattern,
					ast.New(ast.Var, pattern, pattern, patternType),
					p.callOn(loop, iterName, p.names.next),
				),
				body,
			),
			elseClause,
		),
	)
	loop.Replace(lowered)
	return outcome, nil
}

// callOn builds a call without arguments of method on the variable named receiver
func (p *Pass) callOn(at *ast.Node, receiver, method intern.Symbol) *ast.Node {
	return ast.New(ast.Call, at,
		ast.New(ast.Dot, at,
			ast.New(ast.Reference, at, ast.NewID(at, receiver)),
			ast.NewID(at, method),
		),
		nil, // positional arguments
		nil, // named arguments
	)
}

func validPattern(pattern *ast.Node) bool {
	switch pattern.Kind() {
	case ast.ID:
		return true
	case ast.IdSeq:
		if pattern.Len() == 0 {
			return false
		}
		for _, element := range pattern.Children() {
			if !validPattern(element) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
