package sugar

import (
	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/pkg/errors"
)

// expandNone turns an absent clause into a sequence evaluating to None
func (p *Pass) expandNone(clause *ast.Node) bool {
	if !clause.IsNone() {
		return false
	}
	clause.SetKind(ast.Seq)
	clause.Append(p.noneReference(clause))
	return true
}

// sugarElse gives if, match, while and repeat an else clause if they have none
func (p *Pass) sugarElse(n *ast.Node) (Outcome, error) {
	if !p.expectChildren(n, 3) {
		return Failed, nil
	}
	if p.expandNone(n.Child(ast.ElseClause)) {
		return Rewritten, nil
	}
	return Unchanged, nil
}

// sugarTry expands the else and then clauses of a try independently
func (p *Pass) sugarTry(try *ast.Node) (Outcome, error) {
	if !p.expectChildren(try, 3) {
		return Failed, nil
	}
	expandedElse := p.expandNone(try.Child(ast.TryElse))
	expandedThen := p.expandNone(try.Child(ast.TryThen))
	if expandedElse || expandedThen {
		return Rewritten, nil
	}
	return Unchanged, nil
}

// sugarCase gives a case without a body a copy of the body of the next case that has one,
// so that consecutive patterns can share a body.
//
// The parser does not produce a bodyless final case, so one is an invariant violation.
func (p *Pass) sugarCase(c *ast.Node) (Outcome, error) {
	if !p.expectChildren(c, 3) {
		return Failed, nil
	}
	if !c.Child(ast.CaseBody).IsNone() {
		return Unchanged, nil
	}

	for next := c.Sibling(); next != nil && next.Kind() == ast.Case; next = next.Sibling() {
		if body := next.Child(ast.CaseBody); !body.IsNone() {
			c.SetChild(ast.CaseBody, ast.Clone(body))
			return Rewritten, nil
		}
	}
	return Fatal, errors.WithStack(ilerr.New(ilerr.NewFallthroughWithoutBody{Positioner: ast.RangeOf(c)}))
}
