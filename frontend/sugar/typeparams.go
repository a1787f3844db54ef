package sugar

import "github.com/cottand/sugar/frontend/ast"

// sugarTypeParam constrains unconstrained type parameters to the empty structural type,
// which every type satisfies
func (p *Pass) sugarTypeParam(param *ast.Node) (Outcome, error) {
	if !p.expectChildren(param, 3) {
		return Failed, nil
	}
	constraint := param.Child(ast.TypeParamConstraint)
	if !constraint.IsNone() {
		return Unchanged, nil
	}

	constraint.Replace(ast.New(ast.Structural, constraint,
		ast.New(ast.Members, constraint),
		ast.New(ast.Tag, constraint),
		nil, // not ephemeral
	))
	return Rewritten, nil
}

// sugarStructural defaults the capability of structural types. A constraint is an
// upper bound, so it defaults to tag; anywhere else a structural type is a ref.
func (p *Pass) sugarStructural(structural *ast.Node) (Outcome, error) {
	if !p.expectChildren(structural, 3) {
		return Failed, nil
	}
	capability := structural.Child(ast.StructuralCap)
	if !capability.IsNone() {
		return Unchanged, nil
	}

	if inConstraint(structural) {
		capability.SetKind(ast.Tag)
	} else {
		capability.SetKind(ast.Ref)
	}
	return Rewritten, nil
}

// inConstraint reports whether n is part of the constraint of the closest type parameter around it
func inConstraint(n *ast.Node) bool {
	param := n.Parent().Nearest(ast.TypeParam)
	if param == nil {
		return false
	}
	constraint := param.Child(ast.TypeParamConstraint)
	for p := n; p != param; p = p.Parent() {
		if p == constraint {
			return true
		}
	}
	return false
}
