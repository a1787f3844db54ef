package sugar

import (
	"fmt"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/ilerr"
)

// sugarMember defaults the capability of a type definition and, when addCreate is set,
// gives it a default constructor.
//
// The capability is defaulted even when synthesizing the constructor failed,
// so that later passes still see a well-formed definition.
func (p *Pass) sugarMember(def *ast.Node, addCreate bool, defaultCap ast.Kind) (Outcome, error) {
	if !p.expectChildren(def, 5) {
		return Failed, nil
	}
	outcome := Unchanged

	members := def.Child(ast.DefMembers)
	if members.Kind() != ast.Members {
		p.reporter.Report(ilerr.New(ilerr.NewMalformedNode{
			Positioner: ast.RangeOf(members),
			Kind:       def.Kind(),
			Reason:     fmt.Sprintf("expected members, found %v", members.Kind()),
		}))
		outcome = Failed
	} else if addCreate {
		added, ok := p.addDefaultConstructor(def, members)
		switch {
		case !ok:
			outcome = Failed
		case added:
			outcome = Rewritten
		}
	}

	if defCap := def.Child(ast.DefCap); defCap.IsNone() {
		defCap.SetKind(defaultCap)
		if outcome == Unchanged {
			outcome = Rewritten
		}
	}
	return outcome, nil
}

// addDefaultConstructor appends a create constructor to members if the definition
// has no constructor of its own and all of its fields are initialised.
//
// ok is false when a function or behaviour already uses the constructor's name.
func (p *Pass) addDefaultConstructor(def, members *ast.Node) (added, ok bool) {
	var clash *ast.Node

	for _, member := range members.Children() {
		switch member.Kind() {
		case ast.FVar, ast.FLet:
			if member.Child(ast.FieldInit).IsNone() {
				return false, true
			}
		case ast.Constructor:
			id := member.Child(ast.MethodID)
			if id.IsNone() || id.Symbol() == p.names.create {
				return false, true
			}
		case ast.Function, ast.Behaviour:
			if clash == nil && member.Child(ast.MethodID).Symbol() == p.names.create {
				clash = member
			}
		default:
		}
	}

	if clash != nil {
		p.reporter.Report(ilerr.New(ilerr.NewClashesWithAutogeneratedCtor{
			Positioner: ast.RangeOf(clash),
			Name:       ConstructorName,
		}))
		return false, false
	}

	create := ast.New(ast.Constructor, def,
		nil, // cap
		ast.NewID(def, p.names.create),
		nil, // type parameters
		nil, // parameters
		nil, // result
		nil, // partial
		ast.New(ast.Seq, def, ast.New(ast.True, def)),
	)
	members.Append(create)

	// members were desugared before their definition, so the new constructor gets its final shape here
	if outcome, err := p.sugarNew(create); outcome == Fatal {
		p.logger.Error("synthesized constructor could not be desugared", "err", err)
		return false, false
	}
	return true, true
}
