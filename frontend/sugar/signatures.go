package sugar

import (
	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/cottand/sugar/frontend/intern"
	"github.com/pkg/errors"
)

// sugarNew names anonymous constructors create and gives them their result type:
// an ephemeral reference to the enclosing type, val for primitives, tag for
// actors and ref otherwise.
func (p *Pass) sugarNew(ctor *ast.Node) (Outcome, error) {
	if !p.expectChildren(ctor, 7) {
		return Failed, nil
	}
	def, ok := p.enclosingType(ctor)
	if !ok {
		return Failed, nil
	}

	outcome := Unchanged
	if id := ctor.Child(ast.MethodID); id.IsNone() {
		ctor.SetChild(ast.MethodID, ast.NewID(id, p.names.create))
		outcome = Rewritten
	}

	var capability ast.Kind
	switch def.Kind() {
	case ast.Primitive:
		capability = ast.Val
	case ast.Actor:
		capability = ast.Tag
	default:
		capability = ast.Ref
	}
	return p.defaultResult(ctor, p.typeForThis(ctor, def, capability, true), outcome)
}

// sugarBe gives behaviours their result type, tag on the enclosing type:
// callers of a behaviour only ever get an opaque handle back.
func (p *Pass) sugarBe(be *ast.Node) (Outcome, error) {
	if !p.expectChildren(be, 7) {
		return Failed, nil
	}
	def, ok := p.enclosingType(be)
	if !ok {
		return Failed, nil
	}
	return p.defaultResult(be, p.typeForThis(be, def, ast.Tag, false), Unchanged)
}

// sugarFun names anonymous functions apply. Functions without a result type return None,
// and a None reference is appended to their body so that it evaluates to None.
func (p *Pass) sugarFun(fun *ast.Node) (Outcome, error) {
	if !p.expectChildren(fun, 7) {
		return Failed, nil
	}

	outcome := Unchanged
	if id := fun.Child(ast.MethodID); id.IsNone() {
		fun.SetChild(ast.MethodID, ast.NewID(id, p.names.apply))
		outcome = Rewritten
	}

	result := fun.Child(ast.MethodResult)
	if !result.IsNone() {
		return outcome, nil
	}
	fun.SetChild(ast.MethodResult, p.noneType(result))

	if body := fun.Child(ast.MethodBody); body.Kind() == ast.Seq {
		at := body
		if last := body.Last(); last != nil {
			at = last
		}
		body.Append(p.noneReference(at))
	}
	return Rewritten, nil
}

// defaultResult sets the result type of method to result. The parser never gives
// constructors and behaviours a result type, so one that is already there must be
// result itself, from an earlier run of the pass.
func (p *Pass) defaultResult(method, result *ast.Node, outcome Outcome) (Outcome, error) {
	current := method.Child(ast.MethodResult)
	switch {
	case current.IsNone():
		method.SetChild(ast.MethodResult, result)
		return Rewritten, nil
	case current.Hash() == result.Hash() && ast.Equal(current, result):
		return outcome, nil
	default:
		return Fatal, errors.WithStack(ilerr.New(ilerr.NewUnexpectedResultType{
			Positioner: ast.RangeOf(current),
			Method:     method.Kind(),
			Found:      current.String(),
			Expected:   result.String(),
		}))
	}
}

func (p *Pass) enclosingType(method *ast.Node) (*ast.Node, bool) {
	def := method.EnclosingType()
	if def == nil || def.Len() <= ast.DefTypeParams {
		p.reporter.Report(ilerr.New(ilerr.NewMalformedNode{
			Positioner: ast.RangeOf(method),
			Kind:       method.Kind(),
			Reason:     "not inside a type definition",
		}))
		return nil, false
	}
	return def, true
}

// typeForThis builds the type of the receiver of a method of def: def's name applied to
// def's own type parameters, with the given capability.
func (p *Pass) typeForThis(at, def *ast.Node, capability ast.Kind, ephemeral bool) *ast.Node {
	typeArgs := ast.NewNone(at)
	if typeParams := def.Child(ast.DefTypeParams); !typeParams.IsNone() {
		typeArgs = ast.New(ast.TypeArgs, at)
		for _, param := range typeParams.Children() {
			typeArgs.Append(p.nominal(at, param.Child(ast.TypeParamID).Symbol(), ast.None, false))
		}
	}

	this := p.nominal(at, def.Child(ast.DefID).Symbol(), capability, ephemeral)
	this.SetChild(ast.NominalTypeArgs, typeArgs)
	return this
}

// nominal builds a reference to the type named name. capability may be ast.None.
func (p *Pass) nominal(at *ast.Node, name intern.Symbol, capability ast.Kind, ephemeral bool) *ast.Node {
	hat := ast.NewNone(at)
	if ephemeral {
		hat = ast.New(ast.Hat, at)
	}
	return ast.New(ast.Nominal, at,
		nil, // package
		ast.NewID(at, name),
		nil, // type arguments
		ast.New(capability, at),
		hat,
	)
}

func (p *Pass) noneType(at *ast.Node) *ast.Node {
	return p.nominal(at, p.names.none, ast.None, false)
}

func (p *Pass) noneReference(at *ast.Node) *ast.Node {
	return ast.New(ast.Reference, at, ast.NewID(at, p.names.none))
}
