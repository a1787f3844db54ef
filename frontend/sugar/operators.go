package sugar

import (
	"github.com/benbjohnson/immutable"
	"github.com/cottand/sugar/frontend/ast"
)

type kindHasher struct{}

func (kindHasher) Hash(k ast.Kind) uint32    { return uint32(k) }
func (kindHasher) Equal(a, b ast.Kind) bool { return a == b }

// operatorMethods maps every operator to the method it is lowered to a call of.
// It is shared, read-only, by every Pass.
var operatorMethods = func() *immutable.Map[ast.Kind, string] {
	m := immutable.NewMap[ast.Kind, string](kindHasher{})
	for kind, method := range map[ast.Kind]string{
		ast.Plus:       "add",
		ast.Minus:      "sub",
		ast.Multiply:   "mul",
		ast.Divide:     "div",
		ast.Mod:        "mod",
		ast.LShift:     "shl",
		ast.RShift:     "shr",
		ast.And:        "and_",
		ast.Or:         "or_",
		ast.Xor:        "xor_",
		ast.Eq:         "eq",
		ast.Ne:         "ne",
		ast.Lt:         "lt",
		ast.Le:         "le",
		ast.Ge:         "ge",
		ast.Gt:         "gt",
		ast.UnaryMinus: "neg",
		ast.Not:        "not_",
	} {
		m = m.Set(kind, method)
	}
	return m
}()

// OperatorMethod returns the name of the method an operator of kind is lowered to
func OperatorMethod(kind ast.Kind) (string, bool) {
	return operatorMethods.Get(kind)
}

// sugarBinop lowers
//
//	left op right
//
// to left.method(right). Both operand subtrees are kept as they are, so they are
// still evaluated left to right.
func (p *Pass) sugarBinop(op *ast.Node) (Outcome, error) {
	method, ok := OperatorMethod(op.Kind())
	if !ok || !p.expectChildren(op, 2) {
		return Failed, nil
	}
	left, right := op.Child(0), op.Child(1)

	op.Replace(ast.New(ast.Call, op,
		ast.New(ast.Dot, op, left, ast.NewID(op, p.interner.Intern(method))),
		ast.New(ast.PositionalArgs, op, right),
		nil, // named arguments
	))
	return Replaced, nil
}

// sugarUnop lowers op operand to operand.method()
func (p *Pass) sugarUnop(op *ast.Node) (Outcome, error) {
	method, ok := OperatorMethod(op.Kind())
	if !ok || !p.expectChildren(op, 1) {
		return Failed, nil
	}
	operand := op.Child(0)

	op.Replace(ast.New(ast.Call, op,
		ast.New(ast.Dot, op, operand, ast.NewID(op, p.interner.Intern(method))),
		nil, // positional arguments
		nil, // named arguments
	))
	return Replaced, nil
}

// sugarUpdate lowers an assignment to a call
//
//	receiver(args) = value
//
// to receiver.update(args, value), keeping named arguments as they are.
// Assignments to anything but a call are left alone.
func (p *Pass) sugarUpdate(assign *ast.Node) (Outcome, error) {
	if !p.expectChildren(assign, 2) {
		return Failed, nil
	}
	call, value := assign.Child(0), assign.Child(1)
	if call.Kind() != ast.Call {
		return Unchanged, nil
	}
	if !p.expectChildren(call, 3) {
		return Failed, nil
	}

	receiver := call.Child(ast.CallReceiver)
	positional := call.Child(ast.CallPositional)
	named := call.Child(ast.CallNamed)

	if positional.IsNone() {
		positional.SetKind(ast.PositionalArgs)
	}
	positional.Append(value)

	assign.Replace(ast.New(ast.Call, assign,
		ast.New(ast.Dot, call, receiver, ast.NewID(call, p.names.update)),
		positional,
		named,
	))
	return Replaced, nil
}

// sugarBang leaves partial application (receiver!method(args)) as it is: what it should
// lower to depends on capabilities this pass knows nothing about.
func (p *Pass) sugarBang(bang *ast.Node) (Outcome, error) {
	p.logger.Debug("partial application is not desugared", "node", bang)
	return Unchanged, nil
}
