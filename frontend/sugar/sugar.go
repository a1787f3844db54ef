// Package sugar rewrites parsed syntax trees into their canonical core.
//
// A Pass is applied to every node of a tree bottom-up (see Desugar). Each
// call to Apply looks at the kind of one node and runs the rule for it:
// defaulting capabilities, names and result types, synthesizing default
// constructors, expanding absent else branches, sharing case bodies,
// lowering for loops to while loops over an iterator, and lowering operators
// and indexed assignment to method calls.
//
// No rule emits a node which itself needs desugaring, so running a Pass over
// an already desugared tree changes nothing.
package sugar

import (
	"fmt"
	"log/slog"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/hygiene"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/cottand/sugar/frontend/intern"
	"github.com/cottand/sugar/internal/log"
)

var logger = ast.NodeLogger(log.DefaultLogger.With("section", "desugar"))

// Outcome is the result of applying the pass to a single node
type Outcome int

const (
	// Unchanged means no rule applied to the node
	Unchanged Outcome = iota
	// Rewritten means the node kept its kind but some of its children were changed or defaulted
	Rewritten
	// Replaced means the node was overwritten, in its slot, with a different subtree
	Replaced
	// Failed means a diagnostic was reported for the node. The tree is still well-formed.
	Failed
	// Fatal means an invariant the parser guarantees did not hold. The returned error says which.
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Rewritten:
		return "rewritten"
	case Replaced:
		return "replaced"
	case Failed:
		return "failed"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Reporter is the diagnostic sink of a Pass. *ilerr.Errors is one.
type Reporter interface {
	Report(err ilerr.IleError)
}

// Pass desugars the nodes of one tree. It is not safe for concurrent use, but
// several Pass may share an intern.Interner.
type Pass struct {
	interner intern.Interner
	namer    hygiene.Namer
	reporter Reporter
	names    names
	logger   *slog.Logger
}

func New(in intern.Interner, namer hygiene.Namer, reporter Reporter) *Pass {
	return &Pass{
		interner: in,
		namer:    namer,
		reporter: reporter,
		names:    internNames(in),
		logger:   logger,
	}
}

// Apply runs the rule for n's kind, if any. n's children must already have been desugared.
//
// Apply does not look at n's descendants beyond what its rule needs, and never
// applies itself to them. Kinds without a rule are left Unchanged.
// A non-nil error is only returned along with Fatal.
func (p *Pass) Apply(n *ast.Node) (Outcome, error) {
	kind := n.Kind()
	outcome, err := p.dispatch(n)
	if outcome != Unchanged {
		p.logger.Debug("applied rule", "kind", kind, "outcome", outcome, "node", n)
	}
	return outcome, err
}

func (p *Pass) dispatch(n *ast.Node) (Outcome, error) {
	switch kind := n.Kind(); kind {
	case ast.Primitive:
		return p.sugarMember(n, true, ast.Val)
	case ast.Class:
		return p.sugarMember(n, true, ast.Ref)
	case ast.Actor:
		return p.sugarMember(n, true, ast.Tag)
	case ast.Trait:
		return p.sugarMember(n, false, ast.Ref)
	case ast.TypeParam:
		return p.sugarTypeParam(n)
	case ast.Constructor:
		return p.sugarNew(n)
	case ast.Behaviour:
		return p.sugarBe(n)
	case ast.Function:
		return p.sugarFun(n)
	case ast.Structural:
		return p.sugarStructural(n)
	case ast.If, ast.Match, ast.While, ast.Repeat:
		return p.sugarElse(n)
	case ast.Try:
		return p.sugarTry(n)
	case ast.For:
		return p.sugarFor(n)
	case ast.Bang:
		return p.sugarBang(n)
	case ast.Case:
		return p.sugarCase(n)
	case ast.Assign:
		return p.sugarUpdate(n)
	case ast.Plus, ast.Minus, ast.Multiply, ast.Divide, ast.Mod,
		ast.LShift, ast.RShift, ast.And, ast.Or, ast.Xor,
		ast.Eq, ast.Ne, ast.Lt, ast.Le, ast.Ge, ast.Gt:
		return p.sugarBinop(n)
	case ast.UnaryMinus, ast.Not:
		return p.sugarUnop(n)

	case ast.None, ast.ID, ast.Int, ast.Float, ast.String, ast.True, ast.False, ast.This,
		ast.Program, ast.Module, ast.Members, ast.FVar, ast.FLet,
		ast.TypeParams, ast.TypeArgs, ast.Params, ast.Param, ast.Types,
		ast.Nominal, ast.UnionType, ast.IsectType, ast.TupleType,
		ast.Iso, ast.Trn, ast.Ref, ast.Val, ast.Box, ast.Tag, ast.Hat,
		ast.Seq, ast.Reference, ast.Dot, ast.Call, ast.PositionalArgs, ast.NamedArgs, ast.NamedArg,
		ast.Var, ast.Let, ast.IdSeq, ast.Cases, ast.Return, ast.Break, ast.Continue,
		ast.Error, ast.Consume, ast.Recover, ast.Tuple:
		return Unchanged, nil

	default:
		p.logger.Warn("no desugaring rule for node kind", "kind", kind)
		return Unchanged, nil
	}
}

// expectChildren reports a MalformedNode diagnostic unless n has exactly count children
func (p *Pass) expectChildren(n *ast.Node, count int) bool {
	if n.Len() == count {
		return true
	}
	p.reporter.Report(ilerr.New(ilerr.NewMalformedNode{
		Positioner: ast.RangeOf(n),
		Kind:       n.Kind(),
		Reason:     fmt.Sprintf("expected %d children, found %d", count, n.Len()),
	}))
	return false
}

// Stats counts the outcomes of a Desugar run
type Stats struct {
	Rewritten int
	Replaced  int
	Failed    int
}

// Changed is the number of nodes a run modified
func (s Stats) Changed() int {
	return s.Rewritten + s.Replaced
}

func (s *Stats) record(o Outcome) {
	switch o {
	case Rewritten:
		s.Rewritten++
	case Replaced:
		s.Replaced++
	case Failed:
		s.Failed++
	default:
	}
}

// Desugar applies the pass to every node of the tree rooted at root, bottom-up.
// Diagnostics go to the Pass' Reporter; it stops at the first Fatal outcome and returns its error.
func (p *Pass) Desugar(root *ast.Node) (Stats, error) {
	var stats Stats
	err := ast.Walk(root, func(n *ast.Node) error {
		outcome, err := p.Apply(n)
		stats.record(outcome)
		if outcome == Fatal {
			return err
		}
		return nil
	})
	return stats, err
}

// Run desugars root with a fresh Pass, hygiene.Generator and diagnostic set
func Run(root *ast.Node, in intern.Interner) (*ilerr.Errors, error) {
	errs := &ilerr.Errors{}
	namer := hygiene.NewGenerator(hygiene.DefaultPrefix)
	namer.Reserve(root)
	_, err := New(in, namer, errs).Desugar(root)
	return errs, err
}
