package ast

import "fmt"

// Kind is the syntactic kind of a Node. The set is closed: every Kind the
// front end knows about is declared here.
type Kind int

const (
	// None is the placeholder for an absent child
	None Kind = iota

	ID
	Int
	Float
	String
	True
	False
	This

	Program
	Module
	Class
	Actor
	Primitive
	Trait
	Members
	FVar
	FLet
	Constructor
	Behaviour
	Function

	TypeParams
	TypeParam
	TypeArgs
	Params
	Param
	Types

	Nominal
	Structural
	UnionType
	IsectType
	TupleType

	Iso
	Trn
	Ref
	Val
	Box
	Tag
	// Hat marks a type as ephemeral
	Hat

	Seq
	Reference
	Dot
	Call
	PositionalArgs
	NamedArgs
	NamedArg
	Assign
	Var
	Let
	IdSeq
	If
	Match
	Cases
	Case
	While
	Repeat
	For
	Try
	Bang
	Return
	Break
	Continue
	Error
	Consume
	Recover
	Tuple

	Plus
	Minus
	Multiply
	Divide
	Mod
	LShift
	RShift
	And
	Or
	Xor
	Eq
	Ne
	Lt
	Le
	Ge
	Gt

	UnaryMinus
	Not

	kindCount
)

var kindNames = [kindCount]string{
	None:           "x",
	ID:             "id",
	Int:            "int",
	Float:          "float",
	String:         "string",
	True:           "true",
	False:          "false",
	This:           "this",
	Program:        "program",
	Module:         "module",
	Class:          "class",
	Actor:          "actor",
	Primitive:      "primitive",
	Trait:          "trait",
	Members:        "members",
	FVar:           "fvar",
	FLet:           "flet",
	Constructor:    "new",
	Behaviour:      "be",
	Function:       "fun",
	TypeParams:     "typeparams",
	TypeParam:      "typeparam",
	TypeArgs:       "typeargs",
	Params:         "params",
	Param:          "param",
	Types:          "types",
	Nominal:        "nominal",
	Structural:     "structural",
	UnionType:      "uniontype",
	IsectType:      "isecttype",
	TupleType:      "tupletype",
	Iso:            "iso",
	Trn:            "trn",
	Ref:            "ref",
	Val:            "val",
	Box:            "box",
	Tag:            "tag",
	Hat:            "hat",
	Seq:            "seq",
	Reference:      "reference",
	Dot:            "dot",
	Call:           "call",
	PositionalArgs: "positionalargs",
	NamedArgs:      "namedargs",
	NamedArg:       "namedarg",
	Assign:         "assign",
	Var:            "var",
	Let:            "let",
	IdSeq:          "idseq",
	If:             "if",
	Match:          "match",
	Cases:          "cases",
	Case:           "case",
	While:          "while",
	Repeat:         "repeat",
	For:            "for",
	Try:            "try",
	Bang:           "bang",
	Return:         "return",
	Break:          "break",
	Continue:       "continue",
	Error:          "error",
	Consume:        "consume",
	Recover:        "recover",
	Tuple:          "tuple",
	Plus:           "plus",
	Minus:          "minus",
	Multiply:       "multiply",
	Divide:         "divide",
	Mod:            "mod",
	LShift:         "lshift",
	RShift:         "rshift",
	And:            "and",
	Or:             "or",
	Xor:            "xor",
	Eq:             "eq",
	Ne:             "ne",
	Lt:             "lt",
	Le:             "le",
	Ge:             "ge",
	Gt:             "gt",
	UnaryMinus:     "unary_minus",
	Not:            "not",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// String is the name of the Kind as written in tree fixtures
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindNamed looks up a Kind by its fixture name
func KindNamed(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds lists every Kind, in declaration order
func Kinds() []Kind {
	all := make([]Kind, kindCount)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// HasName reports whether nodes of this Kind carry text in Node.Name
func (k Kind) HasName() bool {
	switch k {
	case ID, Int, Float, String:
		return true
	default:
		return false
	}
}

func (k Kind) IsCapability() bool {
	switch k {
	case Iso, Trn, Ref, Val, Box, Tag:
		return true
	default:
		return false
	}
}

// IsTypeDefinition holds for the kinds that define a type and own Members
func (k Kind) IsTypeDefinition() bool {
	switch k {
	case Class, Actor, Primitive, Trait:
		return true
	default:
		return false
	}
}

func (k Kind) IsBinaryOperator() bool {
	return k >= Plus && k <= Gt
}

func (k Kind) IsUnaryOperator() bool {
	return k == UnaryMinus || k == Not
}

// Child positions for the kinds the desugaring rules look into.
const (
	// Class, Actor, Primitive, Trait
	DefID         = 0
	DefTypeParams = 1
	DefCap        = 2
	DefProvides   = 3
	DefMembers    = 4

	// FVar, FLet
	FieldID   = 0
	FieldType = 1
	FieldInit = 2

	// Constructor, Behaviour, Function
	MethodCap        = 0
	MethodID         = 1
	MethodTypeParams = 2
	MethodParams     = 3
	MethodResult     = 4
	MethodPartial    = 5
	MethodBody       = 6

	// TypeParam
	TypeParamID         = 0
	TypeParamConstraint = 1
	TypeParamDefault    = 2

	// Structural
	StructuralMembers = 0
	StructuralCap     = 1
	StructuralHat     = 2

	// Nominal
	NominalPackage  = 0
	NominalID       = 1
	NominalTypeArgs = 2
	NominalCap      = 3
	NominalHat      = 4

	// If, Match, While, Repeat
	ElseClause = 2

	// Try
	TryBody = 0
	TryElse = 1
	TryThen = 2

	// For
	ForIdSeq = 0
	ForType  = 1
	ForIter  = 2
	ForBody  = 3
	ForElse  = 4

	// Case
	CasePattern = 0
	CaseGuard   = 1
	CaseBody    = 2

	// Call
	CallReceiver   = 0
	CallPositional = 1
	CallNamed      = 2
)
