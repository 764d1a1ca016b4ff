// Package ast defines the checked expression tree the planner consumes
// (spec §3.2): a tagged sum of node kinds addressed by stable per-tree
// integer ids, in the same "Kind + exactly-one-payload-set" shape this
// codebase uses throughout its IR layers.
package ast

import "github.com/aledsdavies/celrt/value"

// ID is a node's stable, per-tree unique identifier. The evaluator keys
// trace callbacks and error annotations off it (spec §3.2).
type ID int64

// Kind identifies which variant of the Expr tagged sum a node holds.
type Kind int

const (
	KindConst Kind = iota
	KindIdent
	KindSelect
	KindCall
	KindCreateList
	KindCreateStruct
	KindCreateMap
	KindComprehension
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindIdent:
		return "ident"
	case KindSelect:
		return "select"
	case KindCall:
		return "call"
	case KindCreateList:
		return "create_list"
	case KindCreateStruct:
		return "create_struct"
	case KindCreateMap:
		return "create_map"
	case KindComprehension:
		return "comprehension"
	default:
		return "unknown_kind"
	}
}

// Expr is one node of the checked expression tree. Exactly one of the
// kind-specific payload fields is populated, selected by Kind.
type Expr struct {
	ID   ID
	Kind Kind

	Const         *ConstExpr
	Ident         *IdentExpr
	Select        *SelectExpr
	Call          *CallExpr
	CreateList    *CreateListExpr
	CreateStruct  *CreateStructExpr
	CreateMap     *CreateMapExpr
	Comprehension *ComprehensionExpr
}

// ConstExpr is a literal value baked into the program at plan time.
type ConstExpr struct {
	Value value.Value
}

// IdentExpr names a variable to resolve from the activation.
type IdentExpr struct {
	Name string
}

// SelectExpr is `operand.field` (or, when TestOnly, the has() macro's
// presence test over that field).
type SelectExpr struct {
	Operand  *Expr
	Field    string
	TestOnly bool
}

// CallExpr is a function or method invocation. Target is nil for a
// plain function call (`f(args...)`) and non-nil for a receiver-style
// call (`target.f(args...)`).
type CallExpr struct {
	Target   *Expr
	Function string
	Args     []*Expr
}

// CreateListExpr builds a list literal. OptionalIndices names the
// positions (into Elems) of `?`-prefixed optional-expansion elements
// (spec §3.2: "optional-index-set").
type CreateListExpr struct {
	Elems           []*Expr
	OptionalIndices map[int]bool
}

// MapEntryExpr is one key/value pair of a map literal.
type MapEntryExpr struct {
	Key      *Expr
	Value    *Expr
	Optional bool
}

// CreateMapExpr builds a map literal.
type CreateMapExpr struct {
	Entries []MapEntryExpr
}

// StructEntryExpr is one field initializer of a struct literal.
type StructEntryExpr struct {
	Field    string
	Value    *Expr
	Optional bool
}

// CreateStructExpr builds a typed struct/message literal.
type CreateStructExpr struct {
	TypeName string
	Entries  []StructEntryExpr
}

// ComprehensionExpr is the macro-desugared fold over Range (spec §3.2,
// §4.6): IterVar is bound to each element of Range in turn; AccuVar
// starts at AccuInit and is rewritten by LoopStep on each iteration
// while LoopCond holds; Result is evaluated once the fold completes.
type ComprehensionExpr struct {
	IterVar  string
	AccuVar  string
	Range    *Expr
	AccuInit *Expr
	LoopCond *Expr
	LoopStep *Expr
	Result   *Expr
}

// Const constructs a Kind == KindConst node.
func Const(id ID, v value.Value) *Expr {
	return &Expr{ID: id, Kind: KindConst, Const: &ConstExpr{Value: v}}
}

// Ident constructs a Kind == KindIdent node.
func Ident(id ID, name string) *Expr {
	return &Expr{ID: id, Kind: KindIdent, Ident: &IdentExpr{Name: name}}
}

// Select constructs a Kind == KindSelect node.
func Select(id ID, operand *Expr, field string, testOnly bool) *Expr {
	return &Expr{ID: id, Kind: KindSelect, Select: &SelectExpr{Operand: operand, Field: field, TestOnly: testOnly}}
}

// Call constructs a Kind == KindCall node.
func Call(id ID, target *Expr, fn string, args []*Expr) *Expr {
	return &Expr{ID: id, Kind: KindCall, Call: &CallExpr{Target: target, Function: fn, Args: args}}
}

// CreateList constructs a Kind == KindCreateList node.
func CreateList(id ID, elems []*Expr, optIdx map[int]bool) *Expr {
	return &Expr{ID: id, Kind: KindCreateList, CreateList: &CreateListExpr{Elems: elems, OptionalIndices: optIdx}}
}

// CreateMap constructs a Kind == KindCreateMap node.
func CreateMap(id ID, entries []MapEntryExpr) *Expr {
	return &Expr{ID: id, Kind: KindCreateMap, CreateMap: &CreateMapExpr{Entries: entries}}
}

// CreateStruct constructs a Kind == KindCreateStruct node.
func CreateStruct(id ID, typeName string, entries []StructEntryExpr) *Expr {
	return &Expr{ID: id, Kind: KindCreateStruct, CreateStruct: &CreateStructExpr{TypeName: typeName, Entries: entries}}
}

// Comprehension constructs a Kind == KindComprehension node.
func Comprehension(id ID, iterVar, accuVar string, rng, accuInit, loopCond, loopStep, result *Expr) *Expr {
	return &Expr{ID: id, Kind: KindComprehension, Comprehension: &ComprehensionExpr{
		IterVar: iterVar, AccuVar: accuVar, Range: rng, AccuInit: accuInit,
		LoopCond: loopCond, LoopStep: loopStep, Result: result,
	}}
}

// Walk visits e and every descendant in a preorder traversal, calling fn
// once per node, e.g. for diagnostics that need to map an id back to
// its node.
func Walk(e *Expr, fn func(*Expr)) {
	if e == nil {
		return
	}
	fn(e)
	switch e.Kind {
	case KindSelect:
		Walk(e.Select.Operand, fn)
	case KindCall:
		Walk(e.Call.Target, fn)
		for _, a := range e.Call.Args {
			Walk(a, fn)
		}
	case KindCreateList:
		for _, el := range e.CreateList.Elems {
			Walk(el, fn)
		}
	case KindCreateMap:
		for _, me := range e.CreateMap.Entries {
			Walk(me.Key, fn)
			Walk(me.Value, fn)
		}
	case KindCreateStruct:
		for _, se := range e.CreateStruct.Entries {
			Walk(se.Value, fn)
		}
	case KindComprehension:
		c := e.Comprehension
		Walk(c.Range, fn)
		Walk(c.AccuInit, fn)
		Walk(c.LoopCond, fn)
		Walk(c.LoopStep, fn)
		Walk(c.Result, fn)
	}
}
