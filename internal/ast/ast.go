// Package ast defines the abstract shape of the AST nodes this inference
// core consumes (spec.md §6.1). There is no lexer or parser in this
// module — the lexer/scanner/parser are external collaborators per
// spec.md §1 — so these are plain structs a real parser would populate,
// sized down from the teacher's Visitor-dispatched AST (which carries
// full tokens, imports, and package declarations for a real frontend) to
// exactly the node kinds the core's driver switches on.
package ast

// Expr is the interface implemented by every node the driver can infer a
// type for. Line is kept on every node (rather than a full token) because
// nothing downstream of this module re-lexes source text; it exists
// purely so error messages can point somewhere.
type Expr interface {
	// ExprName names the node's concrete kind, for error messages (mirrors
	// the convention of reporting "(Apply)", "(Match)", etc. on an
	// unhandled-expression error).
	ExprName() string
	Line() int
}

type line int

func (l line) Line() int { return int(l) }

// IntLit is an integer literal.
type IntLit struct {
	line
	Value int64
}

func NewIntLit(lineNo int, value int64) *IntLit { return &IntLit{line: line(lineNo), Value: value} }
func (*IntLit) ExprName() string                { return "IntLit" }

// FloatLit is a floating-point literal.
type FloatLit struct {
	line
	Value float64
}

func NewFloatLit(lineNo int, value float64) *FloatLit { return &FloatLit{line: line(lineNo), Value: value} }
func (*FloatLit) ExprName() string                    { return "FloatLit" }

// AtomLit is an atom literal, e.g. 'ok or 'x_was_zero.
type AtomLit struct {
	line
	Value string
}

func NewAtomLit(lineNo int, value string) *AtomLit { return &AtomLit{line: line(lineNo), Value: value} }
func (*AtomLit) ExprName() string                  { return "AtomLit" }

// StringLit is a string literal.
type StringLit struct {
	line
	Value string
}

func NewStringLit(lineNo int, value string) *StringLit {
	return &StringLit{line: line(lineNo), Value: value}
}
func (*StringLit) ExprName() string { return "StringLit" }

// BoolLit is a boolean literal.
type BoolLit struct {
	line
	Value bool
}

func NewBoolLit(lineNo int, value bool) *BoolLit { return &BoolLit{line: line(lineNo), Value: value} }
func (*BoolLit) ExprName() string                { return "BoolLit" }

// Symbol is a reference to a bound name.
type Symbol struct {
	line
	Name string
}

func NewSymbol(lineNo int, name string) *Symbol { return &Symbol{line: line(lineNo), Name: name} }
func (*Symbol) ExprName() string                { return "Symbol" }

// Wildcard is the `_` pattern: matches anything, binds nothing.
type Wildcard struct {
	line
}

func NewWildcard(lineNo int) *Wildcard { return &Wildcard{line: line(lineNo)} }
func (*Wildcard) ExprName() string     { return "Wildcard" }

// Unit is the `()` literal/placeholder argument.
type Unit struct {
	line
}

func NewUnit(lineNo int) *Unit  { return &Unit{line: line(lineNo)} }
func (*Unit) ExprName() string { return "Unit" }

// Builtin is a pre-resolved reference to a built-in function. Only Name is
// consumed by inference (it is looked up in the environment exactly like a
// Symbol); Arity/OriginModule/OriginName are carried for callers that need
// them but are opaque to this module.
type Builtin struct {
	line
	Name         string
	Arity        int
	OriginModule string
	OriginName   string
}

func NewBuiltin(lineNo int, name string, arity int, originModule, originName string) *Builtin {
	return &Builtin{line: line(lineNo), Name: name, Arity: arity, OriginModule: originModule, OriginName: originName}
}
func (*Builtin) ExprName() string { return "Builtin" }

// Apply is a function call `f(a1, ..., an)`. Name is a Symbol or Builtin.
type Apply struct {
	line
	Name Expr
	Args []Expr
}

func NewApply(lineNo int, name Expr, args []Expr) *Apply {
	return &Apply{line: line(lineNo), Name: name, Args: args}
}
func (*Apply) ExprName() string { return "Apply" }

// Match is `match E with C1 | ... | Ck`.
type Match struct {
	line
	Scrutinee Expr
	Clauses   []*Clause
}

func NewMatch(lineNo int, scrutinee Expr, clauses []*Clause) *Match {
	return &Match{line: line(lineNo), Scrutinee: scrutinee, Clauses: clauses}
}
func (*Match) ExprName() string { return "Match" }

// Clause is one match arm: `P [when G] -> R`. Guard is nil when absent;
// when present it is parsed and carried but never unified against Bool
// (spec.md §4.4.3, §9 — the slot is reserved for a future addition).
type Clause struct {
	line
	Pattern Expr
	Guard   Expr
	Result  Expr
}

func NewClause(lineNo int, pattern, guard, result Expr) *Clause {
	return &Clause{line: line(lineNo), Pattern: pattern, Guard: guard, Result: result}
}
func (*Clause) ExprName() string { return "Clause" }

// FunDef is `\a1 ... an -> body`. Name is nil for an anonymous function;
// FunBinding supplies a name for a let-fun. Args are Symbol or Unit nodes.
type FunDef struct {
	line
	Name *Symbol
	Args []Expr
	Body Expr
}

func NewFunDef(lineNo int, name *Symbol, args []Expr, body Expr) *FunDef {
	return &FunDef{line: line(lineNo), Name: name, Args: args, Body: body}
}
func (*FunDef) ExprName() string { return "FunDef" }

// FunBinding is `let f = fun ... in body`.
type FunBinding struct {
	line
	Def  *FunDef
	Body Expr
}

func NewFunBinding(lineNo int, def *FunDef, body Expr) *FunBinding {
	return &FunBinding{line: line(lineNo), Def: def, Body: body}
}
func (*FunBinding) ExprName() string { return "FunBinding" }

// VarBinding is `let x = E1 in E2`.
type VarBinding struct {
	line
	Name  *Symbol
	Value Expr
	Body  Expr
}

func NewVarBinding(lineNo int, name *Symbol, value, body Expr) *VarBinding {
	return &VarBinding{line: line(lineNo), Name: name, Value: value, Body: body}
}
func (*VarBinding) ExprName() string { return "VarBinding" }
