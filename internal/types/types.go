// Package types defines the type algebra and mutable variable cells for
// the inference core (spec.md §3.1). Types are an ordinary tagged union;
// the only mutable state anywhere in this package is a Cell's contents.
package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/typeinfer/internal/config"
)

// Type is the interface implemented by every node of the type algebra.
type Type interface {
	String() string
	typeNode()
}

// ConstKind enumerates the ground types of spec.md §3.1.
type ConstKind string

const (
	Int    ConstKind = config.IntTypeName
	Float  ConstKind = config.FloatTypeName
	Atom   ConstKind = config.AtomTypeName
	Bool   ConstKind = config.BoolTypeName
	String ConstKind = config.StringTypeName
	Unit   ConstKind = config.UnitTypeName
)

// Const is a ground type: Int, Float, Atom, Bool, String, or Unit.
type Const struct {
	Kind ConstKind
}

func (Const) typeNode()        {}
func (c Const) String() string { return string(c.Kind) }

// NewConst builds a ground type. Kept as a constructor (rather than asking
// callers to write Const{Kind: ...} everywhere) to mirror the teacher's
// construct-helper convention.
func NewConst(k ConstKind) Const { return Const{Kind: k} }

// List is a homogeneous list type.
type List struct {
	Elem Type
}

func (List) typeNode() {}
func (l List) String() string {
	return fmt.Sprintf("[%s]", l.Elem.String())
}

// Arrow is an n-ary function type; the arity is the length of Params.
type Arrow struct {
	Params []Type
	Ret    Type
}

func (Arrow) typeNode() {}
func (a Arrow) String() string {
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), a.Ret.String())
}

// Clause is the type of one match arm: a pattern type, an optional (and
// currently unused — spec.md §3.1, §9) guard type, and a result type.
type Clause struct {
	Pattern Type
	Guard   Type // nil when absent
	Result  Type
}

func (Clause) typeNode() {}
func (c Clause) String() string {
	if c.Guard != nil {
		return fmt.Sprintf("%s when %s -> %s", c.Pattern.String(), c.Guard.String(), c.Result.String())
	}
	return fmt.Sprintf("%s -> %s", c.Pattern.String(), c.Result.String())
}

// Var is a reference to a mutable cell. Two Vars sharing a cell are, by
// definition, the same type variable.
type Var struct {
	Cell *Cell
}

func (Var) typeNode() {}
func (v Var) String() string {
	if v.Cell.IsLinked() {
		return RealType(v).String()
	}
	return normalizeVarName(v.Cell.Name())
}

// QVar is a variable universally quantified by an enclosing type scheme.
type QVar struct {
	Name string
}

func (QVar) typeNode() {}
func (q QVar) String() string { return "'" + normalizeVarName(q.Name) }

// normalizeVarName collapses auto-generated names (t0, t1, q7, ...) to a
// deterministic placeholder under test mode, the same idiom the teacher
// uses in typesystem.TVar.String() to keep golden assertions independent
// of allocation order.
func normalizeVarName(name string) string {
	if !config.IsTestMode {
		return name
	}
	for _, prefix := range []string{config.FreshVarPrefix, config.QuantifiedVarPrefix} {
		if strings.HasPrefix(name, prefix) {
			if _, err := strconv.Atoi(name[len(prefix):]); err == nil {
				return prefix + "?"
			}
		}
	}
	return name
}

// RealType follows a Var's chain of Links to the underlying type,
// transparently. Returns the Var itself if its cell is still Unbound.
func RealType(t Type) Type {
	v, ok := t.(Var)
	for ok {
		if !v.Cell.IsLinked() {
			return v
		}
		next := v.Cell.Link()
		nv, isVar := next.(Var)
		if !isVar {
			return next
		}
		v, ok = nv, true
	}
	return t
}
