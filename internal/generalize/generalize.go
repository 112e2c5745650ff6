// Package generalize implements the two operations that move between
// monomorphic types and polymorphic schemes (spec.md §4.3): Generalize
// promotes variables above a level into QVars at a let-binding boundary,
// Instantiate refreshes a scheme into a new monotype at a use site.
//
// Grounded on wdamron/poly's GeneralizeAtLevel and visitInstantiate (see
// _examples/mafm-poly/instantiate.go and
// _examples/mafm-poly/internal/typeutil/instantiate.go) — the
// name -> fresh-cell cache threaded through the recursive walk is the same
// mechanism, adapted to this package's smaller type algebra.
package generalize

import "github.com/funvibe/typeinfer/internal/types"

// Generalize produces a type scheme for t: every Unbound cell reachable
// from t (following Links transparently) whose level is greater than
// level becomes a QVar; everything at or below level is left alone,
// because it is still unifiable with the surrounding context and must not
// be quantified away.
func Generalize(level int, t types.Type) types.Type {
	t = types.RealType(t)
	switch t := t.(type) {
	case types.Const, types.QVar:
		return t

	case types.List:
		return types.List{Elem: Generalize(level, t.Elem)}

	case types.Arrow:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = Generalize(level, p)
		}
		return types.Arrow{Params: params, Ret: Generalize(level, t.Ret)}

	case types.Clause:
		var guard types.Type
		if t.Guard != nil {
			guard = Generalize(level, t.Guard)
		}
		return types.Clause{Pattern: Generalize(level, t.Pattern), Guard: guard, Result: Generalize(level, t.Result)}

	case types.Var:
		if t.Cell.Level() > level {
			return types.QVar{Name: t.Cell.Name()}
		}
		return t

	default:
		panic("generalize.Generalize: unhandled type node")
	}
}
