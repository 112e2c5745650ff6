// Package unify implements the destructive unification engine of
// spec.md §4.2: given two types, it mutates the cells reachable from
// either side until they describe the same type, or reports why they
// cannot be made equal.
//
// This is the technique of Rémy/Kiselyov as implemented by Primozic's
// Go port (wdamron/poly) — mutable Var cells rather than a substitution
// map threaded through every call — and the algorithm here is grounded
// directly on that implementation's occursAdjustLevels/unify pair rather
// than on this repository's teacher, whose type system is
// substitution-based.
package unify

import "github.com/funvibe/typeinfer/internal/types"

// Unify destructively rewrites cells so that t1 and t2 represent the same
// type, or returns a CannotUnifyError, MismatchedArityError, or
// CircularTypeError.
func Unify(t1, t2 types.Type) error {
	t1 = types.RealType(t1)
	t2 = types.RealType(t2)

	v1, v1IsVar := t1.(types.Var)
	v2, v2IsVar := t2.(types.Var)

	switch {
	case v1IsVar && v2IsVar:
		if v1.Cell == v2.Cell {
			return nil
		}
		if v1.Cell.Name() == v2.Cell.Name() {
			// Same label, different cells: the "single canonical cell per
			// variable" invariant (spec.md §3.1) has already been broken
			// somewhere upstream. Reported rather than silently repaired.
			return newCannotUnify(t1, t2)
		}
		return bind(v1, t2)
	case v1IsVar:
		return bind(v1, t2)
	case v2IsVar:
		return bind(v2, t1)
	}

	switch a := t1.(type) {
	case types.Const:
		b, ok := t2.(types.Const)
		if !ok || a.Kind != b.Kind {
			return newCannotUnify(t1, t2)
		}
		return nil

	case types.Arrow:
		b, ok := t2.(types.Arrow)
		if !ok {
			return newCannotUnify(t1, t2)
		}
		if len(a.Params) != len(b.Params) {
			return newMismatchedArity(len(a.Params), len(b.Params))
		}
		for i := range a.Params {
			if err := Unify(a.Params[i], b.Params[i]); err != nil {
				return err
			}
		}
		return Unify(a.Ret, b.Ret)

	case types.List:
		b, ok := t2.(types.List)
		if !ok {
			return newCannotUnify(t1, t2)
		}
		return Unify(a.Elem, b.Elem)

	case types.Clause:
		b, ok := t2.(types.Clause)
		if !ok {
			return newCannotUnify(t1, t2)
		}
		if err := Unify(a.Pattern, b.Pattern); err != nil {
			return err
		}
		return Unify(a.Result, b.Result)

	default:
		return newCannotUnify(t1, t2)
	}
}

// bind links v's cell to t, after checking that v does not occur within t
// and tightening the level of every Unbound cell t reaches (spec.md §4.2
// step 4).
func bind(v types.Var, t types.Type) error {
	if err := occursAdjustLevel(v.Cell.Name(), v.Cell.Level(), t); err != nil {
		return err
	}
	v.Cell.SetLink(t)
	return nil
}

// occursAdjustLevel walks t looking for a cell named name. If found, the
// occurs-check fails: linking v to t would construct an infinite type.
// Otherwise every other Unbound cell reachable from t has its level
// lowered to min(its own level, level) — this is what prevents a variable
// that would have been generalized at an outer level from being smuggled
// through a Link into a type living at an inner level (spec.md §4.2,
// §3.1 "Level monotonicity").
func occursAdjustLevel(name string, level int, t types.Type) error {
	t = types.RealType(t)
	switch t := t.(type) {
	case types.Var:
		if t.Cell.Name() == name {
			return newCircularType(name)
		}
		t.Cell.SetLevel(min(t.Cell.Level(), level))
		return nil

	case types.Const, types.QVar:
		return nil

	case types.List:
		return occursAdjustLevel(name, level, t.Elem)

	case types.Arrow:
		for _, p := range t.Params {
			if err := occursAdjustLevel(name, level, p); err != nil {
				return err
			}
		}
		return occursAdjustLevel(name, level, t.Ret)

	case types.Clause:
		if t.Guard != nil {
			if err := occursAdjustLevel(name, level, t.Guard); err != nil {
				return err
			}
		}
		if err := occursAdjustLevel(name, level, t.Pattern); err != nil {
			return err
		}
		return occursAdjustLevel(name, level, t.Result)

	default:
		return nil
	}
}
