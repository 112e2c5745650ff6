package types

// DeepCopy produces a structural copy of t, allocating a fresh cell for
// every distinct Unbound variable name it encounters, while ensuring every
// occurrence of the *same* name shares a single fresh cell (spec.md §4.1).
// seen is the name -> fresh-cell cache; pass a fresh empty map per
// top-level call. internal/infer does not call DeepCopy: its application
// rule relies on Instantiate for per-call freshening (see DESIGN.md).
//
// Unifying a use-site against a polymorphic function's type must not
// mutate the function's own scheme (Pierce, TAPL ch. 22): a later call
// with an incompatible argument type would otherwise wrongly fail because
// an earlier call had already linked the shared cells.
func DeepCopy(t Type, seen map[string]*Cell) Type {
	switch t := t.(type) {
	case Const:
		return t
	case QVar:
		return t
	case List:
		return List{Elem: DeepCopy(t.Elem, seen)}
	case Arrow:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = DeepCopy(p, seen)
		}
		return Arrow{Params: params, Ret: DeepCopy(t.Ret, seen)}
	case Clause:
		var guard Type
		if t.Guard != nil {
			guard = DeepCopy(t.Guard, seen)
		}
		return Clause{Pattern: DeepCopy(t.Pattern, seen), Guard: guard, Result: DeepCopy(t.Result, seen)}
	case Var:
		return Var{Cell: deepCopyCell(t.Cell, seen)}
	default:
		panic("types.DeepCopy: unhandled type node")
	}
}

func deepCopyCell(c *Cell, seen map[string]*Cell) *Cell {
	if cached, ok := seen[c.name]; ok {
		return cached
	}
	if !c.IsLinked() {
		fresh := NewCell(c.name, c.level)
		seen[c.name] = fresh
		return fresh
	}
	// A Link becomes a fresh cell holding a Link to the deep-copied target
	// (spec.md §4.1). Register the fresh cell before recursing so a cycle
	// through the same name (which should never occur post-occurs-check,
	// but would otherwise recurse forever) resolves to itself.
	fresh := NewCell(c.name, c.level)
	seen[c.name] = fresh
	fresh.SetLink(DeepCopy(c.link, seen))
	return fresh
}
