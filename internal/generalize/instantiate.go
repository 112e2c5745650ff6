package generalize

import "github.com/funvibe/typeinfer/internal/types"

// VarMinter mints a single fresh Unbound type variable at the given level.
// infer.Env satisfies this interface; it lives here (rather than being
// imported from package infer) to avoid an import cycle, since infer
// itself calls Instantiate.
type VarMinter interface {
	Fresh(level int) types.Var
}

// Instantiate refreshes every QVar in scheme with a new Unbound cell at
// level, minted through minter. Every occurrence of the *same* QVar name
// within scheme resolves to the *same* fresh cell — the cache below is
// exactly the mechanism spec.md §4.3 describes for that sharing.
func Instantiate(scheme types.Type, level int, minter VarMinter) types.Type {
	cache := make(map[string]types.Var)
	return instantiate(scheme, level, minter, cache)
}

func instantiate(t types.Type, level int, minter VarMinter, cache map[string]types.Var) types.Type {
	switch t := t.(type) {
	case types.Const:
		return t

	case types.List:
		return types.List{Elem: instantiate(t.Elem, level, minter, cache)}

	case types.Arrow:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = instantiate(p, level, minter, cache)
		}
		return types.Arrow{Params: params, Ret: instantiate(t.Ret, level, minter, cache)}

	case types.Clause:
		var guard types.Type
		if t.Guard != nil {
			guard = instantiate(t.Guard, level, minter, cache)
		}
		return types.Clause{Pattern: instantiate(t.Pattern, level, minter, cache), Guard: guard, Result: instantiate(t.Result, level, minter, cache)}

	case types.Var:
		// A monomorphic variable already in scope: Links are followed
		// transparently, an Unbound cell is left exactly as-is (it isn't
		// part of this scheme — it belongs to the surrounding context).
		real := types.RealType(t)
		if _, ok := real.(types.Var); ok {
			return real
		}
		return instantiate(real, level, minter, cache)

	case types.QVar:
		if v, ok := cache[t.Name]; ok {
			return v
		}
		fresh := minter.Fresh(level)
		cache[t.Name] = fresh
		return fresh

	default:
		panic("generalize.Instantiate: unhandled type node")
	}
}
