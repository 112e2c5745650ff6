package generalize

import (
	"testing"

	"github.com/funvibe/typeinfer/internal/types"
)

func TestGeneralizePromotesVariablesAboveLevel(t *testing.T) {
	v := types.Var{Cell: types.NewCell("t0", 2)}
	scheme := Generalize(1, v)
	q, ok := scheme.(types.QVar)
	if !ok || q.Name != "t0" {
		t.Fatalf("expected QVar(t0), got %#v", scheme)
	}
}

func TestGeneralizeLeavesVariablesAtOrBelowLevelAlone(t *testing.T) {
	v := types.Var{Cell: types.NewCell("t0", 1)}
	scheme := Generalize(1, v)
	got, ok := scheme.(types.Var)
	if !ok || got.Cell != v.Cell {
		t.Fatalf("expected the same Var unchanged, got %#v", scheme)
	}
}

type stubMinter struct{ next int }

func (m *stubMinter) Fresh(level int) types.Var {
	name := "t" + string(rune('0'+m.next))
	m.next++
	return types.Var{Cell: types.NewCell(name, level)}
}

func TestInstantiateSharesFreshCellAcrossRepeatedQVar(t *testing.T) {
	// scheme: Arrow([QVar(a)], QVar(a)) -- the identity function's scheme.
	scheme := types.Arrow{Params: []types.Type{types.QVar{Name: "a"}}, Ret: types.QVar{Name: "a"}}

	minter := &stubMinter{}
	instantiated := Instantiate(scheme, 0, minter)

	arrow := instantiated.(types.Arrow)
	p0 := arrow.Params[0].(types.Var)
	ret := arrow.Ret.(types.Var)
	if p0.Cell != ret.Cell {
		t.Fatalf("expected both occurrences of QVar(a) to instantiate to the same fresh cell")
	}
}

func TestInstantiateDoesNotMutateScheme(t *testing.T) {
	scheme := types.Arrow{Params: []types.Type{types.QVar{Name: "a"}}, Ret: types.QVar{Name: "a"}}
	minter := &stubMinter{}

	instantiated := Instantiate(scheme, 0, minter).(types.Arrow)
	instantiated.Params[0].(types.Var).Cell.SetLink(types.NewConst(types.Int))

	// scheme itself must still be pure QVars, unaffected by the instance's
	// cell mutation.
	if _, ok := scheme.Params[0].(types.QVar); !ok {
		t.Fatalf("instantiating mutated the original scheme")
	}
}

func TestGeneralizeKeepsEscapedVariableMonomorphic(t *testing.T) {
	// A function whose argument variable escaped to an outer level (e.g.
	// unified with a variable bound before the let) must not generalize.
	escaped := types.Var{Cell: types.NewCell("t0", 0)}
	scheme := Generalize(1, escaped)
	if _, ok := scheme.(types.Var); !ok {
		t.Fatalf("variable at or below the generalization level must not become a QVar")
	}
}
