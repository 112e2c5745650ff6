package types

import "testing"

func TestDeepCopyPreservesSharing(t *testing.T) {
	a := Var{Cell: NewCell("t0", 1)}
	// Arrow(t0, t0): the same cell appears twice.
	arrow := Arrow{Params: []Type{a}, Ret: a}

	copied := DeepCopy(arrow, make(map[string]*Cell))
	copiedArrow := copied.(Arrow)

	p0 := copiedArrow.Params[0].(Var)
	ret := copiedArrow.Ret.(Var)
	if p0.Cell != ret.Cell {
		t.Fatalf("deep copy did not preserve cell sharing: got distinct cells for same variable name")
	}
	if p0.Cell == a.Cell {
		t.Fatalf("deep copy returned the original cell instead of a fresh one")
	}
}

func TestDeepCopyDoesNotMutateOriginal(t *testing.T) {
	a := Var{Cell: NewCell("t0", 0)}
	copied := DeepCopy(a, make(map[string]*Cell)).(Var)

	copied.Cell.SetLink(NewConst(Int))

	if a.Cell.IsLinked() {
		t.Fatalf("mutating the copy linked the original cell")
	}
}

func TestDeepCopyFollowsLinks(t *testing.T) {
	cell := NewCell("t0", 0)
	cell.SetLink(NewConst(Int))
	v := Var{Cell: cell}

	copied := DeepCopy(v, make(map[string]*Cell)).(Var)
	if !copied.Cell.IsLinked() {
		t.Fatalf("expected copied cell to carry the link")
	}
	if copied.Cell.Link().(Const).Kind != Int {
		t.Fatalf("expected copied link to resolve to Int")
	}
}
