package types

import (
	"testing"

	"github.com/funvibe/typeinfer/internal/config"
)

func TestRealTypeFollowsLinks(t *testing.T) {
	inner := NewCell("t1", 0)
	outer := NewCell("t0", 0)
	outer.SetLink(Var{Cell: inner})
	inner.SetLink(NewConst(Bool))

	got := RealType(Var{Cell: outer})
	c, ok := got.(Const)
	if !ok || c.Kind != Bool {
		t.Fatalf("expected RealType to resolve through the chain to Bool, got %#v", got)
	}
}

func TestRealTypeLeavesUnboundVarAlone(t *testing.T) {
	v := Var{Cell: NewCell("t0", 0)}
	got := RealType(v)
	gv, ok := got.(Var)
	if !ok || gv.Cell != v.Cell {
		t.Fatalf("expected unbound Var to be returned unchanged")
	}
}

func TestArrowStringArity(t *testing.T) {
	a := Arrow{Params: []Type{NewConst(Int), NewConst(Float)}, Ret: NewConst(Bool)}
	want := "(Int, Float) -> Bool"
	if got := a.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeVarNameUnderTestMode(t *testing.T) {
	config.IsTestMode = true
	defer func() { config.IsTestMode = false }()

	q := QVar{Name: "q3"}
	if got, want := q.String(), "'q?"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
