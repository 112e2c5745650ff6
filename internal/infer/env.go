// Package infer implements the expression-directed inference driver
// (spec.md §4.4): a recursive walk of the AST that produces the type of
// every expression, threading an environment and a fresh-variable counter.
package infer

import (
	"fmt"

	"github.com/funvibe/typeinfer/internal/config"
	"github.com/funvibe/typeinfer/internal/types"
)

// Builtin is one (name, scheme) pair supplied by the caller to seed a
// fresh environment (spec.md §6.3). The scheme is a closed type — it may
// contain QVars, but no Var whose cell escapes this package.
type Builtin struct {
	Name   string
	Scheme types.Type
}

// binding is one entry of Env's ordered bindings list.
type binding struct {
	name   string
	scheme types.Type
}

// Env is the (counter, bindings) pair of spec.md §3.2. It is threaded by
// value through the driver: extending it for a clause or function body
// builds a new bindings slice, so an inner scope's extensions never
// leak into the caller's Env (spec.md §9, "Return of environment vs
// counter").
type Env struct {
	counter  *int
	bindings []binding
}

// NewEnv builds a fresh environment seeded with builtins (spec.md's
// new_env()).
func NewEnv(builtins []Builtin) *Env {
	counter := 0
	env := &Env{counter: &counter}
	for _, b := range builtins {
		env.bindings = append(env.bindings, binding{name: b.Name, scheme: b.Scheme})
	}
	return env
}

// extend returns a new Env with name bound to scheme, sharing this Env's
// counter pointer (the counter is the one piece of state that must stay
// linear across the whole run) but holding an independent bindings slice.
// Shadowing: any prior binding for name is dropped first, so lookup sees
// most-recent-wins (spec.md §3.2, §9 "Shadowing").
func (e *Env) extend(name string, scheme types.Type) *Env {
	next := make([]binding, 0, len(e.bindings)+1)
	for _, b := range e.bindings {
		if b.name != name {
			next = append(next, b)
		}
	}
	next = append(next, binding{name: name, scheme: scheme})
	return &Env{counter: e.counter, bindings: next}
}

// lookup finds the most-recently-bound scheme for name, scanning from the
// end since extend always appends.
func (e *Env) lookup(name string) (types.Type, bool) {
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].name == name {
			return e.bindings[i].scheme, true
		}
	}
	return nil, false
}

// Fresh mints a new Unbound Var at level, bumping the counter by one. It
// implements generalize.VarMinter.
func (e *Env) Fresh(level int) types.Var {
	name := fmt.Sprintf("%s%d", config.FreshVarPrefix, *e.counter)
	*e.counter++
	return types.Var{Cell: types.NewCell(name, level)}
}

// Counter returns the current value of the fresh-variable counter, for
// tests asserting counter monotonicity (spec.md §8.1.2).
func (e *Env) Counter() int { return *e.counter }
