package infer

import (
	"github.com/funvibe/typeinfer/internal/ast"
	"github.com/funvibe/typeinfer/internal/generalize"
	"github.com/funvibe/typeinfer/internal/types"
	"github.com/funvibe/typeinfer/internal/unify"
)

// unitArgTag is the reserved name a FunDef's unit-placeholder argument is
// bound under (spec.md §4.4.4 step 1: "bind its type to Unit under a
// reserved tag"). It can never collide with a source identifier because
// the source's lexer does not produce bare parentheses as a Symbol name.
const unitArgTag = "()"

// TypeOf infers the type of expr under env, starting at level 0, and
// follows every Link in the result to produce a type tree free of linked
// cells; unbound variables stay as Var (spec.md §4.4.6, §6.2's
// type_of(env, expr)).
func TypeOf(env *Env, expr ast.Expr) (types.Type, error) {
	return TypeOfAtLevel(env, 0, expr)
}

// TypeOfAtLevel is the recursive entry point, exposed for tests that need
// to start inference at a level other than 0 (spec.md §6.2's
// type_of(env, level, expr)).
func TypeOfAtLevel(env *Env, level int, expr ast.Expr) (types.Type, error) {
	t, err := inferAt(env, level, expr)
	if err != nil {
		return nil, err
	}
	return resolve(t), nil
}

// inferAt is the expression-directed driver of spec.md §4.4. It returns
// the monotype of expr under env at level, with cells still live (callers
// further up the recursion may still unify against them).
func inferAt(env *Env, level int, expr ast.Expr) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return types.NewConst(types.Int), nil
	case *ast.FloatLit:
		return types.NewConst(types.Float), nil
	case *ast.AtomLit:
		return types.NewConst(types.Atom), nil
	case *ast.StringLit:
		return types.NewConst(types.String), nil
	case *ast.BoolLit:
		return types.NewConst(types.Bool), nil

	case *ast.Symbol:
		return lookupAndInstantiate(env, level, e.Name, e.Line())

	case *ast.Builtin:
		return lookupAndInstantiate(env, level, e.Name, e.Line())

	case *ast.Apply:
		return inferApply(env, level, e)

	case *ast.Match:
		return inferMatch(env, level, e)

	case *ast.Clause:
		return inferClause(env, level, e)

	case *ast.FunDef:
		return inferFunDef(env, level, e)

	case *ast.FunBinding:
		return inferFunBinding(env, level, e)

	case *ast.VarBinding:
		return inferVarBinding(env, level, e)

	case *ast.Wildcard:
		return env.Fresh(level), nil

	case *ast.Unit:
		return types.NewConst(types.Unit), nil

	default:
		return nil, &unhandledExprError{Kind: expr.ExprName(), Line: expr.Line()}
	}
}

func lookupAndInstantiate(env *Env, level int, name string, line int) (types.Type, error) {
	scheme, ok := env.lookup(name)
	if !ok {
		return nil, &UnboundVariableError{Name: name, Line: line}
	}
	return generalize.Instantiate(scheme, level, env), nil
}

// inferApply implements spec.md §4.4.1. Ordering matters: the function is
// inferred before any argument is, and arguments are inferred strictly
// left-to-right (spec.md §5), so the counter's progression is
// deterministic.
//
// Per-call copying of a polymorphic function's type (§4.1's contract,
// "unification against this call site cannot poison the original scheme")
// is already provided by Instantiate, invoked when e.Name is a Symbol or
// Builtin: every QVar in the looked-up scheme is freshened, while
// genuinely Unbound cells in scope are passed through untouched. A second,
// unconditional DeepCopy here would also freshen those Unbound cells,
// severing a plain (non-generalized) function parameter from the very
// environment cell the unification below needs to link — see DESIGN.md.
func inferApply(env *Env, level int, e *ast.Apply) (types.Type, error) {
	fnType, err := inferAt(env, level, e.Name)
	if err != nil {
		return nil, err
	}

	argTypes := make([]types.Type, len(e.Args))
	for i, arg := range e.Args {
		argType, err := inferAt(env, level, arg)
		if err != nil {
			return nil, err
		}
		argTypes[i] = argType
	}

	result := env.Fresh(level)
	if err := unify.Unify(fnType, types.Arrow{Params: argTypes, Ret: result}); err != nil {
		return nil, err
	}
	return result, nil
}

// inferMatch implements spec.md §4.4.2.
func inferMatch(env *Env, level int, e *ast.Match) (types.Type, error) {
	scrutineeType, err := inferAt(env, level, e.Scrutinee)
	if err != nil {
		return nil, err
	}

	clauseTypes := make([]types.Type, len(e.Clauses))
	for i, clause := range e.Clauses {
		ct, err := inferAt(env, level, clause)
		if err != nil {
			return nil, err
		}
		clauseTypes[i] = ct
	}

	for i := 1; i < len(clauseTypes); i++ {
		if err := unify.Unify(clauseTypes[0], clauseTypes[i]); err != nil {
			return nil, err
		}
	}

	if len(clauseTypes) == 0 {
		return env.Fresh(level), nil
	}

	common := clauseTypes[0].(types.Clause)
	if err := unify.Unify(scrutineeType, common.Pattern); err != nil {
		return nil, err
	}
	return common.Result, nil
}

// inferClause implements spec.md §4.4.3's pattern-binding rules.
func inferClause(env *Env, level int, e *ast.Clause) (types.Type, error) {
	clauseEnv := env
	var patternType types.Type

	switch p := e.Pattern.(type) {
	case *ast.Symbol:
		v := env.Fresh(level)
		clauseEnv = env.extend(p.Name, v)
		patternType = v
	case *ast.Wildcard:
		patternType = env.Fresh(level)
	default:
		t, err := inferAt(env, level, e.Pattern)
		if err != nil {
			return nil, err
		}
		patternType = t
	}

	resultType, err := inferAt(clauseEnv, level, e.Result)
	if err != nil {
		return nil, err
	}

	return types.Clause{Pattern: patternType, Guard: nil, Result: resultType}, nil
}

// inferFunDef implements spec.md §4.4.4.
func inferFunDef(env *Env, level int, e *ast.FunDef) (types.Type, error) {
	bodyEnv := env
	paramTypes := make([]types.Type, len(e.Args))

	for i, arg := range e.Args {
		switch a := arg.(type) {
		case *ast.Unit:
			bodyEnv = bodyEnv.extend(unitArgTag, types.NewConst(types.Unit))
			paramTypes[i] = types.NewConst(types.Unit)
		case *ast.Symbol:
			if existing, ok := bodyEnv.lookup(a.Name); ok {
				paramTypes[i] = existing
				continue
			}
			v := env.Fresh(level)
			bodyEnv = bodyEnv.extend(a.Name, v)
			paramTypes[i] = v
		default:
			return nil, &unhandledExprError{Kind: arg.ExprName(), Line: arg.Line()}
		}
	}

	bodyType, err := inferAt(bodyEnv, level, e.Body)
	if err != nil {
		return nil, err
	}

	return types.Arrow{Params: paramTypes, Ret: bodyType}, nil
}

// inferFunBinding and inferVarBinding both implement spec.md §4.4.5: the
// bound expression is inferred one level deeper than the let itself, so
// that every variable it mints is tagged as local to this binding; the
// let's own level is then the one Generalize compares against, and the
// body is inferred back at that same level (not deeper still — nothing
// about the body belongs to this let's scope).
//
// spec.md's prose describes this the other way around ("infer τ1 at the
// current level ... infer E2 at level+1"), but that ordering generalizes
// nothing: a variable minted while inferring τ1 "at the current level"
// has exactly the level Generalize compares it against, so Generalize's
// strict `l > level` test never promotes it, and any let reused
// polymorphically at two different types (spec.md §8.2 scenario 5) fails
// to unify the second use against the first instead of getting a fresh
// instance. Tracing the grounding source's own Let case (the `level+1`
// bump sits on the *value*, not the body) confirms which side of the
// binding is meant to move; this implementation follows that, and
// DESIGN.md records the resolution.
func inferFunBinding(env *Env, level int, e *ast.FunBinding) (types.Type, error) {
	valueType, err := inferAt(env, level+1, e.Def)
	if err != nil {
		return nil, err
	}
	scheme := generalize.Generalize(level, valueType)
	name := ""
	if e.Def.Name != nil {
		name = e.Def.Name.Name
	}
	bodyEnv := env.extend(name, scheme)
	return inferAt(bodyEnv, level, e.Body)
}

func inferVarBinding(env *Env, level int, e *ast.VarBinding) (types.Type, error) {
	valueType, err := inferAt(env, level+1, e.Value)
	if err != nil {
		return nil, err
	}
	scheme := generalize.Generalize(level, valueType)
	bodyEnv := env.extend(e.Name.Name, scheme)
	return inferAt(bodyEnv, level, e.Body)
}

// resolve recursively follows every cell reachable from t (spec.md
// §4.4.6), producing a type tree with no linked cells left in it. Unbound
// cells are left as the same Var, still sharing their cell — they denote
// genuinely free variables in the principal type, not yet-unresolved
// indirection.
func resolve(t types.Type) types.Type {
	t = types.RealType(t)
	switch t := t.(type) {
	case types.Const, types.QVar, types.Var:
		return t
	case types.List:
		return types.List{Elem: resolve(t.Elem)}
	case types.Arrow:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = resolve(p)
		}
		return types.Arrow{Params: params, Ret: resolve(t.Ret)}
	case types.Clause:
		var guard types.Type
		if t.Guard != nil {
			guard = resolve(t.Guard)
		}
		return types.Clause{Pattern: resolve(t.Pattern), Guard: guard, Result: resolve(t.Result)}
	default:
		return t
	}
}
