// Package prelude supplies the minimum built-in suite spec.md §6.3
// assumes, for tests and examples that don't want to hand-write every
// binary operator's scheme. Library callers are never required to use it
// — infer.NewEnv takes any []infer.Builtin.
package prelude

import (
	"github.com/funvibe/typeinfer/internal/infer"
	"github.com/funvibe/typeinfer/internal/types"
)

func binOp(name string, operand types.Type) infer.Builtin {
	return infer.Builtin{
		Name:   name,
		Scheme: types.Arrow{Params: []types.Type{operand, operand}, Ret: operand},
	}
}

// Builtins returns the arithmetic suite of spec.md §6.3: +, -, *, / over
// Int, and +., -., *., /. over Float.
func Builtins() []infer.Builtin {
	intT := types.NewConst(types.Int)
	floatT := types.NewConst(types.Float)
	return []infer.Builtin{
		binOp("+", intT),
		binOp("-", intT),
		binOp("*", intT),
		binOp("/", intT),
		binOp("+.", floatT),
		binOp("-.", floatT),
		binOp("*.", floatT),
		binOp("/.", floatT),
	}
}
