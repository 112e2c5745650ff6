package infer

import (
	"github.com/google/uuid"

	"github.com/funvibe/typeinfer/internal/ast"
	"github.com/funvibe/typeinfer/internal/types"
)

// Session wraps an Env with a stable identifier, so a caller running
// several inference runs concurrently (spec.md §5: "each inference
// session must own its own store and environment") can tell their logs
// and errors apart. Session performs no I/O of its own; it is a naming
// convenience over NewEnv, not a new inference capability.
type Session struct {
	ID  uuid.UUID
	Env *Env
}

// NewSession builds a Session around a freshly seeded Env.
func NewSession(builtins []Builtin) *Session {
	return &Session{ID: uuid.New(), Env: NewEnv(builtins)}
}

// TypeOf infers the type of expr under the session's environment.
func (s *Session) TypeOf(expr ast.Expr) (types.Type, error) {
	return TypeOf(s.Env, expr)
}
