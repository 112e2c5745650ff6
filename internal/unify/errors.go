package unify

import (
	"fmt"

	"github.com/funvibe/typeinfer/internal/types"
)

// CannotUnifyError reports a structural mismatch between two types
// (spec.md §7).
type CannotUnifyError struct {
	T1, T2 types.Type
}

func (e *CannotUnifyError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.T1.String(), e.T2.String())
}

func newCannotUnify(t1, t2 types.Type) error {
	return &CannotUnifyError{T1: t1, T2: t2}
}

// MismatchedArityError reports two Arrow types with differing parameter
// counts.
type MismatchedArityError struct {
	Want, Got int
}

func (e *MismatchedArityError) Error() string {
	return fmt.Sprintf("mismatched arity: expected %d argument(s), got %d", e.Want, e.Got)
}

func newMismatchedArity(want, got int) error {
	return &MismatchedArityError{Want: want, Got: got}
}

// CircularTypeError reports an occurs-check failure: the variable named
// Name would have to contain itself.
type CircularTypeError struct {
	Name string
}

func (e *CircularTypeError) Error() string {
	return fmt.Sprintf("circular type involving %s", e.Name)
}

func newCircularType(name string) error {
	return &CircularTypeError{Name: name}
}
