package infer

import "fmt"

// UnboundVariableError reports a Symbol referencing a name with no
// binding in scope (spec.md §7), mirroring the teacher's
// typesystem.SymbolNotFoundError.
type UnboundVariableError struct {
	Name string
	Line int
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("line %d: unbound variable %q", e.Line, e.Name)
}

// unhandledExprError reports an ast.Expr kind the driver has no rule for.
// Not part of the error kinds spec.md §7 enumerates — it signals a caller
// defect (an AST shape outside §6.1), not an ill-typed program.
type unhandledExprError struct {
	Kind string
	Line int
}

func (e *unhandledExprError) Error() string {
	return fmt.Sprintf("line %d: unhandled expression kind %s", e.Line, e.Kind)
}
