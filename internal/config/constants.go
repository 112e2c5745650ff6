// Package config holds process-wide flags that shape how this module
// presents itself, independent of any single inference run.
package config

// IsTestMode indicates the program is running under `go test`.
// When set, Type.String() normalizes auto-generated variable names
// (t0, t1, q3, ...) to deterministic placeholders so golden-style
// assertions don't depend on allocation order.
var IsTestMode = false

// Built-in ground type names (spec.md §3.1).
const (
	IntTypeName    = "Int"
	FloatTypeName  = "Float"
	AtomTypeName   = "Atom"
	BoolTypeName   = "Bool"
	StringTypeName = "String"
	UnitTypeName   = "Unit"
)

// FreshVarPrefix is the prefix minted for unbound type variables; see
// Env.Fresh in package infer.
const FreshVarPrefix = "t"

// QuantifiedVarPrefix is the second prefix, besides FreshVarPrefix, whose
// numbered names test-mode normalization collapses. Generalization does not
// mint names with it: a QVar keeps the name of the cell it was promoted from.
const QuantifiedVarPrefix = "q"
