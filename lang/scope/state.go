package scope

// State is the ResolutionState of spec §3: it governs whether a
// DeclaredType is an acceptable resolution for an identifier appearing in
// an expression-like position. It is passed down explicitly through the
// traversal (never as a global or thread-local); a FunctionCall whose
// callee is a builtin procedure passes ExpressionOrTypeState down to its
// arguments instead.
type State uint8

const (
	// ModuleState is the state at the top of a module.
	ModuleState State = iota
	// DeclarationState is the state while resolving a declaration's
	// right-hand side.
	DeclarationState
	// StatementState is the state while resolving a statement.
	StatementState
	// ExpressionState is the state while resolving a value-producing
	// expression; a DeclaredType found here is a NotAValue error.
	ExpressionState
	// ExpressionOrTypeState is ExpressionState plus "a DeclaredType is also
	// acceptable", used for builtin procedure call arguments (e.g.
	// SIZE(INTEGER)). Type-guard subtypes are checked as type names and do
	// not use it.
	ExpressionOrTypeState
)

func (s State) String() string {
	switch s {
	case ModuleState:
		return "module"
	case DeclarationState:
		return "declaration"
	case StatementState:
		return "statement"
	case ExpressionState:
		return "expression"
	case ExpressionOrTypeState:
		return "expression-or-type"
	default:
		return "unknown"
	}
}

// AllowsType reports whether a DeclaredType is an acceptable resolution for
// a Variable designator in this state (spec §4.3: "If DeclaredType and
// state != ExpressionOrTypeState, fail NotAValue(q)").
func (s State) AllowsType() bool {
	return s == ExpressionOrTypeState
}
