// Package resolver implements the name-resolution and
// ambiguity-disambiguation engine: a bottom-up traversal that classifies
// every identifier use against nested lexical scopes, uses that
// classification to collapse each ambiguous AST site to its single valid
// interpretation, and reports precise errors where no unique selection
// exists.
//
// The traversal is a pure, synchronous transformation: no shared mutable
// state, no I/O, no blocking. Resolution state (scope.State) is threaded as
// an explicit parameter, never through a global or thread-local, per spec
// Design Notes.
//
// Much of the shape of this package — the explicit scope-chain parameter,
// the position-carrying error aggregation, the two-pass scope construction
// — is adapted from the teacher (mna/nenuphar)'s lang/resolver package,
// generalized from "resolve the parser's single unambiguous tree" to
// "select, per site, the one alternative among several that resolves
// cleanly."
package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// Mode is a set of bit flags configuring the resolver. By default (0) every
// error is reported and the predefined and module scopes are not given
// diagnostic names.
type Mode uint

const (
	// NameBlocks gives the predefined scope and each module's top-level
	// scope a stable, deterministic name ("predefined", "module X"), useful
	// for diagnostics. Procedure-body ("proc X") and FOR-loop ("for X")
	// scopes are named whatever the mode. Ported from the teacher's
	// resolver.NameBlocks mode (lang/resolver/naming.go), generalized from
	// "blocks" to "scopes".
	NameBlocks Mode = 1 << iota
)

// Variant isolates the handful of behaviors that differ between Oberon and
// Oberon-2 (which builtins exist, the default predefined scope, whether
// type-bound procedures are legal) behind a small interface, the Go
// rendering of the source's "language-parameter type-class" (spec Design
// Notes, "Polymorphism over language variants").
type Variant interface {
	// Name identifies the variant for diagnostics.
	Name() string
	// IsBuiltinProcedureName reports whether name is one of this variant's
	// builtin procedures that accept a type as an argument (e.g. SIZE).
	IsBuiltinProcedureName(name ast.Ident) bool
	// DefaultPredefined returns this variant's predefined scope.
	DefaultPredefined() *scope.Scope
	// HasTypeBoundProcedures reports whether this variant allows type-bound
	// (receiver) procedure declarations: Oberon2 does, Oberon1 does not, and
	// a type-bound heading under Oberon1 is an InvalidDeclaration.
	HasTypeBoundProcedures() bool
}

// Context is the immutable Resolution Context of spec §3: the table of
// visible modules (each module's export scope, keyed by the local alias
// under which it was imported) plus the active language Variant. The
// current scope and ResolutionState are threaded separately, as explicit
// parameters to each resolution function, rather than carried on Context,
// so that nested scopes never need to copy or mutate it.
type Context struct {
	Modules map[ast.Ident]*scope.Scope
	Variant Variant
	Mode    Mode
}
