// Package scope implements the Scope and DeclarationRHS data model of the
// resolver: the mapping from a local identifier to what it denotes (or to
// the error that explains why its declaration failed to resolve), and the
// resolution-state and error taxonomy threaded through the traversal.
//
// Scopes are immutable once built and are backed by
// github.com/dolthub/swiss, the same hash map used by the teacher
// (mna/nenuphar)'s lang/machine package for its Oberon-style map values —
// here repurposed to back lexical scopes instead of runtime dictionaries.
package scope

import (
	"github.com/mna/oberesolve/lang/ast"
)

// Kind tags the four cases of DeclarationRHS.
type Kind uint8

const (
	// DeclaredConstant is "CONST name = expr".
	DeclaredConstant Kind = iota
	// DeclaredType is "TYPE name = T".
	DeclaredType
	// DeclaredVariable is "VAR name: T".
	DeclaredVariable
	// DeclaredProcedure is "PROCEDURE name(params): ret" (or a forward
	// declaration, or a type-bound procedure).
	DeclaredProcedure
)

func (k Kind) String() string {
	switch k {
	case DeclaredConstant:
		return "constant"
	case DeclaredType:
		return "type"
	case DeclaredVariable:
		return "variable"
	case DeclaredProcedure:
		return "procedure"
	default:
		return "unknown"
	}
}

// DeclarationRHS is what a name denotes, once resolved: a tagged variant
// with four cases. A DeclarationRHS stored in a Scope is itself resolved —
// its embedded type/expression references have already been name-checked.
type DeclarationRHS struct {
	Kind Kind

	// ConstExpr is set when Kind == DeclaredConstant: the (resolved)
	// expression bound to the constant. The resolver never evaluates it.
	ConstExpr ast.Placed[ast.Expr]

	// Type is set when Kind == DeclaredType or DeclaredVariable: the
	// (resolved) type denoted or the variable's type, respectively.
	Type ast.TypeExpr

	// IsBuiltin is set when Kind == DeclaredProcedure: true for the
	// predefined builtins (MAX, MIN, SIZE), which accept types as arguments
	// (see spec §4.3 FunctionCall). The scope builder never sets it: a
	// procedure declared in source, including in a module named SYSTEM, is
	// not a builtin.
	IsBuiltin bool

	// FormalParams is set when Kind == DeclaredProcedure: the procedure's
	// formal parameter list, or nil if unknown (the forward-declaration
	// case still carries it; only truly opaque predefined signatures may
	// omit it).
	FormalParams []ast.FormalParam

	// Result is the optional function result type, set when
	// Kind == DeclaredProcedure and the procedure is a function.
	Result *ast.QualIdent
}

// Constant builds a DeclaredConstant DeclarationRHS.
func Constant(expr ast.Placed[ast.Expr]) DeclarationRHS {
	return DeclarationRHS{Kind: DeclaredConstant, ConstExpr: expr}
}

// Type builds a DeclaredType DeclarationRHS.
func Type(t ast.TypeExpr) DeclarationRHS {
	return DeclarationRHS{Kind: DeclaredType, Type: t}
}

// Variable builds a DeclaredVariable DeclarationRHS.
func Variable(t ast.TypeExpr) DeclarationRHS {
	return DeclarationRHS{Kind: DeclaredVariable, Type: t}
}

// Procedure builds a DeclaredProcedure DeclarationRHS.
func Procedure(isBuiltin bool, params []ast.FormalParam, result *ast.QualIdent) DeclarationRHS {
	return DeclarationRHS{Kind: DeclaredProcedure, IsBuiltin: isBuiltin, FormalParams: params, Result: result}
}
