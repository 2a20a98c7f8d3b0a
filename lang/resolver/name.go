package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// ResolveName implements spec §4.1's resolveName: given a qualified or
// unqualified identifier and the current scope chain, returns what it
// denotes or the error explaining why it doesn't resolve.
func ResolveName(ctx *Context, sc *scope.Scope, q ast.QualIdent, pos ast.Pos) (scope.DeclarationRHS, *scope.Error) {
	if q.Qualified() {
		modScope, ok := ctx.Modules[q.Module]
		if !ok {
			return scope.DeclarationRHS{}, scope.New(scope.UnknownModule, pos, q, "unknown module: %s", q.Module)
		}
		e, ok := modScope.LocalLookup(q.Name)
		if !ok {
			return scope.DeclarationRHS{}, scope.New(scope.UnknownImport, pos, q, "module %s has no exported name %s", q.Module, q.Name)
		}
		if e.Err != nil {
			return scope.DeclarationRHS{}, e.Err
		}
		return e.RHS, nil
	}

	e, ok := sc.Lookup(q.Name)
	if !ok {
		return scope.DeclarationRHS{}, scope.New(scope.UnknownLocal, pos, q, "undefined: %s", q.Name)
	}
	if e.Err != nil {
		return scope.DeclarationRHS{}, e.Err
	}
	return e.RHS, nil
}

// ResolveTypeName is resolveTypeName of spec §4.1: ResolveName, requiring
// the result to be a DeclaredType.
func ResolveTypeName(ctx *Context, sc *scope.Scope, q ast.QualIdent, pos ast.Pos) (scope.DeclarationRHS, *scope.Error) {
	rhs, err := ResolveName(ctx, sc, q, pos)
	if err != nil {
		return scope.DeclarationRHS{}, err
	}
	if rhs.Kind != scope.DeclaredType {
		return scope.DeclarationRHS{}, scope.New(scope.NotAType, pos, q, "%s is not a type", q)
	}
	return rhs, nil
}
