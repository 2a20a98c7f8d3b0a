package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// resolveTypeExpr name-checks every QualIdent embedded in a (syntactic)
// TypeExpr, recursively, without forcing resolution of the referenced
// type's own definition — it only needs to know that a referenced name
// exists and denotes a type (spec §3 invariant: a DeclarationRHS's embedded
// type references are name-checked, not transitively resolved). PseudoType
// is left untouched: per Design Notes, pseudo-types used only in
// predefined signatures are opaque and are never added to, or looked up
// in, the type scope.
func resolveTypeExpr(ctx *Context, sc *scope.Scope, pos ast.Pos, t ast.TypeExpr) (ast.TypeExpr, *scope.Error) {
	switch t := t.(type) {
	case ast.NamedType:
		if _, err := ResolveTypeName(ctx, sc, t.Ref, pos); err != nil {
			return nil, err
		}
		return t, nil

	case ast.PointerType:
		base, err := resolveTypeExpr(ctx, sc, pos, t.Base)
		if err != nil {
			return nil, err
		}
		return ast.PointerType{Base: base}, nil

	case ast.ArrayType:
		elem, err := resolveTypeExpr(ctx, sc, pos, t.Elem)
		if err != nil {
			return nil, err
		}
		return ast.ArrayType{Elem: elem}, nil

	case ast.RecordType:
		if t.Base == nil {
			return t, nil
		}
		base, err := resolveTypeExpr(ctx, sc, pos, *t.Base)
		if err != nil {
			return nil, err
		}
		return ast.RecordType{Base: &base}, nil

	case ast.ProcType:
		params, err := resolveFormalParams(ctx, sc, pos, t.Params)
		if err != nil {
			return nil, err
		}
		if t.Result != nil {
			if _, err := ResolveTypeName(ctx, sc, *t.Result, pos); err != nil {
				return nil, err
			}
		}
		return ast.ProcType{Params: params, Result: t.Result}, nil

	case ast.PseudoType, ast.BaseType:
		return t, nil

	default:
		return t, nil
	}
}

// resolveFormalParams name-checks every formal parameter's declared type.
func resolveFormalParams(ctx *Context, sc *scope.Scope, pos ast.Pos, params []ast.FormalParam) ([]ast.FormalParam, *scope.Error) {
	out := make([]ast.FormalParam, len(params))
	for i, p := range params {
		t, err := resolveTypeExpr(ctx, sc, pos, p.Type)
		if err != nil {
			return nil, err
		}
		out[i] = ast.FormalParam{Name: p.Name, Pos: p.Pos, Type: t, IsVar: p.IsVar}
	}
	return out, nil
}
