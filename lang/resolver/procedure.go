package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// resolveProcedureHeading implements the ProcedureHeading production of
// spec §4.3: a plain heading and a type-bound (receiver) heading are tried
// as the two alternatives of the same ambiguous site, and whichever
// name-checks without error wins.
func resolveProcedureHeading(ctx *Context, sc *scope.Scope, wrap ast.NodeWrap[ast.ProcedureHeading]) (ast.Placed[ast.ProcedureHeading], *scope.Error) {
	attempt := func(alt ast.ProcedureHeading) (ast.ProcedureHeading, *scope.Error) {
		switch h := alt.(type) {
		case ast.PlainHeading:
			params, err := resolveFormalParams(ctx, sc, wrap.Pos, h.Params)
			if err != nil {
				return nil, err
			}
			if h.Result != nil {
				if _, err := ResolveTypeName(ctx, sc, *h.Result, wrap.Pos); err != nil {
					return nil, err
				}
			}
			return ast.PlainHeading{Name: h.Name, NamePos: h.NamePos, Access: h.Access, Params: params, Result: h.Result}, nil

		case ast.BoundHeading:
			if !ctx.Variant.HasTypeBoundProcedures() {
				return nil, scope.New(scope.InvalidDeclaration, wrap.Pos, ast.Unqualified(h.Name), "%s does not support type-bound procedures", ctx.Variant.Name())
			}
			if _, err := ResolveTypeName(ctx, sc, h.ReceiverType, wrap.Pos); err != nil {
				return nil, err
			}
			params, err := resolveFormalParams(ctx, sc, wrap.Pos, h.Params)
			if err != nil {
				return nil, err
			}
			if h.Result != nil {
				if _, err := ResolveTypeName(ctx, sc, *h.Result, wrap.Pos); err != nil {
					return nil, err
				}
			}
			return ast.BoundHeading{
				Receiver: h.Receiver, ReceiverPos: h.ReceiverPos, ReceiverType: h.ReceiverType, ReceiverVar: h.ReceiverVar,
				Name: h.Name, NamePos: h.NamePos, Access: h.Access, Params: params, Result: h.Result,
			}, nil

		default:
			return nil, scope.New(scope.InvalidDeclaration, wrap.Pos, ast.QualIdent{}, "unexpected procedure heading alternative %T", alt)
		}
	}

	result, n, errs := disambiguate(wrap.Alts, attempt)
	switch {
	case n == 1:
		return ast.Placed[ast.ProcedureHeading]{Pos: wrap.Pos, Node: result}, nil
	case n == 0:
		return ast.Placed[ast.ProcedureHeading]{}, scope.Wrap(scope.InvalidDeclaration, wrap.Pos, "no alternative resolved as a procedure heading", errs)
	default:
		return ast.Placed[ast.ProcedureHeading]{}, scope.Wrap(scope.AmbiguousDeclaration, wrap.Pos, "%d alternatives resolve as a procedure heading", nil, n)
	}
}

// headingBodyScope opens the scope local to a procedure body: its receiver
// (for a type-bound heading) and formal parameters, chained off outer.
func headingBodyScope(heading ast.ProcedureHeading, outer *scope.Scope) *scope.Scope {
	bodyScope := scope.New(outer)
	bodyScope.SetName("proc " + string(heading.HeadingName()))
	if bh, ok := heading.(ast.BoundHeading); ok {
		bodyScope.Bind(bh.Receiver, scope.Ok(scope.Variable(ast.NamedType{Ref: bh.ReceiverType})))
	}
	for _, p := range heading.HeadingParams() {
		bodyScope.Bind(p.Name, scope.Ok(scope.Variable(p.Type)))
	}
	return bodyScope
}
