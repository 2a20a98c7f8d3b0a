package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

type designatorAttempt struct {
	placed ast.Placed[ast.Designator]
	rhs    *scope.DeclarationRHS
}

// ResolveDesignator implements the Designator production of spec §4.3.
// state governs whether a bare Variable resolving to a DeclaredType is
// acceptable (NotAValue otherwise). The returned *scope.DeclarationRHS is
// non-nil only when the designator is (after collapsing any intermediate
// ambiguity) a bare Variable — FunctionCall uses it to detect a builtin
// procedure callee.
func ResolveDesignator(ctx *Context, sc *scope.Scope, state scope.State, wrap ast.NodeWrap[ast.Designator]) (ast.Placed[ast.Designator], *scope.DeclarationRHS, *scope.Error) {
	return resolveDesignator(ctx, sc, state, wrap, false)
}

// resolveRecord resolves wrap exactly as ResolveDesignator, except that a
// Variable resolving to DeclaredType is always a NotAValue error (state is
// irrelevant — a record position never accepts a type) and a Variable
// resolving to DeclaredProcedure is a NotARecord error (spec §4.3:
// "resolveRecord: like resolveDesignator for a Variable(q), but treats
// DeclaredType as NotAValue and DeclaredProcedure as NotARecord").
func resolveRecord(ctx *Context, sc *scope.Scope, state scope.State, wrap ast.NodeWrap[ast.Designator]) (ast.Placed[ast.Designator], *scope.DeclarationRHS, *scope.Error) {
	return resolveDesignator(ctx, sc, state, wrap, true)
}

func resolveDesignator(ctx *Context, sc *scope.Scope, state scope.State, wrap ast.NodeWrap[ast.Designator], forRecord bool) (ast.Placed[ast.Designator], *scope.DeclarationRHS, *scope.Error) {
	attempt := func(alt ast.Designator) (designatorAttempt, *scope.Error) {
		switch d := alt.(type) {
		case ast.Variable:
			rhs, err := ResolveName(ctx, sc, d.Name, wrap.Pos)
			if err != nil {
				return designatorAttempt{}, err
			}
			if forRecord {
				switch rhs.Kind {
				case scope.DeclaredType:
					return designatorAttempt{}, scope.New(scope.NotAValue, wrap.Pos, d.Name, "%s is a type, not a value", d.Name)
				case scope.DeclaredProcedure:
					return designatorAttempt{}, scope.New(scope.NotARecord, wrap.Pos, d.Name, "%s is a procedure, not a record", d.Name)
				}
			} else if rhs.Kind == scope.DeclaredType && !state.AllowsType() {
				return designatorAttempt{}, scope.New(scope.NotAValue, wrap.Pos, d.Name, "%s is a type, not a value", d.Name)
			}
			return designatorAttempt{
				placed: ast.Placed[ast.Designator]{Pos: wrap.Pos, Node: d},
				rhs:    &rhs,
			}, nil

		case ast.Field:
			// spec §4.3: Field recursively resolves record as a plain designator,
			// not through resolveRecord's stricter DeclaredType/DeclaredProcedure
			// rejection — that stricter check is reserved for TypeGuard and With.
			rec, _, err := ResolveDesignator(ctx, sc, state, d.Record)
			if err != nil {
				return designatorAttempt{}, err
			}
			node := ast.Field{Record: ast.Wrap(rec.Pos, rec.Node), Name: d.Name, NamePos: d.NamePos}
			return designatorAttempt{placed: ast.Placed[ast.Designator]{Pos: wrap.Pos, Node: node}}, nil

		case ast.TypeGuard:
			rec, _, err := resolveRecord(ctx, sc, state, d.Record)
			if err != nil {
				return designatorAttempt{}, err
			}
			if _, err := ResolveTypeName(ctx, sc, d.Subtype, wrap.Pos); err != nil {
				return designatorAttempt{}, err
			}
			node := ast.TypeGuard{Record: ast.Wrap(rec.Pos, rec.Node), Subtype: d.Subtype}
			return designatorAttempt{placed: ast.Placed[ast.Designator]{Pos: wrap.Pos, Node: node}}, nil

		case ast.Dereference:
			ptr, _, err := ResolveDesignator(ctx, sc, state, d.Pointer)
			if err != nil {
				return designatorAttempt{}, err
			}
			node := ast.Dereference{Pointer: ast.Wrap(ptr.Pos, ptr.Node)}
			return designatorAttempt{placed: ast.Placed[ast.Designator]{Pos: wrap.Pos, Node: node}}, nil

		case ast.Index:
			arr, _, err := ResolveDesignator(ctx, sc, state, d.Array)
			if err != nil {
				return designatorAttempt{}, err
			}
			exprs := make([]ast.NodeWrap[ast.Expr], len(d.Exprs))
			for i, e := range d.Exprs {
				pe, _, err := ResolveExpr(ctx, sc, scope.ExpressionState, e)
				if err != nil {
					return designatorAttempt{}, err
				}
				exprs[i] = ast.Wrap(pe.Pos, pe.Node)
			}
			node := ast.Index{Array: ast.Wrap(arr.Pos, arr.Node), Exprs: exprs}
			return designatorAttempt{placed: ast.Placed[ast.Designator]{Pos: wrap.Pos, Node: node}}, nil

		case ast.Call:
			fn, _, err := ResolveDesignator(ctx, sc, state, d.Fn)
			if err != nil {
				return designatorAttempt{}, err
			}
			args := make([]ast.NodeWrap[ast.Expr], len(d.Args))
			for i, a := range d.Args {
				pa, _, err := ResolveExpr(ctx, sc, scope.ExpressionState, a)
				if err != nil {
					return designatorAttempt{}, err
				}
				args[i] = ast.Wrap(pa.Pos, pa.Node)
			}
			node := ast.Call{Fn: ast.Wrap(fn.Pos, fn.Node), Args: args}
			return designatorAttempt{placed: ast.Placed[ast.Designator]{Pos: wrap.Pos, Node: node}}, nil

		default:
			return designatorAttempt{}, scope.New(scope.InvalidExpression, wrap.Pos, ast.QualIdent{}, "unexpected designator alternative %T", alt)
		}
	}

	result, n, errs := disambiguate(wrap.Alts, attempt)
	switch {
	case n == 1:
		return result.placed, result.rhs, nil
	case n == 0 && len(wrap.Alts) == 1:
		// A single-alternative site is not ambiguous: its one failure is
		// surfaced as is rather than wrapped as a failed reading.
		return ast.Placed[ast.Designator]{}, nil, errs[0]
	case n == 0 && forRecord:
		return ast.Placed[ast.Designator]{}, nil, scope.Wrap(scope.InvalidRecord, wrap.Pos, "no alternative resolved as a record designator", errs)
	case n == 0:
		return ast.Placed[ast.Designator]{}, nil, scope.Wrap(scope.InvalidExpression, wrap.Pos, "no alternative resolved as a designator", errs)
	case forRecord:
		return ast.Placed[ast.Designator]{}, nil, scope.Wrap(scope.AmbiguousRecord, wrap.Pos, "%d alternatives resolve as a record designator", nil, n)
	default:
		return ast.Placed[ast.Designator]{}, nil, scope.Wrap(scope.AmbiguousDesignator, wrap.Pos, "%d alternatives resolve as a designator", nil, n)
	}
}
