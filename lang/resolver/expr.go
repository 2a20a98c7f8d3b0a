package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// ResolveExpr implements the Expression production of spec §4.3.
func ResolveExpr(ctx *Context, sc *scope.Scope, state scope.State, wrap ast.NodeWrap[ast.Expr]) (ast.Placed[ast.Expr], *scope.Error) {
	attempt := func(alt ast.Expr) (ast.Placed[ast.Expr], *scope.Error) {
		switch e := alt.(type) {
		case ast.Read:
			d, _, err := ResolveDesignator(ctx, sc, state, e.Designator)
			if err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			node := ast.Read{Designator: ast.Wrap(d.Pos, d.Node)}
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: node}, nil

		case ast.FunctionCall:
			fn, rhs, err := ResolveDesignator(ctx, sc, scope.ExpressionState, e.Fn)
			if err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			argState := scope.ExpressionState
			if rhs != nil && rhs.Kind == scope.DeclaredProcedure && rhs.IsBuiltin {
				// SYSTEM-module and MAX/MIN/SIZE-style builtins accept a type as
				// their argument: ExpressionOrTypeState lets resolveDesignator's
				// Variable case pass a DeclaredType through instead of NotAValue.
				argState = scope.ExpressionOrTypeState
			}
			args := make([]ast.NodeWrap[ast.Expr], len(e.Args))
			for i, a := range e.Args {
				pa, err := ResolveExpr(ctx, sc, argState, a)
				if err != nil {
					if err.Kind == scope.NotAValue {
						// A misused type name as an argument is its own, more
						// specific diagnosis; don't bury it under the generic
						// InvalidFunctionParameters wrapping below.
						return ast.Placed[ast.Expr]{}, err
					}
					return ast.Placed[ast.Expr]{}, scope.Wrap(scope.InvalidFunctionParameters, a.Pos,
						"argument %d is invalid", scope.Errors{err}, i+1)
				}
				args[i] = ast.Wrap(pa.Pos, pa.Node)
			}
			node := ast.FunctionCall{Fn: ast.Wrap(fn.Pos, fn.Node), Args: args}
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: node}, nil

		case ast.IsA:
			lhs, err := ResolveExpr(ctx, sc, scope.ExpressionState, e.LHS)
			if err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			if _, err := ResolveTypeName(ctx, sc, e.Of, wrap.Pos); err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			node := ast.IsA{LHS: ast.Wrap(lhs.Pos, lhs.Node), Of: e.Of}
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: node}, nil

		case ast.Literal:
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: e}, nil

		case ast.BinaryOp:
			left, err := ResolveExpr(ctx, sc, scope.ExpressionState, e.Left)
			if err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			right, err := ResolveExpr(ctx, sc, scope.ExpressionState, e.Right)
			if err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			node := ast.BinaryOp{Op: e.Op, Left: ast.Wrap(left.Pos, left.Node), Right: ast.Wrap(right.Pos, right.Node)}
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: node}, nil

		case ast.UnaryOp:
			operand, err := ResolveExpr(ctx, sc, scope.ExpressionState, e.Operand)
			if err != nil {
				return ast.Placed[ast.Expr]{}, err
			}
			node := ast.UnaryOp{Op: e.Op, Operand: ast.Wrap(operand.Pos, operand.Node)}
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: node}, nil

		case ast.SetLiteral:
			elems := make([]ast.NodeWrap[ast.Expr], len(e.Elems))
			for i, el := range e.Elems {
				pe, err := ResolveExpr(ctx, sc, scope.ExpressionState, el)
				if err != nil {
					return ast.Placed[ast.Expr]{}, err
				}
				elems[i] = ast.Wrap(pe.Pos, pe.Node)
			}
			node := ast.SetLiteral{Elems: elems}
			return ast.Placed[ast.Expr]{Pos: wrap.Pos, Node: node}, nil

		default:
			return ast.Placed[ast.Expr]{}, scope.New(scope.InvalidExpression, wrap.Pos, ast.QualIdent{}, "unexpected expression alternative %T", alt)
		}
	}

	result, n, errs := disambiguate(wrap.Alts, attempt)
	switch {
	case n == 1:
		return result, nil
	case n == 0 && len(wrap.Alts) == 1:
		// A single-alternative site is not ambiguous: its one failure is
		// surfaced as is rather than wrapped as a failed reading.
		return ast.Placed[ast.Expr]{}, errs[0]
	case n == 0:
		return ast.Placed[ast.Expr]{}, scope.Wrap(scope.InvalidExpression, wrap.Pos, "no alternative resolved as an expression", errs)
	default:
		return ast.Placed[ast.Expr]{}, scope.Wrap(scope.AmbiguousExpression, wrap.Pos, "%d alternatives resolve as an expression", nil, n)
	}
}
