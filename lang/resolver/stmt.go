package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// ResolveBlock resolves a sequence of statements in sc, in order, returning
// the first error encountered (spec §5: a resolution failure anywhere in a
// module aborts that module's resolution). Statements after a failing one
// are not resolved, and neither ResolveModule nor LocalScope, which call
// ResolveBlock once per module or procedure body, collects further
// statement errors.
func ResolveBlock(ctx *Context, sc *scope.Scope, stmts []ast.NodeWrap[ast.Stmt]) ([]ast.Placed[ast.Stmt], *scope.Error) {
	out := make([]ast.Placed[ast.Stmt], len(stmts))
	for i, s := range stmts {
		p, err := ResolveStmt(ctx, sc, s)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// ResolveStmt implements the Statement production of spec §4.3.
func ResolveStmt(ctx *Context, sc *scope.Scope, wrap ast.NodeWrap[ast.Stmt]) (ast.Placed[ast.Stmt], *scope.Error) {
	attempt := func(alt ast.Stmt) (ast.Placed[ast.Stmt], *scope.Error) {
		switch s := alt.(type) {
		case ast.ProcedureCall:
			proc, _, err := ResolveDesignator(ctx, sc, scope.ExpressionState, s.Proc)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			args := make([]ast.NodeWrap[ast.Expr], len(s.Args))
			for i, a := range s.Args {
				pa, err := ResolveExpr(ctx, sc, scope.ExpressionState, a)
				if err != nil {
					return ast.Placed[ast.Stmt]{}, err
				}
				args[i] = ast.Wrap(pa.Pos, pa.Node)
			}
			node := ast.ProcedureCall{Proc: ast.Wrap(proc.Pos, proc.Node), Args: args}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.Assign:
			lhs, _, err := ResolveDesignator(ctx, sc, scope.ExpressionState, s.LHS)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			rhs, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.RHS)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.Assign{LHS: ast.Wrap(lhs.Pos, lhs.Node), RHS: ast.Wrap(rhs.Pos, rhs.Node)}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.If:
			cond, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.Cond)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			then, err := resolveStmts(ctx, sc, s.Then)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			elifs := make([]ast.ElseIf, len(s.Elifs))
			for i, el := range s.Elifs {
				when, err := ResolveExpr(ctx, sc, scope.ExpressionState, el.When)
				if err != nil {
					return ast.Placed[ast.Stmt]{}, err
				}
				body, err := resolveStmts(ctx, sc, el.Then)
				if err != nil {
					return ast.Placed[ast.Stmt]{}, err
				}
				elifs[i] = ast.ElseIf{Cond: el.Cond, When: ast.Wrap(when.Pos, when.Node), Then: body}
			}
			els, err := resolveStmts(ctx, sc, s.Else)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.If{Cond: ast.Wrap(cond.Pos, cond.Node), Then: then, Elifs: elifs, Else: els}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.While:
			cond, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.Cond)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			body, err := resolveStmts(ctx, sc, s.Body)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.While{Cond: ast.Wrap(cond.Pos, cond.Node), Body: body}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.Repeat:
			body, err := resolveStmts(ctx, sc, s.Body)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			cond, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.Cond)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.Repeat{Body: body, Cond: ast.Wrap(cond.Pos, cond.Node)}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.For:
			from, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.From)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			to, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.To)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			var by *ast.NodeWrap[ast.Expr]
			if s.By != nil {
				pb, err := ResolveExpr(ctx, sc, scope.ExpressionState, *s.By)
				if err != nil {
					return ast.Placed[ast.Stmt]{}, err
				}
				w := ast.Wrap(pb.Pos, pb.Node)
				by = &w
			}
			loop := scope.New(sc)
			loop.SetName("for " + string(s.Var))
			loop.Bind(s.Var, scope.Ok(scope.Variable(ast.BaseType{Name: "INTEGER"})))
			body, err := resolveStmts(ctx, loop, s.Body)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.For{Var: s.Var, VarPos: s.VarPos, From: ast.Wrap(from.Pos, from.Node), To: ast.Wrap(to.Pos, to.Node), By: by, Body: body}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.Case:
			expr, err := ResolveExpr(ctx, sc, scope.ExpressionState, s.Expr)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			arms := make([]ast.CaseArm, len(s.Arms))
			for i, arm := range s.Arms {
				labels := make([]ast.NodeWrap[ast.Expr], len(arm.Labels))
				for j, l := range arm.Labels {
					pl, err := ResolveExpr(ctx, sc, scope.ExpressionState, l)
					if err != nil {
						return ast.Placed[ast.Stmt]{}, err
					}
					labels[j] = ast.Wrap(pl.Pos, pl.Node)
				}
				body, err := resolveStmts(ctx, sc, arm.Body)
				if err != nil {
					return ast.Placed[ast.Stmt]{}, err
				}
				arms[i] = ast.CaseArm{Labels: labels, Body: body}
			}
			els, err := resolveStmts(ctx, sc, s.Else)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.Case{Expr: ast.Wrap(expr.Pos, expr.Node), Arms: arms, Else: els}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.With:
			guard, _, err := resolveRecord(ctx, sc, scope.ExpressionState, s.Guard)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			if _, err := ResolveTypeName(ctx, sc, s.Subtype, wrap.Pos); err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			body, err := resolveStmts(ctx, sc, s.Body)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			node := ast.With{Guard: ast.Wrap(guard.Pos, guard.Node), Subtype: s.Subtype, Body: body}
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: node}, nil

		case ast.Return:
			if s.Expr == nil {
				return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: ast.Return{}}, nil
			}
			e, err := ResolveExpr(ctx, sc, scope.ExpressionState, *s.Expr)
			if err != nil {
				return ast.Placed[ast.Stmt]{}, err
			}
			w := ast.Wrap(e.Pos, e.Node)
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: ast.Return{Expr: &w}}, nil

		case ast.Empty:
			return ast.Placed[ast.Stmt]{Pos: wrap.Pos, Node: s}, nil

		default:
			return ast.Placed[ast.Stmt]{}, scope.New(scope.InvalidStatement, wrap.Pos, ast.QualIdent{}, "unexpected statement alternative %T", alt)
		}
	}

	result, n, errs := disambiguate(wrap.Alts, attempt)
	switch {
	case n == 1:
		return result, nil
	case n == 0:
		return ast.Placed[ast.Stmt]{}, scope.Wrap(scope.InvalidStatement, wrap.Pos, "no alternative resolved as a statement", errs)
	default:
		return ast.Placed[ast.Stmt]{}, scope.Wrap(scope.AmbiguousStatement, wrap.Pos, "%d alternatives resolve as a statement", nil, n)
	}
}

func resolveStmts(ctx *Context, sc *scope.Scope, stmts []ast.NodeWrap[ast.Stmt]) ([]ast.Placed[ast.Stmt], *scope.Error) {
	return ResolveBlock(ctx, sc, stmts)
}
