package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// pendingBody is a ProcedureDecl whose heading has resolved but whose body
// (decls + statements) still needs to be resolved against the complete
// sibling scope — the second half of the "knot-tying" two-pass strategy.
type pendingBody struct {
	idx     int
	heading ast.ProcedureHeading
}

// LocalScope implements the two-pass construction of spec Design Notes for
// one list of declarations sharing a lexical level (a module body or a
// procedure body):
//
//   - Pass 1 registers every declared name's Kind as a placeholder,
//     without resolving any of its cross-references. This is all
//     name-resolution of a *reference* to a sibling declaration ever needs
//     (spec §4.1's resolveName only inspects Kind), so mutually-recursive
//     TYPE and PROCEDURE declarations become visible to each other
//     regardless of textual order, with no cycle-detection machinery.
//   - Pass 2 resolves each site's own payload (its embedded type/expression
//     references) against the now-complete placeholder scope, overwriting
//     the Pass 1 entry. CONST is the one declaration kind that truly cannot
//     be self-referential (spec Design Notes): its own placeholder is
//     replaced with a "currently resolving" sentinel entry for the
//     duration of its own expression's resolution, so a self-reference
//     surfaces through the ordinary Entry.Err propagation path rather than
//     needing a dedicated check.
//   - Pass 2b resolves every ProcedureDecl's body, now that every sibling
//     (including later-declared ones) has its final entry in scope.
//
// A ProcedureDecl with a BoundHeading (a type-bound procedure) binds no
// name into this scope: in Oberon-2 a method is reached through its
// receiver's designator, never through plain-name lookup, so it is
// deliberately absent from LocalScope's Kind-placeholder pass.
func LocalScope(ctx *Context, decls []ast.NodeWrap[ast.Declaration], outer *scope.Scope) (*scope.Scope, []ast.Placed[ast.Declaration], scope.Errors) {
	sc := scope.New(outer)
	var errs scope.Errors

	redeclared := func(pos ast.Pos, name ast.Ident) {
		errs.Add(scope.New(scope.Redeclared, pos, ast.Unqualified(name), "%s redeclared in this scope", name))
	}

	// Pass 1: syntactic Kind-only placeholders. Only the first declared
	// alternative at a site is consulted — a top-level declaration site is
	// ambiguous only in pathological parser-recovery cases (see
	// ast.Declaration doc), and every realistic alternative at such a site
	// declares the same name(s) regardless of which kind ultimately wins.
	for _, wrap := range decls {
		if wrap.Alts.Len() == 0 {
			continue
		}
		switch d := wrap.Alts[0].(type) {
		case ast.ConstDecl:
			if !sc.Bind(d.Name, scope.Ok(scope.Constant(ast.Placed[ast.Expr]{}))) {
				redeclared(d.Pos, d.Name)
			}
		case ast.TypeDecl:
			if !sc.Bind(d.Name, scope.Ok(scope.Type(nil))) {
				redeclared(d.Pos, d.Name)
			}
		case ast.VarDecl:
			for i, name := range d.Names {
				if !sc.Bind(name, scope.Ok(scope.Variable(nil))) {
					redeclared(d.NamePos[i], name)
				}
			}
		case ast.ProcedureDecl:
			if d.Heading.Alts.Len() == 0 {
				continue
			}
			if ph, ok := d.Heading.Alts[0].(ast.PlainHeading); ok {
				if !sc.Bind(ph.Name, scope.Ok(scope.Procedure(false, nil, nil))) {
					redeclared(ph.NamePos, ph.Name)
				}
			}
		case ast.ForwardDecl:
			if !sc.Bind(d.Name, scope.Ok(scope.Procedure(false, d.Params, d.Result))) {
				redeclared(d.Pos, d.Name)
			}
		}
	}

	// Pass 2: full payload, headings included, bodies deferred.
	placed := make([]ast.Placed[ast.Declaration], len(decls))
	var pending []pendingBody

	for i, wrap := range decls {
		site := i
		attempt := func(alt ast.Declaration) (ast.Declaration, *scope.Error) {
			switch d := alt.(type) {
			case ast.ConstDecl:
				sentinel := scope.New(scope.InvalidDeclaration, d.Pos, ast.Unqualified(d.Name),
					"%s cannot be used in the definition of its own constant expression", d.Name)
				sc.Put(d.Name, scope.Failed(sentinel))
				resolved, err := ResolveExpr(ctx, sc, scope.ExpressionState, d.Expr)
				if err != nil {
					sc.Put(d.Name, scope.Failed(err))
					return nil, err
				}
				sc.Put(d.Name, scope.Ok(scope.Constant(resolved)))
				return ast.ConstDecl{Name: d.Name, Access: d.Access, Pos: d.Pos, Expr: ast.Wrap(resolved.Pos, resolved.Node)}, nil

			case ast.TypeDecl:
				t, err := resolveTypeExpr(ctx, sc, d.Pos, d.Type)
				if err != nil {
					return nil, err
				}
				sc.Put(d.Name, scope.Ok(scope.Type(t)))
				return ast.TypeDecl{Name: d.Name, Access: d.Access, Pos: d.Pos, Type: t}, nil

			case ast.VarDecl:
				pos := wrap.Pos
				if len(d.NamePos) > 0 {
					pos = d.NamePos[0]
				}
				t, err := resolveTypeExpr(ctx, sc, pos, d.Type)
				if err != nil {
					return nil, err
				}
				for _, name := range d.Names {
					sc.Put(name, scope.Ok(scope.Variable(t)))
				}
				return ast.VarDecl{Names: d.Names, Access: d.Access, NamePos: d.NamePos, Type: t}, nil

			case ast.ProcedureDecl:
				headingPlaced, err := resolveProcedureHeading(ctx, sc, d.Heading)
				if err != nil {
					return nil, err
				}
				heading := headingPlaced.Node
				if ph, ok := heading.(ast.PlainHeading); ok {
					sc.Put(ph.Name, scope.Ok(scope.Procedure(false, ph.Params, ph.Result)))
				}
				pending = append(pending, pendingBody{idx: site, heading: heading})
				return ast.ProcedureDecl{Heading: ast.Wrap(headingPlaced.Pos, heading), Body: d.Body}, nil

			case ast.ForwardDecl:
				params, err := resolveFormalParams(ctx, sc, d.Pos, d.Params)
				if err != nil {
					return nil, err
				}
				if d.Result != nil {
					if _, err := ResolveTypeName(ctx, sc, *d.Result, d.Pos); err != nil {
						return nil, err
					}
				}
				sc.Put(d.Name, scope.Ok(scope.Procedure(false, params, d.Result)))
				return ast.ForwardDecl{Name: d.Name, Access: d.Access, Pos: d.Pos, Params: params, Result: d.Result}, nil

			default:
				return nil, scope.New(scope.InvalidDeclaration, wrap.Pos, ast.QualIdent{}, "unexpected declaration alternative %T", alt)
			}
		}

		result, n, derrs := disambiguate(wrap.Alts, attempt)
		switch {
		case n == 1:
			placed[site] = ast.Placed[ast.Declaration]{Pos: wrap.Pos, Node: result}
		case n == 0:
			errs.Add(scope.Wrap(scope.InvalidDeclaration, wrap.Pos, "no alternative resolved as a declaration", derrs))
		default:
			errs.Add(scope.Wrap(scope.AmbiguousDeclaration, wrap.Pos, "%d alternatives resolve as a declaration", nil, n))
		}
	}

	// Pass 2b: procedure bodies, against the now-complete sibling scope.
	for _, pb := range pending {
		pd, ok := placed[pb.idx].Node.(ast.ProcedureDecl)
		if !ok {
			continue
		}
		bodyScope := headingBodyScope(pb.heading, sc)
		declScope, placedDecls, derrs := LocalScope(ctx, pd.Body.Decls, bodyScope)
		if err := derrs.Err(); err != nil {
			errs = append(errs, derrs...)
			continue
		}
		stmts, err := ResolveBlock(ctx, declScope, pd.Body.Stmts)
		if err != nil {
			errs.Add(err)
			continue
		}
		pd.Body = ast.ProcedureBody{Decls: placedDecls, Stmts: stmts}
		placed[pb.idx] = ast.Placed[ast.Declaration]{Pos: placed[pb.idx].Pos, Node: pd}
	}

	return sc, placed, errs
}
