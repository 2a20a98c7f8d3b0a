package resolver_test

import (
	"testing"

	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/resolver"
	"github.com/mna/oberesolve/lang/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyCtx() *resolver.Context {
	return &resolver.Context{Modules: map[ast.Ident]*scope.Scope{}, Variant: resolver.Oberon2{}}
}

func declWrap(pos ast.Pos, d ast.Declaration) ast.NodeWrap[ast.Declaration] {
	return ast.Wrap[ast.Declaration](pos, d)
}

func TestLocalScopeMutualRecursionBetweenTypes(t *testing.T) {
	a := ast.TypeDecl{Name: "A", Access: ast.Exported, Pos: 1, Type: ast.PointerType{Base: ast.NamedType{Ref: ast.Unqualified("B")}}}
	b := ast.TypeDecl{Name: "B", Access: ast.Exported, Pos: 2, Type: ast.PointerType{Base: ast.NamedType{Ref: ast.Unqualified("A")}}}
	decls := []ast.NodeWrap[ast.Declaration]{declWrap(1, a), declWrap(2, b)}

	sc, placed, errs := resolver.LocalScope(emptyCtx(), decls, scope.New(nil))
	require.Empty(t, errs)
	require.Len(t, placed, 2)

	_, ok := sc.LocalLookup("A")
	assert.True(t, ok)
	_, ok = sc.LocalLookup("B")
	assert.True(t, ok)
}

func TestLocalScopeMutualRecursionBetweenProcedures(t *testing.T) {
	// PROCEDURE IsEven(n: INTEGER): BOOLEAN; ... calls IsOdd ...
	// PROCEDURE IsOdd(n: INTEGER): BOOLEAN; ... calls IsEven ...
	callOf := func(name ast.Ident) ast.NodeWrap[ast.Stmt] {
		return ast.Wrap[ast.Stmt](1, ast.ProcedureCall{Proc: ast.Wrap[ast.Designator](1, ast.Variable{Name: ast.Unqualified(name)})})
	}

	even := ast.ProcedureDecl{
		Heading: ast.Wrap[ast.ProcedureHeading](1, ast.PlainHeading{Name: "IsEven", Access: ast.Exported}),
		Body:    ast.ProcedureBody{Stmts: []ast.NodeWrap[ast.Stmt]{callOf("IsOdd")}},
	}
	odd := ast.ProcedureDecl{
		Heading: ast.Wrap[ast.ProcedureHeading](2, ast.PlainHeading{Name: "IsOdd", Access: ast.Exported}),
		Body:    ast.ProcedureBody{Stmts: []ast.NodeWrap[ast.Stmt]{callOf("IsEven")}},
	}
	decls := []ast.NodeWrap[ast.Declaration]{declWrap(1, even), declWrap(2, odd)}

	_, placed, errs := resolver.LocalScope(emptyCtx(), decls, scope.New(nil))
	require.Empty(t, errs)
	require.Len(t, placed, 2)
}

func TestLocalScopeDetectsRedeclaration(t *testing.T) {
	first := ast.ConstDecl{Name: "X", Pos: 1, Expr: ast.Wrap[ast.Expr](1, ast.Literal{Raw: "1"})}
	second := ast.ConstDecl{Name: "X", Pos: 2, Expr: ast.Wrap[ast.Expr](2, ast.Literal{Raw: "2"})}
	decls := []ast.NodeWrap[ast.Declaration]{declWrap(1, first), declWrap(2, second)}

	_, _, errs := resolver.LocalScope(emptyCtx(), decls, scope.New(nil))
	require.Len(t, errs, 1)
	assert.Equal(t, scope.Redeclared, errs[0].Kind)
}

func TestLocalScopeRejectsConstSelfReference(t *testing.T) {
	selfRef := ast.ConstDecl{
		Name: "X",
		Pos:  1,
		Expr: ast.Wrap[ast.Expr](1, ast.Read{Designator: ast.Wrap[ast.Designator](1, ast.Variable{Name: ast.Unqualified("X")})}),
	}
	decls := []ast.NodeWrap[ast.Declaration]{declWrap(1, selfRef)}

	_, _, errs := resolver.LocalScope(emptyCtx(), decls, scope.New(nil))
	require.Len(t, errs, 1)
	assert.Equal(t, scope.InvalidDeclaration, errs[0].Kind)
}

func TestLocalScopeVarDeclBindsEveryName(t *testing.T) {
	v := ast.VarDecl{
		Names:   []ast.Ident{"X", "Y"},
		Access:  []ast.AccessMode{ast.PrivateOnly, ast.PrivateOnly},
		NamePos: []ast.Pos{1, 1},
		Type:    ast.BaseType{Name: "INTEGER"},
	}
	decls := []ast.NodeWrap[ast.Declaration]{declWrap(1, v)}

	sc, _, errs := resolver.LocalScope(emptyCtx(), decls, scope.New(nil))
	require.Empty(t, errs)
	for _, n := range []ast.Ident{"X", "Y"} {
		e, ok := sc.LocalLookup(n)
		require.True(t, ok)
		assert.Equal(t, scope.DeclaredVariable, e.RHS.Kind)
	}
}

func TestLocalScopeBoundHeadingDoesNotBindPlainName(t *testing.T) {
	outer := scope.New(nil)
	outer.Bind("T", scope.Ok(scope.Type(ast.RecordType{})))

	bound := ast.ProcedureDecl{
		Heading: ast.Wrap[ast.ProcedureHeading](1, ast.BoundHeading{
			Receiver: "self", ReceiverType: ast.Unqualified("T"), Name: "Draw", Access: ast.Exported,
		}),
	}
	decls := []ast.NodeWrap[ast.Declaration]{declWrap(1, bound)}

	sc, _, errs := resolver.LocalScope(emptyCtx(), decls, outer)
	require.Empty(t, errs)
	_, ok := sc.LocalLookup("Draw")
	assert.False(t, ok, "a type-bound procedure is not reachable by plain-name lookup")
}
