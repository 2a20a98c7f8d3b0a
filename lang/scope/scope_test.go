package scope_test

import (
	"testing"

	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeBindAndLookup(t *testing.T) {
	outer := scope.New(nil)
	require.True(t, outer.Bind("X", scope.Ok(scope.Variable(ast.BaseType{Name: "INTEGER"}))))
	require.False(t, outer.Bind("X", scope.Ok(scope.Variable(ast.BaseType{Name: "INTEGER"}))), "rebinding the same local name must fail")

	inner := scope.New(outer)
	require.True(t, inner.Bind("Y", scope.Ok(scope.Variable(ast.BaseType{Name: "CHAR"}))))

	_, ok := inner.LocalLookup("X")
	assert.False(t, ok, "LocalLookup must not chain to the parent")

	e, ok := inner.Lookup("X")
	require.True(t, ok, "Lookup must chain to the parent")
	assert.Equal(t, scope.DeclaredVariable, e.RHS.Kind)

	_, ok = outer.Lookup("Y")
	assert.False(t, ok, "a parent must never see its child's bindings")
}

func TestScopePutOverwrites(t *testing.T) {
	s := scope.New(nil)
	require.True(t, s.Bind("T", scope.Ok(scope.Type(nil))))
	s.Put("T", scope.Ok(scope.Type(ast.BaseType{Name: "INTEGER"})))

	e, ok := s.LocalLookup("T")
	require.True(t, ok)
	assert.Equal(t, ast.BaseType{Name: "INTEGER"}, e.RHS.Type)
}

func TestExportedExcludesPrivate(t *testing.T) {
	s := scope.New(nil)
	s.Bind("Pub", scope.Ok(scope.Constant(ast.Placed[ast.Expr]{})))
	s.Bind("Priv", scope.Ok(scope.Constant(ast.Placed[ast.Expr]{})))
	s.Bind("ReadOnly", scope.Ok(scope.Variable(ast.BaseType{Name: "INTEGER"})))

	access := map[ast.Ident]ast.AccessMode{
		"Pub":      ast.Exported,
		"ReadOnly": ast.ExportedReadOnly,
	}
	exp := scope.Exported(s, access)

	_, ok := exp.LocalLookup("Pub")
	assert.True(t, ok)
	_, ok = exp.LocalLookup("ReadOnly")
	assert.True(t, ok)
	_, ok = exp.LocalLookup("Priv")
	assert.False(t, ok, "a name absent from access defaults to PrivateOnly and must not be exported")
}

func TestLocalNamesSorted(t *testing.T) {
	s := scope.New(nil)
	for _, n := range []ast.Ident{"Charlie", "Alpha", "Bravo"} {
		s.Bind(n, scope.Ok(scope.Constant(ast.Placed[ast.Expr]{})))
	}
	assert.Equal(t, []ast.Ident{"Alpha", "Bravo", "Charlie"}, s.LocalNames())
}
