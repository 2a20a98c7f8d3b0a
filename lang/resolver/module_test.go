package resolver_test

import (
	"testing"

	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/resolver"
	"github.com/mna/oberesolve/lang/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModulesAcrossImports(t *testing.T) {
	store := ast.Module{
		Name:    "Store",
		NamePos: 1,
		Decls: []ast.NodeWrap[ast.Declaration]{
			declWrap(1, ast.ConstDecl{Name: "Capacity", Access: ast.Exported, Pos: 1, Expr: ast.Wrap[ast.Expr](1, ast.Literal{Raw: "16"})}),
		},
	}
	main := ast.Module{
		Name:    "Main",
		NamePos: 2,
		Imports: []ast.Import{{ModuleName: "Store", Pos: 2}},
		Decls: []ast.NodeWrap[ast.Declaration]{
			declWrap(2, ast.VarDecl{
				Names: []ast.Ident{"N"}, Access: []ast.AccessMode{ast.PrivateOnly}, NamePos: []ast.Pos{2},
				Type: ast.BaseType{Name: "INTEGER"},
			}),
			declWrap(3, ast.ConstDecl{
				Name: "Mirror", Pos: 3,
				Expr: ast.Wrap[ast.Expr](3, ast.Read{Designator: ast.Wrap[ast.Designator](3, ast.Variable{Name: ast.Qualify("Store", "Capacity")})}),
			}),
		},
	}

	resolved, exports, errs := resolver.ResolveModules(resolver.Oberon2{}, []ast.Module{store, main}, 0)
	require.Empty(t, errs)
	require.Contains(t, resolved, ast.Ident("Store"))
	require.Contains(t, resolved, ast.Ident("Main"))
	require.Contains(t, exports, ast.Ident("Store"))

	_, ok := exports["Store"].LocalLookup("Capacity")
	assert.True(t, ok)
}

func TestResolveModulesOutOfOrderImports(t *testing.T) {
	store := ast.Module{
		Name:    "Store",
		NamePos: 1,
		Decls: []ast.NodeWrap[ast.Declaration]{
			declWrap(1, ast.ConstDecl{Name: "Capacity", Access: ast.Exported, Pos: 1, Expr: ast.Wrap[ast.Expr](1, ast.Literal{Raw: "16"})}),
		},
	}
	main := ast.Module{
		Name:    "Main",
		NamePos: 2,
		Imports: []ast.Import{{ModuleName: "Store", Pos: 2}},
		Decls: []ast.NodeWrap[ast.Declaration]{
			declWrap(2, ast.ConstDecl{
				Name: "Mirror", Pos: 2,
				Expr: ast.Wrap[ast.Expr](2, ast.Read{Designator: ast.Wrap[ast.Designator](2, ast.Variable{Name: ast.Qualify("Store", "Capacity")})}),
			}),
		},
	}

	// Main is listed before the module it imports: a single ordered pass
	// would reject this as UnknownModule, but the lazily-populated table
	// resolves Store on the first pass and retries Main on the second.
	resolved, exports, errs := resolver.ResolveModules(resolver.Oberon2{}, []ast.Module{main, store}, 0)
	require.Empty(t, errs)
	require.Contains(t, resolved, ast.Ident("Main"))
	require.Contains(t, resolved, ast.Ident("Store"))
	require.Contains(t, exports, ast.Ident("Store"))
}

func TestResolveModulesTrueImportCycleFails(t *testing.T) {
	a := ast.Module{
		Name:    "A",
		NamePos: 1,
		Imports: []ast.Import{{ModuleName: "B", Pos: 1}},
	}
	b := ast.Module{
		Name:    "B",
		NamePos: 2,
		Imports: []ast.Import{{ModuleName: "A", Pos: 2}},
	}

	resolved, _, errs := resolver.ResolveModules(resolver.Oberon2{}, []ast.Module{a, b}, 0)
	assert.Empty(t, resolved)
	require.Contains(t, errs, ast.Ident("A"))
	require.Contains(t, errs, ast.Ident("B"))
	assert.Equal(t, scope.UnknownModule, errs["A"][0].Kind)
	assert.Equal(t, scope.UnknownModule, errs["B"][0].Kind)
}

func TestResolveModuleUnknownImport(t *testing.T) {
	main := ast.Module{
		Name:    "Main",
		NamePos: 1,
		Imports: []ast.Import{{ModuleName: "Nonexistent", Pos: 1}},
	}
	_, _, err := resolver.ResolveModule(resolver.Oberon2{}, map[ast.Ident]*scope.Scope{}, 0, main)
	require.NotNil(t, err)
	assert.Equal(t, scope.UnknownModule, err.Kind)
}

func TestResolveModuleClashingImportAliases(t *testing.T) {
	registry := map[ast.Ident]*scope.Scope{
		"A": scope.New(nil),
		"B": scope.New(nil),
	}
	main := ast.Module{
		Name:    "Main",
		NamePos: 1,
		Imports: []ast.Import{
			{Alias: "X", ModuleName: "A", Pos: 1},
			{Alias: "X", ModuleName: "B", Pos: 2},
		},
	}
	_, _, err := resolver.ResolveModule(resolver.Oberon2{}, registry, 0, main)
	require.NotNil(t, err)
	assert.Equal(t, scope.ClashingImports, err.Kind)
}
