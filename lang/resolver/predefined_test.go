package resolver_test

import (
	"testing"

	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/resolver"
	"github.com/mna/oberesolve/lang/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedHasBaseTypesAndConsts(t *testing.T) {
	p := resolver.Predefined()
	for _, name := range []ast.Ident{"BOOLEAN", "CHAR", "INTEGER", "SET"} {
		e, ok := p.LocalLookup(name)
		require.True(t, ok, "missing predefined type %s", name)
		assert.Equal(t, scope.DeclaredType, e.RHS.Kind)
	}
	for _, name := range []ast.Ident{"TRUE", "FALSE"} {
		e, ok := p.LocalLookup(name)
		require.True(t, ok, "missing predefined constant %s", name)
		assert.Equal(t, scope.DeclaredConstant, e.RHS.Kind)
	}
}

func TestOberon2AddsAssertAndTypeBoundProcedures(t *testing.T) {
	p2 := resolver.Predefined2()
	_, ok := p2.LocalLookup("ASSERT")
	assert.True(t, ok, "Oberon-2 predefined scope must declare ASSERT")

	p1 := resolver.Predefined()
	_, ok = p1.LocalLookup("ASSERT")
	assert.False(t, ok, "Oberon-1 predefined scope must not declare ASSERT")

	assert.True(t, resolver.Oberon2{}.HasTypeBoundProcedures())
	assert.False(t, resolver.Oberon1{}.HasTypeBoundProcedures())
}

func TestBuiltinProcedureNames(t *testing.T) {
	assert.True(t, resolver.Oberon1{}.IsBuiltinProcedureName("SIZE"))
	assert.True(t, resolver.Oberon1{}.IsBuiltinProcedureName("MAX"))
	assert.False(t, resolver.Oberon1{}.IsBuiltinProcedureName("ABS"), "ABS takes a value, not a type")
}
