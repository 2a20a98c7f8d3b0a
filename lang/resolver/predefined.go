package resolver

import (
	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/scope"
)

// predefined base types shared by both language variants (spec §4.5).
var predefinedTypeNames = []ast.Ident{
	"BOOLEAN", "CHAR", "SHORTINT", "INTEGER", "LONGINT", "REAL", "LONGREAL", "SET",
}

// predefined constants shared by both variants.
var predefinedConstNames = []ast.Ident{"TRUE", "FALSE"}

// predefinedProc describes one predefined procedure's registration. Params
// and Result use placeholder types (spec §4.5: "not intended for type-
// checking arity, only for participating in name-resolution machinery").
type predefinedProc struct {
	name      ast.Ident
	isBuiltin bool
	params    []ast.FormalParam
	result    *ast.Ident
}

func param(name ast.Ident, t ast.TypeExpr) ast.FormalParam {
	return ast.FormalParam{Name: name, Type: t}
}

var pseudoInt = ast.PseudoType{Name: "INTEGER"}
var pseudoChar = ast.PseudoType{Name: "CHAR"}
var pseudoArray = ast.PseudoType{Name: "ARRAY"}
var pseudoSet = ast.PseudoType{Name: "SET"}
var pseudoAny = ast.PseudoType{Name: "ANY"}

// predefinedProcs is the Oberon-1 set of predefined procedures (spec §4.5).
// MAX, MIN and SIZE are builtins: they accept a type as their argument.
var predefinedProcs = []predefinedProc{
	{name: "ABS", params: []ast.FormalParam{param("x", pseudoAny)}},
	{name: "ASH", params: []ast.FormalParam{param("x", pseudoInt), param("n", pseudoInt)}},
	{name: "CAP", params: []ast.FormalParam{param("x", pseudoChar)}},
	{name: "LEN", params: []ast.FormalParam{param("a", pseudoArray)}},
	{name: "MAX", isBuiltin: true, params: []ast.FormalParam{param("T", pseudoAny)}},
	{name: "MIN", isBuiltin: true, params: []ast.FormalParam{param("T", pseudoAny)}},
	{name: "ODD", params: []ast.FormalParam{param("x", pseudoInt)}},
	{name: "SIZE", isBuiltin: true, params: []ast.FormalParam{param("T", pseudoAny)}},
	{name: "ORD", params: []ast.FormalParam{param("x", pseudoAny)}},
	{name: "CHR", params: []ast.FormalParam{param("x", pseudoInt)}},
	{name: "SHORT", params: []ast.FormalParam{param("x", pseudoAny)}},
	{name: "LONG", params: []ast.FormalParam{param("x", pseudoAny)}},
	{name: "ENTIER", params: []ast.FormalParam{param("x", pseudoAny)}},
	{name: "INC", params: []ast.FormalParam{{Name: "v", Type: pseudoInt, IsVar: true}}},
	{name: "DEC", params: []ast.FormalParam{{Name: "v", Type: pseudoInt, IsVar: true}}},
	{name: "INCL", params: []ast.FormalParam{{Name: "s", Type: pseudoSet, IsVar: true}, param("x", pseudoInt)}},
	{name: "EXCL", params: []ast.FormalParam{{Name: "s", Type: pseudoSet, IsVar: true}, param("x", pseudoInt)}},
	{name: "COPY", params: []ast.FormalParam{param("src", pseudoAny), {Name: "dst", Type: pseudoAny, IsVar: true}}},
	{name: "NEW", params: []ast.FormalParam{{Name: "v", Type: pseudoAny, IsVar: true}}},
	{name: "HALT", params: []ast.FormalParam{param("n", pseudoInt)}},
}

// oberon2ExtraProcs is predefinedProcs' Oberon-2 addition.
var oberon2ExtraProcs = []predefinedProc{
	{name: "ASSERT", params: []ast.FormalParam{param("cond", pseudoAny)}},
}

func buildPredefined(extra ...predefinedProc) *scope.Scope {
	s := scope.New(nil)
	for _, name := range predefinedTypeNames {
		s.Put(name, scope.Ok(scope.Type(ast.BaseType{Name: name})))
	}
	for _, name := range predefinedConstNames {
		s.Put(name, scope.Ok(scope.Constant(ast.Placed[ast.Expr]{Node: ast.Literal{Raw: string(name)}})))
	}
	register := func(p predefinedProc) {
		var result *ast.QualIdent
		if p.result != nil {
			q := ast.Unqualified(*p.result)
			result = &q
		}
		s.Put(p.name, scope.Ok(scope.Procedure(p.isBuiltin, p.params, result)))
	}
	for _, p := range predefinedProcs {
		register(p)
	}
	for _, p := range extra {
		register(p)
	}
	return s
}

// Predefined is the Oberon-1 predefined scope (spec §4.5).
func Predefined() *scope.Scope { return buildPredefined() }

// Predefined2 is the Oberon-2 predefined scope: Predefined plus ASSERT.
func Predefined2() *scope.Scope { return buildPredefined(oberon2ExtraProcs...) }

// builtinNames is the set of names that are builtins (accept a type
// argument) in a given variant.
func builtinNames(procs []predefinedProc) map[ast.Ident]bool {
	m := make(map[ast.Ident]bool)
	for _, p := range procs {
		if p.isBuiltin {
			m[p.name] = true
		}
	}
	return m
}

var oberon1Builtins = builtinNames(predefinedProcs)
var oberon2Builtins = builtinNames(append(append([]predefinedProc{}, predefinedProcs...), oberon2ExtraProcs...))

// Oberon1 is the Variant for the original Oberon language: no type-bound
// procedures, the Predefined scope.
type Oberon1 struct{}

func (Oberon1) Name() string { return "Oberon" }
func (Oberon1) IsBuiltinProcedureName(name ast.Ident) bool { return oberon1Builtins[name] }
func (Oberon1) DefaultPredefined() *scope.Scope            { return Predefined() }
func (Oberon1) HasTypeBoundProcedures() bool                { return false }

// Oberon2 is the Variant for Oberon-2: type-bound procedures, ASSERT, the
// Predefined2 scope.
type Oberon2 struct{}

func (Oberon2) Name() string { return "Oberon-2" }
func (Oberon2) IsBuiltinProcedureName(name ast.Ident) bool { return oberon2Builtins[name] }
func (Oberon2) DefaultPredefined() *scope.Scope            { return Predefined2() }
func (Oberon2) HasTypeBoundProcedures() bool                { return true }

var (
	_ Variant = Oberon1{}
	_ Variant = Oberon2{}
)
