package resolver_test

import (
	"os"
	"testing"

	"github.com/mna/oberesolve/lang/ast"
	"github.com/mna/oberesolve/lang/resolver"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// variantFixture is one entry of testdata/variants.yaml.
type variantFixture struct {
	Variant     string   `yaml:"variant"`
	Builtins    []string `yaml:"builtins"`
	NonBuiltins []string `yaml:"nonBuiltins"`
}

func loadVariantFixtures(t *testing.T) []variantFixture {
	t.Helper()
	b, err := os.ReadFile("testdata/variants.yaml")
	require.NoError(t, err)
	var fixtures []variantFixture
	require.NoError(t, yaml.Unmarshal(b, &fixtures))
	return fixtures
}

func TestVariantBuiltinsFromFixture(t *testing.T) {
	variants := map[string]resolver.Variant{
		"oberon":   resolver.Oberon1{},
		"oberon-2": resolver.Oberon2{},
	}

	for _, fx := range loadVariantFixtures(t) {
		fx := fx
		t.Run(fx.Variant, func(t *testing.T) {
			v, ok := variants[fx.Variant]
			require.True(t, ok, "unknown variant in fixture: %s", fx.Variant)

			for _, name := range fx.Builtins {
				require.True(t, v.IsBuiltinProcedureName(ast.Ident(name)), "%s must be a builtin in %s", name, fx.Variant)
			}
			for _, name := range fx.NonBuiltins {
				require.False(t, v.IsBuiltinProcedureName(ast.Ident(name)), "%s must not be a builtin in %s", name, fx.Variant)
			}
		})
	}
}
