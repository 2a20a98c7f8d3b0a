package rconfig_test

import (
	"testing"

	"github.com/mna/oberesolve/internal/rconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := rconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, "oberon-2", c.Variant)
	assert.False(t, c.NameScopes)
	assert.Equal(t, 4, c.MaxConcurrentModules)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OBERESOLVE_VARIANT", "oberon")
	t.Setenv("OBERESOLVE_NAME_SCOPES", "true")
	t.Setenv("OBERESOLVE_MAX_CONCURRENT_MODULES", "8")

	c, err := rconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, "oberon", c.Variant)
	assert.True(t, c.NameScopes)
	assert.Equal(t, 8, c.MaxConcurrentModules)
}

func TestLoadRejectsInvalidInt(t *testing.T) {
	t.Setenv("OBERESOLVE_MAX_CONCURRENT_MODULES", "not-a-number")
	_, err := rconfig.Load()
	assert.Error(t, err)
}
