package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_parsesPresetsAndCeiling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msologic.toml")
	contents := `
resource_ceiling = 4096

[alphabets.ab]
symbols = "ab"

[alphabets.binarytree.arity]
a = 2
b = 2
leaf = 0
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.ResourceCeiling)

	ab, ok := cfg.Preset("ab")
	require.True(t, ok)
	assert.Equal(t, "ab", ab.Symbols)
	assert.False(t, ab.IsTreePreset())

	tree, ok := cfg.Preset("binarytree")
	require.True(t, ok)
	assert.True(t, tree.IsTreePreset())
	assert.Equal(t, 2, tree.Arity["a"])
}

func Test_Load_missingFile(t *testing.T) {
	_, err := Load("/nonexistent/msologic.toml")
	assert.Error(t, err)
}
