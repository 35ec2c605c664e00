package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridpage/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
output:
  default_format: yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "yaml", target.Output.DefaultFormat)
	assert.Equal(t, config.DefaultPageSize, target.Pagination.PageSize, "absent keys are preserved")
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_SectionReplacedWholesale(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
pagination:
  page_size: 20
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 20, target.Pagination.PageSize)
	assert.Nil(t, target.Pagination.PageSizeOptions, "sub-keys absent from the overlay are dropped")
}

func TestShallowMergeYAML_MultipleKeys(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
schema_version: 1.1.0
logging:
  level: debug
  format: json
pagination:
  page_size: 5
  page_size_options: [5, 15]
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "1.1.0", target.SchemaVersion)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, []int{5, 15}, target.Pagination.PageSizeOptions)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := config.Defaults()
			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
			assert.Equal(t, config.Defaults().Pagination, target.Pagination)
		})
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
theme: dark
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "json", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.ErrorIs(t, config.ShallowMergeYAML(nil, "unused"), config.ErrNilMergeTarget)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Defaults(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Defaults(), writeOverlay(t, "output: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("top level is a list", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Defaults(), writeOverlay(t, "- pagination\n- output\n"))
		require.ErrorIs(t, err, config.ErrOverlayNotMapping)
	})

	t.Run("failed section leaves target untouched", func(t *testing.T) {
		target := config.Defaults()
		err := config.ShallowMergeYAML(target, writeOverlay(t, "pagination:\n  page_size: [3]\n"))
		require.Error(t, err)
		assert.Equal(t, config.Defaults().Pagination, target.Pagination)
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Defaults(), writeOverlay(t, "pagination: [1, 2]"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "pagination"`)
	})
}
