package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridpage/internal/config"
)

func TestConfigShow_YAML(t *testing.T) {
	isolateCLI(t)
	t.Setenv("GRIDPAGE_PAGE_SIZE", "15")

	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "schema_version: 1.0.0")
	assert.Contains(t, out, "page_size: 15")
	assert.Contains(t, out, "default_format: table")
}

func TestConfigShow_JSON(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "config", "show", "-o", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.DefaultPageSize, cfg.Pagination.PageSize)
	assert.Equal(t, []int{10, 25, 50, 100}, cfg.Pagination.PageSizeOptions)
}

func TestConfigShow_BadFormat(t *testing.T) {
	isolateCLI(t)

	_, err := execute(t, "config", "show", "-o", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml or json")
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		isolateCLI(t)

		out, err := execute(t, "config", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})

	t.Run("invalid", func(t *testing.T) {
		globalDir, _ := isolateCLI(t)
		require.NoError(t, os.WriteFile(
			filepath.Join(globalDir, "config.yaml"),
			[]byte("schema_version: 2.0.0\n"),
			0o600,
		))

		_, err := execute(t, "config", "validate")
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})
}
