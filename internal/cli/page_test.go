package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridpage/internal/cli"
	"github.com/rshade/gridpage/internal/cli/pagination"
	"github.com/rshade/gridpage/internal/dataset"
)

func TestPageCmd_Table(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "page", "--generate", "23", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "item-0011")
	assert.Contains(t, out, "item-0020")
	assert.NotContains(t, out, "item-0010")
	assert.NotContains(t, out, "item-0021")
	assert.Contains(t, out, "Showing 11–20 of 23")
	assert.Contains(t, out, "Page 2 of 3")
	assert.Contains(t, out, "Pages: 1 [2] 3")
}

func TestPageCmd_OutOfRangePageIgnored(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "page", "--generate", "23", "--page", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "Note: page 9 does not exist, showing page 1")
	assert.Contains(t, out, "item-0001")
}

func TestPageCmd_Offset(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "page", "--generate", "23", "--offset", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 11–20 of 23")
}

func TestPageCmd_JSON(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "page", "--generate", "23", "--page", "3", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Pagination pagination.Meta  `json:"pagination"`
		Items      []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "client", got.Pagination.Mode)
	assert.Equal(t, 3, got.Pagination.CurrentPage)
	assert.Equal(t, 21, got.Pagination.StartIndex)
	assert.Equal(t, 23, got.Pagination.EndIndex)
	assert.True(t, got.Pagination.IsLastPage)
	assert.Equal(t, []int{1, 2, 3}, got.Pagination.Pages)
	require.Len(t, got.Items, 3)
	assert.Equal(t, "item-0021", got.Items[0]["name"])
}

func TestPageCmd_YAML(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "page", "--generate", "5", "-o", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "pagination:")
	assert.Contains(t, out, "current_page: 1")
	assert.Contains(t, out, "items:")
	assert.Contains(t, out, "name: item-0005")
}

func TestPageCmd_Files(t *testing.T) {
	isolateCLI(t)
	a := writeRows(t, "a.json", `[{"id": 1, "name": "alpha"}, {"id": 2, "name": "beta"}]`)
	b := writeRows(t, "b.yaml", "- id: 3\n  name: gamma\n")

	out, err := execute(t, "page", a, b, "--page-size", "2", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "gamma")
	assert.NotContains(t, out, "alpha")
	assert.Contains(t, out, "Showing 3–3 of 3")
}

func TestPageCmd_ServerSide(t *testing.T) {
	isolateCLI(t)
	payload := writeRows(t, "page3.json",
		`[{"id": 11}, {"id": 12}, {"id": 13}, {"id": 14}, {"id": 15}]`)

	out, err := execute(t, "page", payload,
		"--server-side", "--total-items", "42", "--page-size", "5", "--page", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 11–15 of 42")
	assert.Contains(t, out, "Page 3 of 9")
	assert.Contains(t, out, "Pages: 1 2 [3] 4 5")
	for _, id := range []string{"11", "12", "13", "14", "15"} {
		assert.Contains(t, out, id)
	}
}

func TestPageCmd_EmptyDataset(t *testing.T) {
	isolateCLI(t)
	empty := writeRows(t, "empty.json", `[]`)

	out, err := execute(t, "page", empty)
	require.NoError(t, err)

	assert.Contains(t, out, "No rows on this page")
	assert.Contains(t, out, "No items")
	assert.Contains(t, out, "Pages: [1]")
}

func TestPageCmd_ConfigPageSize(t *testing.T) {
	isolateCLI(t)
	t.Setenv("GRIDPAGE_PAGE_SIZE", "5")

	out, err := execute(t, "page", "--generate", "23")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1–5 of 23")

	out, err = execute(t, "page", "--generate", "23", "--page-size", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1–20 of 23", "flag wins over config")
}

func TestPageCmd_Errors(t *testing.T) {
	rows := writeRows(t, "rows.json", `[{"id": 1}]`)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no input", []string{"page"}, dataset.ErrNoInput},
		{"files and generate", []string{"page", rows, "--generate", "3"}, cli.ErrInputConflict},
		{"total without server", []string{"page", rows, "--total-items", "9"}, pagination.ErrTotalItemsClientMode},
		{"server without total", []string{"page", rows, "--server-side"}, pagination.ErrMissingTotalItems},
		{"mixed page and offset", []string{"page", rows, "--page", "2", "--offset", "5"}, pagination.ErrMixedPaginationModes},
		{"bad page size", []string{"page", rows, "--page-size", "0"}, pagination.ErrInvalidPageSize},
		{"bad output", []string{"page", rows, "-o", "xml"}, pagination.ErrInvalidOutput},
		{"bad extension", []string{"page", writeRows(t, "rows.csv", "id\n1\n")}, dataset.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCLI(t)
			_, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
