package pagination

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	paging "github.com/rshade/gridpage/pkg/pagination"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid default",
			params: *NewParams(10),
		},
		{
			name:   "valid page mode",
			params: Params{Page: 2, PageSize: 10, TotalItems: NoTotalItems},
		},
		{
			name:   "valid offset mode",
			params: Params{Offset: 25, PageSize: 10, TotalItems: NoTotalItems},
		},
		{
			name:   "valid server mode",
			params: Params{Page: 3, PageSize: 10, ServerSide: true, TotalItems: 45},
		},
		{
			name:   "server mode with zero total",
			params: Params{PageSize: 10, ServerSide: true, TotalItems: 0},
		},
		{
			name:    "negative page",
			params:  Params{Page: -1, PageSize: 10, TotalItems: NoTotalItems},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "zero page-size",
			params:  Params{PageSize: 0, TotalItems: NoTotalItems},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "page-size too large",
			params:  Params{PageSize: MaxPageSize + 1, TotalItems: NoTotalItems},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "negative offset",
			params:  Params{Offset: -5, PageSize: 10, TotalItems: NoTotalItems},
			wantErr: ErrInvalidOffset,
		},
		{
			name:    "mixed modes",
			params:  Params{Page: 1, Offset: 10, PageSize: 10, TotalItems: NoTotalItems},
			wantErr: ErrMixedPaginationModes,
		},
		{
			name:    "total items without server side",
			params:  Params{PageSize: 10, TotalItems: 40},
			wantErr: ErrTotalItemsClientMode,
		},
		{
			name:    "server side without total items",
			params:  Params{PageSize: 10, ServerSide: true, TotalItems: NoTotalItems},
			wantErr: ErrMissingTotalItems,
		},
		{
			name:    "negative total items",
			params:  Params{PageSize: 10, ServerSide: true, TotalItems: -7},
			wantErr: ErrInvalidTotalItems,
		},
		{
			name:    "bad output",
			params:  Params{PageSize: 10, TotalItems: NoTotalItems, Output: "xml"},
			wantErr: ErrInvalidOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewParams_FloorsPageSize(t *testing.T) {
	assert.Equal(t, paging.DefaultPageSize, NewParams(0).PageSize)
	assert.Equal(t, 25, NewParams(25).PageSize)
	assert.Equal(t, NoTotalItems, NewParams(25).TotalItems)
}

func TestParams_RequestedPage(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{"default", Params{PageSize: 10}, 1},
		{"explicit page", Params{Page: 4, PageSize: 10}, 4},
		{"offset on boundary", Params{Offset: 20, PageSize: 10}, 3},
		{"offset inside page", Params{Offset: 29, PageSize: 10}, 3},
		{"offset within first page", Params{Offset: 9, PageSize: 10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.RequestedPage())
		})
	}
}

func TestParams_Options(t *testing.T) {
	client := Params{PageSize: 5, TotalItems: NoTotalItems}.Options(nil)
	assert.Equal(t, 5, client.PageSize)
	assert.False(t, client.ServerSide)
	assert.Nil(t, client.TotalItems)

	server := Params{PageSize: 5, ServerSide: true, TotalItems: 42}.Options(nil)
	assert.True(t, server.ServerSide)
	require.NotNil(t, server.TotalItems)
	assert.Equal(t, 42, *server.TotalItems)

	e := paging.New([]int{1, 2, 3, 4, 5}, server)
	assert.Equal(t, 9, e.TotalPages())
}

func TestParams_AddFlags(t *testing.T) {
	p := NewParams(10)
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	p.AddFlags(cmd, true)

	cmd.SetArgs([]string{"--page", "3", "--page-size", "20", "--server-side", "--total-items", "99", "-o", "json"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, Params{Page: 3, PageSize: 20, ServerSide: true, TotalItems: 99, Output: "json"}, *p)
	require.NoError(t, p.Validate())
}

func TestParams_AddFlagsWithoutOutput(t *testing.T) {
	p := NewParams(10)
	cmd := &cobra.Command{Use: "test"}
	p.AddFlags(cmd, false)

	assert.Nil(t, cmd.Flags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("page-size"))
}

func TestApply(t *testing.T) {
	items := make([]int, 23)
	e := paging.New(items, paging.Options{PageSize: 10})

	meta := Apply(e, 2)
	assert.Equal(t, "client", meta.Mode)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 11, meta.StartIndex)
	assert.Equal(t, []int{1, 2, 3}, meta.Pages)
	assert.Zero(t, meta.RequestedPage)

	meta = Apply(e, 9)
	assert.Equal(t, 2, meta.CurrentPage, "out-of-range page is ignored")
	assert.Equal(t, 9, meta.RequestedPage)
}

func TestMeta_Encoding(t *testing.T) {
	e := paging.New(make([]int, 23), paging.Options{PageSize: 10})
	meta := Apply(e, 3)

	t.Run("json flattens state", func(t *testing.T) {
		data, err := json.Marshal(meta)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"mode":"client"`)
		assert.Contains(t, string(data), `"current_page":3`)
		assert.Contains(t, string(data), `"pages":[1,2,3]`)
		assert.NotContains(t, string(data), "requested_page")
	})

	t.Run("yaml inlines state", func(t *testing.T) {
		data, err := yaml.Marshal(meta)
		require.NoError(t, err)
		assert.Contains(t, string(data), "current_page: 3")
		assert.Contains(t, string(data), "is_last_page: true")
		assert.NotContains(t, string(data), "state:")
	})
}
