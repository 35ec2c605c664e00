package pagination

import (
	paging "github.com/rshade/gridpage/pkg/pagination"
)

// Meta is the paging envelope printed with structured output.
type Meta struct {
	Mode string `json:"mode"  yaml:"mode"`
	paging.State `yaml:",inline"`

	Pages []int `json:"pages" yaml:"pages"`
	// RequestedPage is set when the requested page did not exist and the
	// engine stayed where it was.
	RequestedPage int `json:"requested_page,omitempty" yaml:"requested_page,omitempty"`
}

// NewMeta captures the engine's current paging state.
func NewMeta[T any](e *paging.Engine[T]) Meta {
	return Meta{
		Mode:  e.Mode().String(),
		State: e.State(),
		Pages: e.PageNumbers(),
	}
}

// Apply moves e to page and returns the resulting Meta, recording page as
// RequestedPage when the engine ignored it.
func Apply[T any](e *paging.Engine[T], page int) Meta {
	e.SetPage(page)
	meta := NewMeta(e)
	if meta.CurrentPage != page {
		meta.RequestedPage = page
	}
	return meta
}
