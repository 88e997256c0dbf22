package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	r := New(16, time.Minute)
	html, err := r.HTML("doc-1", 1, "# Title\n\nsome *draft* text")
	require.NoError(t, err)
	require.Contains(t, html, "<h1>Title</h1>")
	require.Contains(t, html, "<em>draft</em>")
}

func TestCacheKeyedByRevision(t *testing.T) {
	r := New(16, time.Minute)
	first, err := r.HTML("doc-1", 1, "one")
	require.NoError(t, err)

	// Same id and mtime serves the cached entry even if content differs.
	cached, err := r.HTML("doc-1", 1, "two")
	require.NoError(t, err)
	require.Equal(t, first, cached)

	// A new mtime re-renders.
	fresh, err := r.HTML("doc-1", 2, "two")
	require.NoError(t, err)
	require.Contains(t, fresh, "two")
}

func TestNoCacheWhenDisabled(t *testing.T) {
	r := New(0, 0)
	first, err := r.HTML("doc-1", 1, "one")
	require.NoError(t, err)
	require.Contains(t, first, "one")
	second, err := r.HTML("doc-1", 1, "two")
	require.NoError(t, err)
	require.Contains(t, second, "two")
}
