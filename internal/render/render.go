// Package render turns document markdown into HTML for the public view, with
// a small expiring cache so repeated anonymous fetches of the same revision
// skip the conversion.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Renderer struct {
	md    goldmark.Markdown
	cache *expirable.LRU[string, string]
}

func New(cacheSize int, cacheTTL time.Duration) *Renderer {
	r := &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
	if cacheSize > 0 && cacheTTL > 0 {
		r.cache = expirable.NewLRU[string, string](cacheSize, nil, cacheTTL)
	}
	return r
}

// HTML renders content and caches the result keyed by document id and mtime,
// so an edit invalidates the cached entry naturally.
func (r *Renderer) HTML(docID string, mtime int64, content string) (string, error) {
	key := fmt.Sprintf("%s|%d", docID, mtime)
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached, nil
		}
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	html := buf.String()
	if r.cache != nil {
		r.cache.Add(key, html)
	}
	return html, nil
}
