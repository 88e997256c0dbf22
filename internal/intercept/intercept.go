// Package intercept implements the two hooks the public fetch path runs
// around the host's visibility rules: remember a non-published document the
// presented token authorizes, then substitute it when the normal result set
// comes back empty.
package intercept

import (
	"context"

	"github.com/draftshare/draftshare/internal/model"
)

// AccessChecker decides whether a token grants anonymous access to a document.
type AccessChecker interface {
	CanView(ctx context.Context, token, docID string) (bool, error)
}

type Interceptor struct {
	access AccessChecker
}

func New(access AccessChecker) *Interceptor {
	return &Interceptor{access: access}
}

// RequestState carries the remembered substitute for a single request. Each
// request must use its own value; sharing one across requests would leak an
// authorized document into an unrelated response.
type RequestState struct {
	substitute *model.Document
}

// FilterFetched inspects the raw fetch results before visibility rules apply.
// If the query resolved to exactly one non-published document and the token
// authorizes it, the document is remembered on st. Results pass through
// unchanged.
func (i *Interceptor) FilterFetched(ctx context.Context, st *RequestState, token string, docs []model.Document) []model.Document {
	if len(docs) != 1 {
		return docs
	}
	doc := docs[0]
	if doc.Status == model.StatusPublished {
		return docs
	}
	ok, err := i.access.CanView(ctx, token, doc.ID)
	if err == nil && ok {
		st.substitute = &doc
	}
	return docs
}

// FilterVisible runs after visibility rules. An empty result set with a
// remembered substitute becomes a single-element set; otherwise any stale
// substitute is dropped and the results pass through unchanged.
func (i *Interceptor) FilterVisible(st *RequestState, docs []model.Document) []model.Document {
	if len(docs) == 0 && st.substitute != nil {
		return []model.Document{*st.substitute}
	}
	st.substitute = nil
	return docs
}
