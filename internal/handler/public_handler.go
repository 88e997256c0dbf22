package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/draftshare/draftshare/internal/intercept"
	"github.com/draftshare/draftshare/internal/model"
	"github.com/draftshare/draftshare/internal/pkg/errcode"
	"github.com/draftshare/draftshare/internal/pkg/response"
	"github.com/draftshare/draftshare/internal/render"
	"github.com/draftshare/draftshare/internal/service"
)

type PublicHandler struct {
	documents   service.DocumentProvider
	interceptor *intercept.Interceptor
	renderer    *render.Renderer
}

func NewPublicHandler(documents service.DocumentProvider, interceptor *intercept.Interceptor, renderer *render.Renderer) *PublicHandler {
	return &PublicHandler{documents: documents, interceptor: interceptor, renderer: renderer}
}

// GetPost serves the anonymous read path. The raw fetch runs first, then the
// published-only rule, with the interception hooks around it: an authorized
// token substitutes the non-published document back into an otherwise empty
// result.
func (h *PublicHandler) GetPost(c *gin.Context) {
	ctx := c.Request.Context()
	token := c.Query("token")
	st := &intercept.RequestState{}

	raw := make([]model.Document, 0, 1)
	if doc, err := h.documents.GetAny(ctx, c.Param("id")); err == nil {
		raw = append(raw, *doc)
	}
	raw = h.interceptor.FilterFetched(ctx, st, token, raw)

	visible := make([]model.Document, 0, len(raw))
	for _, doc := range raw {
		if doc.Status == model.StatusPublished {
			visible = append(visible, doc)
		}
	}
	visible = h.interceptor.FilterVisible(st, visible)
	if len(visible) == 0 {
		response.Error(c, errcode.ErrNotFound, "not found")
		return
	}

	doc := visible[0]
	html, err := h.renderer.HTML(doc.ID, doc.Mtime, doc.Content)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"id":    doc.ID,
		"title": doc.Title,
		"html":  html,
		"mtime": doc.Mtime,
	})
}
