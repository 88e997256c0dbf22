package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/draftshare/draftshare/internal/model"
	"github.com/draftshare/draftshare/internal/pkg/errcode"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
	"github.com/draftshare/draftshare/internal/pkg/expiry"
	"github.com/draftshare/draftshare/internal/pkg/nonce"
	"github.com/draftshare/draftshare/internal/pkg/response"
	"github.com/draftshare/draftshare/internal/pkg/timeutil"
	"github.com/draftshare/draftshare/internal/service"
)

const (
	actionShare  = "share"
	actionExtend = "extend"
	actionDelete = "delete"
)

type ShareHandler struct {
	shares      *service.ShareService
	documents   service.DocumentProvider
	nonceSecret []byte
	publicURL   string
}

func NewShareHandler(shares *service.ShareService, documents service.DocumentProvider, nonceSecret []byte, publicURL string) *ShareHandler {
	return &ShareHandler{
		shares:      shares,
		documents:   documents,
		nonceSecret: nonceSecret,
		publicURL:   strings.TrimSuffix(publicURL, "/"),
	}
}

type createShareRequest struct {
	PostID   string `json:"post_id"`
	Expires  string `json:"expires"`
	Measure  string `json:"measure"`
	Security string `json:"security"`
}

type extendShareRequest struct {
	Key      string `json:"key"`
	Expires  string `json:"expires"`
	Measure  string `json:"measure"`
	Security string `json:"security"`
}

type deleteShareRequest struct {
	Key      string `json:"key"`
	Security string `json:"security"`
}

type shareRow struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Token     string `json:"token"`
	Link      string `json:"link"`
	ExpiresAt int64  `json:"expires_at"`
	Remaining string `json:"remaining"`
}

// verifyNonce rejects the request before any store access when the
// anti-forgery proof is missing or not scoped to this action and user.
func (h *ShareHandler) verifyNonce(c *gin.Context, value, action string) bool {
	if !nonce.Verify(h.nonceSecret, value, action, getUserID(c), timeutil.Now()) {
		response.Error(c, errcode.ErrInvalid, "Could not verify the origin and intent of the request.")
		return false
	}
	return true
}

func (h *ShareHandler) row(c *gin.Context, share model.Share) shareRow {
	title := ""
	if doc, err := h.documents.GetOwned(c.Request.Context(), getUserID(c), share.DocumentID); err == nil {
		title = doc.Title
	}
	return shareRow{
		ID:        share.DocumentID,
		Title:     title,
		Token:     share.Token,
		Link:      fmt.Sprintf("%s/api/v1/public/posts/%s?token=%s", h.publicURL, share.DocumentID, share.Token),
		ExpiresAt: share.ExpiresAt,
		Remaining: expiry.Remaining(share.ExpiresAt, timeutil.Now()),
	}
}

func (h *ShareHandler) Nonces(c *gin.Context) {
	userID := getUserID(c)
	now := timeutil.Now()
	response.Success(c, gin.H{
		actionShare:  nonce.Generate(h.nonceSecret, actionShare, userID, now),
		actionExtend: nonce.Generate(h.nonceSecret, actionExtend, userID, now),
		actionDelete: nonce.Generate(h.nonceSecret, actionDelete, userID, now),
	})
}

func (h *ShareHandler) List(c *gin.Context) {
	shares, err := h.shares.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	rows := make([]shareRow, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, h.row(c, share))
	}
	response.Success(c, gin.H{"items": rows})
}

func (h *ShareHandler) Create(c *gin.Context) {
	var req createShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if !h.verifyNonce(c, req.Security, actionShare) {
		return
	}
	if req.PostID == "" {
		response.Error(c, errcode.ErrInvalid, "No post id was found in the request.")
		return
	}
	share, err := h.shares.Create(c.Request.Context(), getUserID(c), req.PostID, req.Expires, req.Measure)
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			response.Error(c, errcode.ErrNotFound, "Could not find any post with the specified id.")
			return
		}
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "A draft for the post was successfully created.",
		"share":   h.row(c, *share),
	})
}

func (h *ShareHandler) Extend(c *gin.Context) {
	var req extendShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if !h.verifyNonce(c, req.Security, actionExtend) {
		return
	}
	if req.Key == "" {
		response.Error(c, errcode.ErrInvalid, "No draft post key was found in the request.")
		return
	}
	share, err := h.shares.Extend(c.Request.Context(), getUserID(c), req.Key, req.Expires, req.Measure)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "The post draft was successfully extended.",
		"expires": expiry.Remaining(share.ExpiresAt, timeutil.Now()),
	})
}

func (h *ShareHandler) Delete(c *gin.Context) {
	var req deleteShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if !h.verifyNonce(c, req.Security, actionDelete) {
		return
	}
	if req.Key == "" {
		response.Error(c, errcode.ErrInvalid, "No draft post key was found in the request.")
		return
	}
	if err := h.shares.Revoke(c.Request.Context(), getUserID(c), req.Key); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "The post draft was successfully deleted."})
}
