package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/draftshare/draftshare/internal/middleware"
	"github.com/draftshare/draftshare/internal/pkg/errcode"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
	"github.com/draftshare/draftshare/internal/pkg/response"
)

func getUserID(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(string)
	return userID
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, errcode.ErrUnauthorized, "unauthorized")
	case errors.Is(err, appErr.ErrForbidden):
		response.Error(c, errcode.ErrForbidden, "forbidden")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, errcode.ErrNotFound, "not found")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, errcode.ErrInvalid, "invalid request")
	case errors.Is(err, appErr.ErrConflict):
		response.Error(c, errcode.ErrConflict, "conflict")
	case errors.Is(err, appErr.ErrAlreadyPublished):
		response.Error(c, errcode.ErrAlreadyPublished, "The post is already published.")
	case errors.Is(err, appErr.ErrPersistence):
		response.Error(c, errcode.ErrPersistence, "An error occurred while saving. Please try again.")
	default:
		response.Error(c, errcode.ErrInternal, "internal error")
	}
}
