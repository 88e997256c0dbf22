package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/draftshare/draftshare/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Documents *DocumentHandler
	Shares    *ShareHandler
	Public    *PublicHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.POST("/posts", deps.Documents.Create)
	authGroup.GET("/posts", deps.Documents.List)
	authGroup.GET("/posts/:id", deps.Documents.Get)
	authGroup.PUT("/posts/:id", deps.Documents.Update)
	authGroup.GET("/drafts", deps.Documents.Drafts)

	authGroup.GET("/shares", deps.Shares.List)
	authGroup.GET("/shares/nonces", deps.Shares.Nonces)
	authGroup.POST("/shares", deps.Shares.Create)
	authGroup.POST("/shares/extend", deps.Shares.Extend)
	authGroup.POST("/shares/delete", deps.Shares.Delete)

	api.GET("/public/posts/:id", deps.Public.GetPost)
}
