package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devforum/backend/internal/interface/http"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/helpers"
)

// CommentModule wires comment routes.
// Public: GET /api/questions/:id/comments, GET /api/answers/:id/comments
// Protected: POST /api/comments

type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/questions/:id/comments", m.Handler.ListByQuestion)
	rg.GET("/answers/:id/comments", m.Handler.ListByAnswer)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("/comments", m.Handler.Create)
	}
}
