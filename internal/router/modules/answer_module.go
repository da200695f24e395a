package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devforum/backend/internal/container"
	handlers "github.com/devforum/backend/internal/interface/http"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/helpers"
)

// AnswerModule wires answer routes.
// Public: GET /api/questions/:id/answers
// Protected: POST /api/answers, PUT /api/answers (vote + edit)

type AnswerModule struct {
	Handler *handlers.AnswerHandler
	JWT     *helpers.JWTManager
}

func NewAnswerModule(h *handlers.AnswerHandler, jwt *helpers.JWTManager) *AnswerModule {
	return &AnswerModule{Handler: h, JWT: jwt}
}

func (m *AnswerModule) Register(rg *gin.RouterGroup) {
	rg.GET("/questions/:id/answers", m.Handler.ListByQuestion)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/answers", m.Handler.Create)
		auth.PUT("/answers", m.Handler.Update)
	}
}
