package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devforum/backend/internal/interface/http"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/helpers"
)

// QuestionModule wires question routes.
// Public: GET /api/questions, GET /api/questions/:id, GET /api/questions/search
// Protected: POST /api/questions, POST /api/questions/:id/accept

type QuestionModule struct {
	Handler *handlers.QuestionHandler
	JWT     *helpers.JWTManager
}

func NewQuestionModule(h *handlers.QuestionHandler, jwt *helpers.JWTManager) *QuestionModule {
	return &QuestionModule{Handler: h, JWT: jwt}
}

func (m *QuestionModule) Register(rg *gin.RouterGroup) {
	// Listing and detail stay reachable without a token; a valid one
	// still populates claims so handlers can tailor the response.
	optional := middleware.OptionalAuth(m.JWT)
	rg.GET("/questions", optional, m.Handler.List)
	rg.GET("/questions/search", optional, m.Handler.Search)
	rg.GET("/questions/:id", optional, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("/questions", m.Handler.Create)
		auth.POST("/questions/:id/accept", m.Handler.Accept)
	}
}
