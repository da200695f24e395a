package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devforum/backend/internal/container"
	handlers "github.com/devforum/backend/internal/interface/http"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/helpers"
)

// AuthModule wires signup, login and profile routes.
// Public: POST /api/auth/signup, POST /api/auth/login
// Protected: GET /api/auth/profile, POST /api/auth/verify-token,
// PUT /api/profile/avatar

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
		auth.POST("/auth/verify-token", m.Handler.VerifyToken)
		auth.PUT("/profile/avatar", m.Handler.UploadAvatar)
	}
}
