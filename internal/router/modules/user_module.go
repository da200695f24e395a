package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/devforum/backend/internal/domain/entity"
	handlers "github.com/devforum/backend/internal/interface/http"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/helpers"
)

// UserModule wires account administration and notification routes.
// Admin only: GET /api/users, PUT /api/users/:id/deactivate, PUT /api/users/:id/activate
// Protected: GET /api/notifications, PUT /api/notifications/:id/read, GET /api/notifications/unread-count

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.GET("/notifications", m.Handler.ListNotifications)
		auth.GET("/notifications/unread-count", m.Handler.UnreadCount)
		auth.PUT("/notifications/:id/read", m.Handler.MarkNotificationRead)
	}

	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.JWT), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.GET("/users", m.Handler.List)
		admin.PUT("/users/:id/deactivate", m.Handler.Deactivate)
		admin.PUT("/users/:id/activate", m.Handler.Activate)
	}
}
