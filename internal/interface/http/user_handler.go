package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/response"
)

// UserHandler serves the admin user operations and per-user notifications.
type UserHandler struct {
	Users         *application.UserService
	Notifications *application.NotificationService
	Logger        *logrus.Logger
}

func NewUserHandler(users *application.UserService, notifications *application.NotificationService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Notifications: notifications, Logger: logger}
}

// List GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("user list failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, users, "users", nil)
	c.JSON(resp.Status, resp)
}

// Deactivate PUT /api/users/:id/deactivate (admin)
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// Activate PUT /api/users/:id/activate (admin)
func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	u, err := h.Users.SetActive(c.Request.Context(), c.Param("id"), active)
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, u, "user updated", nil)
	c.JSON(resp.Status, resp)
}

// ListNotifications GET /api/notifications
func (h *UserHandler) ListNotifications(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	lists, err := h.Notifications.List(c.Request.Context(), uid)
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, lists, "notifications", nil)
	c.JSON(resp.Status, resp)
}

// MarkNotificationRead PUT /api/notifications/:id/read
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Notifications.MarkRead(c.Request.Context(), uid, c.Param("id")); err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"read": true}, "notification read", nil)
	c.JSON(resp.Status, resp)
}

// UnreadCount GET /api/notifications/unread-count
func (h *UserHandler) UnreadCount(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	n, err := h.Notifications.UnreadCount(c.Request.Context(), uid)
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"unread": n}, "unread count", nil)
	c.JSON(resp.Status, resp)
}
