package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/response"
	"github.com/devforum/backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role"`
	// ImageBuffer is an optional base64-encoded avatar payload.
	ImageBuffer []byte `json:"imageBuffer"`
	ImageType   string `json:"imageType"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Name:              req.Name,
		UserName:          req.UserName,
		Email:             req.Email,
		Password:          req.Password,
		Role:              req.Role,
		Avatar:            req.ImageBuffer,
		AvatarContentType: req.ImageType,
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("signup failed")
		}
		// Duplicate email/username surfaces as 400 on this endpoint.
		if status == http.StatusConflict {
			status = http.StatusBadRequest
		}
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, gin.H{"token": res.Token, "user": res.User}, "user registered successfully", gin.H{"expires_at": res.ExpiresAt})
	c.JSON(resp.Status, resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"token": res.Token, "user": res.User}, "login successful", gin.H{"expires_at": res.ExpiresAt})
	c.JSON(resp.Status, resp)
}

// Profile GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetUserByID(c.Request.Context(), uid)
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"user": u.Public()}, "profile", nil)
	c.JSON(resp.Status, resp)
}

// VerifyToken POST /api/auth/verify-token
// Reflects the verified claims back to the caller; RequireAuth has already
// rejected anything invalid.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{
		"userId":   claims.UserID,
		"email":    claims.Email,
		"userName": claims.UserName,
		"role":     claims.Role,
		"name":     claims.Name,
	}, "token valid", nil)
	c.JSON(resp.Status, resp)
}

// UploadAvatar PUT /api/profile/avatar (multipart form, field "file")
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("file")
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		c.JSON(resp.Status, resp)
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		c.JSON(resp.Status, resp)
		return
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		c.JSON(resp.Status, resp)
		return
	}
	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, data, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("avatar upload failed")
		}
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"url": url}, "avatar uploaded", nil)
	c.JSON(resp.Status, resp)
}
