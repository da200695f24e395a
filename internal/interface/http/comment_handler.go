package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/response"
	"github.com/devforum/backend/pkg/validation"
)

type CommentHandler struct {
	Svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{Svc: svc}
}

type createCommentRequest struct {
	Body       string `json:"body" binding:"required"`
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
}

// Create POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	cm, err := h.Svc.Create(c.Request.Context(), application.CreateCommentInput{
		Body:       req.Body,
		UserID:     c.GetString(middleware.CtxUserIDKey),
		QuestionID: req.QuestionID,
		AnswerID:   req.AnswerID,
	})
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, cm, "comment created", nil)
	c.JSON(resp.Status, resp)
}

// ListByQuestion GET /api/questions/:id/comments
func (h *CommentHandler) ListByQuestion(c *gin.Context) {
	comments, err := h.Svc.ListByQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, comments, "comments", nil)
	c.JSON(resp.Status, resp)
}

// ListByAnswer GET /api/answers/:id/comments
func (h *CommentHandler) ListByAnswer(c *gin.Context) {
	comments, err := h.Svc.ListByAnswer(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, comments, "comments", nil)
	c.JSON(resp.Status, resp)
}
