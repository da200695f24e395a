package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/response"
	"github.com/devforum/backend/pkg/validation"
)

type QuestionHandler struct {
	Svc    *application.QuestionService
	Logger *logrus.Logger
}

func NewQuestionHandler(svc *application.QuestionService, logger *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{Svc: svc, Logger: logger}
}

type createQuestionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
}

type acceptAnswerRequest struct {
	AnswerID string `json:"answerId" binding:"required"`
}

// Create POST /api/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	q, err := h.Svc.Create(c.Request.Context(), application.CreateQuestionInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		UserID:      c.GetString(middleware.CtxUserIDKey),
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("question create failed")
		}
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, q, "question created", nil)
	c.JSON(resp.Status, resp)
}

// List GET /api/questions
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("question list failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, questions, "questions", nil)
	c.JSON(resp.Status, resp)
}

// Get GET /api/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	q, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, q, "question", nil)
	c.JSON(resp.Status, resp)
}

// Accept POST /api/questions/:id/accept
func (h *QuestionHandler) Accept(c *gin.Context) {
	var req acceptAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	q, err := h.Svc.AcceptAnswer(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserIDKey), req.AnswerID)
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, q, "answer accepted", nil)
	c.JSON(resp.Status, resp)
}

// Search GET /api/questions/search?q=...&size=10
func (h *QuestionHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		resp := response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		c.JSON(resp.Status, resp)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), query, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("question search failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, hits, "search results", nil)
	c.JSON(resp.Status, resp)
}
