package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/response"
	"github.com/devforum/backend/pkg/validation"
)

type AnswerHandler struct {
	Answers *application.AnswerService
	Votes   *application.VoteService
	Logger  *logrus.Logger
}

func NewAnswerHandler(answers *application.AnswerService, votes *application.VoteService, logger *logrus.Logger) *AnswerHandler {
	return &AnswerHandler{Answers: answers, Votes: votes, Logger: logger}
}

type createAnswerRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	QuestionID  string `json:"questionId" binding:"required"`
}

type updateAnswerRequest struct {
	AnswerID string `json:"answerId" binding:"required"`
	// UserID is taken from the request body rather than the token; the client
	// sends it the same way the update call always has.
	UserID      string `json:"userId" binding:"required"`
	Vote        int    `json:"vote" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create POST /api/answers
func (h *AnswerHandler) Create(c *gin.Context) {
	var req createAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	a, err := h.Answers.Create(c.Request.Context(), application.CreateAnswerInput{
		Title:       req.Title,
		Description: req.Description,
		QuestionID:  req.QuestionID,
		UserID:      c.GetString(middleware.CtxUserIDKey),
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("answer create failed")
		}
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, a, "answer created", nil)
	c.JSON(resp.Status, resp)
}

// Update PUT /api/answers
// Casts the caller's vote and applies any title/description change in the
// same transaction.
func (h *AnswerHandler) Update(c *gin.Context) {
	var req updateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	score, err := h.Votes.CastVote(c.Request.Context(), application.CastVoteInput{
		UserID:      req.UserID,
		AnswerID:    req.AnswerID,
		Vote:        req.Vote,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("answer update failed")
		}
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"votes": score}, "successfully updated the answer", nil)
	c.JSON(resp.Status, resp)
}

// ListByQuestion GET /api/questions/:id/answers
func (h *AnswerHandler) ListByQuestion(c *gin.Context) {
	answers, err := h.Answers.ListByQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := statusFor(err)
		resp := response.Error[any](c, status, clientMessage(err, status), nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, answers, "answers", nil)
	c.JSON(resp.Status, resp)
}
