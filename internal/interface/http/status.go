package handlers

import (
	"errors"
	"net/http"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/domain/repository"
)

// statusFor maps service errors onto HTTP statuses. Anything unmapped is an
// internal error; its details stay out of the response body.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrWeakPassword),
		errors.Is(err, application.ErrInvalidRole),
		errors.Is(err, application.ErrInvalidVoteValue),
		errors.Is(err, application.ErrCommentTarget),
		errors.Is(err, application.ErrAnswerNotInQuestion):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrEmailTaken),
		errors.Is(err, repository.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrAccountDeactivated):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrNotQuestionOwner):
		return http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrQuestionNotFound),
		errors.Is(err, application.ErrAnswerNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage hides internal error details behind a generic message for 5xx
// while passing through the curated service error text otherwise.
func clientMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
