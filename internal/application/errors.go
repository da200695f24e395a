package application

import "errors"

// Service-level sentinel errors. Handlers map these onto HTTP statuses; the
// messages are what clients are allowed to learn.
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrWeakPassword        = errors.New("password must be at least 6 characters long")
	ErrInvalidRole         = errors.New("invalid role")
	ErrUserNotFound        = errors.New("user not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrAnswerNotFound      = errors.New("answer not found")
	ErrInvalidVoteValue    = errors.New("vote must be +1 or -1")
	ErrNotQuestionOwner    = errors.New("only the question owner may accept an answer")
	ErrAnswerNotInQuestion = errors.New("answer does not belong to this question")
)
