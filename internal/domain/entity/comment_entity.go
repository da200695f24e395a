package entity

import "time"

// Comment attaches to either a question or an answer (exactly one of
// QuestionID / AnswerID is set).
type Comment struct {
	ID         string
	Body       string
	UserID     string
	QuestionID string
	AnswerID   string
	CreatedAt  time.Time
}
