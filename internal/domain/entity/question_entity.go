package entity

import "time"

// Question is an independent aggregate root owned by its creating user.
// AcceptedAnswerID, when set, must reference an answer of this question.
type Question struct {
	ID               string
	Title            string
	Description      string
	Tags             []string
	UserID           string
	AcceptedAnswerID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
