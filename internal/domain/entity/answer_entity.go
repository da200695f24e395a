package entity

import "time"

// Answer is owned by its creating user and belongs to one question.
// Votes is the aggregate score; it changes only through the vote service so
// it stays equal to the sum of all per-user ledger entries for this answer.
type Answer struct {
	ID          string
	Title       string
	Description string
	QuestionID  string
	UserID      string
	Votes       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
