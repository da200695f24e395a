package repository

import (
	"context"

	"github.com/devforum/backend/internal/domain/entity"
)

// QuestionRepository defines question persistence.
type QuestionRepository interface {
	Create(ctx context.Context, q *entity.Question) error
	GetByID(ctx context.Context, id string) (*entity.Question, error)
	Update(ctx context.Context, q *entity.Question) error
	List(ctx context.Context) ([]entity.Question, error)
}

// CommentRepository defines comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	ListByQuestion(ctx context.Context, questionID string) ([]entity.Comment, error)
	ListByAnswer(ctx context.Context, answerID string) ([]entity.Comment, error)
}

// ImageRepository records uploaded image metadata.
type ImageRepository interface {
	Create(ctx context.Context, img *entity.Image) error
}
