package repository

import (
	"context"

	"github.com/devforum/backend/internal/domain/entity"
)

// AnswerRepository defines answer persistence.
type AnswerRepository interface {
	Create(ctx context.Context, a *entity.Answer) error
	GetByID(ctx context.Context, id string) (*entity.Answer, error)
	// GetByIDForUpdate loads the answer with a row lock when called inside a
	// transaction started by a TxRunner; concurrent vote casts on the same
	// answer serialize on this lock.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Answer, error)
	Update(ctx context.Context, a *entity.Answer) error
	ListByQuestion(ctx context.Context, questionID string) ([]entity.Answer, error)
}
