package repository

import (
	"context"
	"errors"

	"github.com/devforum/backend/internal/domain/entity"
)

// Storage-level sentinel errors. Repositories translate driver errors into
// these so services never see pgx details.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines user persistence. Create must enforce email and
// username uniqueness at the storage layer and return ErrEmailTaken or
// ErrUsernameTaken on violation; service-level pre-checks are only a fast
// path.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUserName(ctx context.Context, userName string) (*entity.User, error)
	// GetByIDForUpdate loads the user with a row lock when called inside a
	// transaction started by a TxRunner.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
}

// TxRunner executes fn within a single storage transaction. Repository calls
// made with the ctx passed to fn join that transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
