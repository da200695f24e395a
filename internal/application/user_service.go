package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
)

// UserService covers the admin-facing user operations.
type UserService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

// List returns public projections of all users.
func (s *UserService) List(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// SetActive toggles a user's active flag. Deactivated users cannot log in.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.IsActive = active
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": id, "active": active}).Info("user active flag changed")
	}
	pub := u.Public()
	return &pub, nil
}
