package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
	"github.com/devforum/backend/pkg/helpers"
)

// NotificationService maintains the per-user unread/read notification lists.
// The unread count is cached in redis and invalidated on every mutation.
type NotificationService struct {
	Users  repo.UserRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewNotificationService(users repo.UserRepository, rdb *redis.Client, logger *logrus.Logger) *NotificationService {
	return &NotificationService{Users: users, Redis: rdb, Logger: logger}
}

func unreadCountKey(userID string) string {
	return "notif:unread:" + userID
}

// Deliver appends a notification id to the user's unread list. Used by the
// notify worker; redelivery of a known id is a no-op.
func (s *NotificationService) Deliver(ctx context.Context, userID, notificationID string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	u.Notifications.Deliver(notificationID)
	if err := s.Users.Update(ctx, u); err != nil {
		return err
	}
	s.invalidateCount(ctx, userID)
	return nil
}

// List returns both notification lists for the user.
func (s *NotificationService) List(ctx context.Context, userID string) (*entity.NotificationLists, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u.Notifications, nil
}

// MarkRead moves a notification from unread to read. Unknown ids are a no-op
// so the endpoint stays idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !u.Notifications.MarkRead(notificationID) {
		return nil
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return err
	}
	s.invalidateCount(ctx, userID)
	return nil
}

// UnreadCount serves from redis when possible and falls back to the store.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	if s.Redis != nil {
		if n, ok := helpers.CacheGetInt(ctx, s.Redis, unreadCountKey(userID)); ok {
			return n, nil
		}
	}
	lists, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := len(lists.Unread)
	if s.Redis != nil {
		if err := helpers.CacheSetInt(ctx, s.Redis, unreadCountKey(userID), n, 5*time.Minute); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("unread count cache set failed")
		}
	}
	return n, nil
}

func (s *NotificationService) invalidateCount(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.CacheDel(ctx, s.Redis, unreadCountKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("unread count cache invalidation failed")
	}
}
