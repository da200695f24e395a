package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devforum/backend/internal/domain/entity"
)

func notifFixtures() (*fakeUserRepo, *NotificationService) {
	users := newFakeUserRepo()
	users.add(&entity.User{ID: "u1", Name: "Ada", UserName: "ada", Email: "ada@example.com", Role: entity.RoleUser, IsActive: true})
	return users, NewNotificationService(users, nil, nil)
}

func TestDeliverAndList(t *testing.T) {
	_, svc := notifFixtures()

	require.NoError(t, svc.Deliver(context.Background(), "u1", "n1"))
	require.NoError(t, svc.Deliver(context.Background(), "u1", "n2"))
	// redelivery is a no-op
	require.NoError(t, svc.Deliver(context.Background(), "u1", "n1"))

	lists, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"n1", "n2"}, lists.Unread)
	require.Empty(t, lists.Read)

	n, err := svc.UnreadCount(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	_, svc := notifFixtures()

	require.NoError(t, svc.Deliver(context.Background(), "u1", "n1"))
	require.NoError(t, svc.MarkRead(context.Background(), "u1", "n1"))
	require.NoError(t, svc.MarkRead(context.Background(), "u1", "n1"))
	require.NoError(t, svc.MarkRead(context.Background(), "u1", "unknown"))

	lists, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, lists.Unread)
	require.Equal(t, []string{"n1"}, lists.Read)

	n, err := svc.UnreadCount(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestNotificationUnknownUser(t *testing.T) {
	_, svc := notifFixtures()

	require.ErrorIs(t, svc.Deliver(context.Background(), "missing", "n1"), ErrUserNotFound)
	require.ErrorIs(t, svc.MarkRead(context.Background(), "missing", "n1"), ErrUserNotFound)
	_, err := svc.List(context.Background(), "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}
