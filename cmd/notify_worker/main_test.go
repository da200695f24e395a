package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devforum/backend/internal/application"
)

func TestRequeueOnDropsDeletedRecipients(t *testing.T) {
	require.False(t, requeueOn(application.ErrUserNotFound))
	require.False(t, requeueOn(fmt.Errorf("deliver: %w", application.ErrUserNotFound)))
}

func TestRequeueOnRetriesTransientErrors(t *testing.T) {
	require.True(t, requeueOn(errors.New("connection reset by peer")))
	require.True(t, requeueOn(errors.New("context deadline exceeded")))
}
