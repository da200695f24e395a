package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devforum/backend/internal/domain/entity"
)

func commentFixtures() (*fakeCommentRepo, *CommentService) {
	users := newFakeUserRepo()
	questions := newFakeQuestionRepo()
	answers := newFakeAnswerRepo()
	comments := &fakeCommentRepo{}

	users.add(&entity.User{ID: "u1", Name: "Ada", UserName: "ada", Email: "ada@example.com", Role: entity.RoleUser, IsActive: true})
	questions.add(&entity.Question{ID: "q1", Title: "t", Description: "d", UserID: "u1"})
	answers.add(&entity.Answer{ID: "a1", QuestionID: "q1", UserID: "u1"})

	return comments, NewCommentService(comments, questions, answers, users)
}

func TestCreateCommentOnQuestion(t *testing.T) {
	_, svc := commentFixtures()

	c, err := svc.Create(context.Background(), CreateCommentInput{
		Body: "good question", UserID: "u1", QuestionID: "q1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	list, err := svc.ListByQuestion(context.Background(), "q1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreateCommentOnAnswer(t *testing.T) {
	_, svc := commentFixtures()

	_, err := svc.Create(context.Background(), CreateCommentInput{
		Body: "nice answer", UserID: "u1", AnswerID: "a1",
	})
	require.NoError(t, err)

	list, err := svc.ListByAnswer(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreateCommentTargetInvariant(t *testing.T) {
	_, svc := commentFixtures()

	// neither target
	_, err := svc.Create(context.Background(), CreateCommentInput{Body: "b", UserID: "u1"})
	require.ErrorIs(t, err, ErrCommentTarget)

	// both targets
	_, err = svc.Create(context.Background(), CreateCommentInput{
		Body: "b", UserID: "u1", QuestionID: "q1", AnswerID: "a1",
	})
	require.ErrorIs(t, err, ErrCommentTarget)
}

func TestCreateCommentUnknownTargets(t *testing.T) {
	_, svc := commentFixtures()

	_, err := svc.Create(context.Background(), CreateCommentInput{Body: "b", UserID: "u1", QuestionID: "missing"})
	require.ErrorIs(t, err, ErrQuestionNotFound)

	_, err = svc.Create(context.Background(), CreateCommentInput{Body: "b", UserID: "u1", AnswerID: "missing"})
	require.ErrorIs(t, err, ErrAnswerNotFound)

	_, err = svc.Create(context.Background(), CreateCommentInput{Body: "b", UserID: "missing", QuestionID: "q1"})
	require.ErrorIs(t, err, ErrUserNotFound)
}
