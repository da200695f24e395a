package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devforum/backend/internal/domain/entity"
)

func answerFixtures() (*fakeAnswerRepo, *AnswerService) {
	users := newFakeUserRepo()
	questions := newFakeQuestionRepo()
	answers := newFakeAnswerRepo()

	users.add(&entity.User{ID: "u1", Name: "Ada", UserName: "ada", Email: "ada@example.com", Role: entity.RoleUser, IsActive: true})
	questions.add(&entity.Question{ID: "q1", Title: "t", Description: "d", UserID: "u1"})

	return answers, NewAnswerService(answers, questions, users, nil, nil)
}

func TestCreateAnswer(t *testing.T) {
	_, svc := answerFixtures()

	a, err := svc.Create(context.Background(), CreateAnswerInput{
		Title: "use contexts", Description: "pass ctx down", QuestionID: "q1", UserID: "u1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.Equal(t, "q1", a.QuestionID)
	require.Equal(t, 0, a.Votes)

	list, err := svc.ListByQuestion(context.Background(), "q1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreateAnswerUnknownRefs(t *testing.T) {
	_, svc := answerFixtures()

	_, err := svc.Create(context.Background(), CreateAnswerInput{
		Title: "t", Description: "d", QuestionID: "missing", UserID: "u1",
	})
	require.ErrorIs(t, err, ErrQuestionNotFound)

	_, err = svc.Create(context.Background(), CreateAnswerInput{
		Title: "t", Description: "d", QuestionID: "q1", UserID: "missing",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListAnswersUnknownQuestion(t *testing.T) {
	_, svc := answerFixtures()

	_, err := svc.ListByQuestion(context.Background(), "missing")
	require.ErrorIs(t, err, ErrQuestionNotFound)
}
