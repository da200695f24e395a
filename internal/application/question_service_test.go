package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devforum/backend/internal/domain/entity"
)

func questionFixtures() (*fakeUserRepo, *fakeQuestionRepo, *fakeAnswerRepo, *QuestionService) {
	users := newFakeUserRepo()
	questions := newFakeQuestionRepo()
	answers := newFakeAnswerRepo()
	svc := NewQuestionService(questions, answers, users, nil, nil, "")

	users.add(&entity.User{ID: "u1", Name: "Ada", UserName: "ada", Email: "ada@example.com", Role: entity.RoleUser, IsActive: true})
	users.add(&entity.User{ID: "u2", Name: "Bob", UserName: "bob", Email: "bob@example.com", Role: entity.RoleUser, IsActive: true})
	return users, questions, answers, svc
}

func TestCreateQuestionDedupsTags(t *testing.T) {
	_, _, _, svc := questionFixtures()

	q, err := svc.Create(context.Background(), CreateQuestionInput{
		Title:       "How to pool pgx connections?",
		Description: "One pool or many?",
		Tags:        []string{"go", "postgres", "go", " ", "postgres"},
		UserID:      "u1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, q.ID)
	require.Equal(t, []string{"go", "postgres"}, q.Tags)
}

func TestCreateQuestionUnknownUser(t *testing.T) {
	_, _, _, svc := questionFixtures()

	_, err := svc.Create(context.Background(), CreateQuestionInput{
		Title: "t", Description: "d", UserID: "missing",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAcceptAnswer(t *testing.T) {
	_, questions, answers, svc := questionFixtures()
	questions.add(&entity.Question{ID: "q1", Title: "t", Description: "d", UserID: "u1"})
	answers.add(&entity.Answer{ID: "a1", QuestionID: "q1", UserID: "u2"})

	q, err := svc.AcceptAnswer(context.Background(), "q1", "u1", "a1")
	require.NoError(t, err)
	require.Equal(t, "a1", q.AcceptedAnswerID)

	stored, err := questions.GetByID(context.Background(), "q1")
	require.NoError(t, err)
	require.Equal(t, "a1", stored.AcceptedAnswerID)
}

func TestAcceptAnswerOnlyOwner(t *testing.T) {
	_, questions, answers, svc := questionFixtures()
	questions.add(&entity.Question{ID: "q1", Title: "t", Description: "d", UserID: "u1"})
	answers.add(&entity.Answer{ID: "a1", QuestionID: "q1", UserID: "u2"})

	_, err := svc.AcceptAnswer(context.Background(), "q1", "u2", "a1")
	require.ErrorIs(t, err, ErrNotQuestionOwner)
}

func TestAcceptAnswerMustBelongToQuestion(t *testing.T) {
	_, questions, answers, svc := questionFixtures()
	questions.add(&entity.Question{ID: "q1", Title: "t", Description: "d", UserID: "u1"})
	questions.add(&entity.Question{ID: "q2", Title: "t2", Description: "d2", UserID: "u1"})
	answers.add(&entity.Answer{ID: "a1", QuestionID: "q2", UserID: "u2"})

	_, err := svc.AcceptAnswer(context.Background(), "q1", "u1", "a1")
	require.ErrorIs(t, err, ErrAnswerNotInQuestion)

	_, err = svc.AcceptAnswer(context.Background(), "q1", "u1", "missing")
	require.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestGetQuestionNotFound(t *testing.T) {
	_, _, _, svc := questionFixtures()

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrQuestionNotFound)
}
