package application

import (
	"context"
	"errors"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
)

// CommentService attaches comments to questions or answers.
type CommentService struct {
	Comments  repo.CommentRepository
	Questions repo.QuestionRepository
	Answers   repo.AnswerRepository
	Users     repo.UserRepository
}

func NewCommentService(comments repo.CommentRepository, questions repo.QuestionRepository, answers repo.AnswerRepository, users repo.UserRepository) *CommentService {
	return &CommentService{Comments: comments, Questions: questions, Answers: answers, Users: users}
}

type CreateCommentInput struct {
	Body       string
	UserID     string
	QuestionID string
	AnswerID   string
}

var ErrCommentTarget = errors.New("comment must target exactly one of question or answer")

func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*entity.Comment, error) {
	if (in.QuestionID == "") == (in.AnswerID == "") {
		return nil, ErrCommentTarget
	}
	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if in.QuestionID != "" {
		if _, err := s.Questions.GetByID(ctx, in.QuestionID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrQuestionNotFound
			}
			return nil, err
		}
	} else {
		if _, err := s.Answers.GetByID(ctx, in.AnswerID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrAnswerNotFound
			}
			return nil, err
		}
	}
	c := &entity.Comment{
		Body:       in.Body,
		UserID:     in.UserID,
		QuestionID: in.QuestionID,
		AnswerID:   in.AnswerID,
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) ListByQuestion(ctx context.Context, questionID string) ([]entity.Comment, error) {
	return s.Comments.ListByQuestion(ctx, questionID)
}

func (s *CommentService) ListByAnswer(ctx context.Context, answerID string) ([]entity.Comment, error) {
	return s.Comments.ListByAnswer(ctx, answerID)
}
