package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
	"github.com/devforum/backend/pkg/helpers"
)

// NotificationJob is the JSON payload put on the RabbitMQ queue when an
// answer is posted; the notify worker delivers it to the recipient's unread
// list and optionally emails them.
type NotificationJob struct {
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	Kind           string `json:"kind"`
	QuestionID     string `json:"question_id"`
	AnswerID       string `json:"answer_id"`
	ActorName      string `json:"actor_name"`
}

const KindAnswerPosted = "answer_posted"

// AnswerService handles answer creation and listing.
type AnswerService struct {
	Answers   repo.AnswerRepository
	Questions repo.QuestionRepository
	Users     repo.UserRepository
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewAnswerService(answers repo.AnswerRepository, questions repo.QuestionRepository, users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *AnswerService {
	return &AnswerService{Answers: answers, Questions: questions, Users: users, Pub: pub, Logger: logger}
}

type CreateAnswerInput struct {
	Title       string
	Description string
	QuestionID  string
	UserID      string
}

func (s *AnswerService) Create(ctx context.Context, in CreateAnswerInput) (*entity.Answer, error) {
	u, err := s.Users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	q, err := s.Questions.GetByID(ctx, in.QuestionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	a := &entity.Answer{
		Title:       in.Title,
		Description: in.Description,
		QuestionID:  q.ID,
		UserID:      u.ID,
	}
	if err := s.Answers.Create(ctx, a); err != nil {
		return nil, err
	}

	// Notify the question owner, unless they answered their own question.
	if s.Pub != nil && q.UserID != u.ID {
		job := NotificationJob{
			NotificationID: uuid.NewString(),
			RecipientID:    q.UserID,
			Kind:           KindAnswerPosted,
			QuestionID:     q.ID,
			AnswerID:       a.ID,
			ActorName:      u.UserName,
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("question_id", q.ID).Warn("notification publish failed")
		}
	}

	return a, nil
}

func (s *AnswerService) ListByQuestion(ctx context.Context, questionID string) ([]entity.Answer, error) {
	if _, err := s.Questions.GetByID(ctx, questionID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return s.Answers.ListByQuestion(ctx, questionID)
}
