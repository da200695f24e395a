package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
)

// QuestionService handles question CRUD, answer acceptance, and search.
type QuestionService struct {
	Questions repo.QuestionRepository
	Answers   repo.AnswerRepository
	Users     repo.UserRepository
	Logger    *logrus.Logger
	ES        *elasticsearch.Client
	ESIndex   string
}

func NewQuestionService(questions repo.QuestionRepository, answers repo.AnswerRepository, users repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *QuestionService {
	return &QuestionService{Questions: questions, Answers: answers, Users: users, Logger: logger, ES: es, ESIndex: esIndex}
}

type CreateQuestionInput struct {
	Title       string
	Description string
	Tags        []string
	UserID      string
}

func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput) (*entity.Question, error) {
	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	q := &entity.Question{
		Title:       in.Title,
		Description: in.Description,
		Tags:        dedupTags(in.Tags),
		UserID:      in.UserID,
	}
	if err := s.Questions.Create(ctx, q); err != nil {
		return nil, err
	}
	_ = s.indexQuestion(ctx, q)
	return q, nil
}

func (s *QuestionService) Get(ctx context.Context, id string) (*entity.Question, error) {
	q, err := s.Questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) List(ctx context.Context) ([]entity.Question, error) {
	return s.Questions.List(ctx)
}

// AcceptAnswer marks an answer as accepted. Only the question owner may
// accept, and the answer must belong to the question.
func (s *QuestionService) AcceptAnswer(ctx context.Context, questionID, callerID, answerID string) (*entity.Question, error) {
	q, err := s.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.UserID != callerID {
		return nil, ErrNotQuestionOwner
	}
	a, err := s.Answers.GetByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	if a.QuestionID != q.ID {
		return nil, ErrAnswerNotInQuestion
	}
	q.AcceptedAnswerID = a.ID
	if err := s.Questions.Update(ctx, q); err != nil {
		return nil, err
	}
	_ = s.indexQuestion(ctx, q)
	return q, nil
}

// Search performs a multi_match query over title, description, and tags.
func (s *QuestionService) Search(ctx context.Context, query string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title^2", "description", "tags"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(body)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *QuestionService) indexQuestion(ctx context.Context, q *entity.Question) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          q.ID,
		"title":       q.Title,
		"description": q.Description,
		"tags":        q.Tags,
		"user_id":     q.UserID,
		"created_at":  q.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: q.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("question_id", q.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("question_id", q.ID).Warn("es index response error")
	}
	return nil
}

// dedupTags keeps first occurrence order while dropping duplicates and blanks.
func dedupTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
