package application

import (
	"context"
	"fmt"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
)

// In-memory fakes backing the service tests. They honor the repository
// sentinel errors so the error-translation paths in the services are
// exercised the same way as with the real store.

type fakeUserRepo struct {
	byID     map[string]*entity.User
	nextID   int
	createFn func(u *entity.User) error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) add(u *entity.User) *entity.User {
	if u.ID == "" {
		f.nextID++
		u.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	cp := *u
	f.byID[u.ID] = &cp
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.createFn != nil {
		if err := f.createFn(u); err != nil {
			return err
		}
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repo.ErrEmailTaken
		}
		if existing.UserName == u.UserName {
			return repo.ErrUsernameTaken
		}
	}
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByUserName(_ context.Context, userName string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.UserName == userName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

type fakeAnswerRepo struct {
	byID map[string]*entity.Answer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{byID: make(map[string]*entity.Answer)}
}

func (f *fakeAnswerRepo) add(a *entity.Answer) *entity.Answer {
	cp := *a
	f.byID[a.ID] = &cp
	return a
}

func (f *fakeAnswerRepo) Create(_ context.Context, a *entity.Answer) error {
	if a.ID == "" {
		a.ID = fmt.Sprintf("a%d", len(f.byID)+1)
	}
	f.add(a)
	return nil
}

func (f *fakeAnswerRepo) GetByID(_ context.Context, id string) (*entity.Answer, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnswerRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Answer, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAnswerRepo) Update(_ context.Context, a *entity.Answer) error {
	if _, ok := f.byID[a.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAnswerRepo) ListByQuestion(_ context.Context, questionID string) ([]entity.Answer, error) {
	out := []entity.Answer{}
	for _, a := range f.byID {
		if a.QuestionID == questionID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	byID   map[string]*entity.Question
	nextID int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{byID: make(map[string]*entity.Question)}
}

func (f *fakeQuestionRepo) add(q *entity.Question) *entity.Question {
	if q.ID == "" {
		f.nextID++
		q.ID = fmt.Sprintf("q%d", f.nextID)
	}
	cp := *q
	f.byID[q.ID] = &cp
	return q
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	f.add(q)
	return nil
}

func (f *fakeQuestionRepo) GetByID(_ context.Context, id string) (*entity.Question, error) {
	q, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionRepo) Update(_ context.Context, q *entity.Question) error {
	if _, ok := f.byID[q.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *q
	f.byID[q.ID] = &cp
	return nil
}

func (f *fakeQuestionRepo) List(_ context.Context) ([]entity.Question, error) {
	out := make([]entity.Question, 0, len(f.byID))
	for _, q := range f.byID {
		out = append(out, *q)
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments []entity.Comment
	nextID   int
}

func (f *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	if c.ID == "" {
		f.nextID++
		c.ID = fmt.Sprintf("c%d", f.nextID)
	}
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeCommentRepo) ListByQuestion(_ context.Context, questionID string) ([]entity.Comment, error) {
	out := []entity.Comment{}
	for _, c := range f.comments {
		if c.QuestionID == questionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) ListByAnswer(_ context.Context, answerID string) ([]entity.Comment, error) {
	out := []entity.Comment{}
	for _, c := range f.comments {
		if c.AnswerID == answerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// nopTx runs the callback directly; the fakes have no transactions to join.
type nopTx struct{}

func (nopTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
