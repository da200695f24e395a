package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devforum/backend/internal/domain/entity"
	"github.com/devforum/backend/internal/domain/repository"
)

type AnswerRepository struct {
	pool *pgxpool.Pool
}

func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

const answerColumns = `id, title, description, question_id, user_id, votes, created_at, updated_at`

func scanAnswer(row pgx.Row) (*entity.Answer, error) {
	a := &entity.Answer{}
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.QuestionID, &a.UserID,
		&a.Votes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AnswerRepository) Create(ctx context.Context, a *entity.Answer) error {
	row := queryTarget(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO answers (title, description, question_id, user_id, votes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, a.Title, a.Description, a.QuestionID, a.UserID, a.Votes)
	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AnswerRepository) GetByID(ctx context.Context, id string) (*entity.Answer, error) {
	return scanAnswer(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE id = $1`, id))
}

// GetByIDForUpdate locks the answer row; concurrent vote casts on the same
// answer serialize here.
func (r *AnswerRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Answer, error) {
	return scanAnswer(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE id = $1 FOR UPDATE`, id))
}

func (r *AnswerRepository) Update(ctx context.Context, a *entity.Answer) error {
	a.UpdatedAt = time.Now()
	res, err := queryTarget(ctx, r.pool).Exec(ctx, `
		UPDATE answers
		SET title = $1, description = $2, votes = $3, updated_at = $4
		WHERE id = $5
	`, a.Title, a.Description, a.Votes, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]entity.Answer, error) {
	rows, err := queryTarget(ctx, r.pool).Query(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE question_id = $1 ORDER BY votes DESC, created_at`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []entity.Answer
	for rows.Next() {
		a := entity.Answer{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.QuestionID, &a.UserID,
			&a.Votes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

var _ repository.AnswerRepository = (*AnswerRepository)(nil)
