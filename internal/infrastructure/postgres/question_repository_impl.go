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

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `id, title, description, tags, user_id, accepted_answer_id, created_at, updated_at`

func scanQuestion(row pgx.Row) (*entity.Question, error) {
	q := &entity.Question{}
	var accepted *string
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Tags, &q.UserID,
		&accepted, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if accepted != nil {
		q.AcceptedAnswerID = *accepted
	}
	return q, nil
}

func (r *QuestionRepository) Create(ctx context.Context, q *entity.Question) error {
	if q.Tags == nil {
		q.Tags = []string{}
	}
	row := queryTarget(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO questions (title, description, tags, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, q.Title, q.Description, q.Tags, q.UserID)
	return row.Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	return scanQuestion(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id))
}

func (r *QuestionRepository) Update(ctx context.Context, q *entity.Question) error {
	q.UpdatedAt = time.Now()
	res, err := queryTarget(ctx, r.pool).Exec(ctx, `
		UPDATE questions
		SET title = $1, description = $2, tags = $3,
		    accepted_answer_id = NULLIF($4, '')::uuid, updated_at = $5
		WHERE id = $6
	`, q.Title, q.Description, q.Tags, q.AcceptedAnswerID, q.UpdatedAt, q.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]entity.Question, error) {
	rows, err := queryTarget(ctx, r.pool).Query(ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []entity.Question
	for rows.Next() {
		q := entity.Question{}
		var accepted *string
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Tags, &q.UserID,
			&accepted, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		if accepted != nil {
			q.AcceptedAnswerID = *accepted
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)
