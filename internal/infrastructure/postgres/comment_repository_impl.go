package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devforum/backend/internal/domain/entity"
	"github.com/devforum/backend/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := queryTarget(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO comments (body, user_id, question_id, answer_id)
		VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid)
		RETURNING id, created_at
	`, c.Body, c.UserID, c.QuestionID, c.AnswerID)
	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepository) ListByQuestion(ctx context.Context, questionID string) ([]entity.Comment, error) {
	return r.list(ctx, `question_id = $1`, questionID)
}

func (r *CommentRepository) ListByAnswer(ctx context.Context, answerID string) ([]entity.Comment, error) {
	return r.list(ctx, `answer_id = $1`, answerID)
}

func (r *CommentRepository) list(ctx context.Context, where string, arg any) ([]entity.Comment, error) {
	rows, err := queryTarget(ctx, r.pool).Query(ctx, `
		SELECT id, body, user_id, COALESCE(question_id::text, ''), COALESCE(answer_id::text, ''), created_at
		FROM comments WHERE `+where+` ORDER BY created_at`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComments(rows)
}

func collectComments(rows pgx.Rows) ([]entity.Comment, error) {
	var comments []entity.Comment
	for rows.Next() {
		c := entity.Comment{}
		if err := rows.Scan(&c.ID, &c.Body, &c.UserID, &c.QuestionID, &c.AnswerID, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
