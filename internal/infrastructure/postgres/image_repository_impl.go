package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devforum/backend/internal/domain/entity"
	"github.com/devforum/backend/internal/domain/repository"
)

type ImageRepository struct {
	pool *pgxpool.Pool
}

func NewImageRepository(pool *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{pool: pool}
}

func (r *ImageRepository) Create(ctx context.Context, img *entity.Image) error {
	row := queryTarget(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO images (url, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, img.URL, img.UserID)
	return row.Scan(&img.ID, &img.CreatedAt)
}

var _ repository.ImageRepository = (*ImageRepository)(nil)
