package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devforum/backend/internal/domain/entity"
	"github.com/devforum/backend/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, user_name, email, password_hash, role, is_active, votes, notifications, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.UserName, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.Votes, &u.Notifications, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create inserts the user. The unique indexes on email and user_name are the
// authoritative duplicate guard; violations come back as the repository's
// taken errors.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Votes == nil {
		u.Votes = map[string]int{}
	}
	row := queryTarget(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO users (name, user_name, email, password_hash, role, is_active, votes, notifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, u.Name, u.UserName, u.Email, u.PasswordHash, u.Role, u.IsActive, u.Votes, u.Notifications)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return repository.ErrEmailTaken
		case strings.Contains(pgErr.ConstraintName, "user_name"):
			return repository.ErrUsernameTaken
		}
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*entity.User, error) {
	return scanUser(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_name = $1`, userName))
}

// GetByIDForUpdate locks the user row for the duration of the surrounding
// transaction.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(queryTarget(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := queryTarget(ctx, r.pool).Exec(ctx, `
		UPDATE users
		SET name = $1, user_name = $2, email = $3, password_hash = $4, role = $5,
		    is_active = $6, votes = $7, notifications = $8, updated_at = $9
		WHERE id = $10
	`, u.Name, u.UserName, u.Email, u.PasswordHash, u.Role, u.IsActive, u.Votes, u.Notifications, u.UpdatedAt, u.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := queryTarget(ctx, r.pool).Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		u := entity.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.UserName, &u.Email, &u.PasswordHash, &u.Role,
			&u.IsActive, &u.Votes, &u.Notifications, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

var _ repository.UserRepository = (*UserRepository)(nil)
