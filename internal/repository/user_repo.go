package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new account inside a single transaction: either the full
// identity-plus-role state commits, or none of it does. Staff and superuser
// flags are never written here; the column defaults (false) stand.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string, isCreator, isConsumer bool) (*model.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var u model.User
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, is_creator, is_consumer)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, password_hash, is_creator, is_consumer, is_staff, is_superuser, created_at`,
		username, passwordHash, isCreator, isConsumer).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.IsCreator, &u.IsConsumer,
		&u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername returns an account by its unique username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `WHERE username = $1`, username)
}

// FindByID returns an account by primary key.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepo) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, is_creator, is_consumer, is_staff, is_superuser, created_at
		FROM users ` + where

	var u model.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.IsCreator, &u.IsConsumer,
		&u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes an account. Videos the user created and comments/ratings
// they authored go with it via the schema's ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
