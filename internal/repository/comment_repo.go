package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// Create inserts a comment. A foreign-key violation means the referenced
// video or user is gone, which callers report as not-found.
func (r *CommentRepo) Create(ctx context.Context, videoID, userID int64, text string) (*model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (video_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, video_id, user_id, body, created_at`,
		videoID, userID, text).Scan(&c.ID, &c.VideoID, &c.UserID, &c.Text, &c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, userID).Scan(&c.Username)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns comments newest-first, joined with the author's username.
// A non-nil videoID restricts the listing to that video.
func (r *CommentRepo) List(ctx context.Context, videoID *int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.video_id, c.user_id, u.username, c.body, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id`
	args := []any{}
	if videoID != nil {
		query += ` WHERE c.video_id = $1`
		args = append(args, *videoID)
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.Username, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// FindByID returns a single comment with its author's username.
func (r *CommentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.video_id, c.user_id, u.username, c.body, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`, id).Scan(&c.ID, &c.VideoID, &c.UserID, &c.Username, &c.Text, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// UpdateText overwrites a comment's body.
func (r *CommentRepo) UpdateText(ctx context.Context, id int64, text string) (*model.Comment, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE comments SET body = $2 WHERE id = $1`, id, text)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
