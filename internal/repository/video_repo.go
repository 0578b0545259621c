package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `id, creator_id, title, media_key, publisher, producer, genre, age_rating, uploaded_at`

// Create inserts a video row and fills in the server-assigned id and
// uploaded_at timestamp.
func (r *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO videos (creator_id, title, media_key, publisher, producer, genre, age_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, uploaded_at`,
		v.CreatorID, v.Title, v.MediaKey, v.Publisher, v.Producer, v.Genre, v.AgeRating,
	).Scan(&v.ID, &v.UploadedAt)
	if err != nil && isForeignKeyViolation(err) {
		return ErrNotFound
	}
	return err
}

// List returns videos newest-first. A non-empty search term filters by
// case-insensitive substring match on title or genre.
func (r *VideoRepo) List(ctx context.Context, search string) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos`
	args := []any{}
	if search != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%' OR genre ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := scanVideo(rows, &v); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// FindByID returns a single video by primary key.
func (r *VideoRepo) FindByID(ctx context.Context, id int64) (*model.Video, error) {
	var v model.Video
	err := scanVideo(r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id), &v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// UpdateMetadata overwrites the descriptive fields. The media key, owner and
// uploaded_at timestamp are immutable once the video exists.
func (r *VideoRepo) UpdateMetadata(ctx context.Context, id int64, m model.VideoMetadata) (*model.Video, error) {
	var v model.Video
	err := scanVideo(r.pool.QueryRow(ctx, `
		UPDATE videos
		SET title = $2, publisher = $3, producer = $4, genre = $5, age_rating = $6
		WHERE id = $1
		RETURNING `+videoColumns,
		id, m.Title, m.Publisher, m.Producer, m.Genre, m.AgeRating), &v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Delete removes a video; its comments and ratings cascade away with it.
func (r *VideoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanVideo(row pgx.Row, v *model.Video) error {
	return row.Scan(
		&v.ID, &v.CreatorID, &v.Title, &v.MediaKey,
		&v.Publisher, &v.Producer, &v.Genre, &v.AgeRating, &v.UploadedAt,
	)
}
