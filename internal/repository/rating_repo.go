package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

type RatingRepo struct {
	pool *pgxpool.Pool
}

func NewRatingRepo(pool *pgxpool.Pool) *RatingRepo {
	return &RatingRepo{pool: pool}
}

// Upsert inserts or overwrites the caller's rating for a video in one
// statement. Concurrent upserts for the same (video, user) pair serialize on
// the unique constraint inside Postgres; the last committed score wins and
// neither caller ever sees a constraint error. Returns whether the row was
// newly created.
func (r *RatingRepo) Upsert(ctx context.Context, videoID, userID int64, score int) (*model.Rating, bool, error) {
	var rating model.Rating
	var inserted bool
	err := r.pool.QueryRow(ctx, `
		INSERT INTO ratings (video_id, user_id, score)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT unique_user_video_rating
		DO UPDATE SET score = EXCLUDED.score
		RETURNING id, video_id, user_id, score, (xmax = 0) AS inserted`,
		videoID, userID, score).Scan(
		&rating.ID, &rating.VideoID, &rating.UserID, &rating.Score, &inserted)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	return &rating, inserted, nil
}

// List returns all ratings, optionally restricted to one video.
func (r *RatingRepo) List(ctx context.Context, videoID *int64) ([]model.Rating, error) {
	query := `SELECT id, video_id, user_id, score FROM ratings`
	args := []any{}
	if videoID != nil {
		query += ` WHERE video_id = $1`
		args = append(args, *videoID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.VideoID, &rt.UserID, &rt.Score); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

// FindByID returns a single rating by primary key.
func (r *RatingRepo) FindByID(ctx context.Context, id int64) (*model.Rating, error) {
	var rt model.Rating
	err := r.pool.QueryRow(ctx,
		`SELECT id, video_id, user_id, score FROM ratings WHERE id = $1`, id).
		Scan(&rt.ID, &rt.VideoID, &rt.UserID, &rt.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}

// Delete removes a rating by primary key.
func (r *RatingRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
