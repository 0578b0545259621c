package service

import (
	"context"
	"fmt"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/repository"
)

type RatingService struct {
	repo   *repository.RatingRepo
	videos *VideoService
}

func NewRatingService(repo *repository.RatingRepo, videos *VideoService) *RatingService {
	return &RatingService{repo: repo, videos: videos}
}

// Submit records the caller's score for a video. At most one rating exists
// per (video, user) pair: a second submission overwrites the first through
// the upsert, so a write never fails on the uniqueness constraint. Returns
// whether the rating was newly created.
func (s *RatingService) Submit(ctx context.Context, userID int64, req model.RatingRequest) (*model.RatingResponse, bool, error) {
	if req.Score < model.MinScore || req.Score > model.MaxScore {
		return nil, false, validationErr("score",
			fmt.Sprintf("score must be between %d and %d", model.MinScore, model.MaxScore))
	}

	rating, created, err := s.repo.Upsert(ctx, req.VideoID, userID, req.Score)
	if err != nil {
		return nil, false, err
	}
	s.videos.Invalidate(ctx, rating.VideoID)
	return ratingResponse(rating), created, nil
}

// List returns ratings, optionally restricted to one video.
func (s *RatingService) List(ctx context.Context, videoID *int64) ([]model.RatingResponse, error) {
	ratings, err := s.repo.List(ctx, videoID)
	if err != nil {
		return nil, err
	}
	responses := make([]model.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		responses = append(responses, *ratingResponse(&r))
	}
	return responses, nil
}

// Get returns a single rating.
func (s *RatingService) Get(ctx context.Context, id int64) (*model.RatingResponse, error) {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ratingResponse(rating), nil
}

// Delete removes a rating.
func (s *RatingService) Delete(ctx context.Context, id int64) error {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.videos.Invalidate(ctx, rating.VideoID)
	return nil
}

func ratingResponse(r *model.Rating) *model.RatingResponse {
	return &model.RatingResponse{
		ID:      r.ID,
		VideoID: r.VideoID,
		UserID:  r.UserID,
		Score:   r.Score,
	}
}
