package service

import (
	"context"
	"strings"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/repository"
)

type CommentService struct {
	repo   *repository.CommentRepo
	videos *VideoService
}

func NewCommentService(repo *repository.CommentRepo, videos *VideoService) *CommentService {
	return &CommentService{repo: repo, videos: videos}
}

// Create posts a comment authored by the given user.
func (s *CommentService) Create(ctx context.Context, userID int64, req model.CommentRequest) (*model.CommentResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, validationErr("text", "text is required")
	}

	c, err := s.repo.Create(ctx, req.VideoID, userID, req.Text)
	if err != nil {
		return nil, err
	}
	s.videos.Invalidate(ctx, c.VideoID)
	return commentResponse(c), nil
}

// List returns comments newest-first, optionally for one video.
func (s *CommentService) List(ctx context.Context, videoID *int64) ([]model.CommentResponse, error) {
	comments, err := s.repo.List(ctx, videoID)
	if err != nil {
		return nil, err
	}
	responses := make([]model.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, *commentResponse(&c))
	}
	return responses, nil
}

// Get returns a single comment.
func (s *CommentService) Get(ctx context.Context, id int64) (*model.CommentResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return commentResponse(c), nil
}

// Update overwrites a comment's text.
func (s *CommentService) Update(ctx context.Context, id int64, text string) (*model.CommentResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, validationErr("text", "text is required")
	}

	c, err := s.repo.UpdateText(ctx, id, text)
	if err != nil {
		return nil, err
	}
	s.videos.Invalidate(ctx, c.VideoID)
	return commentResponse(c), nil
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.videos.Invalidate(ctx, c.VideoID)
	return nil
}

func commentResponse(c *model.Comment) *model.CommentResponse {
	return &model.CommentResponse{
		ID:        c.ID,
		VideoID:   c.VideoID,
		User:      c.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
