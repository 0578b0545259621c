package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/busraislam39/tiktwinwebapp/internal/blobstore"
	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/repository"
)

// Upload constraints. Validation runs before any blob or database write.
const MaxUploadBytes = 100 * 1024 * 1024 // 100 MiB

var allowedExtensions = []string{".mp4", ".mov", ".webm"}

type VideoService struct {
	videos   *repository.VideoRepo
	comments *repository.CommentRepo
	ratings  *repository.RatingRepo
	blobs    blobstore.Store
	cache    *CacheService
}

func NewVideoService(videos *repository.VideoRepo, comments *repository.CommentRepo, ratings *repository.RatingRepo, blobs blobstore.Store, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, comments: comments, ratings: ratings, blobs: blobs, cache: cache}
}

// ValidateUpload checks filename extension and byte size against the upload
// rules. The extension check is case-insensitive.
func ValidateUpload(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	ok := false
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			ok = true
			break
		}
	}
	if !ok {
		return validationErr("videoFile",
			fmt.Sprintf("unsupported video format; allowed: %s", strings.Join(allowedExtensions, ", ")))
	}
	if size > MaxUploadBytes {
		return validationErr("videoFile", "video file too large (max 100MB)")
	}
	return nil
}

// Upload validates the file, stores the bytes, then inserts the video row.
// If the row insert fails the stored blob is removed, so a failed upload
// never leaves an orphaned object or a partial record.
func (s *VideoService) Upload(ctx context.Context, creatorID int64, meta model.VideoMetadata, filename string, size int64, data io.Reader) (*model.VideoResponse, error) {
	if strings.TrimSpace(meta.Title) == "" {
		return nil, validationErr("title", "title is required")
	}
	if err := ValidateUpload(filename, size); err != nil {
		return nil, err
	}

	key, err := s.blobs.Save(ctx, filename, data)
	if err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	video := &model.Video{
		CreatorID: creatorID,
		Title:     meta.Title,
		MediaKey:  key,
		Publisher: meta.Publisher,
		Producer:  meta.Producer,
		Genre:     meta.Genre,
		AgeRating: meta.AgeRating,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			log.Printf("blobstore: orphan cleanup for %s failed: %v", key, delErr)
		}
		return nil, err
	}

	return s.buildResponse(ctx, video)
}

// List returns serialized videos newest-first, optionally filtered by a
// search term over title and genre.
func (s *VideoService) List(ctx context.Context, search string) ([]model.VideoResponse, error) {
	videos, err := s.videos.List(ctx, search)
	if err != nil {
		return nil, err
	}

	responses := make([]model.VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp, err := s.buildResponse(ctx, &v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// Get returns one serialized video, through the cache when possible.
func (s *VideoService) Get(ctx context.Context, id int64) (*model.VideoResponse, error) {
	if cached, err := s.cache.GetVideo(ctx, id); err == nil && cached != nil {
		var resp model.VideoResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := s.buildResponse(ctx, video)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetVideo(ctx, id, resp); err != nil {
		log.Printf("cache: set video error: %v", err)
	}
	return resp, nil
}

// Update overwrites the descriptive metadata of a video.
func (s *VideoService) Update(ctx context.Context, id int64, meta model.VideoMetadata) (*model.VideoResponse, error) {
	if strings.TrimSpace(meta.Title) == "" {
		return nil, validationErr("title", "title is required")
	}

	video, err := s.videos.UpdateMetadata(ctx, id, meta)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return s.buildResponse(ctx, video)
}

// Delete removes the video row (cascading its comments and ratings) and then
// its media blob.
func (s *VideoService) Delete(ctx context.Context, id int64) error {
	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	if err := s.blobs.Delete(ctx, video.MediaKey); err != nil {
		log.Printf("blobstore: delete %s failed: %v", video.MediaKey, err)
	}
	return nil
}

// Invalidate drops the cached serialization of a video. Comment and rating
// writes call this since they change the nested engagement lists.
func (s *VideoService) Invalidate(ctx context.Context, videoID int64) {
	s.invalidate(ctx, videoID)
}

func (s *VideoService) invalidate(ctx context.Context, videoID int64) {
	if err := s.cache.InvalidateVideo(ctx, videoID); err != nil {
		log.Printf("cache: invalidate video error: %v", err)
	}
}

func (s *VideoService) buildResponse(ctx context.Context, v *model.Video) (*model.VideoResponse, error) {
	comments, err := s.comments.List(ctx, &v.ID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.List(ctx, &v.ID)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]model.CommentResponse, 0, len(comments))
	for _, c := range comments {
		commentResponses = append(commentResponses, model.CommentResponse{
			ID:        c.ID,
			VideoID:   c.VideoID,
			User:      c.Username,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	ratingResponses := make([]model.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		ratingResponses = append(ratingResponses, model.RatingResponse{
			ID:      r.ID,
			VideoID: r.VideoID,
			UserID:  r.UserID,
			Score:   r.Score,
		})
	}

	var videoURL *string
	if url := s.blobs.URL(v.MediaKey); url != "" {
		videoURL = &url
	}

	return &model.VideoResponse{
		ID:            v.ID,
		CreatorID:     v.CreatorID,
		Title:         v.Title,
		VideoURL:      videoURL,
		Publisher:     v.Publisher,
		Producer:      v.Producer,
		Genre:         v.Genre,
		AgeRating:     v.AgeRating,
		UploadedAt:    v.UploadedAt,
		Comments:      commentResponses,
		Ratings:       ratingResponses,
		AverageRating: averageScore(ratings),
	}, nil
}

// averageScore is the arithmetic mean of the scores rounded to one decimal,
// nil when there are no ratings.
func averageScore(ratings []model.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return &avg
}
