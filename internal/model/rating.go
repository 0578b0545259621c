package model

// Rating score bounds. Scores outside this range fail validation before any
// row is written.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is one user's score for one video. At most one row exists per
// (video, user) pair; writes are upserts keyed on that constraint.
type Rating struct {
	ID      int64 `json:"id"`
	VideoID int64 `json:"video"`
	UserID  int64 `json:"user"`
	Score   int   `json:"score"`
}

// RatingRequest is the API request body for submitting a rating. The rater
// is taken from the authenticated identity.
type RatingRequest struct {
	VideoID int64 `json:"video"`
	Score   int   `json:"score"`
}

// RatingResponse is the API response for a single rating.
type RatingResponse struct {
	ID      int64 `json:"id"`
	VideoID int64 `json:"video"`
	UserID  int64 `json:"user"`
	Score   int   `json:"score"`
}
