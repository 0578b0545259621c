package model

import "time"

// Comment is a free-text comment by a user on a video. Deleting either the
// video or the author removes it.
type Comment struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video"`
	UserID    int64     `json:"-"`
	Username  string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentRequest is the API request body for posting or editing a comment.
// The author is taken from the authenticated identity, never from the body.
type CommentRequest struct {
	VideoID int64  `json:"video"`
	Text    string `json:"text"`
}

// CommentResponse is the API response for a single comment. The author is
// rendered as their username, matching the read shape of the video feed.
type CommentResponse struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
