package model

import "time"

// Video is a published video owned by a creator. MediaKey is the opaque
// reference handed back by the blob store; it is never a local path.
type Video struct {
	ID         int64     `json:"id"`
	CreatorID  int64     `json:"creator"`
	Title      string    `json:"title"`
	MediaKey   string    `json:"-"`
	Publisher  string    `json:"publisher"`
	Producer   string    `json:"producer"`
	Genre      string    `json:"genre"`
	AgeRating  string    `json:"ageRating"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// VideoMetadata is the API request body for creating or updating a video's
// descriptive fields. The media file itself travels as a multipart part.
type VideoMetadata struct {
	Title     string `json:"title" form:"title"`
	Publisher string `json:"publisher" form:"publisher"`
	Producer  string `json:"producer" form:"producer"`
	Genre     string `json:"genre" form:"genre"`
	AgeRating string `json:"ageRating" form:"ageRating"`
}

// VideoResponse is the API response for video lookups: the video's fields,
// its resolved media URL, nested engagement and the derived average rating.
// AverageRating is nil when the video has no ratings.
type VideoResponse struct {
	ID            int64             `json:"id"`
	CreatorID     int64             `json:"creator"`
	Title         string            `json:"title"`
	VideoURL      *string           `json:"videoUrl"`
	Publisher     string            `json:"publisher"`
	Producer      string            `json:"producer"`
	Genre         string            `json:"genre"`
	AgeRating     string            `json:"ageRating"`
	UploadedAt    time.Time         `json:"uploadedAt"`
	Comments      []CommentResponse `json:"comments"`
	Ratings       []RatingResponse  `json:"ratings"`
	AverageRating *float64          `json:"averageRating"`
}
