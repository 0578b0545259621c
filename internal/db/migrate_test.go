package db

import (
	"strings"
	"testing"
)

// The cascade and uniqueness behavior the application relies on lives in the
// schema, so guard the declarations themselves.
func TestSchemaDeclaresCascadesAndConstraints(t *testing.T) {
	// video->user, comment->video, comment->user, rating->video, rating->user
	if got := strings.Count(schema, "ON DELETE CASCADE"); got != 5 {
		t.Errorf("schema declares %d cascading foreign keys, want 5", got)
	}
	if !strings.Contains(schema, "CONSTRAINT unique_user_video_rating UNIQUE (video_id, user_id)") {
		t.Error("schema must declare the one-rating-per-user-per-video constraint")
	}
	if !strings.Contains(schema, "CHECK (score BETWEEN 1 AND 5)") {
		t.Error("schema must bound rating scores to [1,5]")
	}
}
