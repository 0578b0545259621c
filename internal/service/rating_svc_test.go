package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

// Out-of-range scores must fail validation before the service ever touches
// the repository, so a zero-value service is enough to exercise the rule.
func TestSubmitRejectsOutOfRangeScores(t *testing.T) {
	svc := NewRatingService(nil, nil)

	for _, score := range []int{-1, 0, 6, 100} {
		_, _, err := svc.Submit(context.Background(), 1, model.RatingRequest{VideoID: 1, Score: score})
		if err == nil {
			t.Errorf("Submit(score=%d) = nil error, want validation error", score)
			continue
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Submit(score=%d) error type = %T, want *ValidationError", score, err)
			continue
		}
		if vErr.Field != "score" {
			t.Errorf("validation field = %q, want \"score\"", vErr.Field)
		}
		if !strings.Contains(vErr.Message, "1") || !strings.Contains(vErr.Message, "5") {
			t.Errorf("message %q should name the allowed range", vErr.Message)
		}
	}
}
