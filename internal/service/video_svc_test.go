package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/busraislam39/tiktwinwebapp/internal/model"
)

func TestValidateUpload(t *testing.T) {
	const mib = 1024 * 1024

	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"mp4 within limit", "movie.mp4", 50 * mib, false},
		{"mov within limit", "clip.mov", 10 * mib, false},
		{"webm within limit", "short.webm", 1 * mib, false},
		{"uppercase extension", "MOVIE.MP4", 50 * mib, false},
		{"exactly at limit", "movie.mp4", 100 * mib, false},
		{"avi rejected regardless of size", "movie.avi", 1, true},
		{"mkv rejected", "movie.mkv", 1 * mib, true},
		{"no extension", "movie", 1 * mib, true},
		{"mp4 over limit", "movie.mp4", 200 * mib, true},
		{"one byte over limit", "movie.mp4", 100*mib + 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUpload(tc.filename, tc.size)
			if tc.wantErr && err == nil {
				t.Errorf("ValidateUpload(%q, %d) = nil, want error", tc.filename, tc.size)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateUpload(%q, %d) = %v, want nil", tc.filename, tc.size, err)
			}
			if tc.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("error should be a ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestValidateUploadErrorNamesTheRules(t *testing.T) {
	var vErr *ValidationError

	err := ValidateUpload("movie.avi", 1)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, ext := range []string{".mp4", ".mov", ".webm"} {
		if !strings.Contains(vErr.Message, ext) {
			t.Errorf("extension error %q should list %s", vErr.Message, ext)
		}
	}

	err = ValidateUpload("movie.mp4", 200*1024*1024)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(vErr.Message, "100MB") {
		t.Errorf("size error %q should name the limit", vErr.Message)
	}
}

func TestAverageScore(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   *float64
	}{
		{"no ratings", nil, nil},
		{"single rating", []int{3}, ptr(3.0)},
		{"four and five", []int{4, 5}, ptr(4.5)},
		{"rounds to one decimal", []int{3, 4, 4}, ptr(3.7)},
		{"all same", []int{5, 5, 5, 5}, ptr(5.0)},
		{"rounds down", []int{1, 1, 2}, ptr(1.3)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ratings := make([]model.Rating, 0, len(tc.scores))
			for _, s := range tc.scores {
				ratings = append(ratings, model.Rating{Score: s})
			}

			got := averageScore(ratings)
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("averageScore(%v) = %v, want nil", tc.scores, *got)
			case tc.want != nil && got == nil:
				t.Errorf("averageScore(%v) = nil, want %v", tc.scores, *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Errorf("averageScore(%v) = %v, want %v", tc.scores, *got, *tc.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
