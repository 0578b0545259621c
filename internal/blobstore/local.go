package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps media on the local filesystem. Keys are
// "<uuid><extension>" so uploads with the same filename never collide.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore creates the media directory if needed. baseURL is prepended
// when resolving keys to URLs; when empty, URL returns a relative path.
func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, name string, data io.Reader) (string, error) {
	key := uuid.New().String() + strings.ToLower(filepath.Ext(name))

	f, err := os.Create(filepath.Join(s.baseDir, key))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}
	return key, nil
}

func (s *LocalStore) URL(key string) string {
	if key == "" {
		return ""
	}
	if s.baseURL == "" {
		return "/media/" + key
	}
	return s.baseURL + "/" + key
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
