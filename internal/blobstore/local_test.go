package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	ctx := context.Background()
	key, err := store.Save(ctx, "movie.MP4", strings.NewReader("not really mpeg"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(key, ".mp4") {
		t.Errorf("key %q should carry the lowercased extension", key)
	}
	if strings.Contains(key, "movie") {
		t.Errorf("key %q must be opaque, not derived from the filename", key)
	}

	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		t.Fatalf("read stored blob: %v", err)
	}
	if string(data) != "not really mpeg" {
		t.Errorf("stored bytes = %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, key)); !os.IsNotExist(err) {
		t.Error("blob should be gone after Delete")
	}
	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestLocalStoreURL(t *testing.T) {
	dir := t.TempDir()

	store, _ := NewLocalStore(dir, "")
	if got := store.URL("abc.mp4"); got != "/media/abc.mp4" {
		t.Errorf("relative URL = %q", got)
	}
	if got := store.URL(""); got != "" {
		t.Errorf("empty key URL = %q, want empty", got)
	}

	store, _ = NewLocalStore(dir, "https://cdn.example.com/videos/")
	if got := store.URL("abc.mp4"); got != "https://cdn.example.com/videos/abc.mp4" {
		t.Errorf("absolute URL = %q", got)
	}
}

func TestLocalStoreKeysNeverCollide(t *testing.T) {
	store, _ := NewLocalStore(t.TempDir(), "")
	ctx := context.Background()

	k1, err := store.Save(ctx, "same.mp4", strings.NewReader("a"))
	if err != nil {
		t.Fatal(err)
	}
	k2, err := store.Save(ctx, "same.mp4", strings.NewReader("b"))
	if err != nil {
		t.Fatal(err)
	}
	if k1 == k2 {
		t.Error("two uploads with the same filename must get distinct keys")
	}
}
