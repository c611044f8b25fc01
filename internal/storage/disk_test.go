package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudblog-api/internal/config"
	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) BlobStore {
	t.Helper()
	store, err := NewDiskStore(&config.StorageConfig{
		UploadDir: t.TempDir(),
		BaseURL:   "/uploads",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	return store
}

func TestDiskStoreSaveAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.Save(ctx, ".png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("Unexpected URL shape: %q", url)
	}
	if !store.Exists(ctx, url) {
		t.Error("Expected saved blob to exist")
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists(ctx, url) {
		t.Error("Expected deleted blob to be gone")
	}
	if err := store.Delete(ctx, url); err == nil {
		t.Error("Expected deleting a missing blob to fail")
	}
}

func TestDiskStoreRejectsForeignURLs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	foreign := []string{
		"",
		"https://elsewhere.example/img.png",
		"/other-prefix/img.png",
		"/uploads/../../../etc/passwd",
	}
	for _, url := range foreign {
		if store.Exists(ctx, url) {
			t.Errorf("Expected %q to not exist", url)
		}
		if err := store.Delete(ctx, url); err == nil {
			t.Errorf("Expected delete of %q to fail", url)
		}
	}
}

func TestDiskStoreTraversalStaysInDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(&config.StorageConfig{
		UploadDir: dir,
		BaseURL:   "/uploads",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}

	// URLs with path segments collapse to their base name inside the upload
	// dir; nothing outside it is ever touched.
	os.WriteFile(filepath.Join(dir, "keep.png"), []byte("x"), 0644)

	if !store.Exists(context.Background(), "/uploads/sub/../keep.png") {
		t.Error("Expected the flattened URL to resolve within the store")
	}
	if err := store.Delete(context.Background(), "/uploads/evil/keep.png"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.png")); !os.IsNotExist(err) {
		t.Error("Expected the contained file to be the one removed")
	}
}
