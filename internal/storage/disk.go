package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudblog-api/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// diskStore keeps blobs on the local filesystem under cfg.UploadDir and
// hands out URLs under cfg.BaseURL, which the router serves statically.
type diskStore struct {
	dir     string
	baseURL string
	log     zerolog.Logger
}

// NewDiskStore creates a filesystem-backed blob store
func NewDiskStore(cfg *config.StorageConfig, log zerolog.Logger) (BlobStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &diskStore{
		dir:     cfg.UploadDir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		log:     log.With().Str("component", "storage").Logger(),
	}, nil
}

// Save writes the blob under a random name and returns its public URL
func (s *diskStore) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	filename := uuid.New().String() + ext
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	s.log.Info().Str("file", filename).Msg("Image stored")
	return s.baseURL + "/" + filename, nil
}

// Exists reports whether the blob file is still on disk
func (s *diskStore) Exists(ctx context.Context, url string) bool {
	path, ok := s.pathFor(url)
	if !ok {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Delete removes the blob file behind the URL
func (s *diskStore) Delete(ctx context.Context, url string) error {
	path, ok := s.pathFor(url)
	if !ok {
		return fmt.Errorf("url %q is not managed by this store", url)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	s.log.Info().Str("url", url).Msg("Image deleted")
	return nil
}

// pathFor maps a public URL back to the on-disk path. Foreign URLs are
// rejected so stale rows pointing elsewhere cannot delete arbitrary files.
func (s *diskStore) pathFor(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", false
	}
	name := filepath.Base(strings.TrimPrefix(url, s.baseURL+"/"))
	if name == "" || name == "." || name == "/" {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}
