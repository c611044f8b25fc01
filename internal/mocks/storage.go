package mocks

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudblog-api/internal/storage"
)

// Verify interface compliance
var _ storage.BlobStore = (*MockBlobStore)(nil)

// MockBlobStore is an in-memory mock implementation of BlobStore
type MockBlobStore struct {
	Blobs      map[string][]byte
	SaveError  error
	FailDelete bool
	Deleted    []string
	nextID     int
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{Blobs: make(map[string][]byte)}
}

func (m *MockBlobStore) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	if m.SaveError != nil {
		return "", m.SaveError
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.nextID++
	url := fmt.Sprintf("/uploads/blob-%d%s", m.nextID, ext)
	m.Blobs[url] = data
	return url, nil
}

func (m *MockBlobStore) Exists(ctx context.Context, url string) bool {
	_, ok := m.Blobs[url]
	return ok
}

func (m *MockBlobStore) Delete(ctx context.Context, url string) error {
	m.Deleted = append(m.Deleted, url)
	if m.FailDelete {
		return errors.New("blob store unavailable")
	}
	delete(m.Blobs, url)
	return nil
}
