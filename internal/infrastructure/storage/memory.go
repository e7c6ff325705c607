package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrObjectNotFound is returned when a key has no stored blob
var ErrObjectNotFound = errors.New("object not found")

// MemoryObjectStorage is an in-process ObjectStorage used in tests and local
// development without an S3 endpoint.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemoryObjectStorage creates an empty in-memory object storage
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{objects: make(map[string]memoryObject)}
}

// Upload stores a blob under the given key
func (m *MemoryObjectStorage) Upload(_ context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[storageKey] = memoryObject{data: buf, contentType: contentType}
	return nil
}

// Download fetches a blob by key
func (m *MemoryObjectStorage) Download(_ context.Context, storageKey string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[storageKey]
	if !ok {
		return nil, ErrObjectNotFound
	}
	buf := make([]byte, len(obj.data))
	copy(buf, obj.data)
	return buf, nil
}

// Delete removes a blob by key
func (m *MemoryObjectStorage) Delete(_ context.Context, storageKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, storageKey)
	return nil
}

// PresignDownload returns a fake URL; in-memory blobs have no real endpoint
func (m *MemoryObjectStorage) PresignDownload(_ context.Context, storageKey string, _ time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[storageKey]; !ok {
		return "", ErrObjectNotFound
	}
	return fmt.Sprintf("memory://%s", storageKey), nil
}

// Len reports how many blobs are stored
func (m *MemoryObjectStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

var _ ObjectStorage = (*MemoryObjectStorage)(nil)
