package storage

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

type blob struct {
	data        []byte
	contentType string
}

// Memory is an in-memory blob store for local development and tests.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

var _ Service = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		blobs: make(map[string]blob),
	}
}

func (m *Memory) Put(ctx context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[key] = blob{data: copied, contentType: contentType}
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blobs[key]
	if !ok {
		return nil, goerr.New("object not found", goerr.T(types.ErrTagNotFound), goerr.V("key", key))
	}

	copied := make([]byte, len(b.data))
	copy(copied, b.data)
	return copied, nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[key]; !ok {
		return goerr.New("object not found", goerr.T(types.ErrTagNotFound), goerr.V("key", key))
	}

	delete(m.blobs, key)
	return nil
}
