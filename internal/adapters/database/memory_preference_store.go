package database

import (
	"context"
	"sync"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// MemoryPreferenceStoreAdapter keeps preferences for the lifetime of the process
type MemoryPreferenceStoreAdapter struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferenceStoreAdapter() *MemoryPreferenceStoreAdapter {
	return &MemoryPreferenceStoreAdapter{values: make(map[string]string)}
}

func (m *MemoryPreferenceStoreAdapter) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.NewValidationError("preference key cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryPreferenceStoreAdapter) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

var _ ports.KeyValueStore = (*MemoryPreferenceStoreAdapter)(nil)
