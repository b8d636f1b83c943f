package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stoik/link-guard/internal/domain"
)

// MemoryStore implements ports.Storage in process memory
//
// Used when no database is configured. Only the most recent capacity warnings
// are kept so a long-running bot does not grow without bound.
type MemoryStore struct {
	mu       sync.RWMutex
	warnings []domain.Warning
	capacity int
}

// DefaultMemoryCapacity is the number of warnings MemoryStore keeps by default
const DefaultMemoryCapacity = 1000

// NewMemoryStore creates an in-memory store holding at most capacity warnings
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{capacity: capacity}
}

// RecordWarning appends a warning, evicting the oldest when full
func (s *MemoryStore) RecordWarning(ctx context.Context, warning *domain.Warning) error {
	if warning.ID == uuid.Nil {
		warning.ID = uuid.New()
	}
	if warning.CreatedAt.IsZero() {
		warning.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.warnings) == s.capacity {
		copy(s.warnings, s.warnings[1:])
		s.warnings = s.warnings[:len(s.warnings)-1]
	}
	s.warnings = append(s.warnings, *warning)
	return nil
}

// ListRecentWarnings returns up to limit warnings, newest first
func (s *MemoryStore) ListRecentWarnings(ctx context.Context, limit int) ([]domain.Warning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = max(0, min(limit, len(s.warnings)))

	out := make([]domain.Warning, 0, limit)
	for i := len(s.warnings) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.warnings[i])
	}
	return out, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
