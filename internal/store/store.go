// Package store persists the share map as a single unit. Every mutating
// operation in the service layer re-reads the whole map, changes one owner's
// slice in memory and writes the whole map back; concurrent writers for the
// same owner are last-writer-wins. Optimistic versioning can be layered behind
// this interface without touching callers.
package store

import (
	"context"
	"sync"

	"github.com/draftshare/draftshare/internal/model"
)

type Store interface {
	Load(ctx context.Context) (model.ShareMap, error)
	Save(ctx context.Context, shares model.ShareMap) error
}

// MemoryStore keeps the share map in process memory. It backs tests and
// single-node deployments without a database.
type MemoryStore struct {
	mu     sync.Mutex
	shares model.ShareMap
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{shares: make(model.ShareMap)}
}

func (s *MemoryStore) Load(ctx context.Context) (model.ShareMap, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shares.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, shares model.ShareMap) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shares = shares.Clone()
	return nil
}
