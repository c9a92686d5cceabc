package storage

import (
	"context"
	"sync"
	"time"

	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

// MemoryRepository keeps the snapshot in process. Useful in tests and when
// no store path is configured.
type MemoryRepository struct {
	mu   sync.RWMutex
	snap snapshot.Snapshot
	meta Meta
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Load(context.Context) (snapshot.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap, nil
}

func (r *MemoryRepository) Replace(_ context.Context, snap snapshot.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap
	r.meta = Meta{Generation: r.meta.Generation + 1, WrittenAt: r.now().UTC()}
	return nil
}

func (r *MemoryRepository) Meta(context.Context) (Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.meta.Generation == 0 {
		return Meta{}, ErrNotFound
	}
	return r.meta, nil
}

func (r *MemoryRepository) Close() error { return nil }
