package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

var ErrNotFound = errors.New("storage: not found")

// Meta describes the most recent host write.
type Meta struct {
	Generation int64
	WrittenAt  time.Time
}

// Repository is the shared key/value store. Widgets only Load; the host
// Replaces the whole bag on every write.
type Repository interface {
	Load(ctx context.Context) (snapshot.Snapshot, error)
	Replace(ctx context.Context, snap snapshot.Snapshot) error
	Meta(ctx context.Context) (Meta, error)
	Close() error
}
