package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sandeepkv93/baringwidget/internal/layout"
	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

// DefaultRefreshInterval matches the platform timeline policy.
const DefaultRefreshInterval = 30 * time.Minute

var ErrUnknownFamily = errors.New("widget: unknown family")

// SnapshotSource is the read side of the host's key/value store.
type SnapshotSource interface {
	Load(ctx context.Context) (snapshot.Snapshot, error)
}

// Entry is one rendered timeline entry. Exactly one of Goal and Todo is set.
type Entry struct {
	Family      Family
	Date        time.Time
	NextRefresh time.Time
	Goal        *GoalModel
	Todo        *TodoModel
	Placeholder bool
}

type Options struct {
	MaxSlots        int
	RefreshInterval time.Duration
	Logger          *slog.Logger
	Now             func() time.Time
}

// Renderer runs refresh passes and remembers the last good entry per family.
type Renderer struct {
	source SnapshotSource
	opts   Options

	mu   sync.Mutex
	last map[Family]Entry
}

func NewRenderer(source SnapshotSource, opts Options) *Renderer {
	if opts.MaxSlots == 0 {
		opts.MaxSlots = layout.DefaultMaxSlots
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Renderer{
		source: source,
		opts:   opts,
		last:   make(map[Family]Entry),
	}
}

// Build renders a single family from an already-read snapshot.
func Build(r snapshot.Reader, family Family, maxSlots int) (Entry, error) {
	switch {
	case family.IsGoal():
		goal := AssembleGoal(snapshot.DecodeGoal(r), family)
		return Entry{Family: family, Goal: &goal}, nil
	case family == FamilyTodo:
		todo := AssembleTodo(snapshot.DecodeTodo(r), maxSlots)
		return Entry{Family: family, Todo: &todo}, nil
	default:
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
}

// Refresh reads the store and renders family. When the read fails the pass
// is abandoned and the previous entry stays current.
func (r *Renderer) Refresh(ctx context.Context, family Family) (Entry, error) {
	if !family.IsValid() {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	snap, err := r.source.Load(ctx)
	if err != nil {
		r.opts.Logger.Error("snapshot read failed; keeping last entry", "family", family, "error", err)
		return r.Last(family), fmt.Errorf("load snapshot: %w", err)
	}
	return r.commit(snap, family), nil
}

// RefreshAll renders every family from one store read.
func (r *Renderer) RefreshAll(ctx context.Context) ([]Entry, error) {
	snap, err := r.source.Load(ctx)
	if err != nil {
		r.opts.Logger.Error("snapshot read failed; keeping last entries", "error", err)
		out := make([]Entry, 0, len(catalog))
		for _, d := range catalog {
			out = append(out, r.Last(d.Family))
		}
		return out, fmt.Errorf("load snapshot: %w", err)
	}
	out := make([]Entry, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, r.commit(snap, d.Family))
	}
	return out, nil
}

// Last returns the most recent good entry, or a placeholder before the first.
func (r *Renderer) Last(family Family) Entry {
	r.mu.Lock()
	entry, ok := r.last[family]
	r.mu.Unlock()
	if ok {
		return entry
	}
	return r.placeholder(family)
}

func (r *Renderer) commit(snap snapshot.Snapshot, family Family) Entry {
	entry, _ := Build(snap, family, r.opts.MaxSlots)
	now := r.opts.Now()
	entry.Date = now
	entry.NextRefresh = now.Add(r.opts.RefreshInterval)
	if entry.Todo != nil && entry.Todo.Degraded {
		r.opts.Logger.Warn("item list could not be decoded; showing empty state", "family", family)
	}
	r.opts.Logger.Debug("widget rendered", "family", family, "next_refresh", entry.NextRefresh)

	r.mu.Lock()
	r.last[family] = entry
	r.mu.Unlock()
	return entry
}

func (r *Renderer) placeholder(family Family) Entry {
	now := r.opts.Now()
	entry := Entry{Family: family, Date: now, NextRefresh: now, Placeholder: true}
	switch {
	case family.IsGoal():
		goal := PlaceholderGoal(family)
		entry.Goal = &goal
	case family == FamilyTodo:
		todo := PlaceholderTodo(r.opts.MaxSlots)
		entry.Todo = &todo
	}
	return entry
}
