package widget

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/sandeepkv93/baringwidget/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu   sync.Mutex
	snap snapshot.Snapshot
	err  error
}

func (f *fakeSource) Load(context.Context) (snapshot.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, f.err
}

func (f *fakeSource) set(snap snapshot.Snapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap, f.err = snap, err
}

func newTestRenderer(src SnapshotSource) *Renderer {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	return NewRenderer(src, Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:    func() time.Time { return now },
	})
}

func TestRendererPlaceholderBeforeFirstRefresh(t *testing.T) {
	r := newTestRenderer(&fakeSource{})
	entry := r.Last(FamilyTodo)
	assert.True(t, entry.Placeholder)
	require.NotNil(t, entry.Todo)
	assert.Equal(t, "2/3", entry.Todo.Counter)
}

func TestRendererRefreshSetsTimeline(t *testing.T) {
	src := &fakeSource{snap: snapshot.NewBuilder().SetString(snapshot.KeyTitle, "토익 900").Build()}
	r := newTestRenderer(src)

	entry, err := r.Refresh(t.Context(), FamilyGoalMedium)
	require.NoError(t, err)
	require.NotNil(t, entry.Goal)
	assert.False(t, entry.Placeholder)
	assert.Equal(t, "토익 900", entry.Goal.Title)
	assert.Equal(t, 30*time.Minute, entry.NextRefresh.Sub(entry.Date))
}

func TestRendererKeepsLastGoodStateOnReadFailure(t *testing.T) {
	src := &fakeSource{snap: snapshot.NewBuilder().SetString(snapshot.KeyDDay, "D-5").Build()}
	r := newTestRenderer(src)

	_, err := r.Refresh(t.Context(), FamilyGoalSmall)
	require.NoError(t, err)

	readErr := errors.New("store unavailable")
	src.set(snapshot.Snapshot{}, readErr)
	entry, err := r.Refresh(t.Context(), FamilyGoalSmall)
	assert.ErrorIs(t, err, readErr)
	require.NotNil(t, entry.Goal)
	assert.Equal(t, "D-5", entry.Goal.DDay)
	assert.Equal(t, "D-5", r.Last(FamilyGoalSmall).Goal.DDay)
}

func TestRendererRefreshAll(t *testing.T) {
	src := &fakeSource{snap: snapshot.NewBuilder().
		SetString(snapshot.KeyItemsJSON, "not json").
		SetInt(snapshot.KeyPreset, 8).
		Build()}
	r := newTestRenderer(src)

	entries, err := r.RefreshAll(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, FamilyGoalMedium, entries[0].Family)
	assert.True(t, entries[0].Goal.Preset.Dark)
	require.NotNil(t, entries[2].Todo)
	assert.True(t, entries[2].Todo.Empty())
	assert.True(t, entries[2].Todo.Degraded)
}

func TestRendererRefreshAllFailureReturnsLast(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	r := newTestRenderer(src)

	entries, err := r.RefreshAll(t.Context())
	assert.Error(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, e.Placeholder)
	}
}

func TestRendererUnknownFamily(t *testing.T) {
	r := newTestRenderer(&fakeSource{})
	_, err := r.Refresh(t.Context(), Family("Clock"))
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRendererConcurrentFamilies(t *testing.T) {
	src := &fakeSource{snap: snapshot.NewBuilder().SetInt(snapshot.KeyProgress, 40).Build()}
	r := newTestRenderer(src)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, d := range Catalog() {
			wg.Add(1)
			go func(f Family) {
				defer wg.Done()
				_, _ = r.Refresh(context.Background(), f)
			}(d.Family)
		}
	}
	wg.Wait()
	assert.Equal(t, 0.4, r.Last(FamilyGoalMedium).Goal.Progress)
}
