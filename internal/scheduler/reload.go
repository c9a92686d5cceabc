package scheduler

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ReloadGate turns host reload requests into engine events, collapsing
// bursts: at most one host reload per family is pending at a time, and
// reloads are paced by a token bucket.
type ReloadGate struct {
	engine  *Engine
	limiter *rate.Limiter
	now     func() time.Time

	mu      sync.Mutex
	pending map[string]time.Time
}

func NewReloadGate(engine *Engine, every time.Duration, burst int) *ReloadGate {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if every > 0 {
		limit = rate.Every(every)
	}
	return &ReloadGate{
		engine:  engine,
		limiter: rate.NewLimiter(limit, burst),
		now:     time.Now,
		pending: make(map[string]time.Time),
	}
}

// Request schedules a host reload of family. It reports false when an
// earlier request for the same family has not fired yet.
func (g *ReloadGate) Request(family string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if at, ok := g.pending[family]; ok && at.After(now) {
		return false, nil
	}
	res := g.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, nil
	}
	at := now.Add(res.DelayFrom(now))
	if _, err := g.engine.Schedule(RefreshEvent{
		Family:    family,
		Reason:    ReasonHost,
		TriggerAt: at,
	}); err != nil {
		res.CancelAt(now)
		return false, err
	}
	g.pending[family] = at
	return true, nil
}
