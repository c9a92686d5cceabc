package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if _, err := engine.Schedule(RefreshEvent{ID: "later", Family: "TodoWidget", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if _, err := engine.Schedule(RefreshEvent{ID: "sooner", Family: "BaringWidget", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
	if first.Reason != ReasonTimeline {
		t.Fatalf("expected default reason timeline, got %q", first.Reason)
	}
}

func TestEngineSameTriggerKeepsScheduleOrder(t *testing.T) {
	engine := NewEngine(8)
	at := time.Now().Add(20 * time.Millisecond)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := engine.Schedule(RefreshEvent{ID: id, TriggerAt: at}); err != nil {
			t.Fatalf("schedule %s: %v", id, err)
		}
	}
	engine.Start()
	defer engine.Stop()

	for _, want := range []string{"a", "b", "c"} {
		if got := waitEvent(t, engine.C(), time.Second); got.ID != want {
			t.Fatalf("expected %s, got %s", want, got.ID)
		}
	}
}

func TestEngineGeneratesIDs(t *testing.T) {
	engine := NewEngine(1)
	id, err := engine.Schedule(RefreshEvent{Family: "TodoWidget", TriggerAt: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(id) != 36 {
		t.Fatalf("expected uuid id, got %q", id)
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected 1 pending event, got %d", engine.Pending())
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	at := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if _, err := engine.Schedule(RefreshEvent{Family: "TodoWidget", TriggerAt: at}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if _, err := engine.Schedule(RefreshEvent{ID: "bad"}); !errors.Is(err, ErrInvalidTriggerTime) {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestScheduleAfterStop(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if _, err := engine.Schedule(RefreshEvent{TriggerAt: time.Now()}); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if _, ok := <-engine.C(); ok {
		t.Fatal("expected output channel closed after stop")
	}
}

func waitEvent(t *testing.T, ch <-chan RefreshEvent, timeout time.Duration) RefreshEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return RefreshEvent{}
	}
}
