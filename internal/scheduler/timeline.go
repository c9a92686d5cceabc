package scheduler

import "time"

// NextRefresh is the "after(date + interval)" timeline policy. A
// non-positive interval falls back to 30 minutes.
func NextRefresh(rendered time.Time, interval time.Duration) time.Time {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return rendered.Add(interval)
}

// ScheduleTimeline queues the next timeline refresh for family.
func (e *Engine) ScheduleTimeline(family string, rendered time.Time, interval time.Duration) (string, error) {
	return e.Schedule(RefreshEvent{
		Family:    family,
		Reason:    ReasonTimeline,
		TriggerAt: NextRefresh(rendered, interval),
	})
}
