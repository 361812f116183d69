package reveal

import "time"

// CancelFunc stops a pending callback. Calling it after the callback fired is
// a no-op.
type CancelFunc func()

// Scheduler defers a callback by a delay. Injected so tests drive the
// animation deterministically instead of waiting on wall-clock timers.
type Scheduler interface {
	ScheduleAfter(delay time.Duration, fn func()) CancelFunc
}

// TimerScheduler runs callbacks on real timers.
type TimerScheduler struct{}

func (TimerScheduler) ScheduleAfter(delay time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}
