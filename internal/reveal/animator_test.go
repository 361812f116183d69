package reveal

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler records scheduled callbacks so tests fire them by hand.
type fakeScheduler struct {
	pending []*fakeTimer
}

type fakeTimer struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

func (s *fakeScheduler) ScheduleAfter(delay time.Duration, fn func()) CancelFunc {
	timer := &fakeTimer{delay: delay, fn: fn}
	s.pending = append(s.pending, timer)
	return func() { timer.cancelled = true }
}

// fire runs the oldest live callback, returning false when none remain.
func (s *fakeScheduler) fire() bool {
	for len(s.pending) > 0 {
		timer := s.pending[0]
		s.pending = s.pending[1:]
		if timer.cancelled {
			continue
		}
		timer.fn()
		return true
	}
	return false
}

func (s *fakeScheduler) drain() {
	for s.fire() {
	}
}

func collect(frames *[]Frame) func(Frame) {
	return func(f Frame) { *frames = append(*frames, f) }
}

func TestRevealStepsByTwo(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	a.Reveal("abcdefg", true)
	sched.drain()

	require.NotEmpty(t, frames)
	prev := -1
	for _, f := range frames {
		length := len([]rune(f.Text))
		assert.Greater(t, length, prev, "prefix must grow monotonically")
		if prev >= 0 && f.Revealing {
			assert.Equal(t, prev+2, length, "each step advances by two runes")
		}
		prev = length
	}

	last := frames[len(frames)-1]
	assert.Equal(t, "abcdefg", last.Text)
	assert.False(t, last.Revealing)
	// Odd length: the final step disclosed a single remaining rune.
	assert.False(t, sched.fire(), "no steps may remain after completion")
}

func TestRevealEmitsPrefixesOfTarget(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	a.Reveal("héllo wörld", true)
	sched.drain()

	for _, f := range frames {
		assert.True(t, strings.HasPrefix("héllo wörld", f.Text))
	}
	assert.Equal(t, "héllo wörld", frames[len(frames)-1].Text)
}

func TestRevealDisabledDisclosesImmediately(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	a.Reveal("full text", false)

	require.Len(t, frames, 1, "no intermediate partial states")
	assert.Equal(t, "full text", frames[0].Text)
	assert.False(t, frames[0].Revealing)
	assert.Empty(t, sched.pending, "nothing scheduled")
}

func TestRevealLongTextBypassesAnimation(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	long := strings.Repeat("x", 1201)
	a.Reveal(long, true)

	require.Len(t, frames, 1)
	assert.Equal(t, long, frames[0].Text)
	assert.False(t, frames[0].Revealing)
}

func TestRevealThresholdBoundary(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	// Exactly at the threshold still animates.
	a.Reveal(strings.Repeat("x", 1200), true)
	assert.NotEmpty(t, sched.pending)
	sched.drain()
	assert.Equal(t, 1200, len(frames[len(frames)-1].Text))
}

func TestRevealStartDelayAndPacing(t *testing.T) {
	sched := &fakeScheduler{}
	cfg := DefaultConfig()
	a := NewAnimator(sched, cfg, func(Frame) {})

	// Short string: per-rune budget exceeds the floor.
	a.Reveal("abcd", true)
	require.Len(t, sched.pending, 1)
	assert.Equal(t, cfg.StartDelay, sched.pending[0].delay)
	sched.fire()
	require.Len(t, sched.pending, 1)
	assert.Equal(t, cfg.TotalBudget/4, sched.pending[0].delay)
	sched.drain()

	// Long string: the floor wins.
	sched.pending = nil
	a.Reveal(strings.Repeat("x", 1000), true)
	sched.fire()
	require.NotEmpty(t, sched.pending)
	assert.Equal(t, cfg.MinStepDelay, sched.pending[len(sched.pending)-1].delay)
}

func TestRevealRestartCancelsOldTarget(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	a.Reveal("old old old", true)
	sched.fire() // start delay
	sched.fire() // first step of the old target

	a.Reveal("new", true)
	restartAt := len(frames)
	sched.drain()

	for _, f := range frames[restartAt:] {
		assert.True(t, strings.HasPrefix("new", f.Text),
			"no character of the old target may appear after restart")
	}
	last := frames[len(frames)-1]
	assert.Equal(t, "new", last.Text)
	assert.False(t, last.Revealing)
}

// goroutineScheduler runs every callback on its own goroutine, like the real
// timer scheduler does.
type goroutineScheduler struct {
	wg sync.WaitGroup
}

func (s *goroutineScheduler) ScheduleAfter(delay time.Duration, fn func()) CancelFunc {
	var cancelled atomic.Bool
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		time.Sleep(delay)
		if !cancelled.Load() {
			fn()
		}
	}()
	return func() { cancelled.Store(true) }
}

func TestRevealRestartAcrossGoroutines(t *testing.T) {
	sched := &goroutineScheduler{}
	// Zero delays so steps of the old target race the restart as hard as
	// possible.
	cfg := Config{StepSize: 2, MaxAnimated: 1200}

	var mu sync.Mutex
	var frames []Frame
	a := NewAnimator(sched, cfg, func(f Frame) {
		mu.Lock()
		frames = append(frames, f)
		mu.Unlock()
	})

	for i := 0; i < 200; i++ {
		mu.Lock()
		frames = frames[:0]
		mu.Unlock()

		a.Reveal("old old old old old old", true)
		a.Reveal("new", false)
		sched.wg.Wait()

		mu.Lock()
		require.NotEmpty(t, frames)
		last := frames[len(frames)-1]
		assert.Equal(t, "new", last.Text,
			"no frame of the old target may land after the new target's disclosure")
		assert.False(t, last.Revealing)
		mu.Unlock()
	}
}

func TestStopCancelsPendingSteps(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	a.Reveal("something", true)
	sched.fire()
	seen := len(frames)

	a.Stop()
	sched.drain()

	assert.Len(t, frames, seen, "no frames after Stop")
}

func TestRevealEmptyString(t *testing.T) {
	sched := &fakeScheduler{}
	var frames []Frame
	a := NewAnimator(sched, DefaultConfig(), collect(&frames))

	a.Reveal("", true)

	require.Len(t, frames, 1)
	assert.Empty(t, frames[0].Text)
	assert.False(t, frames[0].Revealing)
}
