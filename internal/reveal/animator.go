// Package reveal discloses an already-complete string a few characters at a
// time, simulating the streaming output the wire protocol does not provide.
package reveal

import (
	"sync"
	"time"
)

// Config tunes the animation. Longer strings reveal faster per character so
// total animation time stays bounded; very short strings never reveal faster
// than the minimum per-step delay.
type Config struct {
	StartDelay   time.Duration // pause before the first step
	MinStepDelay time.Duration // floor for the inter-step delay
	TotalBudget  time.Duration // divided by rune length to pace long replies
	StepSize     int           // runes disclosed per step
	MaxAnimated  int           // rune lengths above this skip animation entirely
}

// DefaultConfig matches the pacing the client has always shipped with.
func DefaultConfig() Config {
	return Config{
		StartDelay:   150 * time.Millisecond,
		MinStepDelay: 12 * time.Millisecond,
		TotalBudget:  2400 * time.Millisecond,
		StepSize:     2,
		MaxAnimated:  1200,
	}
}

// Frame is one observable animation state: a prefix of the target and whether
// more is coming. The caller renders a trailing cursor while Revealing.
type Frame struct {
	Text      string
	Revealing bool
}

// Animator reveals one target string at a time. Starting a new target cancels
// every pending step of the previous one; no step of an old target fires after
// a new target's reveal begins. Callbacks run on scheduler goroutines, so all
// state is mutex-guarded.
type Animator struct {
	mu      sync.Mutex
	sched   Scheduler
	cfg     Config
	emit    func(Frame)
	target  []rune
	shown   int
	gen     int // bumped on every Reveal/Stop to invalidate in-flight steps
	cancel  CancelFunc
	stepGap time.Duration
}

// NewAnimator creates an idle animator. emit is called once per frame, always
// ending with a Frame whose Revealing is false. Frames are delivered with the
// animator's lock held so a cancelled target can never emit after its
// replacement; emit must be non-blocking and must not call back into the
// Animator.
func NewAnimator(sched Scheduler, cfg Config, emit func(Frame)) *Animator {
	return &Animator{sched: sched, cfg: cfg, emit: emit}
}

// Reveal starts disclosing text. With animate false, or when the text exceeds
// the animation threshold, the full text is emitted immediately with no
// intermediate frames.
func (a *Animator) Reveal(text string, animate bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelPendingLocked()
	a.gen++
	a.target = []rune(text)
	a.shown = 0

	if !animate || len(a.target) == 0 || len(a.target) > a.cfg.MaxAnimated {
		a.shown = len(a.target)
		a.emit(Frame{Text: text, Revealing: false})
		return
	}

	a.stepGap = a.cfg.MinStepDelay
	if perRune := a.cfg.TotalBudget / time.Duration(len(a.target)); perRune > a.stepGap {
		a.stepGap = perRune
	}

	gen := a.gen
	a.cancel = a.sched.ScheduleAfter(a.cfg.StartDelay, func() { a.step(gen) })
	a.emit(Frame{Text: "", Revealing: true})
}

// Stop cancels any in-flight reveal without emitting further frames.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelPendingLocked()
	a.gen++
}

func (a *Animator) step(gen int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen {
		// A newer target took over while this step was pending.
		return
	}

	a.shown += a.cfg.StepSize
	if a.shown > len(a.target) {
		a.shown = len(a.target)
	}

	frame := Frame{
		Text:      string(a.target[:a.shown]),
		Revealing: a.shown < len(a.target),
	}

	if frame.Revealing {
		a.cancel = a.sched.ScheduleAfter(a.stepGap, func() { a.step(gen) })
	} else {
		a.cancel = nil
	}

	// Emitted under the lock: the gen check and the delivery are atomic, so
	// no frame of a replaced target can land after its successor's frames.
	a.emit(frame)
}

func (a *Animator) cancelPendingLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}
