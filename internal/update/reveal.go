package update

import (
	"sync"

	"github.com/quillan/threadline/internal/eventbus"
	"github.com/quillan/threadline/internal/reveal"
)

// RevealRunner owns one animator per assistant message and forwards frames to
// the UI through the event bus. Animators for different messages run
// independently; quitting stops them all so no timer outlives the program.
type RevealRunner struct {
	mu        sync.Mutex
	eventBus  *eventbus.EventBus
	sched     reveal.Scheduler
	cfg       reveal.Config
	animators map[int]*reveal.Animator
}

func NewRevealRunner(eb *eventbus.EventBus) *RevealRunner {
	return &RevealRunner{
		eventBus:  eb,
		sched:     reveal.TimerScheduler{},
		cfg:       reveal.DefaultConfig(),
		animators: make(map[int]*reveal.Animator),
	}
}

// Start begins revealing the message at the given transcript index. Starting
// again for the same index restarts that message's reveal.
func (r *RevealRunner) Start(index int, text string) {
	r.mu.Lock()
	animator, ok := r.animators[index]
	if !ok {
		animator = reveal.NewAnimator(r.sched, r.cfg, func(f reveal.Frame) {
			_ = r.eventBus.SendToUI(eventbus.RevealFrameEvent{
				Index:     index,
				Text:      f.Text,
				Revealing: f.Revealing,
			})
		})
		r.animators[index] = animator
	}
	r.mu.Unlock()

	animator.Reveal(text, true)
}

func (r *RevealRunner) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, animator := range r.animators {
		animator.Stop()
	}
}
