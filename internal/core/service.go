package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quillan/threadline/internal/eventbus"
	"github.com/quillan/threadline/internal/models"
	"github.com/quillan/threadline/internal/session"
	"github.com/quillan/threadline/internal/transport"
)

// ChatService owns the conversation. It consumes UI events, exchanges
// messages with the backend, persists the thread id on every change, and
// pushes transcript updates back to the UI.
type ChatService struct {
	backend       transport.Backend
	state         *ChatState
	session       *session.Manager
	eventBus      *eventbus.EventBus
	logger        zerolog.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{} // closed when the event loop exits
	lastSentCount int           // how many messages the UI has already received
}

func NewChatService(backend transport.Backend, sess *session.Manager, eb *eventbus.EventBus, logger zerolog.Logger) (*ChatService, error) {
	state := NewChatState()
	ctx, cancel := context.WithCancel(context.Background())

	// Read the persisted thread id once at startup; the session resumes
	// transparently on the next send.
	threadID, err := sess.Load()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	state.SetThreadID(threadID)

	return &ChatService{
		backend:  backend,
		state:    state,
		session:  sess,
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start runs the core logic in a goroutine
func (cs *ChatService) Start() {
	cs.pushStateToUI()
	cs.done = make(chan struct{})
	go func() {
		defer close(cs.done)
		cs.eventLoop()
	}()
}

// Stop cancels the event loop and waits for it to exit, so callers can
// tear down the event bus without racing an in-flight state push.
func (cs *ChatService) Stop() {
	cs.cancel()
	if cs.done != nil {
		<-cs.done
	}
}

// AddWelcomeMessages seeds the transcript with the startup banner.
func (cs *ChatService) AddWelcomeMessages(backendLabel string) {
	cs.state.AddProgramMessage("-- THREADLINE --")
	cs.state.AddProgramMessage("Backend: " + backendLabel)
	if id := cs.state.ThreadID(); id != "" {
		cs.state.AddProgramMessage("Resuming conversation " + id)
	} else {
		cs.state.AddProgramMessage("Starting a new conversation")
	}
	cs.state.AddProgramMessage("Type your message and press Enter. Ctrl+C to exit.")
	cs.state.AddProgramMessage("")
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendMessageEvent:
		cs.processMessage(e.Message)
	}
}

func (cs *ChatService) processMessage(userMessage string) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		// Whitespace-only input sends nothing and appends nothing.
		return
	}

	cs.state.StartProcessingWithUserMessage(userMessage)
	cs.pushStateToUI()

	cs.logger.Debug().Str("thread_id", cs.state.ThreadID()).Msg("sending message")

	reply, err := cs.backend.Send(cs.ctx, userMessage, cs.state.ThreadID())
	if err != nil {
		// Failures become ordinary assistant bubbles; no retries, the
		// input is always re-enabled.
		cs.logger.Error().Err(err).Msg("send failed")
		cs.state.FinishProcessingWithAssistantMessage("Error: "+err.Error(), "", err)
		cs.pushStateToUI()
		return
	}

	if reply.ThreadID != "" && reply.ThreadID != cs.state.ThreadID() {
		cs.state.SetThreadID(reply.ThreadID)
		if err := cs.session.Save(reply.ThreadID); err != nil {
			cs.logger.Error().Err(err).Msg("failed to persist thread id")
		}
		cs.logger.Debug().Str("thread_id", reply.ThreadID).Msg("thread id updated")
	}

	toolName, body := models.SplitToolTag(reply.Content)
	cs.state.FinishProcessingWithAssistantMessage(body, toolName, nil)
	cs.pushStateToUI()
}

// ResetThread clears the persisted conversation id so the next send starts a
// fresh session.
func (cs *ChatService) ResetThread() error {
	cs.state.SetThreadID("")
	return cs.session.Save("")
}

func (cs *ChatService) pushStateToUI() {
	allMessages := cs.state.GetMessages()

	// Only send new messages; the UI appends and animates exactly these.
	newMessages := allMessages[cs.lastSentCount:]
	cs.lastSentCount = len(allMessages)

	if err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Messages:     newMessages,
		IsProcessing: cs.state.IsProcessing(),
		ThreadID:     cs.state.ThreadID(),
		Error:        cs.state.GetLastError(),
	}); err != nil {
		cs.logger.Error().Err(err).Msg("failed to push state to UI")
	}
}
