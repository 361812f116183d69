package core

import (
	"sync"

	"github.com/quillan/threadline/internal/models"
)

// ChatState is the single source of truth for the conversation. The
// transcript is append-only: messages are never mutated or removed.
type ChatState struct {
	mu           sync.RWMutex
	messages     []models.Message
	isProcessing bool
	lastError    error
	threadID     string
}

func NewChatState() *ChatState {
	return &ChatState{
		messages: make([]models.Message, 0),
	}
}

func (cs *ChatState) GetMessages() []models.Message {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	result := make([]models.Message, len(cs.messages))
	copy(result, cs.messages)
	return result
}

func (cs *ChatState) IsProcessing() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.isProcessing
}

func (cs *ChatState) GetLastError() error {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastError
}

func (cs *ChatState) ThreadID() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.threadID
}

func (cs *ChatState) SetThreadID(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.threadID = id
}

// AddProgramMessage appends a program message (welcome, status notes).
func (cs *ChatState) AddProgramMessage(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.messages = append(cs.messages, models.Message{
		Content: content,
		Type:    models.Program,
	})
}

// StartProcessingWithUserMessage atomically gates further sends and appends
// the user's message, so the UI sees both changes in one update.
func (cs *ChatState) StartProcessingWithUserMessage(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.isProcessing = true
	cs.lastError = nil
	cs.messages = append(cs.messages, models.Message{
		Content: content,
		Type:    models.User,
	})
}

// FinishProcessingWithAssistantMessage atomically re-enables sending and
// appends the assistant's reply. Error replies arrive here too, already
// formatted as message text - no failure escapes the transcript.
func (cs *ChatState) FinishProcessingWithAssistantMessage(content, toolName string, err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.isProcessing = false
	cs.lastError = err
	cs.messages = append(cs.messages, models.Message{
		Content:  content,
		Type:     models.Assistant,
		ToolName: toolName,
	})
}
