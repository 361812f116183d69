// Package transport exchanges messages with the agent backend. The server
// client speaks the agent server's JSON-over-HTTP protocol; the direct client
// talks to an OpenAI-compatible API when no agent server is available. Both
// return data only - applying replies to the transcript and session is the
// caller's job.
package transport

import "context"

// Reply is one assistant response. ThreadID is empty when the backend did not
// assign or update a conversation id.
type Reply struct {
	Content  string
	ThreadID string
}

// Backend sends a single user message and returns the assistant's reply.
// Implementations must not mutate any state the caller owns.
type Backend interface {
	Send(ctx context.Context, userMessage, threadID string) (Reply, error)
}

// Error is the single error kind of this package. Non-2xx statuses, network
// failures and unparseable responses all surface as *Error; the send boundary
// turns it into an inline assistant message.
type Error struct {
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(message string, cause error) *Error {
	return &Error{Message: message, cause: cause}
}
