package models

type MessageType int

const (
	User MessageType = iota
	Assistant
	Program
)

// Message is one entry in the transcript. The transcript is append-only and
// messages are immutable once created.
type Message struct {
	Content string
	Type    MessageType
	// ToolName is set on assistant messages whose reply carried a
	// "(tool: NAME)" prefix; the UI renders it as a badge above the body.
	ToolName string
}
