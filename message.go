package teller

import "time"

// Message is a sealed interface representing an entry in the chat log.
// The unexported marker method prevents external implementations.
// Role() returns the sender without requiring a type switch.
//
// The chat log is display-only: messages are appended in completion order
// and never persisted or re-read.
type Message interface {
	isMessage()
	Role() Role
}

// UserMessage is a message typed by the user. It is appended to the log
// optimistically, before the backend round-trip, and stays visible even if
// that round-trip fails.
type UserMessage struct {
	Text      string
	Timestamp time.Time
}

func (UserMessage) isMessage() {}

// Role returns RoleUser.
func (UserMessage) Role() Role { return RoleUser }

// AssistantMessage is a reply from the assistant. Severity is SeverityError
// when the text reports a failure rather than an answer.
type AssistantMessage struct {
	Text      string
	Severity  Severity
	Timestamp time.Time
}

func (AssistantMessage) isMessage() {}

// Role returns RoleAssistant.
func (AssistantMessage) Role() Role { return RoleAssistant }

// Interface compliance checks.
var (
	_ Message = UserMessage{}
	_ Message = AssistantMessage{}
)
