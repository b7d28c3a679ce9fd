package teller

import "github.com/shopspring/decimal"

// Event is a sealed interface representing a view-facing state change
// emitted by the Controller. Events are purely semantic: any rendering
// backend can subscribe via WithEventHandler and mirror the session state.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventSessionStarted signals a successful login or a restored session.
// The chat interface should be shown.
type EventSessionStarted struct {
	Session Session
}

func (EventSessionStarted) event() {}

// EventSessionEnded signals logout. The login form should be shown.
type EventSessionEnded struct{}

func (EventSessionEnded) event() {}

// EventMessageAppended carries a new entry for the chat log.
type EventMessageAppended struct {
	Message Message
}

func (EventMessageAppended) event() {}

// EventAwaitingReply toggles the waiting indicator for a chat round-trip.
type EventAwaitingReply struct {
	Waiting bool
}

func (EventAwaitingReply) event() {}

// EventTransferPrompt signals that a transfer needs confirmation.
// The confirmation view should open with the carried details.
type EventTransferPrompt struct {
	Transfer PendingTransfer
}

func (EventTransferPrompt) event() {}

// EventTransferClosed signals that the confirmation view should close,
// whether the transfer was confirmed, rejected, or cancelled.
type EventTransferClosed struct{}

func (EventTransferClosed) event() {}

// EventBalanceUpdated carries the new session balance after the backend
// reports one.
type EventBalanceUpdated struct {
	Balance decimal.Decimal
}

func (EventBalanceUpdated) event() {}

// EventNotification carries a transient, self-dismissing notification.
type EventNotification struct {
	Text  string
	Level NoticeLevel
}

func (EventNotification) event() {}

// Interface compliance checks.
var (
	_ Event = EventSessionStarted{}
	_ Event = EventSessionEnded{}
	_ Event = EventMessageAppended{}
	_ Event = EventAwaitingReply{}
	_ Event = EventTransferPrompt{}
	_ Event = EventTransferClosed{}
	_ Event = EventBalanceUpdated{}
	_ Event = EventNotification{}
)
