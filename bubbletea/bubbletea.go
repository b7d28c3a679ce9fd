// Package bubbletea provides the Bubble Tea TUI for the teller client.
//
// The TUI mirrors the controller's state through its event stream: the
// controller emits [teller.Event] values from whatever goroutine runs the
// current command, a channel carries them into the program, and the model
// renders them. Exactly one of the login form and the chat interface is
// visible at any time.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tellerhq/teller"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown — when cancelled, the
// program quits. In-flight backend requests are not cancelled; they run to
// completion or transport failure.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// EventMsg wraps a controller event for delivery to the model.
type EventMsg struct {
	Event teller.Event
}

// OpDoneMsg signals that a controller operation has returned. Failures are
// already surfaced through events; the error here is for diagnostics only.
type OpDoneMsg struct {
	Err error
}

// listenEvents waits for the next controller event. The channel stays open
// for the life of the program, so the command re-arms after each message.
func listenEvents(ch <-chan teller.Event) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: <-ch}
	}
}

// opCmd runs a controller operation off the UI goroutine.
func opCmd(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{Err: fn()}
	}
}
