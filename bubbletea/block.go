package bubbletea

// MessageBlock is a renderable entry in the chat log. View takes a width
// parameter so the root model controls layout and blocks are testable in
// isolation. The log is append-only; blocks never change once added.
type MessageBlock interface {
	View(width int) string
}
