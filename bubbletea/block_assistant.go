package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/goldmark"
)

var _ MessageBlock = (*AssistantBlock)(nil)

// AssistantBlock renders an assistant reply. Normal replies are rendered as
// markdown; error-severity replies are rendered plain in the error style so
// backend failure text is never reinterpreted as markup.
type AssistantBlock struct {
	text     string
	severity teller.Severity
	theme    teller.Theme
	styles   Styles
}

// NewAssistantBlock creates an AssistantBlock.
func NewAssistantBlock(text string, severity teller.Severity, theme teller.Theme, styles Styles) *AssistantBlock {
	return &AssistantBlock{text: text, severity: severity, theme: theme, styles: styles}
}

func (b *AssistantBlock) View(width int) string {
	if b.severity == teller.SeverityError {
		content := b.styles.Error.Render(b.text)
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	return goldmark.Render(b.text, width, b.theme)
}
