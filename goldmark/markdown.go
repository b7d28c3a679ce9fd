// Package goldmark renders assistant replies to ANSI-styled terminal
// output, using goldmark for parsing and lipgloss for styling.
//
// Replies are short chat messages, so only the inline-heavy subset of
// markdown is handled: paragraphs, headings, emphasis, code spans, lists
// and links. Unlike a document renderer, soft line breaks are kept as
// newlines — the backend formats multi-line answers (account summaries)
// with significant line structure.
package goldmark

import "github.com/tellerhq/teller"

// Render parses markdown source and returns ANSI-styled terminal output
// word-wrapped to width.
func Render(source string, width int, theme teller.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
