package bubbletea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tellerhq/teller"
)

// noticeTimeout is how long a notification stays visible unless dismissed.
const noticeTimeout = 5 * time.Second

// maxNotices caps the visible stack; older notices are dropped first.
const maxNotices = 3

// notice is one transient notification line. Each carries its own expiry
// timer, so multiple notices dismiss independently.
type notice struct {
	id    int
	text  string
	level teller.NoticeLevel
}

// noticeExpiredMsg dismisses the notice with the given id.
type noticeExpiredMsg struct {
	id int
}

// pushNotice appends a notice and returns its expiry command.
func (m *Model) pushNotice(text string, level teller.NoticeLevel) tea.Cmd {
	m.noticeSeq++
	n := notice{id: m.noticeSeq, text: text, level: level}
	m.notices = append(m.notices, n)
	if len(m.notices) > maxNotices {
		m.notices = m.notices[len(m.notices)-maxNotices:]
	}
	id := n.id
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// dropNotice removes the notice with the given id, if it is still visible.
func (m *Model) dropNotice(id int) {
	for i, n := range m.notices {
		if n.id == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return
		}
	}
}

// dismissNewest removes the most recent notice. Bound to Esc in the chat
// view as the manual dismissal affordance.
func (m *Model) dismissNewest() bool {
	if len(m.notices) == 0 {
		return false
	}
	m.notices = m.notices[:len(m.notices)-1]
	return true
}

func (m Model) noticeStyle(level teller.NoticeLevel) (string, func(...string) string) {
	switch level {
	case teller.NoticeSuccess:
		return "✓", m.styles.Success.Render
	case teller.NoticeError:
		return "✗", m.styles.Error.Render
	case teller.NoticeWarning:
		return "!", m.styles.Warning.Render
	default:
		return "·", m.styles.Muted.Render
	}
}

// renderNotices renders the stack, one line per notice, newest last.
func (m Model) renderNotices(width int) string {
	var out string
	for i, n := range m.notices {
		if i > 0 {
			out += "\n"
		}
		icon, style := m.noticeStyle(n.level)
		out += style(icon + " " + truncate(n.text, width-2))
	}
	return out
}
