package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tellerhq/teller"
)

var _ tea.Model = Model{}

// uiState is the visible top-level state. Exactly one is active: the login
// form while no session exists, otherwise the chat view, with the transfer
// confirmation layered on top of chat while a proposal is pending.
type uiState int

const (
	stateLogin uiState = iota
	stateChat
	stateConfirm
)

// chromeHeight is the fixed chat-view furniture around the viewport:
// header, two separator lines, status line and input line.
const chromeHeight = 5

// Model is the Bubble Tea model for the teller TUI.
type Model struct {
	// Login is the credential form. Exported for test access.
	Login LoginForm
	// Input is the chat input. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable chat log. Exported for test access.
	Viewport viewport.Model

	ctrl   *teller.Controller
	events <-chan teller.Event
	theme  teller.Theme
	styles Styles

	state   uiState
	session teller.Session
	modal   transferModal
	blocks  []MessageBlock

	notices   []notice
	noticeSeq int

	spin    spinner.Model
	waiting bool
	ready   bool
	width   int
	height  int
}

// New creates the TUI model. The events channel must be the one the
// controller's event handler feeds; the model drains it for the life of
// the program.
func New(ctrl *teller.Controller, events <-chan teller.Event, theme teller.Theme) Model {
	styles := NewStyles(theme)

	input := textinput.New()
	input.Placeholder = "Ask your banking assistant..."
	input.Prompt = ""
	input.CharLimit = 0

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = styles.Muted

	m := Model{
		Login:  NewLoginForm(styles),
		Input:  input,
		ctrl:   ctrl,
		events: events,
		theme:  theme,
		styles: styles,
		spin:   spin,
	}

	// A session restored before the program starts also arrives as an
	// event, but checking here keeps the first frame correct.
	if s, ok := ctrl.Session(); ok {
		m.state = stateChat
		m.session = s
		m.Input.Focus()
	}
	return m
}

// Waiting reports whether a chat round-trip is outstanding.
func (m Model) Waiting() bool { return m.waiting }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listenEvents(m.events))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		var cmd tea.Cmd
		m, cmd = m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, listenEvents(m.events))

	case noticeExpiredMsg:
		m.dropNotice(msg.id)
		m = m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case OpDoneMsg:
		// Outcomes are surfaced through events; nothing to do here.
		return m, nil
	}

	// Pass remaining messages (cursor blink etc.) to sub-components.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch m.state {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
		cmds = append(cmds, cmd)
	case stateChat:
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
		if !m.waiting {
			m.Input, cmd = m.Input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		// In-flight requests are not cancelled; they run to completion
		// server-side regardless.
		return m, tea.Quit
	}
	switch m.state {
	case stateLogin:
		return m.handleLoginKey(msg)
	case stateConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleChatKey(msg)
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.Login, cmd = m.Login.Next()
		return m, cmd

	case tea.KeyShiftTab, tea.KeyUp:
		m.Login, cmd = m.Login.Prev()
		return m, cmd

	case tea.KeyEnter:
		ctrl, creds := m.ctrl, m.Login.Credentials()
		return m, opCmd(func() error {
			return ctrl.Login(context.Background(), creds)
		})
	}

	m.Login, cmd = m.Login.Update(msg)
	return m, cmd
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.waiting {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		m.Input.SetValue("")
		ctrl := m.ctrl
		return m, opCmd(func() error {
			return ctrl.Send(context.Background(), text)
		})

	case tea.KeyCtrlL:
		ctrl := m.ctrl
		return m, opCmd(func() error {
			ctrl.Logout(context.Background())
			return nil
		})

	case tea.KeyEsc:
		if m.dismissNewest() {
			m = m.resize()
		}
		return m, nil
	}

	// When idle, keys go to the input for typing; non-character keys also
	// reach the viewport for scrolling.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !m.waiting {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	switch {
	case msg.Type == tea.KeyEnter || key(msg) == "y" || key(msg) == "Y":
		return m, opCmd(func() error {
			return ctrl.ConfirmTransfer(context.Background())
		})

	case msg.Type == tea.KeyEsc || key(msg) == "n" || key(msg) == "N":
		return m, opCmd(func() error {
			ctrl.CancelTransfer()
			return nil
		})
	}
	return m, nil
}

func key(msg tea.KeyMsg) string {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return string(msg.Runes)
	}
	return ""
}

// handleEvent mirrors a controller event into the view state.
func (m Model) handleEvent(e teller.Event) (Model, tea.Cmd) {
	switch e := e.(type) {
	case teller.EventSessionStarted:
		m.state = stateChat
		m.session = e.Session
		m.blocks = nil
		m.waiting = false
		m = m.resize()
		return m, m.Input.Focus()

	case teller.EventSessionEnded:
		m.state = stateLogin
		m.session = teller.Session{}
		m.blocks = nil
		m.waiting = false
		m.Input.Blur()
		m.Input.SetValue("")
		m.Login = m.Login.Reset()
		return m, textinput.Blink

	case teller.EventMessageAppended:
		m.blocks = append(m.blocks, m.newBlock(e.Message))
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		return m, nil

	case teller.EventAwaitingReply:
		m.waiting = e.Waiting
		if e.Waiting {
			m.Input.Blur()
			return m, m.spin.Tick
		}
		return m, m.Input.Focus()

	case teller.EventTransferPrompt:
		m.state = stateConfirm
		m.modal = newTransferModal(e.Transfer, m.styles)
		return m, nil

	case teller.EventTransferClosed:
		if m.state == stateConfirm {
			m.state = stateChat
		}
		return m, nil

	case teller.EventBalanceUpdated:
		m.session.User.Balance = e.Balance
		return m, nil

	case teller.EventNotification:
		cmd := m.pushNotice(e.Text, e.Level)
		m = m.resize()
		return m, cmd
	}
	return m, nil
}

func (m Model) newBlock(msg teller.Message) MessageBlock {
	if u, ok := msg.(teller.UserMessage); ok {
		return NewUserMessageBlock(u.Text, m.styles)
	}
	a, _ := msg.(teller.AssistantMessage)
	return NewAssistantBlock(a.Text, a.Severity, m.theme, m.styles)
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return m.styles.Muted.Render("Ask about your balance, account details, or transfers.")
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// resize recomputes the viewport for the current window and notice stack.
func (m Model) resize() Model {
	if m.width == 0 {
		return m
	}
	vpHeight := m.height - chromeHeight - len(m.notices)
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.Viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = m.width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	m.Input.Width = m.width
	formWidth := m.width - 8
	if formWidth > 48 {
		formWidth = 48
	}
	if formWidth < 10 {
		formWidth = 10
	}
	m.Login = m.Login.SetWidth(formWidth)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.state {
	case stateLogin:
		view := lipgloss.Place(m.width, m.height-len(m.notices), lipgloss.Center, lipgloss.Center, m.Login.View())
		if len(m.notices) > 0 {
			view += "\n" + m.renderNotices(m.width)
		}
		return view

	case stateConfirm:
		body := lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center, m.modal.View())
		return m.headerView() + "\n" + body + "\n" + m.statusLine()

	default:
		var b strings.Builder
		b.WriteString(m.headerView())
		b.WriteString("\n\n")
		b.WriteString(m.Viewport.View())
		b.WriteString("\n")
		if len(m.notices) > 0 {
			b.WriteString(m.renderNotices(m.width))
			b.WriteString("\n")
		}
		b.WriteString(m.statusLine())
		b.WriteString("\n")
		b.WriteString(m.Input.View())
		return b.String()
	}
}

// headerView shows the app name on the left and the session identity and
// balance on the right, the TUI's stand-in for the widget's user-info bar.
func (m Model) headerView() string {
	left := m.styles.Accent.Render("Banking Assistant")
	right := truncate(m.session.User.Name, 24) +
		" · " + m.session.User.AccountNumber +
		" · " + m.styles.Success.Render("$"+m.session.User.Balance.StringFixed(2))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) statusLine() string {
	if m.waiting {
		return m.spin.View() + " " + m.styles.Muted.Render("Assistant is typing...")
	}
	if m.state == stateConfirm {
		return m.styles.Muted.Render("Confirm the transfer to continue")
	}
	return m.styles.Muted.Render("Enter to send · Ctrl+L to log out · Ctrl+C to quit")
}
