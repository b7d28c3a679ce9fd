package bubbletea

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/mock"
)

func chatBackend() *mock.Backend {
	return &mock.Backend{
		LoginFn: func(ctx context.Context, creds teller.Credentials) (teller.LoginResult, error) {
			return teller.LoginResult{
				User: teller.User{
					Name:          "Alice",
					AccountNumber: "123",
					Balance:       decimal.RequireFromString("500.00"),
				},
				Token: "tok-1",
			}, nil
		},
		LogoutFn: func(ctx context.Context, token string) error { return nil },
		ChatFn: func(ctx context.Context, token, message string) (teller.ChatReply, error) {
			return teller.ChatReply{Intent: "CHITCHAT", Message: "Hello there!"}, nil
		},
		ConfirmTransferFn: func(ctx context.Context, token string, tr teller.PendingTransfer) (teller.TransferResult, error) {
			return teller.TransferResult{
				Message:    "Transferred $50.00 to account 456.",
				NewBalance: decimal.RequireFromString("450.00"),
			}, nil
		},
	}
}

func testModel(t *testing.T, backend *mock.Backend) (Model, chan teller.Event) {
	t.Helper()
	events := make(chan teller.Event, 16)
	ctrl := teller.NewController(backend, teller.WithEventHandler(func(e teller.Event) {
		events <- e
	}))
	m := New(ctrl, events, teller.DefaultTheme())
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return mm.(Model), events
}

// drain applies buffered controller events to the model, the synchronous
// equivalent of the listenEvents loop.
func drain(t *testing.T, m Model, events chan teller.Event) Model {
	t.Helper()
	for {
		select {
		case e := <-events:
			mm, _ := m.Update(EventMsg{Event: e})
			m = mm.(Model)
		default:
			return m
		}
	}
}

// press sends a key, runs any resulting command synchronously, then applies
// the events the command produced.
func press(t *testing.T, m Model, k tea.KeyMsg, events chan teller.Event) Model {
	t.Helper()
	mm, cmd := m.Update(k)
	m = mm.(Model)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			mm, _ = m.Update(msg)
			m = mm.(Model)
		}
	}
	return drain(t, m, events)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return mm.(Model)
}

func login(t *testing.T, m Model, events chan teller.Event) Model {
	t.Helper()
	m = typeText(t, m, "Alice")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, events)
	m = typeText(t, m, "123")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, events)
	m = typeText(t, m, "9999")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, events)
	require.Equal(t, stateChat, m.state)
	return m
}

func TestModel_InitialView(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t, chatBackend())

	assert.Equal(t, stateLogin, m.state)
	view := m.View()
	assert.Contains(t, view, "Banking Assistant")
	assert.Contains(t, view, "Account Number")
}

func TestModel_LoginFlow(t *testing.T) {
	t.Parallel()

	m, events := testModel(t, chatBackend())
	m = login(t, m, events)

	view := m.View()
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "123")
	assert.Contains(t, view, "$500.00")
	assert.Contains(t, view, "Login successful!")
}

func TestModel_LoginValidationNotice(t *testing.T) {
	t.Parallel()

	m, events := testModel(t, chatBackend())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, events)

	assert.Equal(t, stateLogin, m.state)
	assert.Contains(t, m.View(), "Please fill in all fields")
}

func TestModel_SendAndReply(t *testing.T) {
	t.Parallel()

	m, events := testModel(t, chatBackend())
	m = login(t, m, events)

	m = typeText(t, m, "hi")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, events)

	require.Len(t, m.blocks, 2)
	assert.False(t, m.Waiting())
	assert.Empty(t, m.Input.Value())
	assert.Contains(t, m.View(), "Hello there!")
}

func TestModel_EnterIgnoredWhileWaiting(t *testing.T) {
	t.Parallel()

	m, events := testModel(t, chatBackend())
	m = login(t, m, events)

	mm, _ := m.Update(EventMsg{Event: teller.EventAwaitingReply{Waiting: true}})
	m = mm.(Model)
	require.True(t, m.Waiting())

	m.Input.SetValue("hello")
	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mm.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, "hello", m.Input.Value())
}

func TestModel_TransferConfirm(t *testing.T) {
	t.Parallel()

	backend := chatBackend()
	backend.ChatFn = func(ctx context.Context, token, message string) (teller.ChatReply, error) {
		return teller.ChatReply{
			Intent:               teller.IntentTransferMoney,
			Message:              "Transfer $50.00 to account 456?",
			RequiresConfirmation: true,
			Transfer: &teller.PendingTransfer{
				ToAccount: "456",
				Amount:    decimal.RequireFromString("50.00"),
			},
		}, nil
	}

	m, events := testModel(t, backend)
	m = login(t, m, events)

	m = typeText(t, m, "send 50 to 456")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, events)

	require.Equal(t, stateConfirm, m.state)
	view := m.View()
	assert.Contains(t, view, "Confirm Transfer")
	assert.Contains(t, view, "456")
	assert.Contains(t, view, "$50.00")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, events)

	assert.Equal(t, stateChat, m.state)
	view = m.View()
	assert.Contains(t, view, "$450.00")
	assert.Contains(t, view, "Transfer completed successfully!")
}

func TestModel_TransferCancel(t *testing.T) {
	t.Parallel()

	backend := chatBackend()
	backend.ChatFn = func(ctx context.Context, token, message string) (teller.ChatReply, error) {
		return teller.ChatReply{
			Intent:               teller.IntentTransferMoney,
			Message:              "Transfer $50.00 to account 456?",
			RequiresConfirmation: true,
			Transfer: &teller.PendingTransfer{
				ToAccount: "456",
				Amount:    decimal.RequireFromString("50.00"),
			},
		}, nil
	}

	m, events := testModel(t, backend)
	m = login(t, m, events)

	m = typeText(t, m, "send 50 to 456")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, events)
	require.Equal(t, stateConfirm, m.state)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, events)

	assert.Equal(t, stateChat, m.state)
	assert.Contains(t, m.View(), "$500.00")
	assert.NotContains(t, m.View(), "Transfer completed")
}

func TestModel_Logout(t *testing.T) {
	t.Parallel()

	m, events := testModel(t, chatBackend())
	m = login(t, m, events)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL}, events)

	assert.Equal(t, stateLogin, m.state)
	assert.Empty(t, m.blocks)
	view := m.View()
	assert.Contains(t, view, "Account Number")
	assert.NotContains(t, view, "Alice")
}

func TestModel_NoticeExpires(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t, chatBackend())

	mm, _ := m.Update(EventMsg{Event: teller.EventNotification{
		Text:  "heads up",
		Level: teller.NoticeInfo,
	}})
	m = mm.(Model)
	require.Len(t, m.notices, 1)
	id := m.notices[0].id

	mm, _ = m.Update(noticeExpiredMsg{id: id})
	m = mm.(Model)
	assert.Empty(t, m.notices)
}

func TestModel_EscDismissesNotice(t *testing.T) {
	t.Parallel()

	m, events := testModel(t, chatBackend())
	m = login(t, m, events)

	mm, _ := m.Update(EventMsg{Event: teller.EventNotification{
		Text:  "heads up",
		Level: teller.NoticeInfo,
	}})
	m = mm.(Model)
	require.Len(t, m.notices, 1)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, events)
	assert.Empty(t, m.notices)
}

func TestModel_NoticeStackCapped(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t, chatBackend())

	for range [5]int{} {
		mm, _ := m.Update(EventMsg{Event: teller.EventNotification{
			Text:  "ping",
			Level: teller.NoticeInfo,
		}})
		m = mm.(Model)
	}

	assert.Len(t, m.notices, maxNotices)
}

func TestModel_RestoredSessionStartsInChat(t *testing.T) {
	t.Parallel()

	store := &mock.MemoryStore{}
	require.NoError(t, store.Save(teller.Session{
		User: teller.User{
			Name:          "Alice",
			AccountNumber: "123",
			Balance:       decimal.RequireFromString("500.00"),
		},
		Token: "tok-1",
	}))

	events := make(chan teller.Event, 16)
	ctrl := teller.NewController(chatBackend(),
		teller.WithStore(store),
		teller.WithEventHandler(func(e teller.Event) { events <- e }),
	)
	require.True(t, ctrl.Restore())

	m := New(ctrl, events, teller.DefaultTheme())
	assert.Equal(t, stateChat, m.state)

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = drain(t, mm.(Model), events)
	assert.Contains(t, m.View(), "Alice")
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	events := make(chan teller.Event, 16)
	ctrl := teller.NewController(chatBackend(), teller.WithEventHandler(func(e teller.Event) {
		events <- e
	}))
	m := New(ctrl, events, teller.DefaultTheme())

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Banking Assistant"))
	}, teatest.WithDuration(5*time.Second))

	tm.Type("Alice")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("123")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("9999")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Login successful!")) &&
			bytes.Contains(out, []byte("$500.00"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(Model)
	require.True(t, ok)
	assert.False(t, final.Waiting())
}
