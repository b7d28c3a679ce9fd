package teller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Fixed user-facing strings for transport and fallback failures.
// Backend-reported errors are surfaced verbatim instead.
const (
	msgFillAllFields   = "Please fill in all fields"
	msgLoginSuccess    = "Login successful!"
	msgLoginFailed     = "Login failed"
	msgNetworkError    = "Network error. Please try again."
	msgLoggedOut       = "Logged out successfully"
	msgConfirmTransfer = "Please confirm the transfer details."
	msgChatError       = "Sorry, I encountered an error. Please try again."
	msgTransferDone    = "Transfer completed successfully!"
	msgTransferError   = "Transfer failed. Please try again."
	msgTransferFailed  = "Transfer failed"
)

// Controller holds at most one logical user session and mediates the login,
// chat and transfer-confirmation flows against a Backend. It owns the only
// two mutable slots in the client (session and pending transfer) and emits
// Events for a rendering layer to mirror.
//
// Methods are safe for concurrent use, but overlapping chat round-trips are
// not sequenced: replies append in arrival order. Requests are never
// cancelled once sent.
type Controller struct {
	backend Backend
	store   Store
	onEvent func(Event)
	log     *zap.Logger

	mu      sync.Mutex
	session *Session
	pending *PendingTransfer
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithStore sets the session store used to survive restarts. Without a
// store the controller keeps the session in memory only.
func WithStore(s Store) ControllerOption {
	return func(c *Controller) { c.store = s }
}

// WithEventHandler sets a callback that receives every emitted Event.
// If nil or not set, events are silently discarded.
func WithEventHandler(h func(Event)) ControllerOption {
	return func(c *Controller) { c.onEvent = h }
}

// WithLogger sets a structured logger for diagnostics. Defaults to a nop
// logger.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) { c.log = l }
}

// NewController creates a Controller with the given backend and options.
func NewController(backend Backend, opts ...ControllerOption) *Controller {
	c := &Controller{
		backend: backend,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) emit(e Event) {
	if c.onEvent != nil {
		c.onEvent(e)
	}
}

func (c *Controller) notify(text string, level NoticeLevel) {
	c.emit(EventNotification{Text: text, Level: level})
}

// Session returns a copy of the current session, if any.
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// PendingTransfer returns a copy of the transfer awaiting confirmation, if any.
func (c *Controller) PendingTransfer() (PendingTransfer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return PendingTransfer{}, false
	}
	return *c.pending, true
}

// Restore loads a persisted session from the store, if one exists, and
// emits EventSessionStarted for it. It reports whether a session was
// restored. Load failures are logged and treated as "no session".
func (c *Controller) Restore() bool {
	if c.store == nil {
		return false
	}
	s, ok, err := c.store.Load()
	if err != nil {
		c.log.Warn("restore session", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	c.mu.Lock()
	c.session = &s
	c.mu.Unlock()
	c.log.Info("session restored", zap.String("account", s.User.AccountNumber))
	c.emit(EventSessionStarted{Session: s})
	return true
}

// Login authenticates with the backend. Credentials with any empty field
// produce a validation notification without a network request. On success
// the session is stored and persisted and the chat interface is signalled;
// on failure state is left unchanged and a notification is emitted.
func (c *Controller) Login(ctx context.Context, creds Credentials) error {
	if err := creds.Validate(); err != nil {
		c.notify(msgFillAllFields, NoticeError)
		return err
	}

	res, err := c.backend.Login(ctx, creds.Trimmed())
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			text := apiErr.Message
			if text == "" {
				text = msgLoginFailed
			}
			c.notify(text, NoticeError)
		} else {
			c.log.Warn("login transport failure", zap.Error(err))
			c.notify(msgNetworkError, NoticeError)
		}
		return err
	}

	now := time.Now()
	s := Session{
		User:      res.User,
		Token:     res.Token,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.mu.Lock()
	c.session = &s
	c.mu.Unlock()
	c.persist(s)

	c.log.Info("logged in", zap.String("account", s.User.AccountNumber))
	c.emit(EventSessionStarted{Session: s})
	c.notify(msgLoginSuccess, NoticeSuccess)
	return nil
}

// Logout notifies the backend on a best-effort basis, then unconditionally
// clears the session, any pending transfer and the persisted state, and
// returns the UI to the login form. It cannot fail from the caller's
// perspective.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	var token string
	if c.session != nil {
		token = c.session.Token
	}
	c.mu.Unlock()

	if token != "" {
		if err := c.backend.Logout(ctx, token); err != nil {
			c.log.Warn("logout request failed", zap.Error(err))
		}
	}

	c.mu.Lock()
	c.session = nil
	c.pending = nil
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Clear(); err != nil {
			c.log.Warn("clear session store", zap.Error(err))
		}
	}

	c.emit(EventTransferClosed{})
	c.emit(EventSessionEnded{})
	c.notify(msgLoggedOut, NoticeSuccess)
}

// Send submits a chat message. Empty input after trimming is a silent
// no-op. The user's message is appended to the log immediately and stays
// visible regardless of how the round-trip ends; only the reply path
// reports failure.
func (c *Controller) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	token := c.session.Token
	fromAccount := c.session.User.AccountNumber
	c.mu.Unlock()

	c.emit(EventMessageAppended{Message: UserMessage{Text: text, Timestamp: time.Now()}})
	c.emit(EventAwaitingReply{Waiting: true})

	reply, err := c.backend.Chat(ctx, token, text)
	c.emit(EventAwaitingReply{Waiting: false})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.appendAssistant(apiErr.Message, SeverityError)
		} else {
			c.log.Warn("chat transport failure", zap.Error(err))
			c.appendAssistant(msgChatError, SeverityError)
		}
		return err
	}

	if reply.RequiresConfirmation && reply.Intent == IntentTransferMoney && reply.Transfer != nil {
		t := *reply.Transfer
		t.FromAccount = fromAccount
		// Last writer wins: a new proposal replaces any unconfirmed one.
		c.mu.Lock()
		c.pending = &t
		c.mu.Unlock()
		c.emit(EventTransferPrompt{Transfer: t})
		c.appendAssistant(msgConfirmTransfer, SeverityNormal)
		return nil
	}

	c.appendAssistant(reply.Message, SeverityNormal)
	switch {
	case reply.NewBalance != nil:
		c.updateBalance(*reply.NewBalance)
	case reply.Balance != nil && reply.Balance.AccountNumber == fromAccount:
		// Informational replies about the session's own account refresh
		// the displayed balance; other accounts' data is display-only.
		c.updateBalance(reply.Balance.Balance)
	}
	return nil
}

// ConfirmTransfer executes the pending transfer. With no pending transfer
// it makes no request and returns ErrNoPendingTransfer. In every outcome
// the confirmation view is closed and the pending slot is cleared.
func (c *Controller) ConfirmTransfer(ctx context.Context) error {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return ErrNoPendingTransfer
	}
	t := *c.pending
	var token string
	if c.session != nil {
		token = c.session.Token
	}
	c.mu.Unlock()

	res, err := c.backend.ConfirmTransfer(ctx, token, t)

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	c.emit(EventTransferClosed{})

	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.appendAssistant(apiErr.Message, SeverityError)
			c.notify(apiErr.Message, NoticeError)
		} else {
			c.log.Warn("transfer transport failure", zap.Error(err))
			c.appendAssistant(msgTransferError, SeverityError)
			c.notify(msgTransferFailed, NoticeError)
		}
		return err
	}

	c.appendAssistant(res.Message, SeverityNormal)
	c.updateBalance(res.NewBalance)
	c.notify(msgTransferDone, NoticeSuccess)
	c.log.Info("transfer confirmed",
		zap.String("to_account", t.ToAccount),
		zap.String("amount", t.Amount.StringFixed(2)))
	return nil
}

// CancelTransfer discards any pending transfer and closes the confirmation
// view. No backend call is made.
func (c *Controller) CancelTransfer() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	c.emit(EventTransferClosed{})
}

func (c *Controller) appendAssistant(text string, sev Severity) {
	c.emit(EventMessageAppended{Message: AssistantMessage{
		Text:      text,
		Severity:  sev,
		Timestamp: time.Now(),
	}})
}

// updateBalance sets the session balance, persists the session and emits
// EventBalanceUpdated. No-op without a session (e.g. logout raced the reply).
func (c *Controller) updateBalance(balance decimal.Decimal) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	c.session.User.Balance = balance
	c.session.UpdatedAt = time.Now()
	s := *c.session
	c.mu.Unlock()

	c.persist(s)
	c.emit(EventBalanceUpdated{Balance: balance})
}

// persist saves the session best-effort, mirroring browser sessionStorage
// semantics: failures are logged, never surfaced.
func (c *Controller) persist(s Session) {
	if c.store == nil {
		return
	}
	if err := c.store.Save(s); err != nil {
		c.log.Warn("persist session", zap.Error(err))
	}
}
