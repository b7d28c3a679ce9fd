package teller

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the authenticated account holder as reported by the backend.
type User struct {
	Name          string
	AccountNumber string
	Balance       decimal.Decimal
}

// Session represents an authenticated user session. It exists from a
// successful login until logout; while it exists the chat interface is
// shown, and while it is absent the login form is shown.
type Session struct {
	User      User
	Token     string // opaque bearer credential
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists a Session across process restarts. Implementations hold at
// most one session; Save overwrites any prior one and Clear removes it.
type Store interface {
	Save(s Session) error
	// Load returns the persisted session, or ok=false when none exists.
	Load() (s Session, ok bool, err error)
	Clear() error
}
