// Package mock provides test doubles for teller interfaces using function fields.
package mock

import (
	"context"

	"github.com/tellerhq/teller"
)

// Interface compliance checks.
var (
	_ teller.Backend = (*Backend)(nil)
	_ teller.Store   = (*Store)(nil)
)

// Backend is a test double for teller.Backend.
// Set the function fields for the methods you need.
type Backend struct {
	LoginFn           func(ctx context.Context, creds teller.Credentials) (teller.LoginResult, error)
	LogoutFn          func(ctx context.Context, token string) error
	ChatFn            func(ctx context.Context, token, message string) (teller.ChatReply, error)
	ConfirmTransferFn func(ctx context.Context, token string, transfer teller.PendingTransfer) (teller.TransferResult, error)
}

// Login delegates to LoginFn.
func (b *Backend) Login(ctx context.Context, creds teller.Credentials) (teller.LoginResult, error) {
	return b.LoginFn(ctx, creds)
}

// Logout delegates to LogoutFn.
func (b *Backend) Logout(ctx context.Context, token string) error {
	return b.LogoutFn(ctx, token)
}

// Chat delegates to ChatFn.
func (b *Backend) Chat(ctx context.Context, token, message string) (teller.ChatReply, error) {
	return b.ChatFn(ctx, token, message)
}

// ConfirmTransfer delegates to ConfirmTransferFn.
func (b *Backend) ConfirmTransfer(ctx context.Context, token string, transfer teller.PendingTransfer) (teller.TransferResult, error) {
	return b.ConfirmTransferFn(ctx, token, transfer)
}

// Store is a test double for teller.Store.
type Store struct {
	SaveFn  func(s teller.Session) error
	LoadFn  func() (teller.Session, bool, error)
	ClearFn func() error
}

// Save delegates to SaveFn.
func (s *Store) Save(sess teller.Session) error {
	return s.SaveFn(sess)
}

// Load delegates to LoadFn.
func (s *Store) Load() (teller.Session, bool, error) {
	return s.LoadFn()
}

// Clear delegates to ClearFn.
func (s *Store) Clear() error {
	return s.ClearFn()
}

// MemoryStore is an in-memory teller.Store for tests that need real
// save/load/clear semantics rather than per-call hooks.
type MemoryStore struct {
	session *teller.Session
}

// Save stores a copy of the session.
func (m *MemoryStore) Save(s teller.Session) error {
	m.session = &s
	return nil
}

// Load returns the stored session, if any.
func (m *MemoryStore) Load() (teller.Session, bool, error) {
	if m.session == nil {
		return teller.Session{}, false, nil
	}
	return *m.session, true, nil
}

// Clear removes the stored session.
func (m *MemoryStore) Clear() error {
	m.session = nil
	return nil
}

var _ teller.Store = (*MemoryStore)(nil)
