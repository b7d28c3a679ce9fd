// Package json persists the user session to a JSON state file. It is the
// client's analog of browser session storage: saved on login and on every
// balance change, cleared entirely on logout. Only the session survives a
// restart; the chat log is display-only and never persisted.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tellerhq/teller"
)

// Interface compliance check.
var _ teller.Store = (*Store)(nil)

// envelope is the v1 wire format for persisted session state.
type envelope struct {
	Version   int       `json:"version"`
	User      userDTO   `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userDTO struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}

// Marshal serializes a Session to JSON in v1 envelope format.
func Marshal(s teller.Session) ([]byte, error) {
	env := envelope{
		Version: 1,
		User: userDTO{
			Name:          s.User.Name,
			AccountNumber: s.User.AccountNumber,
			Balance:       s.User.Balance,
		},
		Token:     s.Token,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	return json.MarshalIndent(env, "", "  ")
}

// Unmarshal deserializes a Session from JSON in v1 envelope format.
func Unmarshal(data []byte) (teller.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return teller.Session{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return teller.Session{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	return teller.Session{
		User: teller.User{
			Name:          env.User.Name,
			AccountNumber: env.User.AccountNumber,
			Balance:       env.User.Balance,
		},
		Token:     env.Token,
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	}, nil
}

// Store implements [teller.Store] backed by a single file.
type Store struct {
	path string
}

// NewStore creates a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the session atomically, creating parent directories as
// needed. The file holds a bearer token, so it is not group-readable.
func (s *Store) Save(sess teller.Session) error {
	data, err := Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads the persisted session. A missing file means no session.
func (s *Store) Load() (teller.Session, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return teller.Session{}, false, nil
	}
	if err != nil {
		return teller.Session{}, false, fmt.Errorf("read state file: %w", err)
	}
	sess, err := Unmarshal(data)
	if err != nil {
		return teller.Session{}, false, err
	}
	return sess, true, nil
}

// Clear removes the state file. Removing an already-missing file is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
