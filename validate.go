package teller

import (
	"fmt"
	"strings"
)

// Trimmed returns a copy of the credentials with surrounding whitespace
// removed from every field.
func (c Credentials) Trimmed() Credentials {
	return Credentials{
		Name:          strings.TrimSpace(c.Name),
		AccountNumber: strings.TrimSpace(c.AccountNumber),
		AuthCode:      strings.TrimSpace(c.AuthCode),
	}
}

// Validate checks that every field is non-empty after trimming. Presence is
// the only client-side rule; format checks belong to the backend.
func (c Credentials) Validate() error {
	t := c.Trimmed()
	switch {
	case t.Name == "":
		return fmt.Errorf("name is required: %w", ErrValidation)
	case t.AccountNumber == "":
		return fmt.Errorf("account number is required: %w", ErrValidation)
	case t.AuthCode == "":
		return fmt.Errorf("auth code is required: %w", ErrValidation)
	}
	return nil
}
