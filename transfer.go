package teller

import "github.com/shopspring/decimal"

// PendingTransfer is a transfer proposal awaiting explicit user confirmation.
// At most one exists at a time; a new proposal silently replaces any prior
// unconfirmed one. It is cleared on confirm (in every outcome) and on cancel.
type PendingTransfer struct {
	ToAccount   string
	Amount      decimal.Decimal
	FromAccount string // derived from the session, not from the backend
}
