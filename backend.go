package teller

import (
	"context"

	"github.com/shopspring/decimal"
)

// Backend is a strategy pattern interface for the remote banking assistant
// service. All substantive logic (authentication, intent parsing, ledger
// mutation) lives behind it; the client only mediates request/response
// flows.
//
// Implementations return *APIError for failures the backend reported in a
// structured response; any other error is treated as a transport failure.
type Backend interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	// Logout is best-effort; callers ignore its error beyond logging.
	Logout(ctx context.Context, token string) error
	Chat(ctx context.Context, token, message string) (ChatReply, error)
	ConfirmTransfer(ctx context.Context, token string, transfer PendingTransfer) (TransferResult, error)
}

// Credentials are the login inputs. All three fields are required after
// trimming; no format checking is applied beyond presence.
type Credentials struct {
	Name          string
	AccountNumber string
	AuthCode      string
}

// LoginResult is a successful authentication response.
type LoginResult struct {
	User  User
	Token string
}

// Intent names recognized in chat replies. The backend's intent classifier
// owns the full set; the client only branches on TransferMoney.
const (
	IntentTransferMoney = "TRANSFER_MONEY"
	IntentGetBalance    = "GET_BALANCE"
	IntentAccountInfo   = "ACCOUNT_INFO"
)

// ChatReply is the backend's answer to a chat message.
type ChatReply struct {
	Intent  string
	Message string

	// RequiresConfirmation with Intent == IntentTransferMoney proposes a
	// transfer; Transfer carries its destination and amount.
	RequiresConfirmation bool
	Transfer             *PendingTransfer

	// NewBalance is set when the reply explicitly carries a fresh session
	// balance.
	NewBalance *decimal.Decimal

	// Balance carries the informational payload of IntentGetBalance and
	// IntentAccountInfo replies. It may describe an account other than the
	// session's.
	Balance *BalanceData
}

// BalanceData is balance information attached to an informational reply.
type BalanceData struct {
	Balance       decimal.Decimal
	AccountNumber string
	Name          string
}

// TransferResult is a successful transfer confirmation response.
type TransferResult struct {
	Message    string
	NewBalance decimal.Decimal
}
