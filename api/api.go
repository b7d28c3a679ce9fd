// Package api implements [teller.Backend] against the banking assistant's
// HTTP JSON API.
//
// Failures the backend reports in a structured body (an "error" field, with
// or without a 2xx status) are returned as [*teller.APIError] so callers can
// surface them verbatim. Connection failures and malformed responses are
// returned as plain errors and treated as transport problems.
package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	loginPath   = "/api/auth/login"
	logoutPath  = "/api/auth/logout"
	chatPath    = "/api/chat"
	confirmPath = "/api/transfer/confirm"
)

// loginRequest is the JSON body for POST /api/auth/login.
type loginRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	AuthCode      string `json:"auth_code"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
	Error   string      `json:"error"`
}

type userPayload struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}

// chatRequest is the JSON body for POST /api/chat.
type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Intent               string           `json:"intent"`
	Message              string           `json:"message"`
	Error                string           `json:"error"`
	RequiresConfirmation bool             `json:"requires_confirmation"`
	TransferData         *transferPayload `json:"transfer_data"`
	NewBalance           *decimal.Decimal `json:"new_balance"`
	Data                 *intentData      `json:"data"`
}

type transferPayload struct {
	ToAccount string          `json:"to_account"`
	Amount    decimal.Decimal `json:"amount"`
}

// intentData is the informational payload on GET_BALANCE / ACCOUNT_INFO
// replies.
type intentData struct {
	Balance       *decimal.Decimal `json:"balance"`
	AccountNumber string           `json:"account_number"`
	Name          string           `json:"name"`
}

// confirmRequest is the JSON body for POST /api/transfer/confirm.
// Amount is serialized as a bare JSON number, which is what the ledger
// expects; decimal's default marshaling would quote it.
type confirmRequest struct {
	ToAccount string      `json:"to_account"`
	Amount    json.Number `json:"amount"`
}

type confirmResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	NewBalance decimal.Decimal `json:"new_balance"`
}
