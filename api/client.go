package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tellerhq/teller"
	"go.uber.org/zap"
)

// Interface compliance check.
var _ teller.Backend = (*Client)(nil)

// Client implements [teller.Backend] over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets a structured logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a new [Client] for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Login implements [teller.Backend].
func (c *Client) Login(ctx context.Context, creds teller.Credentials) (teller.LoginResult, error) {
	body := loginRequest{
		Name:          creds.Name,
		AccountNumber: creds.AccountNumber,
		AuthCode:      creds.AuthCode,
	}
	var res loginResponse
	status, err := c.post(ctx, loginPath, "", body, &res)
	if err != nil {
		return teller.LoginResult{}, err
	}
	if res.Error != "" || !res.Success {
		return teller.LoginResult{}, &teller.APIError{Status: status, Message: res.Error}
	}
	return teller.LoginResult{
		User: teller.User{
			Name:          res.User.Name,
			AccountNumber: res.User.AccountNumber,
			Balance:       res.User.Balance,
		},
		Token: res.Token,
	}, nil
}

// Logout implements [teller.Backend]. The response is ignored entirely;
// only transport failures are reported.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+logoutPath, nil)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Chat implements [teller.Backend].
func (c *Client) Chat(ctx context.Context, token, message string) (teller.ChatReply, error) {
	var res chatResponse
	status, err := c.post(ctx, chatPath, token, chatRequest{Message: message}, &res)
	if err != nil {
		return teller.ChatReply{}, err
	}
	if res.Error != "" {
		return teller.ChatReply{}, &teller.APIError{Status: status, Message: res.Error}
	}

	reply := teller.ChatReply{
		Intent:               res.Intent,
		Message:              res.Message,
		RequiresConfirmation: res.RequiresConfirmation,
		NewBalance:           res.NewBalance,
	}
	if res.TransferData != nil {
		reply.Transfer = &teller.PendingTransfer{
			ToAccount: res.TransferData.ToAccount,
			Amount:    res.TransferData.Amount,
		}
	}
	if res.Data != nil && res.Data.Balance != nil {
		reply.Balance = &teller.BalanceData{
			Balance:       *res.Data.Balance,
			AccountNumber: res.Data.AccountNumber,
			Name:          res.Data.Name,
		}
	}
	return reply, nil
}

// ConfirmTransfer implements [teller.Backend].
func (c *Client) ConfirmTransfer(ctx context.Context, token string, transfer teller.PendingTransfer) (teller.TransferResult, error) {
	body := confirmRequest{
		ToAccount: transfer.ToAccount,
		Amount:    json.Number(transfer.Amount.String()),
	}
	var res confirmResponse
	status, err := c.post(ctx, confirmPath, token, body, &res)
	if err != nil {
		return teller.TransferResult{}, err
	}
	if res.Error != "" || !res.Success {
		return teller.TransferResult{}, &teller.APIError{Status: status, Message: res.Error}
	}
	return teller.TransferResult{Message: res.Message, NewBalance: res.NewBalance}, nil
}

// post sends a JSON request and decodes the JSON response into out. It
// returns the HTTP status code so callers can attach it to backend-reported
// errors. A response that cannot be decoded is a transport-class failure.
func (c *Client) post(ctx context.Context, path, token string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("api: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("api: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("api: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("api: read response: %w", err)
	}
	c.log.Debug("api request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)))

	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return resp.StatusCode, fmt.Errorf("api: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return resp.StatusCode, fmt.Errorf("api: decode response: %w", err)
	}
	return resp.StatusCode, nil
}
