// Package api holds thin REST clients for the FoodForConferences backend.
//
// Every endpoint answers in the platform envelope {"success", "data",
// "message"}; the clients unwrap it and translate non-2xx statuses into the
// shared error types. Authentication is a bearer token attached from a
// TokenSource on every request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/httpclient"
)

// Doer executes HTTP requests. Both httpclient.Client and
// httpclient.CircuitBreakerClient satisfy this.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the shared transport for all endpoint clients.
type Client struct {
	baseURL string
	http    Doer
	tokens  TokenSource
	logger  *slog.Logger
}

// NewClient creates a backend client. baseURL should include the /api prefix,
// e.g. "http://localhost:5050/api".
func NewClient(baseURL string, doer Doer, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		tokens:  tokens,
		logger:  logger,
	}
}

// Orders returns the orders endpoint client.
func (c *Client) Orders() *OrdersClient { return &OrdersClient{c} }

// Payments returns the payments endpoint client.
func (c *Client) Payments() *PaymentsClient { return &PaymentsClient{c} }

// Events returns the events endpoint client.
func (c *Client) Events() *EventsClient { return &EventsClient{c} }

// Menus returns the menus endpoint client.
func (c *Client) Menus() *MenusClient { return &MenusClient{c} }

// Auth returns the auth endpoint client.
func (c *Client) Auth() *AuthClient { return &AuthClient{c} }

// envelope is the standard backend response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) get(ctx context.Context, path, operation string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	return c.send(ctx, req, operation, out)
}

func (c *Client) post(ctx context.Context, path, operation string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", operation, err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(ctx, req, operation, out)
}

func (c *Client) send(ctx context.Context, req *http.Request, operation string, out any) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("call %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return httpclient.ParseResponseError(resp, operation)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s: %s", apperrors.ErrInternal, operation, env.Message)
	}

	c.logger.DebugContext(ctx, "backend call succeeded",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
	)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", operation, err)
	}
	return nil
}
