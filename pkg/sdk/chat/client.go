// Package chat provides a Go client for the Synctech chat relay.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ganilson/synctechSite/internal/version"
	"github.com/ganilson/synctechSite/pkg/i18n"
)

const (
	chatPath       = "/api/chat"
	defaultTimeout = 90 * time.Second
)

// APIError is a non-2xx answer from the relay.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// IsBadRequest returns true if the error is a 400 Bad Request error.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// Client talks to POST /api/chat. It keeps no conversation state; every
// Send is one independent request.
type Client struct {
	http      *http.Client
	base      string
	bundle    *i18n.Bundle
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBundle sets the translations used for Reply's fallback message.
func WithBundle(b *i18n.Bundle) Option {
	return func(c *Client) { c.bundle = b }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a chat client for the site at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		base:      strings.TrimRight(baseURL, "/"),
		bundle:    i18n.Default(),
		userAgent: version.UserAgent("synctech-sdk"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Message string `json:"message"`
	Lang    string `json:"lang,omitempty"`
}

type response struct {
	Content string `json:"content"`
}

// Send posts one message and returns the assistant's reply.
func (c *Client) Send(ctx context.Context, message, lang string) (string, error) {
	body, err := json.Marshal(request{Message: message, Lang: lang})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+chatPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", parseError(resp)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Content, nil
}

// Reply is Send for chat surfaces: any failure becomes the localized
// connection-trouble message.
func (c *Client) Reply(ctx context.Context, message, lang string) string {
	content, err := c.Send(ctx, message, lang)
	if err != nil {
		return c.bundle.T(c.bundle.Normalize(lang), "ai.error")
	}
	return content
}

func parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read error response: %v", err),
		}
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
