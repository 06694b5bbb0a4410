// Package gemini provides a Gemini API text generation client.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/ganilson/synctechSite/pkg/llm"
)

const (
	// DefaultModel is the default generation model
	DefaultModel = "gemini-1.5-flash"

	// DefaultTimeout bounds one generation call
	DefaultTimeout = 60 * time.Second
)

// Config holds the configuration for the Gemini client
type Config struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	Temperature     float64
	MaxOutputTokens int

	// BaseURL overrides the API endpoint
	BaseURL string
}

// Client is a Gemini API client. It never retries.
type Client struct {
	client          *genai.Client
	model           string
	timeout         time.Duration
	temperature     float64
	maxOutputTokens int
	log             *slog.Logger
	httpClient      *http.Client
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient sets the HTTP client used for API calls
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

var _ llm.Provider = (*Client)(nil)

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		model:           cfg.Model,
		timeout:         cfg.Timeout,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.client = client

	return c, nil
}

// IsConfigured reports whether the underlying client exists
func (c *Client) IsConfigured() bool {
	return c != nil && c.client != nil
}

// Model returns the model name used for generation
func (c *Client) Model() string { return c.model }

// Generate sends the system instruction and the user prompt in one request
// and returns the text of the first candidate.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("gemini client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)},
		c.generateConfig(req.System),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := ""
	if resp != nil && len(resp.Candidates) > 0 {
		text = resp.Text()
	}
	if strings.TrimSpace(text) == "" {
		reason := "no candidates"
		if resp != nil && len(resp.Candidates) > 0 {
			reason = string(resp.Candidates[0].FinishReason)
		}
		return "", fmt.Errorf("%w (%s)", llm.ErrEmptyResponse, reason)
	}

	c.log.Debug("generation completed",
		slog.String("model", c.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("chars", len(text)),
	)

	return text, nil
}

func (c *Client) generateConfig(system string) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{}
	if system != "" {
		gc.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if c.temperature > 0 {
		gc.Temperature = ptrFloat32(float32(c.temperature))
	}
	if c.maxOutputTokens > 0 {
		gc.MaxOutputTokens = int32(c.maxOutputTokens)
	}
	return gc
}

func ptrFloat32(v float32) *float32 { return &v }
