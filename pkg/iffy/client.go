package iffy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Config holds the parameters for New.
type Config struct {
	APIKey     string
	BaseURL    string       // defaults to DefaultBaseURL
	HTTPClient *http.Client // defaults to &http.Client{}
}

// Validate checks that the configuration can produce a client.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key is required", ErrInvalidConfiguration)
	}
	return nil
}

// Client is the Iffy moderation API client. It holds no mutable state.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Iffy client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// APIKey returns the key the client was built with.
func (c *Client) APIKey() string {
	return c.apiKey
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthHeaders returns the bearer authorization header.
func (c *Client) AuthHeaders() Headers {
	return Headers{{Name: headerAuthorization, Value: bearerPrefix + c.apiKey}}
}

// DefaultHeaders returns the JSON content negotiation headers.
func (c *Client) DefaultHeaders() Headers {
	return Headers{
		{Name: headerAccept, Value: mimeJSON},
		{Name: headerContentType, Value: mimeJSON},
	}
}

// Moderate submits content for moderation. Failures are returned as
// *ServerError or *TransportError results, never as a separate error.
func (c *Client) Moderate(ctx context.Context, content []Content) Result {
	if content == nil {
		content = []Content{}
	}

	body, err := json.Marshal(moderateRequest{Content: content})
	if err != nil {
		return &TransportError{Op: OpEncode, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ModeratePath, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: OpRequest, Err: err}
	}

	c.DefaultHeaders().apply(httpReq.Header)
	c.AuthHeaders().apply(httpReq.Header)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Op: OpDo, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &TransportError{Op: OpDecode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp.StatusCode, raw)
	}

	return parseResponse(resp.StatusCode, raw)
}

// newStatusError builds a ServerError for a non-2xx response, preferring the
// in-band message over the raw body.
func newStatusError(status int, raw []byte) *ServerError {
	var parsed moderateResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return &ServerError{StatusCode: status, Message: parsed.Error.Message}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &ServerError{StatusCode: status, Message: msg}
}

func parseResponse(status int, raw []byte) Result {
	var parsed moderateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &TransportError{Op: OpDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if parsed.Error != nil {
		msg := parsed.Error.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &ServerError{StatusCode: status, Message: msg}
	}

	if parsed.Iffy == nil || parsed.Reasoning == nil {
		return &TransportError{Op: OpDecode, Err: fmt.Errorf("%w: missing iffy or reasoning", ErrUnexpectedResponse)}
	}

	return &Verdict{Iffy: *parsed.Iffy, Reasoning: *parsed.Reasoning}
}
