// Package alert posts formatted alert messages to a Google Chat space
// webhook, satisfying monitor.Alerter.
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client posts messages to a chat webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// New creates a webhook client with a 10 second timeout and traced
// transport.
func New(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewWithHTTPClient creates a webhook client with a custom HTTP client
// (for testing).
func NewWithHTTPClient(webhookURL string, httpClient *http.Client) *Client {
	return &Client{webhookURL: webhookURL, httpClient: httpClient}
}

// Send posts text as a chat message. Only the response status is
// consumed; any non-2xx status is an error.
func (c *Client) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("alert: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("alert: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("alert: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("alert: unexpected status %d", resp.StatusCode)
	}
	return nil
}
