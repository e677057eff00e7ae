package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	internal_errors "github.com/postdeck/postdeck/internal/errors"
)

// Client handles all communication with the remote record store.
type Client struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new client for interacting with the record store.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

// do is the single, unified helper for making store requests.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store unavailable: %w: %v", internal_errors.ErrNetwork, err)
	}
	return resp, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out, classifying
// failures as network (bad status) or decode (malformed body).
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("store returned status %d: %w", resp.StatusCode, internal_errors.ErrNetwork)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode store response: %w: %v", internal_errors.ErrDecode, err)
	}
	return nil
}
