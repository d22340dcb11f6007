// Package api is the persistence gateway for the map editor: a JSON
// HTTP client for the zone layout endpoints. Edits apply to the local
// board first; the calls here run after the fact, one batch per user
// gesture.
package api

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
)

// APIError is a business error reported by the server (success=false or
// a non-2xx status). The server-provided message is kept so the UI can
// surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// TokenFunc returns the current anti-forgery token. It is called per
// request so a rotated token is picked up without rebuilding the client.
type TokenFunc func() string

// Client talks to the zone layout API. Mutating requests carry the
// anti-forgery token header and are retried once on transport failure.
type Client struct {
	BaseURL string
	Token   TokenFunc

	httpClient *http.Client
}

const (
	tokenHeader    = "X-CSRF-Token"
	requestTimeout = 15 * time.Second
)

func NewClient(baseURL string, token TokenFunc) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// LoadZone fetches the zone's furniture list, canvas dimensions, and
// furniture type registry.
func (c *Client) LoadZone(ctx context.Context, zoneID int64) (*ZoneResponse, error) {
	var resp ZoneResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/zone/%d", zoneID), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Message: resp.Error}
	}
	return &resp, nil
}

// CreateFurniture creates one item and returns its server-issued id.
func (c *Client) CreateFurniture(ctx context.Context, req CreateFurnitureRequest) (int64, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/furniture", req, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &APIError{Message: resp.Error}
	}
	return resp.FurnitureID, nil
}

// NextNumber asks the server for the next free label number for a
// furniture type within the zone.
func (c *Client) NextNumber(ctx context.Context, zoneID int64, typeKey string) (int, error) {
	var resp nextNumberResponse
	path := fmt.Sprintf("/furniture/next-number/%d/%s", zoneID, typeKey)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &APIError{Message: resp.Error}
	}
	return resp.NextNumber, nil
}

// UpdateProperty sets one property on one item.
func (c *Client) UpdateProperty(ctx context.Context, id int64, name string, value any) error {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/furniture/%d", id), map[string]any{name: value})
}

// UpdatePosition persists a single item's position and rotation.
func (c *Client) UpdatePosition(ctx context.Context, id int64, x, y, rotation float64) error {
	body := map[string]float64{"x": x, "y": y, "rotation": rotation}
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/furniture/%d/position", id), body)
}

// BatchUpdatePositions persists every moved item of one gesture in a
// single request.
func (c *Client) BatchUpdatePositions(ctx context.Context, updates []PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	body := map[string]any{"updates": updates}
	return c.mutate(ctx, http.MethodPut, "/furniture/batch-position", body)
}

// BatchDelete removes the given items in one request.
func (c *Client) BatchDelete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return c.mutate(ctx, http.MethodDelete, "/furniture/batch-delete", map[string]any{"ids": ids})
}

func (c *Client) mutate(ctx context.Context, method, path string, body any) error {
	var resp statusResponse
	if err := c.do(ctx, method, path, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.Error}
	}
	return nil
}

// do sends one JSON request and decodes the JSON response. Transport
// failures are retried once; business errors are not.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(250 * time.Millisecond):
			}
		}
		err := c.once(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && c.Token != nil {
		if tok := strings.TrimSpace(c.Token()); tok != "" {
			req.Header.Set(tokenHeader, tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		var probe statusResponse
		if json.Unmarshal(raw, &probe) == nil {
			msg = probe.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}
