package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CredentialSource supplies the bearer token attached to every request.
type CredentialSource interface {
	Token() (string, error)
}

// API is the remote store boundary consumed by the sync orchestrator.
type API interface {
	SyncAll(ctx context.Context, req *SyncRequest) (*SyncResponse, error)
	PushFast(ctx context.Context, fast WireFast) error
	DeleteFast(ctx context.Context, id string) error
	PushWeight(ctx context.Context, weight WireWeight) error
	PushProfile(ctx context.Context, profile WireProfile) error
}

type client struct {
	baseURL    string
	creds      CredentialSource
	httpClient *http.Client
}

func NewClient(baseURL string, creds CredentialSource, timeout time.Duration) API {
	return &client{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the generic response wrapper used by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c *client) SyncAll(ctx context.Context, req *SyncRequest) (*SyncResponse, error) {
	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/v1/sync", req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	defer resp.Body.Close()

	var syncResp SyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&syncResp); err != nil {
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("sync failed: status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to decode sync response: %w", err)
	}

	if resp.StatusCode >= 400 || !syncResp.Success {
		msg := syncResp.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("sync rejected by server: %s", msg)
	}

	return &syncResp, nil
}

func (c *client) PushFast(ctx context.Context, fast WireFast) error {
	return c.send(ctx, http.MethodPut, "/api/v1/fasts/"+fast.ID, fast)
}

func (c *client) DeleteFast(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/v1/fasts/"+id, nil)
}

func (c *client) PushWeight(ctx context.Context, weight WireWeight) error {
	return c.send(ctx, http.MethodPut, "/api/v1/weights/"+weight.ID, weight)
}

func (c *client) PushProfile(ctx context.Context, profile WireProfile) error {
	return c.send(ctx, http.MethodPut, "/api/v1/profile", profile)
}

func (c *client) send(ctx context.Context, method, path string, body interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
			return fmt.Errorf("server rejected %s %s: %s", method, path, env.Error)
		}
		return fmt.Errorf("server rejected %s %s: status %d", method, path, resp.StatusCode)
	}

	return nil
}

func (c *client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	token, err := c.creds.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return req, nil
}
