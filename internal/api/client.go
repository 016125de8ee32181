package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/metrics"
)

// Envelope is the backend's response convention for mutating endpoints:
// { success: boolean, message: string, data?: T }.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the single HTTP client for the TutorGo REST backend. It attaches
// the caller's bearer token per request; it holds no credential state itself.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

func (c *Client) Get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodGet, token, path, nil, out)
}

func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, token, path, body, out)
}

func (c *Client) Put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, token, path, body, out)
}

func (c *Client) Delete(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, out)
}

// PostEnvelope posts to an envelope endpoint and unwraps it: success:false
// becomes a backend error carrying the envelope message, success:true
// unmarshals data into out (when both are present). The success message is
// returned for callers that surface it.
func (c *Client) PostEnvelope(ctx context.Context, token, path string, body, out any) (string, error) {
	var env Envelope
	if err := c.do(ctx, http.MethodPost, token, path, body, &env); err != nil {
		return "", err
	}
	return unwrap(env, out)
}

func (c *Client) PutEnvelope(ctx context.Context, token, path string, body, out any) (string, error) {
	var env Envelope
	if err := c.do(ctx, http.MethodPut, token, path, body, &env); err != nil {
		return "", err
	}
	return unwrap(env, out)
}

func (c *Client) DeleteEnvelope(ctx context.Context, token, path string, out any) (string, error) {
	var env Envelope
	if err := c.do(ctx, http.MethodDelete, token, path, nil, &env); err != nil {
		return "", err
	}
	return unwrap(env, out)
}

func unwrap(env Envelope, out any) (string, error) {
	if !env.Success {
		return "", &Error{Kind: KindBackend, Status: http.StatusOK, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", &Error{Kind: KindDecode, cause: err}
		}
	}
	return env.Message, nil
}

func (c *Client) do(ctx context.Context, method, token, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	metrics.UpstreamRequests.Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamFailures.Inc()
		return &Error{Kind: KindNetwork, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return ErrNoContent
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamFailures.Inc()
		return &Error{Kind: KindBackend, Status: resp.StatusCode, Message: backendMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindDecode, cause: err}
		}
	}
	return nil
}

// backendMessage pulls the error envelope's message out of a failed response
// body, if there is one.
func backendMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return strings.TrimSpace(env.Message)
}
