// Package client is a small API client over the portfolio endpoints. It
// mirrors what the admin UI needs: one call per request, the response
// envelope decoded, the session carried by cookie jar and bearer token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
)

// Response is the decoded API envelope. Data stays raw so callers unmarshal
// into whatever entity type they expect.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create cookie jar: %w", err)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Jar: jar},
	}, nil
}

// SetToken switches the client to header-based auth. With an empty token the
// cookie jar alone carries the session.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// Login authenticates and stores the returned token for later requests. The
// session cookie lands in the jar as a side effect.
func (c *Client) Login(ctx context.Context, username, password string) (*Response, error) {
	resp, err := c.Post(ctx, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Data, &payload); err == nil && payload.Token != "" {
		c.token = payload.Token
	}
	return resp, nil
}

// do performs a single attempt; there is no retry. A non-2xx status is not
// an error here — the envelope's Success field carries the verdict.
func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cannot encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("cannot build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("cannot decode response: %w", err)
	}
	return &resp, nil
}
