// Package api: HTTP-клиент CLI к REST API сервера.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// AuthCookieName: cookie, в которой сервер дублирует токен.
const AuthCookieName = "auth_token"

// Error: ответ сервера с кодом не 2xx.
type Error struct {
	Status  int
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server status %d", e.Status)
}

// Client отправляет JSON-запросы. Token, если задан, уходит в заголовке Authorization.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token, HTTP: http.DefaultClient}
}

// Do выполняет запрос и декодирует тело ответа в out (если out не nil).
func (c *Client) Do(ctx context.Context, method, path string, payload, out any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return resp, apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp, fmt.Errorf("decode: %w", err)
		}
	}
	return resp, nil
}

// TokenFromResponse достаёт токен из auth cookie ответа.
func TokenFromResponse(resp *http.Response) (string, bool) {
	for _, c := range resp.Cookies() {
		if c.Name == AuthCookieName && c.Value != "" {
			return c.Value, true
		}
	}
	return "", false
}
