package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_SendsTokenAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/x", r.URL.Path)

		var m map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, float64(1), m["x"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	resp, err := NewClient(ts.URL+"/", "tok123").Do(context.Background(), http.MethodPost, "/api/x", map[string]any{"x": 1}, &out)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.OK)
}

func TestClient_Do_NoTokenNoHeader(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "").Do(context.Background(), http.MethodDelete, "/", nil, nil)
	assert.NoError(t, err)
}

func TestClient_Do_ErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"duplicate_review","message":"review already exists"}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "").Do(context.Background(), http.MethodGet, "/", nil, nil)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "duplicate_review", apiErr.Kind)
	assert.Contains(t, apiErr.Error(), "review already exists")
}

func TestClient_Do_PlainTextError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "").Do(context.Background(), http.MethodGet, "/", nil, nil)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "boom", apiErr.Message)
}

func TestClient_Do_MarshalError(t *testing.T) {
	// chan в payload вызовет ошибку json.Marshal
	_, err := NewClient("http://example.invalid", "").Do(context.Background(), http.MethodPost, "/", map[string]any{"c": make(chan int)}, nil)
	assert.Error(t, err)
}

func TestTokenFromResponse(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	_, ok := TokenFromResponse(resp)
	assert.False(t, ok)

	resp.Header.Add("Set-Cookie", (&http.Cookie{Name: AuthCookieName, Value: "tok-abc"}).String())
	tok, ok := TokenFromResponse(resp)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", tok)
}
