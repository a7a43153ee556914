package handlers

import (
	"ReviewBoard/internal/middleware"
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/respond"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_RegisterLoginMe(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(http.MethodPost, "/api/auth/register", "", CredentialsRequest{Username: "alice", Password: "s3cret"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[TokenResponse](t, rec).Token)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), middleware.AuthCookieName+"=")

	rec = env.do(http.MethodPost, "/api/auth/login", "", CredentialsRequest{Username: "alice", Password: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[TokenResponse](t, rec).Token
	require.NotEmpty(t, token)

	rec = env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := decode[model.Identity](t, rec)
	assert.Equal(t, "alice", me.Username)
	assert.NotEmpty(t, me.ID)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = env.do(http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decode[respond.ErrorBody](t, rec).Error)
}

func TestUserHandler_MeTransports(t *testing.T) {
	env := newTestEnv(t, false)
	token := env.register("alice")

	t.Run("raw authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no token", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_RegisterErrors(t *testing.T) {
	env := newTestEnv(t, false)
	env.register("alice")

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantKind string
	}{
		{"username taken", CredentialsRequest{Username: "alice", Password: "other"}, http.StatusBadRequest, "username_taken"},
		{"missing password", CredentialsRequest{Username: "bob"}, http.StatusBadRequest, "invalid_input"},
		{"missing username", CredentialsRequest{Password: "x"}, http.StatusBadRequest, "invalid_input"},
		{"broken json", "{not json", http.StatusBadRequest, "invalid_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantKind, decode[respond.ErrorBody](t, rec).Error)
		})
	}
}

func TestUserHandler_LoginFailuresLookTheSame(t *testing.T) {
	env := newTestEnv(t, false)
	env.register("alice")

	wrongPass := env.do(http.MethodPost, "/api/auth/login", "", CredentialsRequest{Username: "alice", Password: "nope"})
	unknown := env.do(http.MethodPost, "/api/auth/login", "", CredentialsRequest{Username: "mallory", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	assert.Empty(t, wrongPass.Header().Get("Set-Cookie"))
}

func TestUserHandler_ConcurrentRegisterSameUsername(t *testing.T) {
	env := newTestEnv(t, false)

	const n = 6
	codes := make([]int, n)
	kinds := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
				strings.NewReader(`{"username":"alice","password":"s3cret"}`))
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)
			codes[i] = rec.Code
			if rec.Code != http.StatusCreated {
				var body respond.ErrorBody
				_ = json.Unmarshal(rec.Body.Bytes(), &body)
				kinds[i] = body.Error
			}
		}(i)
	}
	wg.Wait()

	created := 0
	for i, c := range codes {
		if c == http.StatusCreated {
			created++
			continue
		}
		assert.Equal(t, http.StatusBadRequest, c)
		assert.Equal(t, "username_taken", kinds[i])
	}
	assert.Equal(t, 1, created)

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserHandler_OversizedBodyRejected(t *testing.T) {
	env := newTestEnv(t, false)
	payload := `{"username":"` + strings.Repeat("a", 1<<20) + `","password":"x"}`

	t.Run("plain", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/auth/register", "", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_input", decode[respond.ErrorBody](t, rec).Error)
	})

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		// сжатое тело маленькое, ограничение действует на распакованное
		require.Less(t, buf.Len(), 64<<10)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var count int64
		require.NoError(t, env.db.Model(&model.User{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
