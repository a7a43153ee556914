package commands

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ReviewBoard/internal/config"
)

// testConfig указывает клиенту на тестовый сервер и временный файл токена.
func testConfig(t *testing.T, ts *httptest.Server) *config.Config {
	t.Helper()
	cfg := &config.Config{TokenFile: filepath.Join(t.TempDir(), "auth_token")}
	if ts != nil {
		cfg.ServerURL = ts.URL
	}
	return cfg
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
