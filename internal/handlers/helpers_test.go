package handlers

import (
	"ReviewBoard/internal/auth"
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"ReviewBoard/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testEnv: роутер поверх настоящих репозиториев на in-memory SQLite.
type testEnv struct {
	t      *testing.T
	router http.Handler
	db     *gorm.DB
	item   *model.Item
}

func newTestEnv(t *testing.T, revealForeign bool) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), 1)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	timeout := 2 * time.Second
	users := repo.NewUserRepository(db, timeout)
	items := repo.NewItemRepository(db, timeout)
	reviews := repo.NewReviewRepository(db, timeout)
	comments := repo.NewCommentRepository(db, timeout)

	item := &model.Item{Name: "Alberino", Category: "restaurant"}
	require.NoError(t, items.Create(context.Background(), item))

	logger := zap.NewNop().Sugar()
	guard := service.NewOwnershipGuard(revealForeign)
	h := NewHandler(Services{
		Users:    service.NewUserService(users, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewTokenService("test-secret", time.Hour)),
		Items:    service.NewItemService(items),
		Reviews:  service.NewReviewService(reviews, items, guard, logger),
		Comments: service.NewCommentService(comments, reviews, guard, logger),
		Health:   func(ctx context.Context) error { return repo.Ping(ctx, db) },
	}, logger)

	return &testEnv{t: t, router: h.Router, db: db, item: item}
}

// do выполняет запрос; body кодируется в JSON, если это не строка.
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(e.t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register регистрирует пользователя и возвращает его токен.
func (e *testEnv) register(username string) string {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/auth/register", "", CredentialsRequest{Username: username, Password: "s3cret"})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp TokenResponse
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(e.t, resp.Token)
	return resp.Token
}

func (e *testEnv) createReview(token, text string, ranking int) model.Review {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/items/"+e.item.ID+"/reviews", token,
		ReviewRequest{Text: &text, Ranking: &ranking})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())
	var rv model.Review
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &rv))
	return rv
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
