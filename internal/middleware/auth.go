package middleware

import (
	"ReviewBoard/internal/metrics"
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/respond"
	"ReviewBoard/internal/service"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AuthCookieName: имя cookie, в которую дублируется токен при входе.
const AuthCookieName = "auth_token"

type ctxKey struct{}

// Authenticator разрешает токен в пользователя. Реализуется service.UserService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
}

// RequireAuth пропускает запрос дальше, только если токен валиден и пользователь существует.
// Токен берётся из заголовка Authorization ("Bearer <token>" или сырой токен), затем из cookie.
func RequireAuth(a Authenticator, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				respond.Error(w, logger, service.ErrUnauthorized)
				return
			}

			identity, err := a.Authenticate(r.Context(), token)
			if err != nil {
				// не-аутентификационные ошибки (БД недоступна) уходят в общий маппинг как есть
				respond.Error(w, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if h := strings.TrimSpace(r.Header.Get("Authorization")); h != "" {
		if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
			return strings.TrimSpace(h[7:])
		}
		return h
	}
	if c, err := r.Cookie(AuthCookieName); err == nil {
		return c.Value
	}
	return ""
}

// WithIdentity кладёт пользователя в контекст.
func WithIdentity(ctx context.Context, id *model.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext возвращает пользователя, установленного RequireAuth.
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*model.Identity)
	return id, ok && id != nil
}

// GetUserIDFromContext: короткий путь к идентификатору пользователя.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return "", false
	}
	return id.ID, true
}

// SetLoginCookie дублирует токен в HttpOnly cookie.
func SetLoginCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
