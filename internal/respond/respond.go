// Package respond пишет JSON-ответы и единообразно превращает ошибки сервиса в HTTP-статусы.
package respond

import (
	"ReviewBoard/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ErrorBody: тело ответа с ошибкой.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type mapping struct {
	err    error
	status int
	kind   string
}

// порядок важен: первая совпавшая ошибка определяет ответ
var mappings = []mapping{
	{service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{service.ErrUsernameTaken, http.StatusBadRequest, "username_taken"},
	{service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden"},
	{service.ErrNotFound, http.StatusNotFound, "not_found"},
	{service.ErrDuplicateReview, http.StatusConflict, "duplicate_review"},
	{service.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependency_unavailable"},
}

// JSON пишет v со статусом status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error: единственное место, где ошибка становится HTTP-ответом.
// Неизвестные ошибки логируются и отдаются как 500 без подробностей.
func Error(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	status, body := Classify(err)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Errorw("request failed", "status", status, "error", err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		logger.Debugw("request rejected", "status", status, "error", err)
	}
	JSON(w, status, body)
}

// Classify возвращает статус и тело ответа для ошибки.
func Classify(err error) (int, ErrorBody) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.status, ErrorBody{Error: m.kind, Message: m.err.Error()}
		}
	}
	return http.StatusInternalServerError, ErrorBody{Error: "internal", Message: "internal error"}
}
