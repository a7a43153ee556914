package handlers

import (
	"ReviewBoard/internal/middleware"
	"ReviewBoard/internal/respond"
	"ReviewBoard/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler: регистрация, вход и текущий пользователь.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// CredentialsRequest: тело register и login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse: ответ с выданным токеном.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		respond.Error(w, h.Logger, err)
		return
	}

	token, user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID, "username", user.Username)
	middleware.SetLoginCookie(w, token)
	respond.JSON(w, http.StatusCreated, TokenResponse{Token: token})
}

// Login вход по логину и паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		respond.Error(w, h.Logger, err)
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	middleware.SetLoginCookie(w, token)
	respond.JSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Me возвращает текущего пользователя без хеша пароля
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, err := h.UserService.Me(r.Context(), actor(r))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, id)
}
