package service

import (
	"ReviewBoard/internal/auth"
	"ReviewBoard/internal/metrics"
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService: регистрация, вход и разрешение токена в пользователя.
type UserService struct {
	repo   repo.UserRepository
	hasher auth.PasswordHasher
	tokens *auth.TokenService
}

func NewUserService(r repo.UserRepository, hasher auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{repo: r, hasher: hasher, tokens: tokens}
}

// Register создаёт пользователя и сразу выпускает для него токен.
func (s *UserService) Register(ctx context.Context, login, password string) (string, *model.User, error) {
	if login == "" || password == "" {
		return "", nil, ErrInvalidInput
	}

	// быстрая проверка; окончательно решает уникальный индекс
	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, storeErr(err)
	}
	if existing != nil {
		return "", nil, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", nil, ErrInvalidInput
		}
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{Username: login, Password: hash})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return "", nil, ErrUsernameTaken
		}
		return "", nil, storeErr(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// Login проверяет логин и пароль. Неизвестный логин и неверный пароль неотличимы.
func (s *UserService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", storeErr(err)
	}
	if user == nil {
		s.hasher.VerifyDummy(password)
		metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		return "", ErrUnauthorized
	}
	if !s.hasher.Verify(password, user.Password) {
		metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		return "", ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Authenticate проверяет токен и загружает пользователя, которому он выдан.
func (s *UserService) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, ErrUnauthorized
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
			return nil, ErrUnauthorized
		}
		return nil, storeErr(err)
	}
	if user == nil {
		metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
		return nil, ErrUnauthorized
	}
	return user.Identity(), nil
}

// Me возвращает текущего пользователя. Identity уже загружена middleware, повторно в БД не ходим.
func (s *UserService) Me(_ context.Context, actor *model.Identity) (*model.Identity, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	return actor, nil
}
