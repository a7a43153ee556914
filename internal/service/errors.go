package service

import (
	"ReviewBoard/internal/repo"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Ошибки сервисного слоя. HTTP-статусы им сопоставляет пакет respond.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrDuplicateReview       = errors.New("review for this item already exists")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// storeErr переводит ошибки репозитория в ошибки сервиса.
// Дубликаты каждая операция разбирает сама.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return err
}
