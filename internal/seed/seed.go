// Package seed заполняет пустую базу демонстрационными пользователями и items.
package seed

import (
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"ReviewBoard/internal/service"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type demoUser struct {
	Username string
	Password string
}

var demoUsers = []demoUser{
	{"Jane", "j_pwd"},
	{"Jackie", "j_pwd"},
	{"Amber", "a_pwd"},
}

var demoItems = []model.Item{
	{Name: "Alberino", Category: "restaurant"},
	{Name: "Nordstrom", Category: "retail store"},
	{Name: "Starbucks", Category: "cafe"},
}

// Seeder создаёт демо-данные. Повторный запуск ничего не дублирует.
type Seeder struct {
	users  *service.UserService
	items  repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewSeeder(users *service.UserService, items repo.ItemRepository, logger *zap.SugaredLogger) *Seeder {
	return &Seeder{users: users, items: items, logger: logger}
}

// Run создаёт пользователей через обычную регистрацию (пароли хешируются) и items напрямую.
func (s *Seeder) Run(ctx context.Context) error {
	for _, u := range demoUsers {
		_, user, err := s.users.Register(ctx, u.Username, u.Password)
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			s.logger.Infow("user already exists", "username", u.Username)
		case err != nil:
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		default:
			s.logger.Infow("user created", "username", user.Username, "user_id", user.ID)
		}
	}

	existing, err := s.items.List(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, it := range existing {
		have[it.Name] = true
	}

	for _, it := range demoItems {
		if have[it.Name] {
			s.logger.Infow("item already exists", "name", it.Name)
			continue
		}
		if err := s.items.Create(ctx, &it); err != nil {
			return fmt.Errorf("seed item %s: %w", it.Name, err)
		}
		s.logger.Infow("item created", "name", it.Name, "item_id", it.ID)
	}
	return nil
}
