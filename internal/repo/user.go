package repo

import (
	"ReviewBoard/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository: хранилище учётных данных. Логин уникален на уровне БД.
type UserRepository interface {
	// CreateUser создаёт пользователя; при занятом логине возвращает ErrDuplicate.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetUserByLogin ищет пользователя по логину; gorm.ErrRecordNotFound, если нет.
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	// GetUserByID ищет пользователя по идентификатору; gorm.ErrRecordNotFound, если нет.
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type userRepo struct {
	store
}

// NewUserRepository создаёт репозиторий пользователей.
func NewUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &userRepo{store{db: db, timeout: timeout}}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", login).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
