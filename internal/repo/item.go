package repo

import (
	"ReviewBoard/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository: каталог item. Через API только чтение, создаёт seed.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	List(ctx context.Context) ([]model.Item, error)
	// GetByID возвращает gorm.ErrRecordNotFound, если item нет.
	GetByID(ctx context.Context, id string) (*model.Item, error)
}

type itemRepo struct {
	store
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB, timeout time.Duration) ItemRepository {
	return &itemRepo{store{db: db, timeout: timeout}}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return translate(r.db.WithContext(ctx).Create(it).Error)
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	items := []model.Item{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, translate(err)
	}
	return &it, nil
}
