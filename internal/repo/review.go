package repo

import (
	"ReviewBoard/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository: хранилище отзывов. Пара (user_id, item_id) уникальна.
type ReviewRepository interface {
	// Create возвращает ErrDuplicate, если у пользователя уже есть отзыв на item.
	Create(ctx context.Context, rv *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	GetForItem(ctx context.Context, itemID, id string) (*model.Review, error)
	FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.Review, error)
	ListByItem(ctx context.Context, itemID string) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)

	// Update и Delete дополнительно ограничены владельцем в WHERE.
	// Если строка не найдена (или чужая): gorm.ErrRecordNotFound.
	Update(ctx context.Context, userID, id string, updates map[string]any) (*model.Review, error)
	Delete(ctx context.Context, userID, id string) error
}

type reviewRepo struct {
	store
}

// NewReviewRepository создаёт репозиторий отзывов.
func NewReviewRepository(db *gorm.DB, timeout time.Duration) ReviewRepository {
	return &reviewRepo{store{db: db, timeout: timeout}}
}

func (r *reviewRepo) Create(ctx context.Context, rv *model.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	return translate(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *reviewRepo) GetByID(ctx context.Context, id string) (*model.Review, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *reviewRepo) GetForItem(ctx context.Context, itemID, id string) (*model.Review, error) {
	return r.first(ctx, "id = ? AND item_id = ?", id, itemID)
}

func (r *reviewRepo) FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.Review, error) {
	return r.first(ctx, "user_id = ? AND item_id = ?", userID, itemID)
}

func (r *reviewRepo) first(ctx context.Context, query string, args ...any) (*model.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rv model.Review
	if err := r.db.WithContext(ctx).Where(query, args...).First(&rv).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *reviewRepo) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	return r.list(ctx, "item_id = ?", itemID)
}

func (r *reviewRepo) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *reviewRepo) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out := []model.Review{}
	if err := r.db.WithContext(ctx).Where(query, args...).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *reviewRepo) Update(ctx context.Context, userID, id string, updates map[string]any) (*model.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rv model.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Review{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&rv).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *reviewRepo) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Review{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
