package repo

import (
	"ReviewBoard/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository: хранилище комментариев к отзывам.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Comment, error)
	Update(ctx context.Context, userID, id string, text string) (*model.Comment, error)
	Delete(ctx context.Context, userID, id string) error
}

type commentRepo struct {
	store
}

func NewCommentRepository(db *gorm.DB, timeout time.Duration) CommentRepository {
	return &commentRepo{store{db: db, timeout: timeout}}
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var c model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *commentRepo) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	return r.list(ctx, "review_id = ?", reviewID)
}

func (r *commentRepo) ListByUser(ctx context.Context, userID string) ([]model.Comment, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *commentRepo) list(ctx context.Context, query string, args ...any) ([]model.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out := []model.Comment{}
	if err := r.db.WithContext(ctx).Where(query, args...).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *commentRepo) Update(ctx context.Context, userID, id string, text string) (*model.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var c model.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Comment{}).Where("id = ? AND user_id = ?", id, userID).Update("text", text)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&c).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *commentRepo) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Comment{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
