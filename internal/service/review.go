package service

import (
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewService инкапсулирует бизнес-логику отзывов.
type ReviewService struct {
	reviews repo.ReviewRepository
	items   repo.ItemRepository
	guard   *OwnershipGuard
	logger  *zap.SugaredLogger
}

func NewReviewService(reviews repo.ReviewRepository, items repo.ItemRepository, guard *OwnershipGuard, logger *zap.SugaredLogger) *ReviewService {
	return &ReviewService{reviews: reviews, items: items, guard: guard, logger: logger}
}

// ReviewInput: изменяемые поля отзыва. nil означает "не задано".
type ReviewInput struct {
	Text    *string
	Ranking *int
}

// Create создаёт отзыв actor на item. Второй отзыв на тот же item: ErrDuplicateReview.
func (s *ReviewService) Create(ctx context.Context, actor *model.Identity, itemID string, in ReviewInput) (*model.Review, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if itemID == "" || in.Text == nil || *in.Text == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, storeErr(err)
	}

	// быстрая проверка; гонку разрешает уникальный индекс (user_id, item_id)
	existing, err := s.reviews.FindByUserAndItem(ctx, actor.ID, itemID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	rv := &model.Review{
		UserID:  actor.ID,
		ItemID:  itemID,
		Text:    *in.Text,
		Ranking: model.DefaultRanking,
	}
	if in.Ranking != nil {
		rv.Ranking = *in.Ranking
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateReview
		}
		return nil, storeErr(err)
	}
	return rv, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*model.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return rv, nil
}

// GetForItem возвращает отзыв, только если он относится к itemID.
func (s *ReviewService) GetForItem(ctx context.Context, itemID, id string) (*model.Review, error) {
	rv, err := s.reviews.GetForItem(ctx, itemID, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return rv, nil
}

// ListByItem: отзывы на item; несуществующий item: ErrNotFound.
func (s *ReviewService) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, storeErr(err)
	}
	list, err := s.reviews.ListByItem(ctx, itemID)
	return list, storeErr(err)
}

func (s *ReviewService) ListByUser(ctx context.Context, actor *model.Identity) ([]model.Review, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	list, err := s.reviews.ListByUser(ctx, actor.ID)
	return list, storeErr(err)
}

// Update меняет текст и/или оценку. Владелец сверяется по сохранённой записи.
func (s *ReviewService) Update(ctx context.Context, actor *model.Identity, id string, in ReviewInput) (*model.Review, error) {
	updates := map[string]any{}
	if in.Text != nil {
		if *in.Text == "" {
			return nil, ErrInvalidInput
		}
		updates["text"] = *in.Text
	}
	if in.Ranking != nil {
		updates["ranking"] = *in.Ranking
	}
	if len(updates) == 0 {
		return nil, ErrInvalidInput
	}

	owner, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	rv, err := s.reviews.Update(ctx, owner, id, updates)
	if err != nil {
		return nil, storeErr(err)
	}
	return rv, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor *model.Identity, id string) error {
	owner, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	return storeErr(s.reviews.Delete(ctx, owner, id))
}

// owned загружает отзыв и проверяет, что actor: его владелец. Возвращает id владельца.
func (s *ReviewService) owned(ctx context.Context, actor *model.Identity, id string) (string, error) {
	if actor == nil {
		return "", ErrUnauthorized
	}
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return "", storeErr(err)
	}
	if err := s.guard.Check(actor, rv.UserID, "review"); err != nil {
		s.logger.Warnw("ownership check failed", "resource", "review", "id", id, "actor", actor.ID)
		return "", err
	}
	return rv.UserID, nil
}
