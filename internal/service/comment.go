package service

import (
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"context"

	"go.uber.org/zap"
)

// CommentService: комментарии к отзывам.
type CommentService struct {
	comments repo.CommentRepository
	reviews  repo.ReviewRepository
	guard    *OwnershipGuard
	logger   *zap.SugaredLogger
}

func NewCommentService(comments repo.CommentRepository, reviews repo.ReviewRepository, guard *OwnershipGuard, logger *zap.SugaredLogger) *CommentService {
	return &CommentService{comments: comments, reviews: reviews, guard: guard, logger: logger}
}

// Create добавляет комментарий actor к существующему отзыву.
func (s *CommentService) Create(ctx context.Context, actor *model.Identity, reviewID, text string) (*model.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if reviewID == "" || text == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return nil, storeErr(err)
	}

	c := &model.Comment{UserID: actor.ID, ReviewID: reviewID, Text: text}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

func (s *CommentService) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return nil, storeErr(err)
	}
	list, err := s.comments.ListByReview(ctx, reviewID)
	return list, storeErr(err)
}

func (s *CommentService) ListByUser(ctx context.Context, actor *model.Identity) ([]model.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	list, err := s.comments.ListByUser(ctx, actor.ID)
	return list, storeErr(err)
}

func (s *CommentService) Update(ctx context.Context, actor *model.Identity, id, text string) (*model.Comment, error) {
	if text == "" {
		return nil, ErrInvalidInput
	}
	owner, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	c, err := s.comments.Update(ctx, owner, id, text)
	if err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, actor *model.Identity, id string) error {
	owner, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	return storeErr(s.comments.Delete(ctx, owner, id))
}

func (s *CommentService) owned(ctx context.Context, actor *model.Identity, id string) (string, error) {
	if actor == nil {
		return "", ErrUnauthorized
	}
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return "", storeErr(err)
	}
	if err := s.guard.Check(actor, c.UserID, "comment"); err != nil {
		s.logger.Warnw("ownership check failed", "resource", "comment", "id", id, "actor", actor.ID)
		return "", err
	}
	return c.UserID, nil
}
