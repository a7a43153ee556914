package service

import (
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	return m.Called(ctx, rv).Error(0)
}
func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*model.Review, error) {
	return m.review(m.Called(ctx, id))
}
func (m *mockReviewRepo) GetForItem(ctx context.Context, itemID, id string) (*model.Review, error) {
	return m.review(m.Called(ctx, itemID, id))
}
func (m *mockReviewRepo) FindByUserAndItem(ctx context.Context, userID, itemID string) (*model.Review, error) {
	return m.review(m.Called(ctx, userID, itemID))
}
func (m *mockReviewRepo) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	return m.reviews(m.Called(ctx, itemID))
}
func (m *mockReviewRepo) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	return m.reviews(m.Called(ctx, userID))
}
func (m *mockReviewRepo) Update(ctx context.Context, userID, id string, updates map[string]any) (*model.Review, error) {
	return m.review(m.Called(ctx, userID, id, updates))
}
func (m *mockReviewRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockReviewRepo) review(args mock.Arguments) (*model.Review, error) {
	if v, ok := args.Get(0).(*model.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) reviews(args mock.Arguments) ([]model.Review, error) {
	if v, ok := args.Get(0).([]model.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ReviewRepository = (*mockReviewRepo)(nil)

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCommentRepo) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	return m.comments(m.Called(ctx, reviewID))
}
func (m *mockCommentRepo) ListByUser(ctx context.Context, userID string) ([]model.Comment, error) {
	return m.comments(m.Called(ctx, userID))
}
func (m *mockCommentRepo) Update(ctx context.Context, userID, id string, text string) (*model.Comment, error) {
	args := m.Called(ctx, userID, id, text)
	if v, ok := args.Get(0).(*model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCommentRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockCommentRepo) comments(args mock.Arguments) ([]model.Comment, error) {
	if v, ok := args.Get(0).([]model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.CommentRepository = (*mockCommentRepo)(nil)
