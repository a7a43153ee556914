package service

import (
	"ReviewBoard/internal/auth"
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestUserService(m *mockUserRepo) (*UserService, *auth.TokenService, *auth.BcryptHasher) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	return NewUserService(m, hasher, tokens), tokens, hasher
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc, tokens, _ := newTestUserService(m)

	t.Run("ok when login free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "john" && u.Password != "" && u.Password != "p@ss"
		})).Return(&model.User{ID: "u-10", Username: "john"}, nil).Once()

		token, user, err := svc.Register(ctx, "john", "p@ss")
		require.NoError(t, err)
		assert.Equal(t, "u-10", user.ID)
		uid, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u-10", uid)
		m.AssertExpectations(t)
	})

	t.Run("conflict when login taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return(&model.User{ID: "u-1", Username: "john"}, nil).Once()

		token, user, err := svc.Register(ctx, "john", "p@ss")
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		// CreateUser без ожидания вызвал бы панику мока
		m.AssertExpectations(t)
	})

	t.Run("race lost at unique index", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		m.On("CreateUser", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: unique", repo.ErrDuplicate)).Once()

		_, _, err := svc.Register(ctx, "john", "p@ss")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "", "p")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, _, err = svc.Register(ctx, "john", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store unavailable", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return(nil, fmt.Errorf("%w: timeout", repo.ErrUnavailable)).Once()

		_, _, err := svc.Register(ctx, "john", "p@ss")
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc, tokens, hasher := newTestUserService(m)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "alice").Return(&model.User{ID: "u-2", Username: "alice", Password: hash}, nil).Once()

		token, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		uid, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u-2", uid)
		m.AssertExpectations(t)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "alice").Return(&model.User{ID: "u-2", Username: "alice", Password: hash}, nil).Once()
		m.On("GetUserByLogin", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound).Once()

		token, errWrong := svc.Login(ctx, "alice", "wrong")
		assert.Empty(t, token)
		_, errUnknown := svc.Login(ctx, "ghost", "secret")

		assert.True(t, errors.Is(errWrong, ErrUnauthorized))
		assert.Equal(t, errWrong, errUnknown)
		m.AssertExpectations(t)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc, tokens, _ := newTestUserService(m)

	token, err := tokens.Issue("u-3")
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByID", mock.Anything, "u-3").Return(&model.User{ID: "u-3", Username: "carol", Password: "digest"}, nil).Once()

		id, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, &model.Identity{ID: "u-3", Username: "carol"}, id)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("user gone", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByID", mock.Anything, "u-3").Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("store error is not an auth failure", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByID", mock.Anything, "u-3").Return(nil, fmt.Errorf("%w: down", repo.ErrUnavailable)).Once()

		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserService_Me(t *testing.T) {
	svc, _, _ := newTestUserService(new(mockUserRepo))

	_, err := svc.Me(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	id, err := svc.Me(context.Background(), &model.Identity{ID: "u-1", Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Username)
}
