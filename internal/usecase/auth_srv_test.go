package usecase

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/internal/dto/request"
	"court-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	users    *MockUserRepo
	sessions *MockSessionRepo
	service  AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    new(MockUserRepo),
		sessions: new(MockSessionRepo),
	}

	repo := &repository.Repository{
		User:    f.users,
		Session: f.sessions,
	}
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
	f.service = NewAuthService(repo, config, zap.NewNop())

	return f
}

func activeUser(password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username:     "serena",
		Email:        "serena@example.com",
		PasswordHash: hash,
		Role:         entity.RoleUser,
		IsActive:     true,
	}
}

func TestRegister_CreatesUserWithSession(t *testing.T) {
	f := newAuthFixture()

	f.users.On("FindByEmail", mock.Anything, "serena@example.com").Return(nil, nil)
	f.users.On("FindByUsername", mock.Anything, "serena").Return(nil, nil)

	var created *entity.User
	f.users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)
	f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Register(context.Background(), &request.RegisterRequest{
		Username: "serena",
		Email:    "serena@example.com",
		Password: "topspin123",
	}, SessionMeta{})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.RoleUser, resp.Role)
	assert.NotEmpty(t, resp.Token)

	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "topspin123", created.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	f.users.On("FindByEmail", mock.Anything, "serena@example.com").Return(activeUser("whatever1"), nil)

	resp, err := f.service.Register(context.Background(), &request.RegisterRequest{
		Username: "serena",
		Email:    "serena@example.com",
		Password: "topspin123",
	}, SessionMeta{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
	assert.Nil(t, resp)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_ByEmailOrUsername(t *testing.T) {
	user := activeUser("topspin123")

	t.Run("by email", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", mock.Anything, "serena@example.com").Return(user, nil)
		f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.service.Login(context.Background(), &request.LoginRequest{
			Username: "serena@example.com",
			Password: "topspin123",
		}, SessionMeta{})

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("by username", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", mock.Anything, "serena").Return(nil, nil)
		f.users.On("FindByUsername", mock.Anything, "serena").Return(user, nil)
		f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.service.Login(context.Background(), &request.LoginRequest{
			Username: "serena",
			Password: "topspin123",
		}, SessionMeta{})

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.UserID)
	})
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	user := activeUser("topspin123")

	f.users.On("FindByEmail", mock.Anything, "serena@example.com").Return(user, nil)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Username: "serena@example.com",
		Password: "wrongpass",
	}, SessionMeta{})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	f := newAuthFixture()

	f.users.On("FindByEmail", mock.Anything, "nobody").Return(nil, nil)
	f.users.On("FindByUsername", mock.Anything, "nobody").Return(nil, nil)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "topspin123",
	}, SessionMeta{})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestLogin_InactiveUser(t *testing.T) {
	f := newAuthFixture()
	user := activeUser("topspin123")
	user.IsActive = false

	f.users.On("FindByEmail", mock.Anything, "serena@example.com").Return(user, nil)

	resp, err := f.service.Login(context.Background(), &request.LoginRequest{
		Username: "serena@example.com",
		Password: "topspin123",
	}, SessionMeta{})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, resp)
}

func TestLogout_RevokesSession(t *testing.T) {
	f := newAuthFixture()
	token := uuid.New()

	f.sessions.On("Revoke", mock.Anything, token.String()).Return(nil)

	err := f.service.Logout(context.Background(), token.String())

	require.NoError(t, err)
	f.sessions.AssertExpectations(t)
}

func TestLogout_MalformedToken(t *testing.T) {
	f := newAuthFixture()

	err := f.service.Logout(context.Background(), "not-a-token")

	require.Error(t, err)
	f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}
