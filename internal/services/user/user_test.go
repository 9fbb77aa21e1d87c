package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-catalog/internal/models"
	services "github.com/magabrotheeeer/review-catalog/internal/services/user"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *UserRepoMock) UpdateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) DeleteUser(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

func newTestService(repo *UserRepoMock) *services.UserService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewUserService(repo, logger)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyUser
		setupMocks func(r *UserRepoMock)
		wantRole   models.Role
		wantErr    error
	}{
		{
			name: "default role is user",
			req:  models.DummyUser{Username: "alice", Email: "alice@example.com"},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleUser && u.ConfirmationCode == "" && u.PasswordHash == ""
				})).Return("uid-1", nil).Once()
			},
			wantRole: models.RoleUser,
		},
		{
			name: "explicit moderator role",
			req:  models.DummyUser{Username: "mod", Email: "mod@example.com", Role: "moderator"},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleModerator
				})).Return("uid-2", nil).Once()
			},
			wantRole: models.RoleModerator,
		},
		{
			name:       "unknown role rejected",
			req:        models.DummyUser{Username: "root", Email: "root@example.com", Role: "owner"},
			setupMocks: func(_ *UserRepoMock) {},
			wantErr:    services.ErrInvalidRole,
		},
		{
			name:       "reserved username rejected",
			req:        models.DummyUser{Username: "me", Email: "me@example.com"},
			setupMocks: func(_ *UserRepoMock) {},
			wantErr:    models.ErrReservedUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := newTestService(repo)

			tt.setupMocks(repo)

			user, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRole, user.Role)
				assert.NotEmpty(t, user.UUID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update_RoleValidation(t *testing.T) {
	repo := new(UserRepoMock)
	svc := newTestService(repo)

	stored := &models.User{Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(stored, nil).Once()

	badRole := "owner"
	_, err := svc.Update(context.Background(), "alice", models.DummyUserPatch{Role: &badRole})
	assert.ErrorIs(t, err, services.ErrInvalidRole)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserService_UpdateMe_DoesNotTouchRole(t *testing.T) {
	repo := new(UserRepoMock)
	svc := newTestService(repo)

	stored := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.RoleUser,
		Bio:      "old bio",
	}
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(stored, nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Bio == "new bio" &&
			u.Role == models.RoleUser &&
			u.Email == "alice@example.com"
	})).Return(nil).Once()

	newBio := "new bio"
	user, err := svc.UpdateMe(context.Background(), "alice", models.DummyUserMePatch{Bio: &newBio})
	require.NoError(t, err)
	assert.Equal(t, "new bio", user.Bio)

	repo.AssertExpectations(t)
}
