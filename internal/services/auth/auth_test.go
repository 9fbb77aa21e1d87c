package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/magabrotheeeer/review-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	services "github.com/magabrotheeeer/review-catalog/internal/services/auth"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
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

func (m *UserRepoMock) ExistsUserPair(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) UpdateConfirmationCode(ctx context.Context, username, code string) error {
	args := m.Called(ctx, username, code)
	return args.Error(0)
}

// Мок для Sender
type SenderMock struct {
	mock.Mock
}

func (m *SenderMock) SendConfirmationCode(email, code string) error {
	args := m.Called(email, code)
	return args.Error(0)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(username, role string, isSuperuser bool) (string, error) {
	args := m.Called(username, role, isSuperuser)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func newTestService(repo *UserRepoMock, sender *SenderMock, maker *JwtMakerMock) *services.AuthService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewAuthService(repo, sender, maker, 6, logger)
}

func TestAuthService_RequestCode(t *testing.T) {
	isCode := mock.MatchedBy(func(code string) bool { return len(code) == 6 })

	tests := []struct {
		name        string
		username    string
		email       string
		setupMocks  func(r *UserRepoMock, s *SenderMock)
		wantCreated bool
		wantErr     error
	}{
		{
			name:     "new account created",
			username: "alice",
			email:    "alice@example.com",
			setupMocks: func(r *UserRepoMock, s *SenderMock) {
				r.On("ExistsUserPair", mock.Anything, "alice", "alice@example.com").
					Return(false, nil).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.Username == "alice" &&
						u.Email == "alice@example.com" &&
						u.Role == models.RoleUser &&
						len(u.ConfirmationCode) == 6
				})).Return("some-uuid", nil).Once()
				s.On("SendConfirmationCode", "alice@example.com", isCode).Return(nil).Once()
			},
			wantCreated: true,
		},
		{
			name:     "existing pair gets fresh code",
			username: "alice",
			email:    "alice@example.com",
			setupMocks: func(r *UserRepoMock, s *SenderMock) {
				r.On("ExistsUserPair", mock.Anything, "alice", "alice@example.com").
					Return(true, nil).Once()
				r.On("UpdateConfirmationCode", mock.Anything, "alice", isCode).
					Return(nil).Once()
				s.On("SendConfirmationCode", "alice@example.com", isCode).Return(nil).Once()
			},
			wantCreated: false,
		},
		{
			name:       "reserved username rejected",
			username:   "me",
			email:      "me@example.com",
			setupMocks: func(_ *UserRepoMock, _ *SenderMock) {},
			wantErr:    models.ErrReservedUsername,
		},
		{
			name:       "invalid username rejected",
			username:   "bad name",
			email:      "bad@example.com",
			setupMocks: func(_ *UserRepoMock, _ *SenderMock) {},
			wantErr:    models.ErrInvalidUsername,
		},
		{
			name:     "partial collision rejected by storage",
			username: "alice",
			email:    "other@example.com",
			setupMocks: func(r *UserRepoMock, _ *SenderMock) {
				r.On("ExistsUserPair", mock.Anything, "alice", "other@example.com").
					Return(false, nil).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return("", repository.ErrUniqueViolation).Once()
			},
			wantErr: repository.ErrUniqueViolation,
		},
		{
			name:     "dispatch failure is fatal",
			username: "alice",
			email:    "alice@example.com",
			setupMocks: func(r *UserRepoMock, s *SenderMock) {
				r.On("ExistsUserPair", mock.Anything, "alice", "alice@example.com").
					Return(false, nil).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).Return("some-uuid", nil).Once()
				s.On("SendConfirmationCode", "alice@example.com", isCode).
					Return(errors.New("smtp down")).Once()
			},
			wantErr: services.ErrDispatchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			sender := new(SenderMock)
			maker := new(JwtMakerMock)
			svc := newTestService(repo, sender, maker)

			tt.setupMocks(repo, sender)

			created, err := svc.RequestCode(context.Background(), tt.username, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, created)
			}

			repo.AssertExpectations(t)
			sender.AssertExpectations(t)
		})
	}
}

func TestAuthService_ExchangeToken(t *testing.T) {
	storedUser := &models.User{
		Username:         "alice",
		Email:            "alice@example.com",
		Role:             models.RoleUser,
		ConfirmationCode: "ABC123",
	}

	tests := []struct {
		name       string
		username   string
		code       string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful exchange",
			username: "alice",
			code:     "ABC123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "alice").Return(storedUser, nil).Once()
				j.On("GenerateToken", "alice", "user", false).Return("signed.jwt", nil).Once()
			},
			wantToken: "signed.jwt",
		},
		{
			name:     "unknown username",
			username: "ghost",
			code:     "ABC123",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name:     "wrong code",
			username: "alice",
			code:     "XYZ999",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "alice").Return(storedUser, nil).Once()
			},
			wantErr: services.ErrInvalidConfirmationCode,
		},
		{
			name:     "account without code",
			username: "alice",
			code:     "",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				blank := *storedUser
				blank.ConfirmationCode = ""
				r.On("GetUserByUsername", mock.Anything, "alice").Return(&blank, nil).Once()
			},
			wantErr: services.ErrInvalidConfirmationCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			sender := new(SenderMock)
			maker := new(JwtMakerMock)
			svc := newTestService(repo, sender, maker)

			tt.setupMocks(repo, maker)

			token, err := svc.ExchangeToken(context.Background(), tt.username, tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}

			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

// Успешный обмен не сбрасывает код: второй обмен с тем же кодом проходит.
func TestAuthService_ExchangeToken_CodeSurvivesExchange(t *testing.T) {
	repo := new(UserRepoMock)
	sender := new(SenderMock)
	maker := new(JwtMakerMock)
	svc := newTestService(repo, sender, maker)

	storedUser := &models.User{
		Username:         "alice",
		Role:             models.RoleUser,
		ConfirmationCode: "ABC123",
	}
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(storedUser, nil).Twice()
	maker.On("GenerateToken", "alice", "user", false).Return("signed.jwt", nil).Twice()

	for i := 0; i < 2; i++ {
		token, err := svc.ExchangeToken(context.Background(), "alice", "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", token)
	}

	repo.AssertNotCalled(t, "UpdateConfirmationCode", mock.Anything, mock.Anything, mock.Anything)
}
