package meread

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/review-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// MockService реализует интерфейс meread.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(actor *permissions.Actor) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if actor != nil {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Actor, actor))
	}
	return req
}

func TestMeReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	alice := &permissions.Actor{Username: "alice", Role: models.RoleUser}

	tests := []struct {
		name           string
		actor          *permissions.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное чтение собственного профиля",
			actor: alice,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "alice").Return(&models.User{
					Username: "alice",
					Email:    "alice@example.com",
					Role:     models.RoleUser,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"alice"`,
		},
		{
			name:           "анонимный запрос отклоняется",
			actor:          nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `authentication required`,
		},
		{
			name:  "профиль удален после выдачи токена",
			actor: alice,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "alice").Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, newRequest(tt.actor))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
