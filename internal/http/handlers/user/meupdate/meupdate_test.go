package meupdate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/review-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
)

// MockService реализует интерфейс meupdate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateMe(ctx context.Context, username string, req models.DummyUserMePatch) (*models.User, error) {
	args := m.Called(ctx, username, req)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(body string, actor *permissions.Actor) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Actor, actor))
	}
	return req
}

func TestMeUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	alice := &permissions.Actor{Username: "alice", Role: models.RoleUser}
	firstName := "Алиса"

	tests := []struct {
		name           string
		body           string
		actor          *permissions.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное обновление профиля",
			body:  `{"first_name":"Алиса"}`,
			actor: alice,
			setupMock: func(m *MockService) {
				m.On("UpdateMe", mock.Anything, "alice",
					models.DummyUserMePatch{FirstName: &firstName}).
					Return(&models.User{
						Username:  "alice",
						Email:     "alice@example.com",
						FirstName: "Алиса",
						Role:      models.RoleUser,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"first_name":"Алиса"`,
		},
		{
			name:           "анонимный запрос отклоняется",
			body:           `{"first_name":"Алиса"}`,
			actor:          nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `authentication required`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"first_name":`,
			actor:          alice,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, newRequest(tt.body, tt.actor))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
