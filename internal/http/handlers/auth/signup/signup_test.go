package signup

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

	"github.com/magabrotheeeer/review-catalog/internal/models"
	services "github.com/magabrotheeeer/review-catalog/internal/services/auth"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// MockService реализует интерфейс signup.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) RequestCode(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func TestSignupHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "новая учетная запись создана",
			body: `{"username":"alice","email":"alice@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestCode", mock.Anything, "alice", "alice@example.com").
					Return(true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"alice"`,
		},
		{
			name: "повторный запрос перевыпускает код",
			body: `{"username":"alice","email":"alice@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestCode", mock.Anything, "alice", "alice@example.com").
					Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"username":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "отсутствует email",
			body:           `{"username":"alice"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email is a required field`,
		},
		{
			name: "зарезервированный username",
			body: `{"username":"me","email":"me@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestCode", mock.Anything, "me", "me@example.com").
					Return(false, models.ErrReservedUsername)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid username`,
		},
		{
			name: "занятый username",
			body: `{"username":"alice","email":"other@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestCode", mock.Anything, "alice", "other@example.com").
					Return(false, repository.ErrUniqueViolation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `username or email already taken`,
		},
		{
			name: "почта не отправилась",
			body: `{"username":"alice","email":"alice@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("RequestCode", mock.Anything, "alice", "alice@example.com").
					Return(true, services.ErrDispatchFailed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not send confirmation code`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
