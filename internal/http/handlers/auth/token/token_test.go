package token

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

	services "github.com/magabrotheeeer/review-catalog/internal/services/auth"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// MockService реализует интерфейс token.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ExchangeToken(ctx context.Context, username, confirmationCode string) (string, error) {
	args := m.Called(ctx, username, confirmationCode)
	return args.String(0), args.Error(1)
}

func TestTokenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный обмен кода на токен",
			body: `{"username":"alice","confirmation_code":"ABC123"}`,
			setupMock: func(m *MockService) {
				m.On("ExchangeToken", mock.Anything, "alice", "ABC123").
					Return("signed.jwt", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"access":"signed.jwt"`,
		},
		{
			name: "неизвестный пользователь",
			body: `{"username":"ghost","confirmation_code":"ABC123"}`,
			setupMock: func(m *MockService) {
				m.On("ExchangeToken", mock.Anything, "ghost", "ABC123").
					Return("", repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name: "неверный код подтверждения",
			body: `{"username":"alice","confirmation_code":"WRONG1"}`,
			setupMock: func(m *MockService) {
				m.On("ExchangeToken", mock.Anything, "alice", "WRONG1").
					Return("", services.ErrInvalidConfirmationCode)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid confirmation code`,
		},
		{
			name:           "отсутствует код",
			body:           `{"username":"alice"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `required field`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// Поле с токеном называется access, как его ждут клиенты.
func TestTokenHandler_AccessFieldName(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mockService := new(MockService)
	mockService.On("ExchangeToken", mock.Anything, "alice", "ABC123").
		Return("signed.jwt", nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodPost, "/auth/token",
		strings.NewReader(`{"username":"alice","confirmation_code":"ABC123"}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access":"signed.jwt"`)
	assert.NotContains(t, w.Body.String(), `"token"`)
}
