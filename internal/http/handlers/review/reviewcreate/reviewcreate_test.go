package reviewcreate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/review-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	services "github.com/magabrotheeeer/review-catalog/internal/services/review"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// MockService реализует интерфейс reviewcreate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateReview(ctx context.Context, actor *permissions.Actor, titleID int, req models.DummyReview) (*models.Review, error) {
	args := m.Called(ctx, actor, titleID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(body string, actor *permissions.Actor) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/titles/3/reviews", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("title_id", "3")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if actor != nil {
		ctx = context.WithValue(ctx, middlewarectx.Actor, actor)
	}
	return req.WithContext(ctx)
}

func TestReviewCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	alice := &permissions.Actor{Username: "alice", Role: models.RoleUser}

	tests := []struct {
		name           string
		body           string
		actor          *permissions.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное создание отзыва",
			body:  `{"text":"great","score":9}`,
			actor: alice,
			setupMock: func(m *MockService) {
				m.On("CreateReview", mock.Anything, alice, 3,
					models.DummyReview{Text: "great", Score: 9}).
					Return(&models.Review{ID: 7, Author: "alice", TitleID: 3, Text: "great", Score: 9}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"author":"alice"`,
		},
		{
			name:           "анонимный запрос отклоняется",
			body:           `{"text":"great","score":9}`,
			actor:          nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `authentication required`,
		},
		{
			name:           "оценка вне диапазона",
			body:           `{"text":"great","score":11}`,
			actor:          alice,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Score must be less than or equal to 10`,
		},
		{
			name:           "нулевая оценка отклоняется",
			body:           `{"text":"great","score":0}`,
			actor:          alice,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Score`,
		},
		{
			name:  "повторный отзыв отклоняется",
			body:  `{"text":"again","score":5}`,
			actor: alice,
			setupMock: func(m *MockService) {
				m.On("CreateReview", mock.Anything, alice, 3,
					models.DummyReview{Text: "again", Score: 5}).
					Return(nil, services.ErrReviewExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `you have already reviewed this work`,
		},
		{
			name:  "произведение не найдено",
			body:  `{"text":"great","score":9}`,
			actor: alice,
			setupMock: func(m *MockService) {
				m.On("CreateReview", mock.Anything, alice, 3,
					models.DummyReview{Text: "great", Score: 9}).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `title not found`,
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
