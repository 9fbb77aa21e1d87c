package titleread

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// MockService реализует интерфейс titleread.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetTitle(ctx context.Context, id int) (*models.Title, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Title), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestTitleReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rating := 7.5

	tests := []struct {
		name           string
		titleID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное чтение произведения с рейтингом",
			titleID: "5",
			setupMock: func(m *MockService) {
				m.On("GetTitle", mock.Anything, 5).Return(&models.Title{
					ID:     5,
					Name:   "Some Book",
					Year:   2001,
					Rating: &rating,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"rating":7.5`,
		},
		{
			name:    "произведение без отзывов отдает null рейтинг",
			titleID: "6",
			setupMock: func(m *MockService) {
				m.On("GetTitle", mock.Anything, 6).Return(&models.Title{
					ID:   6,
					Name: "Fresh Book",
					Year: 2020,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"rating":null`,
		},
		{
			name:    "произведение не найдено",
			titleID: "999",
			setupMock: func(m *MockService) {
				m.On("GetTitle", mock.Anything, 999).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `title not found`,
		},
		{
			name:           "некорректный id в URL",
			titleID:        "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid title id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/titles/"+tt.titleID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("title_id", tt.titleID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
