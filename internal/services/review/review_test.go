package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	services "github.com/magabrotheeeer/review-catalog/internal/services/review"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Мок для ReviewRepository
type ReviewRepoMock struct {
	mock.Mock
}

func (m *ReviewRepoMock) GetTitle(ctx context.Context, id int) (*models.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Title), args.Error(1)
}

func (m *ReviewRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *ReviewRepoMock) CreateReview(ctx context.Context, review models.Review) (int, error) {
	args := m.Called(ctx, review)
	return args.Int(0), args.Error(1)
}

func (m *ReviewRepoMock) ExistsReview(ctx context.Context, authorUID string, titleID int) (bool, error) {
	args := m.Called(ctx, authorUID, titleID)
	return args.Bool(0), args.Error(1)
}

func (m *ReviewRepoMock) GetReview(ctx context.Context, titleID, reviewID int) (*models.Review, error) {
	args := m.Called(ctx, titleID, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *ReviewRepoMock) ListReviews(ctx context.Context, titleID, limit, offset int) ([]*models.Review, error) {
	args := m.Called(ctx, titleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *ReviewRepoMock) UpdateReview(ctx context.Context, review models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepoMock) DeleteReview(ctx context.Context, reviewID int) (int, error) {
	args := m.Called(ctx, reviewID)
	return args.Int(0), args.Error(1)
}

func (m *ReviewRepoMock) CreateComment(ctx context.Context, comment models.Comment) (int, error) {
	args := m.Called(ctx, comment)
	return args.Int(0), args.Error(1)
}

func (m *ReviewRepoMock) GetComment(ctx context.Context, reviewID, commentID int) (*models.Comment, error) {
	args := m.Called(ctx, reviewID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *ReviewRepoMock) ListComments(ctx context.Context, reviewID, limit, offset int) ([]*models.Comment, error) {
	args := m.Called(ctx, reviewID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *ReviewRepoMock) UpdateComment(ctx context.Context, comment models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *ReviewRepoMock) DeleteComment(ctx context.Context, commentID int) (int, error) {
	args := m.Called(ctx, commentID)
	return args.Int(0), args.Error(1)
}

// Мок для TitleCache
type TitleCacheMock struct {
	mock.Mock
}

func (m *TitleCacheMock) InvalidateTitle(id int) {
	m.Called(id)
}

func newTestService(repo *ReviewRepoMock, cache *TitleCacheMock) *services.ReviewService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewReviewService(repo, cache, logger)
}

var (
	alice     = &permissions.Actor{Username: "alice", Role: models.RoleUser}
	bob       = &permissions.Actor{Username: "bob", Role: models.RoleUser}
	moderator = &permissions.Actor{Username: "mod", Role: models.RoleModerator}
)

func TestReviewService_CreateReview(t *testing.T) {
	someTitle := &models.Title{ID: 3, Name: "Some Book"}
	aliceUser := &models.User{UUID: "uid-alice", Username: "alice", Role: models.RoleUser}
	newReview := &models.Review{
		ID: 7, Author: "alice", TitleID: 3, Text: "great", Score: 9, PubDate: time.Now(),
	}
	req := models.DummyReview{Text: "great", Score: 9}

	tests := []struct {
		name       string
		setupMocks func(r *ReviewRepoMock, c *TitleCacheMock)
		wantErr    error
	}{
		{
			name: "successful create",
			setupMocks: func(r *ReviewRepoMock, c *TitleCacheMock) {
				r.On("GetTitle", mock.Anything, 3).Return(someTitle, nil).Once()
				r.On("GetUserByUsername", mock.Anything, "alice").Return(aliceUser, nil).Once()
				r.On("ExistsReview", mock.Anything, "uid-alice", 3).Return(false, nil).Once()
				r.On("CreateReview", mock.Anything, mock.MatchedBy(func(rv models.Review) bool {
					return rv.AuthorUID == "uid-alice" && rv.TitleID == 3 && rv.Score == 9
				})).Return(7, nil).Once()
				r.On("GetReview", mock.Anything, 3, 7).Return(newReview, nil).Once()
				c.On("InvalidateTitle", 3).Once()
			},
		},
		{
			name: "unknown title",
			setupMocks: func(r *ReviewRepoMock, _ *TitleCacheMock) {
				r.On("GetTitle", mock.Anything, 3).Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "duplicate review",
			setupMocks: func(r *ReviewRepoMock, _ *TitleCacheMock) {
				r.On("GetTitle", mock.Anything, 3).Return(someTitle, nil).Once()
				r.On("GetUserByUsername", mock.Anything, "alice").Return(aliceUser, nil).Once()
				r.On("ExistsReview", mock.Anything, "uid-alice", 3).Return(true, nil).Once()
			},
			wantErr: services.ErrReviewExists,
		},
		{
			name: "concurrent duplicate caught by unique constraint",
			setupMocks: func(r *ReviewRepoMock, _ *TitleCacheMock) {
				r.On("GetTitle", mock.Anything, 3).Return(someTitle, nil).Once()
				r.On("GetUserByUsername", mock.Anything, "alice").Return(aliceUser, nil).Once()
				r.On("ExistsReview", mock.Anything, "uid-alice", 3).Return(false, nil).Once()
				r.On("CreateReview", mock.Anything, mock.Anything).
					Return(0, repository.ErrUniqueViolation).Once()
			},
			wantErr: services.ErrReviewExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(ReviewRepoMock)
			cache := new(TitleCacheMock)
			svc := newTestService(repo, cache)

			tt.setupMocks(repo, cache)

			got, err := svc.CreateReview(context.Background(), alice, 3, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 7, got.ID)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestReviewService_UpdateReview_Permissions(t *testing.T) {
	aliceReview := &models.Review{ID: 7, Author: "alice", TitleID: 3, Text: "ok", Score: 5}
	newText := "better"
	req := models.DummyReviewPatch{Text: &newText}

	tests := []struct {
		name      string
		actor     *permissions.Actor
		canUpdate bool
	}{
		{"author updates own review", alice, true},
		{"stranger cannot update", bob, false},
		{"moderator updates foreign review", moderator, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(ReviewRepoMock)
			cache := new(TitleCacheMock)
			svc := newTestService(repo, cache)

			repo.On("GetReview", mock.Anything, 3, 7).Return(aliceReview, nil)
			if tt.canUpdate {
				repo.On("UpdateReview", mock.Anything, mock.MatchedBy(func(rv models.Review) bool {
					return rv.Text == "better"
				})).Return(nil).Once()
				cache.On("InvalidateTitle", 3).Once()
			}

			_, err := svc.UpdateReview(context.Background(), tt.actor, 3, 7, req)
			if tt.canUpdate {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, services.ErrForbidden)
				repo.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestReviewService_RemoveReview(t *testing.T) {
	aliceReview := &models.Review{ID: 7, Author: "alice", TitleID: 3}

	t.Run("author removes own review", func(t *testing.T) {
		repo := new(ReviewRepoMock)
		cache := new(TitleCacheMock)
		svc := newTestService(repo, cache)

		repo.On("GetReview", mock.Anything, 3, 7).Return(aliceReview, nil).Once()
		repo.On("DeleteReview", mock.Anything, 7).Return(1, nil).Once()
		cache.On("InvalidateTitle", 3).Once()

		count, err := svc.RemoveReview(context.Background(), alice, 3, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		cache.AssertExpectations(t)
	})

	t.Run("stranger cannot remove", func(t *testing.T) {
		repo := new(ReviewRepoMock)
		cache := new(TitleCacheMock)
		svc := newTestService(repo, cache)

		repo.On("GetReview", mock.Anything, 3, 7).Return(aliceReview, nil).Once()

		_, err := svc.RemoveReview(context.Background(), bob, 3, 7)
		assert.ErrorIs(t, err, services.ErrForbidden)
		repo.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything)
	})
}

func TestReviewService_Comments(t *testing.T) {
	aliceReview := &models.Review{ID: 7, Author: "alice", TitleID: 3}
	bobUser := &models.User{UUID: "uid-bob", Username: "bob", Role: models.RoleUser}
	bobComment := &models.Comment{ID: 11, Author: "bob", ReviewID: 7, Text: "agree"}

	t.Run("comment created under existing review", func(t *testing.T) {
		repo := new(ReviewRepoMock)
		cache := new(TitleCacheMock)
		svc := newTestService(repo, cache)

		repo.On("GetReview", mock.Anything, 3, 7).Return(aliceReview, nil).Once()
		repo.On("GetUserByUsername", mock.Anything, "bob").Return(bobUser, nil).Once()
		repo.On("CreateComment", mock.Anything, mock.MatchedBy(func(c models.Comment) bool {
			return c.AuthorUID == "uid-bob" && c.ReviewID == 7
		})).Return(11, nil).Once()
		repo.On("GetComment", mock.Anything, 7, 11).Return(bobComment, nil).Once()

		got, err := svc.CreateComment(context.Background(), bob, 3, 7, models.DummyComment{Text: "agree"})
		require.NoError(t, err)
		assert.Equal(t, 11, got.ID)
	})

	t.Run("comment on missing review rejected", func(t *testing.T) {
		repo := new(ReviewRepoMock)
		cache := new(TitleCacheMock)
		svc := newTestService(repo, cache)

		repo.On("GetReview", mock.Anything, 3, 7).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.CreateComment(context.Background(), bob, 3, 7, models.DummyComment{Text: "agree"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("stranger cannot remove foreign comment", func(t *testing.T) {
		repo := new(ReviewRepoMock)
		cache := new(TitleCacheMock)
		svc := newTestService(repo, cache)

		repo.On("GetReview", mock.Anything, 3, 7).Return(aliceReview, nil).Once()
		repo.On("GetComment", mock.Anything, 7, 11).Return(bobComment, nil).Once()

		_, err := svc.RemoveComment(context.Background(), alice, 3, 7, 11)
		assert.ErrorIs(t, err, services.ErrForbidden)
		repo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})

	t.Run("moderator removes foreign comment", func(t *testing.T) {
		repo := new(ReviewRepoMock)
		cache := new(TitleCacheMock)
		svc := newTestService(repo, cache)

		repo.On("GetReview", mock.Anything, 3, 7).Return(aliceReview, nil).Once()
		repo.On("GetComment", mock.Anything, 7, 11).Return(bobComment, nil).Once()
		repo.On("DeleteComment", mock.Anything, 11).Return(1, nil).Once()

		count, err := svc.RemoveComment(context.Background(), moderator, 3, 7, 11)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
