// Package services содержит бизнес-логику отзывов и комментариев:
// контроль "один отзыв на произведение от автора" и объектные проверки
// прав на изменение и удаление.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Ошибки, которые обработчики переводят в HTTP-статусы.
var (
	// ErrReviewExists автор уже оставлял отзыв на это произведение.
	ErrReviewExists = errors.New("you have already reviewed this work")
	// ErrForbidden действие запрещено для этого пользователя.
	ErrForbidden = errors.New("forbidden")
)

// ReviewRepository определяет методы хранилища для отзывов и комментариев.
type ReviewRepository interface {
	GetTitle(ctx context.Context, id int) (*models.Title, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateReview(ctx context.Context, review models.Review) (int, error)
	ExistsReview(ctx context.Context, authorUID string, titleID int) (bool, error)
	GetReview(ctx context.Context, titleID, reviewID int) (*models.Review, error)
	ListReviews(ctx context.Context, titleID, limit, offset int) ([]*models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, reviewID int) (int, error)

	CreateComment(ctx context.Context, comment models.Comment) (int, error)
	GetComment(ctx context.Context, reviewID, commentID int) (*models.Comment, error)
	ListComments(ctx context.Context, reviewID, limit, offset int) ([]*models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) error
	DeleteComment(ctx context.Context, commentID int) (int, error)
}

// TitleCache инвалидирует кешированное произведение: его рейтинг зависит
// от отзывов.
type TitleCache interface {
	InvalidateTitle(id int)
}

// ReviewService реализует операции с отзывами и комментариями.
type ReviewService struct {
	repo       ReviewRepository
	titleCache TitleCache
	log        *slog.Logger
}

// NewReviewService создает новый экземпляр ReviewService.
func NewReviewService(repo ReviewRepository, titleCache TitleCache, log *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:       repo,
		titleCache: titleCache,
		log:        log,
	}
}

// ListReviews возвращает отзывы на произведение. Неизвестное произведение —
// ошибка "не найдено".
func (s *ReviewService) ListReviews(ctx context.Context, titleID, limit, offset int) ([]*models.Review, error) {
	const op = "services.review.ListReviews"
	if _, err := s.repo.GetTitle(ctx, titleID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.ListReviews(ctx, titleID, limit, offset)
}

// CreateReview создает отзыв от имени актора. Автор подставляется сервером,
// клиентское значение не принимается.
//
// Проверка существующего отзыва на уровне запроса носит рекомендательный
// характер: при гонке конкурентных запросов авторитетна уникальность
// (автор, произведение) в базе, её нарушение возвращается той же ошибкой
// ErrReviewExists.
func (s *ReviewService) CreateReview(ctx context.Context, actor *permissions.Actor, titleID int, req models.DummyReview) (*models.Review, error) {
	const op = "services.review.CreateReview"

	if _, err := s.repo.GetTitle(ctx, titleID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	author, err := s.repo.GetUserByUsername(ctx, actor.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.repo.ExistsReview(ctx, author.UUID, titleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", op, ErrReviewExists)
	}

	review := models.Review{
		AuthorUID: author.UUID,
		TitleID:   titleID,
		Text:      req.Text,
		Score:     req.Score,
	}
	id, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		// Гонка конкурентных запросов: уникальность (автор, произведение)
		// в базе авторитетна.
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, fmt.Errorf("%s: %w", op, ErrReviewExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new review", slog.Int("id", id), slog.Int("title_id", titleID))
	s.titleCache.InvalidateTitle(titleID)

	return s.repo.GetReview(ctx, titleID, id)
}

// GetReview возвращает отзыв по ID произведения и ID отзыва.
func (s *ReviewService) GetReview(ctx context.Context, titleID, reviewID int) (*models.Review, error) {
	return s.repo.GetReview(ctx, titleID, reviewID)
}

// UpdateReview частично обновляет отзыв. Разрешено автору, модератору
// или админу; дата публикации неизменяема.
func (s *ReviewService) UpdateReview(ctx context.Context, actor *permissions.Actor, titleID, reviewID int, req models.DummyReviewPatch) (*models.Review, error) {
	const op = "services.review.UpdateReview"

	review, err := s.repo.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !permissions.AllowObject(permissions.AdminOrModeratorOrReadOnly, actor, http.MethodPatch, review.Author) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}
	if err = s.repo.UpdateReview(ctx, *review); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.titleCache.InvalidateTitle(titleID)

	return s.repo.GetReview(ctx, titleID, reviewID)
}

// RemoveReview удаляет отзыв вместе с его комментариями (каскад в базе).
// Разрешено автору, модератору или админу.
func (s *ReviewService) RemoveReview(ctx context.Context, actor *permissions.Actor, titleID, reviewID int) (int, error) {
	const op = "services.review.RemoveReview"

	review, err := s.repo.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !permissions.AllowObject(permissions.AdminOrModeratorOrReadOnly, actor, http.MethodDelete, review.Author) {
		return 0, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	count, err := s.repo.DeleteReview(ctx, reviewID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.titleCache.InvalidateTitle(titleID)
	return count, nil
}

// ListComments возвращает комментарии к отзыву.
func (s *ReviewService) ListComments(ctx context.Context, titleID, reviewID, limit, offset int) ([]*models.Comment, error) {
	const op = "services.review.ListComments"
	if _, err := s.repo.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.ListComments(ctx, reviewID, limit, offset)
}

// CreateComment создает комментарий к отзыву от имени актора.
func (s *ReviewService) CreateComment(ctx context.Context, actor *permissions.Actor, titleID, reviewID int, req models.DummyComment) (*models.Comment, error) {
	const op = "services.review.CreateComment"

	if _, err := s.repo.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	author, err := s.repo.GetUserByUsername(ctx, actor.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comment := models.Comment{
		AuthorUID: author.UUID,
		ReviewID:  reviewID,
		Text:      req.Text,
	}
	id, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new comment", slog.Int("id", id), slog.Int("review_id", reviewID))

	return s.repo.GetComment(ctx, reviewID, id)
}

// GetComment возвращает комментарий к отзыву.
func (s *ReviewService) GetComment(ctx context.Context, titleID, reviewID, commentID int) (*models.Comment, error) {
	const op = "services.review.GetComment"
	if _, err := s.repo.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.GetComment(ctx, reviewID, commentID)
}

// UpdateComment частично обновляет комментарий. Разрешено автору,
// модератору или админу.
func (s *ReviewService) UpdateComment(ctx context.Context, actor *permissions.Actor, titleID, reviewID, commentID int, req models.DummyCommentPatch) (*models.Comment, error) {
	const op = "services.review.UpdateComment"

	if _, err := s.repo.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	comment, err := s.repo.GetComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !permissions.AllowObject(permissions.AdminOrModeratorOrReadOnly, actor, http.MethodPatch, comment.Author) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if err = s.repo.UpdateComment(ctx, *comment); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.GetComment(ctx, reviewID, commentID)
}

// RemoveComment удаляет комментарий. Разрешено автору, модератору или админу.
func (s *ReviewService) RemoveComment(ctx context.Context, actor *permissions.Actor, titleID, reviewID, commentID int) (int, error) {
	const op = "services.review.RemoveComment"

	if _, err := s.repo.GetReview(ctx, titleID, reviewID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	comment, err := s.repo.GetComment(ctx, reviewID, commentID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !permissions.AllowObject(permissions.AdminOrModeratorOrReadOnly, actor, http.MethodDelete, comment.Author) {
		return 0, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return s.repo.DeleteComment(ctx, commentID)
}
