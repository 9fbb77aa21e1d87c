// Package services содержит бизнес-логику каталога: категории, жанры
// и произведения, включая кеширование чтения произведений.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// Ошибки каталога, которые обработчики переводят в HTTP-статусы.
var (
	// ErrYearInFuture год выпуска произведения больше текущего.
	ErrYearInFuture = errors.New("year must not be greater than the current year")
	// ErrUnknownCategory в запросе указан slug несуществующей категории.
	ErrUnknownCategory = errors.New("unknown category slug")
	// ErrUnknownGenre в запросе указан slug несуществующего жанра.
	ErrUnknownGenre = errors.New("unknown genre slug")
)

// CatalogRepository определяет методы хранилища для каталога.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (int, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListCategories(ctx context.Context, search string, limit, offset int) ([]*models.Category, error)
	DeleteCategoryBySlug(ctx context.Context, slug string) (int, error)

	CreateGenre(ctx context.Context, genre models.Genre) (int, error)
	GetGenresBySlugs(ctx context.Context, slugs []string) ([]models.Genre, error)
	ListGenres(ctx context.Context, search string, limit, offset int) ([]*models.Genre, error)
	DeleteGenreBySlug(ctx context.Context, slug string) (int, error)

	CreateTitle(ctx context.Context, title models.Title) (int, error)
	GetTitle(ctx context.Context, id int) (*models.Title, error)
	ListTitles(ctx context.Context, filter models.TitleFilter, limit, offset int) ([]*models.Title, error)
	UpdateTitle(ctx context.Context, title models.Title, replaceGenres bool) error
	DeleteTitle(ctx context.Context, id int) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// ErrNotFound из хранилища пробрасывается как есть, обработчики сверяются
// с repository.ErrNotFound через errors.Is.

// CatalogService реализует операции каталога.
type CatalogService struct {
	repo  CatalogRepository
	cache Cache
	log   *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(repo CatalogRepository, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// CreateCategory создает категорию.
func (s *CatalogService) CreateCategory(ctx context.Context, req models.DummyCategory) (*models.Category, error) {
	const op = "services.catalog.CreateCategory"
	if err := models.ValidateSlug(req.Slug); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	category := models.Category{Name: req.Name, Slug: req.Slug}
	id, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	category.ID = id
	return &category, nil
}

// ListCategories возвращает категории с поиском по названию.
func (s *CatalogService) ListCategories(ctx context.Context, search string, limit, offset int) ([]*models.Category, error) {
	return s.repo.ListCategories(ctx, search, limit, offset)
}

// RemoveCategory удаляет категорию по slug, возвращает количество удалённых записей.
func (s *CatalogService) RemoveCategory(ctx context.Context, slug string) (int, error) {
	return s.repo.DeleteCategoryBySlug(ctx, slug)
}

// CreateGenre создает жанр.
func (s *CatalogService) CreateGenre(ctx context.Context, req models.DummyGenre) (*models.Genre, error) {
	const op = "services.catalog.CreateGenre"
	if err := models.ValidateSlug(req.Slug); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	genre := models.Genre{Name: req.Name, Slug: req.Slug}
	id, err := s.repo.CreateGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	genre.ID = id
	return &genre, nil
}

// ListGenres возвращает жанры с поиском по названию.
func (s *CatalogService) ListGenres(ctx context.Context, search string, limit, offset int) ([]*models.Genre, error) {
	return s.repo.ListGenres(ctx, search, limit, offset)
}

// RemoveGenre удаляет жанр по slug, возвращает количество удалённых записей.
func (s *CatalogService) RemoveGenre(ctx context.Context, slug string) (int, error) {
	return s.repo.DeleteGenreBySlug(ctx, slug)
}

// CreateTitle создает произведение. Категория и жанры принимаются slug-ами
// существующих записей; произведения, которые ещё не вышли, не добавляются.
func (s *CatalogService) CreateTitle(ctx context.Context, req models.DummyTitle) (*models.Title, error) {
	const op = "services.catalog.CreateTitle"

	if req.Year > time.Now().Year() {
		return nil, fmt.Errorf("%s: %w", op, ErrYearInFuture)
	}
	category, genres, err := s.resolveSlugs(ctx, req.Category, req.Genre)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	title := models.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		Category:    category,
		Genre:       genres,
	}
	id, err := s.repo.CreateTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new title", slog.Int("id", id))
	return s.repo.GetTitle(ctx, id)
}

// GetTitle возвращает произведение по ID, используя кеш или репозиторий.
// Рейтинг в кешированном значении актуален: любое изменение отзывов
// произведения инвалидирует его ключ.
func (s *CatalogService) GetTitle(ctx context.Context, id int) (*models.Title, error) {
	var result *models.Title
	cacheKey := titleCacheKey(id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read title from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache title", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// ListTitles возвращает список произведений по фильтру.
func (s *CatalogService) ListTitles(ctx context.Context, filter models.TitleFilter, limit, offset int) ([]*models.Title, error) {
	return s.repo.ListTitles(ctx, filter, limit, offset)
}

// UpdateTitle частично обновляет произведение и инвалидирует кеш.
func (s *CatalogService) UpdateTitle(ctx context.Context, id int, req models.DummyTitlePatch) (*models.Title, error) {
	const op = "services.catalog.UpdateTitle"

	title, err := s.repo.GetTitle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if *req.Year > time.Now().Year() {
			return nil, fmt.Errorf("%s: %w", op, ErrYearInFuture)
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		category, err := s.repo.GetCategoryBySlug(ctx, *req.Category)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrUnknownCategory)
		}
		title.Category = category
	}
	replaceGenres := req.Genre != nil
	if replaceGenres {
		genres, err := s.repo.GetGenresBySlugs(ctx, req.Genre)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrUnknownGenre)
		}
		title.Genre = genres
	}

	if err = s.repo.UpdateTitle(ctx, *title, replaceGenres); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.InvalidateTitle(id)
	return s.repo.GetTitle(ctx, id)
}

// RemoveTitle удаляет произведение вместе с отзывами и комментариями
// (каскад в базе) и инвалидирует кеш.
func (s *CatalogService) RemoveTitle(ctx context.Context, id int) (int, error) {
	count, err := s.repo.DeleteTitle(ctx, id)
	if err != nil {
		return 0, err
	}
	s.InvalidateTitle(id)
	return count, nil
}

// InvalidateTitle удаляет произведение из кеша. Вызывается также сервисом
// отзывов: рейтинг произведения зависит от его отзывов.
func (s *CatalogService) InvalidateTitle(id int) {
	cacheKey := titleCacheKey(id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate title cache", slog.String("key", cacheKey), sl.Err(err))
	}
}

func (s *CatalogService) resolveSlugs(ctx context.Context, categorySlug string, genreSlugs []string) (*models.Category, []models.Genre, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, nil, ErrUnknownCategory
	}
	genres, err := s.repo.GetGenresBySlugs(ctx, genreSlugs)
	if err != nil {
		return nil, nil, ErrUnknownGenre
	}
	return category, genres, nil
}

func titleCacheKey(id int) string {
	return fmt.Sprintf("title:%d", id)
}
