package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// CreateGenre сохраняет новый жанр и возвращает его ID.
// Повтор slug возвращается как ErrUniqueViolation.
func (s *Storage) CreateGenre(ctx context.Context, genre models.Genre) (int, error) {
	const op = "storage.CreateGenre"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO genres (name, slug) VALUES ($1, $2) RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, genre.Name, genre.Slug).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapUnique(err))
	}
	return newID, nil
}

// GetGenresBySlugs возвращает жанры по списку slug-ов.
// Если хотя бы один slug не найден, возвращает ErrNotFound.
func (s *Storage) GetGenresBySlugs(ctx context.Context, slugs []string) ([]models.Genre, error) {
	const op = "storage.GetGenresBySlugs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result := make([]models.Genre, 0, len(slugs))
	query := `SELECT id, name, slug FROM genres WHERE slug = $1`
	for _, slug := range slugs {
		var g models.Genre
		if err := s.DB.QueryRowContext(ctx, query, slug).Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, g)
	}
	return result, nil
}

// ListGenres возвращает список жанров с поиском по названию и пагинацией.
func (s *Storage) ListGenres(ctx context.Context, search string, limit, offset int) ([]*models.Genre, error) {
	const op = "storage.ListGenres"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, slug
			  FROM genres
			  WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
			  ORDER BY slug
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Genre
	for rows.Next() {
		var g models.Genre
		if err = rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteGenreBySlug удаляет жанр, возвращает количество удалённых записей.
func (s *Storage) DeleteGenreBySlug(ctx context.Context, slug string) (int, error) {
	const op = "storage.DeleteGenreBySlug"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM genres WHERE slug = $1`, slug)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}
