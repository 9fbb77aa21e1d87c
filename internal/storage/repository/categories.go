package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// CreateCategory сохраняет новую категорию и возвращает её ID.
// Повтор slug возвращается как ErrUniqueViolation.
func (s *Storage) CreateCategory(ctx context.Context, category models.Category) (int, error) {
	const op = "storage.CreateCategory"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, category.Name, category.Slug).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapUnique(err))
	}
	return newID, nil
}

// GetCategoryBySlug возвращает категорию по её slug.
func (s *Storage) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "storage.GetCategoryBySlug"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	c := &models.Category{}
	query := `SELECT id, name, slug FROM categories WHERE slug = $1`
	if err := s.DB.QueryRowContext(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListCategories возвращает список категорий с поиском по названию и пагинацией.
func (s *Storage) ListCategories(ctx context.Context, search string, limit, offset int) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, slug
			  FROM categories
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
	var result []*models.Category
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteCategoryBySlug удаляет категорию, возвращает количество удалённых записей.
// У произведений этой категории поле категории сбрасывается в NULL (ON DELETE SET NULL).
func (s *Storage) DeleteCategoryBySlug(ctx context.Context, slug string) (int, error) {
	const op = "storage.DeleteCategoryBySlug"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}
