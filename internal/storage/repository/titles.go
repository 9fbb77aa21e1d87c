package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// CreateTitle сохраняет произведение вместе со связями с жанрами и возвращает его ID.
// Категория и жанры должны быть уже разрешены в ID сервисным слоем.
// Ограничение year <= текущего года продублировано CHECK-ограничением в базе.
func (s *Storage) CreateTitle(ctx context.Context, title models.Title) (int, error) {
	const op = "storage.CreateTitle"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var categoryID sql.NullInt64
	if title.Category != nil {
		categoryID = sql.NullInt64{Int64: int64(title.Category.ID), Valid: true}
	}

	var newID int
	query := `INSERT INTO titles (name, year, description, category_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err = tx.QueryRowContext(ctx, query,
		title.Name, title.Year, title.Description, categoryID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, g := range title.Genre {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`, newID, g.ID); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetTitle возвращает произведение с категорией, жанрами и рейтингом.
// Рейтинг считается в момент чтения как AVG(score); при отсутствии
// отзывов остается nil.
func (s *Storage) GetTitle(ctx context.Context, id int) (*models.Title, error) {
	const op = "storage.GetTitle"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT t.id, t.name, t.year, t.description,
			      c.id, c.name, c.slug,
			      AVG(r.score)
			  FROM titles t
			  LEFT JOIN categories c ON c.id = t.category_id
			  LEFT JOIN reviews r ON r.title_id = t.id
			  WHERE t.id = $1
			  GROUP BY t.id, c.id`
	t := &models.Title{}
	var catID sql.NullInt64
	var catName, catSlug sql.NullString
	var rating sql.NullFloat64
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&t.ID, &t.Name, &t.Year, &t.Description,
		&catID, &catName, &catSlug, &rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if catID.Valid {
		t.Category = &models.Category{ID: int(catID.Int64), Name: catName.String, Slug: catSlug.String}
	}
	if rating.Valid {
		t.Rating = &rating.Float64
	}

	genres, err := s.titleGenres(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t.Genre = genres
	return t, nil
}

// ListTitles возвращает список произведений по фильтру с пагинацией.
// Рейтинг вычисляется так же, как при одиночном чтении.
func (s *Storage) ListTitles(ctx context.Context, filter models.TitleFilter, limit, offset int) ([]*models.Title, error) {
	const op = "storage.ListTitles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT t.id, t.name, t.year, t.description,
			      c.id, c.name, c.slug,
			      AVG(r.score)
			  FROM titles t
			  LEFT JOIN categories c ON c.id = t.category_id
			  LEFT JOIN reviews r ON r.title_id = t.id
			  WHERE ($1 = '' OR c.slug = $1)
			    AND ($2 = '' OR EXISTS (
			        SELECT 1 FROM title_genres tg
			        JOIN genres g ON g.id = tg.genre_id
			        WHERE tg.title_id = t.id AND g.slug = $2))
			    AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
			    AND ($4 = 0 OR t.year = $4)
			  GROUP BY t.id, c.id
			  ORDER BY t.id
			  LIMIT $5 OFFSET $6`
	rows, err := s.DB.QueryContext(ctx, query,
		filter.Category, filter.Genre, filter.Name, filter.Year, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Title
	for rows.Next() {
		var t models.Title
		var catID sql.NullInt64
		var catName, catSlug sql.NullString
		var rating sql.NullFloat64
		if err = rows.Scan(&t.ID, &t.Name, &t.Year, &t.Description,
			&catID, &catName, &catSlug, &rating); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if catID.Valid {
			t.Category = &models.Category{ID: int(catID.Int64), Name: catName.String, Slug: catSlug.String}
		}
		if rating.Valid {
			t.Rating = &rating.Float64
		}
		result = append(result, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range result {
		genres, err := s.titleGenres(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		t.Genre = genres
	}
	return result, nil
}

// UpdateTitle сохраняет изменённые поля произведения. При replaceGenres
// связи с жанрами заменяются на переданный набор.
func (s *Storage) UpdateTitle(ctx context.Context, title models.Title, replaceGenres bool) error {
	const op = "storage.UpdateTitle"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var categoryID sql.NullInt64
	if title.Category != nil {
		categoryID = sql.NullInt64{Int64: int64(title.Category.ID), Valid: true}
	}

	query := `UPDATE titles
			  SET name = $1, year = $2, description = $3, category_id = $4
			  WHERE id = $5`
	res, err := tx.ExecContext(ctx, query,
		title.Name, title.Year, title.Description, categoryID, title.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if replaceGenres {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM title_genres WHERE title_id = $1`, title.ID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		for _, g := range title.Genre {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`, title.ID, g.ID); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteTitle удаляет произведение, возвращает количество удалённых записей.
// Отзывы и их комментарии удаляются каскадно ограничениями базы.
func (s *Storage) DeleteTitle(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteTitle"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

// titleGenres возвращает жанры произведения.
func (s *Storage) titleGenres(ctx context.Context, titleID int) ([]models.Genre, error) {
	query := `SELECT g.id, g.name, g.slug
			  FROM genres g
			  JOIN title_genres tg ON tg.genre_id = g.id
			  WHERE tg.title_id = $1
			  ORDER BY g.slug`
	rows, err := s.DB.QueryContext(ctx, query, titleID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []models.Genre
	for rows.Next() {
		var g models.Genre
		if err = rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}
