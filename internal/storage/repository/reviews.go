package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// CreateReview сохраняет отзыв и возвращает его ID.
// Повторный отзыв того же автора на то же произведение отклоняется
// ограничением UNIQUE(author_uid, title_id) и возвращается как
// ErrUniqueViolation: проверка на уровне запроса носит рекомендательный
// характер, авторитетна именно база.
func (s *Storage) CreateReview(ctx context.Context, review models.Review) (int, error) {
	const op = "storage.CreateReview"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO reviews (author_uid, title_id, text, score)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		review.AuthorUID, review.TitleID, review.Text, review.Score).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapUnique(err))
	}
	return newID, nil
}

// ExistsReview сообщает, оставлял ли автор отзыв на произведение.
func (s *Storage) ExistsReview(ctx context.Context, authorUID string, titleID int) (bool, error) {
	const op = "storage.ExistsReview"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE author_uid = $1 AND title_id = $2)`
	if err := s.DB.QueryRowContext(ctx, query, authorUID, titleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// GetReview возвращает отзыв по ID произведения и ID отзыва.
func (s *Storage) GetReview(ctx context.Context, titleID, reviewID int) (*models.Review, error) {
	const op = "storage.GetReview"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, u.username, r.author_uid, r.title_id, r.text, r.score, r.pub_date
			  FROM reviews r
			  JOIN users u ON u.uid = r.author_uid
			  WHERE r.title_id = $1 AND r.id = $2`
	r := &models.Review{}
	row := s.DB.QueryRowContext(ctx, query, titleID, reviewID)
	if err := row.Scan(&r.ID, &r.Author, &r.AuthorUID, &r.TitleID,
		&r.Text, &r.Score, &r.PubDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// ListReviews возвращает отзывы на произведение с пагинацией.
func (s *Storage) ListReviews(ctx context.Context, titleID, limit, offset int) ([]*models.Review, error) {
	const op = "storage.ListReviews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, u.username, r.author_uid, r.title_id, r.text, r.score, r.pub_date
			  FROM reviews r
			  JOIN users u ON u.uid = r.author_uid
			  WHERE r.title_id = $1
			  ORDER BY r.pub_date
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, titleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Review
	for rows.Next() {
		var r models.Review
		if err = rows.Scan(&r.ID, &r.Author, &r.AuthorUID, &r.TitleID,
			&r.Text, &r.Score, &r.PubDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateReview обновляет текст и оценку отзыва. Дата публикации неизменяема.
func (s *Storage) UpdateReview(ctx context.Context, review models.Review) error {
	const op = "storage.UpdateReview"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE reviews SET text = $1, score = $2 WHERE id = $3`
	res, err := s.DB.ExecContext(ctx, query, review.Text, review.Score, review.ID)
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
	return nil
}

// DeleteReview удаляет отзыв, возвращает количество удалённых записей.
// Комментарии отзыва удаляются каскадно ограничениями базы.
func (s *Storage) DeleteReview(ctx context.Context, reviewID int) (int, error) {
	const op = "storage.DeleteReview"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}
