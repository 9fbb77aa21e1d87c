package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// CreateComment сохраняет комментарий к отзыву и возвращает его ID.
func (s *Storage) CreateComment(ctx context.Context, comment models.Comment) (int, error) {
	const op = "storage.CreateComment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO comments (author_uid, review_id, text)
			  VALUES ($1, $2, $3)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		comment.AuthorUID, comment.ReviewID, comment.Text).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetComment возвращает комментарий по ID отзыва и ID комментария.
func (s *Storage) GetComment(ctx context.Context, reviewID, commentID int) (*models.Comment, error) {
	const op = "storage.GetComment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, u.username, c.author_uid, c.review_id, c.text, c.pub_date
			  FROM comments c
			  JOIN users u ON u.uid = c.author_uid
			  WHERE c.review_id = $1 AND c.id = $2`
	c := &models.Comment{}
	row := s.DB.QueryRowContext(ctx, query, reviewID, commentID)
	if err := row.Scan(&c.ID, &c.Author, &c.AuthorUID, &c.ReviewID,
		&c.Text, &c.PubDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListComments возвращает комментарии к отзыву с пагинацией.
func (s *Storage) ListComments(ctx context.Context, reviewID, limit, offset int) ([]*models.Comment, error) {
	const op = "storage.ListComments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, u.username, c.author_uid, c.review_id, c.text, c.pub_date
			  FROM comments c
			  JOIN users u ON u.uid = c.author_uid
			  WHERE c.review_id = $1
			  ORDER BY c.pub_date
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, reviewID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Comment
	for rows.Next() {
		var c models.Comment
		if err = rows.Scan(&c.ID, &c.Author, &c.AuthorUID, &c.ReviewID,
			&c.Text, &c.PubDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateComment обновляет текст комментария. Дата публикации неизменяема.
func (s *Storage) UpdateComment(ctx context.Context, comment models.Comment) error {
	const op = "storage.UpdateComment"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE comments SET text = $1 WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, comment.Text, comment.ID)
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

// DeleteComment удаляет комментарий, возвращает количество удалённых записей.
func (s *Storage) DeleteComment(ctx context.Context, commentID int) (int, error) {
	const op = "storage.DeleteComment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}
