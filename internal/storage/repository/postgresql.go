// Package repository реализует хранилище данных на основе PostgreSQL
// для каталога произведений и отзывов. Предоставляет методы создания,
// чтения, обновления и удаления пользователей, категорий, жанров,
// произведений, отзывов и комментариев.
//
// Целостность под конкурентными запросами обеспечивается ограничениями
// базы: уникальностью username/email, уникальностью пары (автор, произведение)
// у отзывов и каскадным удалением зависимых записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища, на которые опирается сервисный слой.
var (
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrUniqueViolation нарушено ограничение уникальности.
	ErrUniqueViolation = errors.New("unique violation")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// mapUnique переводит ошибку постгреса 23505 в ErrUniqueViolation,
// чтобы сервисный слой не зависел от драйвера.
func mapUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUniqueViolation
	}
	return err
}
