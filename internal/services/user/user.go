// Package services содержит бизнес-логику управления пользователями:
// административный CRUD по username и работу с собственным профилем.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// ErrInvalidRole присланное значение роли не входит в допустимый набор.
// Недопустимая роль отклоняется, а не приводится к дефолтной.
var ErrInvalidRole = errors.New("role must be one of: user, moderator, admin")

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// ListUsers возвращает список пользователей с пагинацией.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	// UpdateUser сохраняет изменённые поля пользователя.
	UpdateUser(ctx context.Context, user models.User) error
	// DeleteUser удаляет пользователя и возвращает количество удалённых записей.
	DeleteUser(ctx context.Context, username string) (int, error)
}

// UserService реализует операции управления пользователями.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// List возвращает список пользователей с пагинацией.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

// Create создает пользователя от имени администратора. Пароль и код
// подтверждения не выставляются: войти такая учетная запись сможет только
// после запроса кода через signup (ветка resend по существующей паре).
func (s *UserService) Create(ctx context.Context, req models.DummyUser) (*models.User, error) {
	const op = "services.user.Create"

	if err := models.ValidateUsername(req.Username); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidRole)
		}
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	}
	uid, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UUID = uid

	s.log.Info("user created by admin", slog.String("username", user.Username))
	return &user, nil
}

// Get возвращает пользователя по username.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

// Update частично обновляет пользователя от имени администратора.
// Поле role изменяемо, но только на допустимое значение.
func (s *UserService) Update(ctx context.Context, username string, req models.DummyUserPatch) (*models.User, error) {
	const op = "services.user.Update"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidRole)
		}
		user.Role = role
	}

	if err = s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// Remove удаляет пользователя, возвращает количество удалённых записей.
func (s *UserService) Remove(ctx context.Context, username string) (int, error) {
	return s.repo.DeleteUser(ctx, username)
}

// UpdateMe частично обновляет собственный профиль. Username, email и роль
// при самостоятельном обновлении неизменяемы.
func (s *UserService) UpdateMe(ctx context.Context, username string, req models.DummyUserMePatch) (*models.User, error) {
	const op = "services.user.UpdateMe"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err = s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
