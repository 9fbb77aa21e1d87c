// Package services содержит логику бизнес-уровня выдачи кодов подтверждения
// и обмена кода на jwt-токен.
//
// Пароль в этом потоке не участвует: код подтверждения — единственный
// разделяемый секрет, у учетной записи в каждый момент действует ровно
// один код, и каждый запрос signup/resend перезаписывает предыдущий.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/review-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/review-catalog/internal/lib/random"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
)

// Ошибки, которые обработчики переводят в HTTP-статусы.
var (
	// ErrInvalidConfirmationCode присланный код не совпадает с сохранённым.
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	// ErrDispatchFailed не удалось отправить письмо с кодом.
	// Ошибка фатальна для запроса signup/resend, она не проглатывается.
	ErrDispatchFailed = errors.New("failed to dispatch confirmation code")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ExistsUserPair проверяет существование пары (username, email).
	ExistsUserPair(ctx context.Context, username, email string) (bool, error)

	// UpdateConfirmationCode перезаписывает код подтверждения пользователя.
	UpdateConfirmationCode(ctx context.Context, username, code string) error
}

// Sender отправляет код подтверждения на почту.
type Sender interface {
	SendConfirmationCode(email, code string) error
}

// AuthService отвечает за выдачу кодов подтверждения, обмен кода на токен
// и валидацию jwt.
type AuthService struct {
	users      UserRepository
	sender     Sender
	jwtMaker   jwt.Maker
	codeLength int
	log        *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sender Sender, jwtMaker jwt.Maker, codeLength int, log *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sender:     sender,
		jwtMaker:   jwtMaker,
		codeLength: codeLength,
		log:        log,
	}
}

// RequestCode обрабатывает запрос signup/resend.
//
// Если пары (username, email) ещё нет — создается учетная запись с ролью user
// и свежим кодом (created = true). Если пара уже существует — генерируется
// новый код и перезаписывает старый (created = false); ранее выданный код
// немедленно перестаёт действовать. Частичное совпадение username или email
// с другой учетной записью отклоняется ограничением уникальности базы.
func (s *AuthService) RequestCode(ctx context.Context, username, email string) (created bool, err error) {
	const op = "services.auth.RequestCode"

	if err = models.ValidateUsername(username); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	code, err := random.String(s.codeLength)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.users.ExistsUserPair(ctx, username, email)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if exists {
		if err = s.users.UpdateConfirmationCode(ctx, username, code); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("confirmation code reissued", slog.String("username", username))
	} else {
		user := models.User{
			Username:         username,
			Email:            email,
			Role:             models.RoleUser, // дефолтная роль при регистрации
			ConfirmationCode: code,
		}
		if _, err = s.users.CreateUser(ctx, user); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		created = true
		s.log.Info("user created", slog.String("username", username))
	}

	if err = s.sender.SendConfirmationCode(email, code); err != nil {
		s.log.Error("confirmation code dispatch failed", sl.Err(err))
		return created, fmt.Errorf("%s: %w", op, ErrDispatchFailed)
	}
	return created, nil
}

// ExchangeToken обменивает пару (username, код подтверждения) на jwt-токен.
//
// Неизвестный username возвращается как ошибка "не найдено" из хранилища,
// несовпавший код — как ErrInvalidConfirmationCode; неудачная попытка
// не инвалидирует сохранённый код. Успешный обмен код тоже не сбрасывает:
// он действует до следующего signup/resend.
func (s *AuthService) ExchangeToken(ctx context.Context, username, confirmationCode string) (string, error) {
	const op = "services.auth.ExchangeToken"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if user.ConfirmationCode == "" || user.ConfirmationCode != confirmationCode {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidConfirmationCode)
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, string(user.Role), user.IsSuperuser)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет jwt и восстанавливает действующее лицо запроса.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*permissions.Actor, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &permissions.Actor{
		Username:    claims.Username,
		Role:        models.Role(claims.Role),
		IsSuperuser: claims.IsSuperuser,
	}, nil
}
