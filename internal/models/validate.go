package models

import (
	"errors"
	"regexp"
)

// Ошибки валидации идентификаторов.
var (
	// ErrReservedUsername имя пользователя "me" зарезервировано маршрутом /users/me/.
	ErrReservedUsername = errors.New("username 'me' is reserved")
	// ErrInvalidUsername имя пользователя не соответствует допустимому шаблону.
	ErrInvalidUsername = errors.New("username contains invalid characters")
	// ErrInvalidSlug slug не соответствует допустимому шаблону.
	ErrInvalidSlug = errors.New("slug contains invalid characters")
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// ValidateUsername проверяет имя пользователя: запрещенное значение "me"
// и шаблон допустимых символов (буквы, цифры и @/./+/-/_).
func ValidateUsername(username string) error {
	if username == "me" {
		return ErrReservedUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidateSlug проверяет slug категории или жанра.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}
