// Package password содержит функции хэширования и проверки паролей.
// Используется только для суперпользователей: у обычных учетных записей
// пароль непригоден для входа, аутентификация идет через код подтверждения.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash возвращает bcrypt-хэш пароля.
func GetHash(rawPassword string) (string, error) {
	const op = "password.GetHash"
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hash), nil
}

// CompareHash сравнивает хэш с паролем, возвращает ошибку при несовпадении.
func CompareHash(hash, rawPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawPassword))
}
