// Package random генерирует случайные строки для кодов подтверждения.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// String возвращает случайную алфавитно-цифровую строку заданной длины.
// Источник случайности криптографический: код подтверждения заменяет пароль.
func String(length int) (string, error) {
	const op = "random.String"
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
