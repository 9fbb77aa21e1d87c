// Package models содержит доменные структуры каталога отзывов:
// пользователей, произведения, жанры, категории, отзывы и комментарии,
// а также вспомогательные Dummy-типы для приёма данных из JSON-запросов.
package models

// Role роль пользователя в системе.
type Role string

// Возможные роли. Других ролей не существует: значение вне этого
// набора отклоняется при обновлении пользователя, а не приводится к дефолту.
const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid сообщает, входит ли роль в список допустимых.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash заполняется только у суперпользователей, созданных через
// cmd/create-admin. Обычные учетные записи аутентифицируются исключительно
// обменом кода подтверждения на jwt-токен.
type User struct {
	UUID             string `json:"-"`          // Уникальный идентификатор пользователя
	Username         string `json:"username"`   // Имя пользователя (уникальное)
	Email            string `json:"email"`      // Электронная почта (уникальная)
	FirstName        string `json:"first_name"` // Имя
	LastName         string `json:"last_name"`  // Фамилия
	Bio              string `json:"bio"`        // Биография
	Role             Role   `json:"role"`       // Роль пользователя
	IsSuperuser      bool   `json:"-"`          // Ортогональный флаг суперпользователя
	ConfirmationCode string `json:"-"`          // Текущий код подтверждения
	PasswordHash     string `json:"-"`          // Хэш пароля, пустой у всех, кроме суперюзеров
}

// DummySignup входные данные для запроса кода подтверждения (signup/resend).
type DummySignup struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

// DummyToken входные данные для обмена кода подтверждения на токен.
type DummyToken struct {
	Username         string `json:"username" validate:"required,max=150"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// DummyUser входные данные для создания пользователя администратором.
// Роль опциональна, по умолчанию user.
type DummyUser struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

// DummyUserPatch частичное обновление пользователя администратором.
type DummyUserPatch struct {
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

// DummyUserMePatch частичное обновление собственного профиля.
// Поля username, email и role при самостоятельном обновлении только для чтения.
type DummyUserMePatch struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string `json:"bio"`
}
