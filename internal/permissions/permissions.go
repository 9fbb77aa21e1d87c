// Package permissions реализует решения об авторизации запросов.
//
// Actor — явное представление действующего лица запроса; nil-указатель
// означает анонимного клиента. Политики повторяют таблицу доступа API:
// пользователями управляет только админ, каталог изменяет только админ,
// отзывы и комментарии изменяет автор, модератор или админ.
package permissions

import (
	"net/http"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// Actor действующее лицо запроса, восстановленное из jwt-токена.
type Actor struct {
	Username    string
	Role        models.Role
	IsSuperuser bool
}

// IsAdminOrSuper возвращает true для админа или суперпользователя.
func (a *Actor) IsAdminOrSuper() bool {
	if a == nil {
		return false
	}
	return a.Role == models.RoleAdmin || a.IsSuperuser
}

// IsModeratorOrAdminOrSuper возвращает true для модератора, админа
// или суперпользователя.
func (a *Actor) IsModeratorOrAdminOrSuper() bool {
	if a == nil {
		return false
	}
	return a.Role == models.RoleModerator || a.IsAdminOrSuper()
}

// Policy политика доступа к ресурсу.
type Policy int

const (
	// AdminOnly — ресурс /users: любые методы только админу и суперюзеру.
	AdminOnly Policy = iota
	// AdminOrReadOnly — каталог (titles/genres/categories): чтение всем,
	// запись только админу и суперюзеру.
	AdminOrReadOnly
	// AdminOrModeratorOrReadOnly — отзывы и комментарии: чтение всем,
	// создание любому аутентифицированному, изменение объекта — автору,
	// модератору или админу.
	AdminOrModeratorOrReadOnly
)

// SafeMethod сообщает, является ли метод запроса безопасным (только чтение).
func SafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Allow решение уровня коллекции: без целевого объекта.
// Анонимный actor (nil) не удовлетворяет ни одному привилегированному предикату.
func Allow(p Policy, actor *Actor, method string) bool {
	switch p {
	case AdminOnly:
		return actor.IsAdminOrSuper()
	case AdminOrReadOnly:
		return SafeMethod(method) || actor.IsAdminOrSuper()
	case AdminOrModeratorOrReadOnly:
		return SafeMethod(method) || actor != nil
	}
	return false
}

// AllowObject решение уровня объекта: учитывает владельца.
// owner — username автора целевого объекта.
func AllowObject(p Policy, actor *Actor, method, owner string) bool {
	switch p {
	case AdminOnly:
		return actor.IsAdminOrSuper()
	case AdminOrReadOnly:
		return SafeMethod(method) || actor.IsAdminOrSuper()
	case AdminOrModeratorOrReadOnly:
		if SafeMethod(method) {
			return true
		}
		if actor == nil {
			return false
		}
		return actor.IsModeratorOrAdminOrSuper() || actor.Username == owner
	}
	return false
}

// FromUser строит Actor из доменного пользователя.
func FromUser(u *models.User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{
		Username:    u.Username,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
	}
}
