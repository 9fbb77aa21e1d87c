// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов
// и для проверки прав доступа на уровне коллекций.
//
// JWTMiddleware разбирает заголовок Authorization и кладет действующее лицо
// запроса в контекст. Отсутствие заголовка не является ошибкой: публичные
// операции чтения доступны анонимно, решение о доступе принимает
// RequirePolicy или сам обработчик.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Actor — ключ для действующего лица запроса в контексте.
const Actor Key = "actor"

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*permissions.Actor, error)
}

// ActorFromContext возвращает действующее лицо запроса или nil для анонима.
func ActorFromContext(ctx context.Context) *permissions.Actor {
	actor, ok := ctx.Value(Actor).(*permissions.Actor)
	if !ok {
		return nil
	}
	return actor
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если заголовка нет, запрос продолжается анонимно. Если токен предъявлен,
// но невалиден или просрочен, возвращается HTTP 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			actor, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), Actor, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth возвращает middleware, пропускающий только аутентифицированные
// запросы. Анонимный запрос получает HTTP 401 Unauthorized.
func RequireAuth(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ActorFromContext(r.Context()) == nil {
				log.Error("authentication required",
					slog.String("request_id", middleware.GetReqID(r.Context())))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePolicy возвращает middleware, проверяющий политику доступа на уровне
// коллекции для метода запроса. Аноним при отказе получает 401,
// аутентифицированный пользователь без нужной роли — 403.
func RequirePolicy(policy permissions.Policy, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())
			if permissions.Allow(policy, actor, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(slog.String("request_id", middleware.GetReqID(r.Context())))
			if actor == nil {
				log.Error("authentication required", slog.String("method", r.Method))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			log.Error("permission denied",
				slog.String("username", actor.Username),
				slog.String("method", r.Method))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("permission denied"))
		})
	}
}
