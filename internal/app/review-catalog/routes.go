// Package reviewcatalog предоставляет маршруты и жизненный цикл основного приложения.
package reviewcatalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/auth/token"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/category/categorycreate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/category/categorylist"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/category/categoryremove"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/comment/commentcreate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/comment/commentlist"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/comment/commentread"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/comment/commentremove"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/comment/commentupdate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/genre/genrecreate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/genre/genrelist"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/genre/genreremove"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/review/reviewcreate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/review/reviewlist"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/review/reviewread"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/review/reviewremove"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/review/reviewupdate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/title/titlecreate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/title/titlelist"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/title/titleread"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/title/titleremove"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/title/titleupdate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/meread"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/meupdate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/usercreate"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/userlist"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/userread"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/userremove"
	"github.com/magabrotheeeer/review-catalog/internal/http/handlers/user/userupdate"
	"github.com/magabrotheeeer/review-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	authservice "github.com/magabrotheeeer/review-catalog/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/review-catalog/internal/services/catalog"
	reviewservice "github.com/magabrotheeeer/review-catalog/internal/services/review"
	userservice "github.com/magabrotheeeer/review-catalog/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Операции чтения каталога и отзывов доступны анонимно. JWT разбирается
// для всех запросов /api/v1: действующее лицо попадает в контекст, а решение
// о доступе принимают политики маршрутов и сервисы.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, userService *userservice.UserService, catalogService *catalogservice.CatalogService, reviewService *reviewservice.ReviewService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Use(middlewarectx.JWTMiddleware(authService, logger))

		// Открытые конечные точки
		r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/auth/token", token.New(logger, authService).ServeHTTP)

		// Управление пользователями: /me доступен любому аутентифицированному,
		// остальное — только админам
		r.Route("/users", func(r chi.Router) {
			r.With(middlewarectx.RequireAuth(logger)).Get("/me", meread.New(logger, userService).ServeHTTP)
			r.With(middlewarectx.RequireAuth(logger)).Patch("/me", meupdate.New(logger, userService).ServeHTTP)

			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequirePolicy(permissions.AdminOnly, logger))
				r.Get("/", userlist.New(logger, userService).ServeHTTP)
				r.Post("/", usercreate.New(logger, userService).ServeHTTP)
				r.Get("/{username}", userread.New(logger, userService).ServeHTTP)
				r.Patch("/{username}", userupdate.New(logger, userService).ServeHTTP)
				r.Delete("/{username}", userremove.New(logger, userService).ServeHTTP)
			})
		})

		// Справочники каталога: чтение анонимно, изменение только админам
		r.Route("/categories", func(r chi.Router) {
			r.Use(middlewarectx.RequirePolicy(permissions.AdminOrReadOnly, logger))
			r.Get("/", categorylist.New(logger, catalogService).ServeHTTP)
			r.Post("/", categorycreate.New(logger, catalogService).ServeHTTP)
			r.Delete("/{slug}", categoryremove.New(logger, catalogService).ServeHTTP)
		})
		r.Route("/genres", func(r chi.Router) {
			r.Use(middlewarectx.RequirePolicy(permissions.AdminOrReadOnly, logger))
			r.Get("/", genrelist.New(logger, catalogService).ServeHTTP)
			r.Post("/", genrecreate.New(logger, catalogService).ServeHTTP)
			r.Delete("/{slug}", genreremove.New(logger, catalogService).ServeHTTP)
		})

		r.Route("/titles", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequirePolicy(permissions.AdminOrReadOnly, logger))
				r.Get("/", titlelist.New(logger, catalogService).ServeHTTP)
				r.Post("/", titlecreate.New(logger, catalogService).ServeHTTP)
				r.Get("/{title_id}", titleread.New(logger, catalogService).ServeHTTP)
				r.Patch("/{title_id}", titleupdate.New(logger, catalogService).ServeHTTP)
				r.Delete("/{title_id}", titleremove.New(logger, catalogService).ServeHTTP)
			})

			// Отзывы и комментарии: запись любому аутентифицированному,
			// объектные права проверяет сервис
			r.Route("/{title_id}/reviews", func(r chi.Router) {
				r.Get("/", reviewlist.New(logger, reviewService).ServeHTTP)
				r.With(middlewarectx.RequireAuth(logger)).
					Post("/", reviewcreate.New(logger, reviewService).ServeHTTP)
				r.Get("/{review_id}", reviewread.New(logger, reviewService).ServeHTTP)
				r.With(middlewarectx.RequireAuth(logger)).
					Patch("/{review_id}", reviewupdate.New(logger, reviewService).ServeHTTP)
				r.With(middlewarectx.RequireAuth(logger)).
					Delete("/{review_id}", reviewremove.New(logger, reviewService).ServeHTTP)

				r.Route("/{review_id}/comments", func(r chi.Router) {
					r.Get("/", commentlist.New(logger, reviewService).ServeHTTP)
					r.With(middlewarectx.RequireAuth(logger)).
						Post("/", commentcreate.New(logger, reviewService).ServeHTTP)
					r.Get("/{comment_id}", commentread.New(logger, reviewService).ServeHTTP)
					r.With(middlewarectx.RequireAuth(logger)).
						Patch("/{comment_id}", commentupdate.New(logger, reviewService).ServeHTTP)
					r.With(middlewarectx.RequireAuth(logger)).
						Delete("/{comment_id}", commentremove.New(logger, reviewService).ServeHTTP)
				})
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
