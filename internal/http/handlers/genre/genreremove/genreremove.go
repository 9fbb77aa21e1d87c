// Package genreremove реализует HTTP-обработчик удаления жанра по slug.
package genreremove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление жанра.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления жанра.
type Service interface {
	RemoveGenre(ctx context.Context, slug string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить жанр
// @Description Удаляет жанр по slug вместе со связями с произведениями.
// @Tags Genres
// @Produce  json
// @Param slug path string true "Slug жанра"
// @Success 200 {object} response.Response "Жанр удалён"
// @Failure 404 {object} response.ErrorResponse "Жанр не найден"
// @Security BearerAuth
// @Router /genres/{slug} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.genre.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	slug := chi.URLParam(r, "slug")
	count, err := h.service.RemoveGenre(r.Context(), slug)
	if err != nil {
		log.Error("failed to remove genre", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove genre"))
		return
	}
	if count == 0 {
		log.Error("genre not found", slog.String("slug", slug))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("genre not found"))
		return
	}

	log.Info("genre removed", slog.String("slug", slug))
	render.JSON(w, r, response.OK())
}
