// Package categoryremove реализует HTTP-обработчик удаления категории по slug.
package categoryremove

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

// Handler управляет HTTP-запросами на удаление категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления категории.
type Service interface {
	RemoveCategory(ctx context.Context, slug string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить категорию
// @Description Удаляет категорию по slug. Произведения категории остаются без категории.
// @Tags Categories
// @Produce  json
// @Param slug path string true "Slug категории"
// @Success 200 {object} response.Response "Категория удалена"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Security BearerAuth
// @Router /categories/{slug} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	slug := chi.URLParam(r, "slug")
	count, err := h.service.RemoveCategory(r.Context(), slug)
	if err != nil {
		log.Error("failed to remove category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove category"))
		return
	}
	if count == 0 {
		log.Error("category not found", slog.String("slug", slug))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("category not found"))
		return
	}

	log.Info("category removed", slog.String("slug", slug))
	render.JSON(w, r, response.OK())
}
