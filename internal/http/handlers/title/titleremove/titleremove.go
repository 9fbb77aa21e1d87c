// Package titleremove реализует HTTP-обработчик удаления произведения.
package titleremove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление произведения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления произведения.
type Service interface {
	RemoveTitle(ctx context.Context, id int) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить произведение
// @Description Удаляет произведение вместе с отзывами и их комментариями.
// @Tags Titles
// @Produce  json
// @Param title_id path int true "ID произведения"
// @Success 200 {object} response.Response "Произведение удалено"
// @Failure 404 {object} response.ErrorResponse "Произведение не найдено"
// @Security BearerAuth
// @Router /titles/{title_id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.title.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "title_id"))
	if err != nil {
		log.Error("invalid title id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid title id"))
		return
	}

	count, err := h.service.RemoveTitle(r.Context(), id)
	if err != nil {
		log.Error("failed to remove title", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove title"))
		return
	}
	if count == 0 {
		log.Error("title not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("title not found"))
		return
	}

	log.Info("title removed", slog.Int("id", id))
	render.JSON(w, r, response.OK())
}
