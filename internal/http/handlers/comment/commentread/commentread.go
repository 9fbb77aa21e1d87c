// Package commentread реализует HTTP-обработчик получения комментария по ID.
package commentread

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на получение комментария.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения комментария.
type Service interface {
	GetComment(ctx context.Context, titleID, reviewID, commentID int) (*models.Comment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить комментарий по ID
// @Tags Comments
// @Produce  json
// @Param title_id path int true "ID произведения"
// @Param review_id path int true "ID отзыва"
// @Param comment_id path int true "ID комментария"
// @Success 200 {object} response.Response "Комментарий"
// @Failure 404 {object} response.ErrorResponse "Комментарий не найден"
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	titleID, err := strconv.Atoi(chi.URLParam(r, "title_id"))
	if err != nil {
		log.Error("invalid title id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid title id"))
		return
	}
	reviewID, err := strconv.Atoi(chi.URLParam(r, "review_id"))
	if err != nil {
		log.Error("invalid review id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid review id"))
		return
	}
	commentID, err := strconv.Atoi(chi.URLParam(r, "comment_id"))
	if err != nil {
		log.Error("invalid comment id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid comment id"))
		return
	}

	comment, err := h.service.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("comment not found", slog.Int("comment_id", commentID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("comment not found"))
			return
		}
		log.Error("failed to get comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get comment"))
		return
	}

	render.JSON(w, r, response.OKWithData(comment))
}
