// Package commentremove реализует HTTP-обработчик удаления комментария.
// Удалять комментарий может его автор, модератор или админ.
package commentremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	services "github.com/magabrotheeeer/review-catalog/internal/services/review"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на удаление комментария.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления комментария.
type Service interface {
	RemoveComment(ctx context.Context, actor *permissions.Actor, titleID, reviewID, commentID int) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить комментарий
// @Tags Comments
// @Produce  json
// @Param title_id path int true "ID произведения"
// @Param review_id path int true "ID отзыва"
// @Param comment_id path int true "ID комментария"
// @Success 200 {object} response.Response "Комментарий удалён"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Комментарий не найден"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.ActorFromContext(r.Context())
	if actor == nil {
		log.Error("actor not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

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

	if _, err := h.service.RemoveComment(r.Context(), actor, titleID, reviewID, commentID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("comment not found", slog.Int("comment_id", commentID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("comment not found"))
		case errors.Is(err, services.ErrForbidden):
			log.Error("permission denied", slog.String("username", actor.Username))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("permission denied"))
		default:
			log.Error("failed to remove comment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not remove comment"))
		}
		return
	}

	log.Info("comment removed", slog.Int("comment_id", commentID))
	render.JSON(w, r, response.OK())
}
