// Package commentcreate реализует HTTP-обработчик создания комментария к отзыву.
package commentcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/review-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/permissions"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание комментария.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания комментария.
type Service interface {
	CreateComment(ctx context.Context, actor *permissions.Actor, titleID, reviewID int, req models.DummyComment) (*models.Comment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Оставить комментарий к отзыву
// @Tags Comments
// @Accept  json
// @Produce  json
// @Param title_id path int true "ID произведения"
// @Param review_id path int true "ID отзыва"
// @Param request body models.DummyComment true "Текст комментария"
// @Success 201 {object} response.Response "Созданный комментарий"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Отзыв не найден"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.create"
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

	var req models.DummyComment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	comment, err := h.service.CreateComment(r.Context(), actor, titleID, reviewID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("review not found", slog.Int("review_id", reviewID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("review not found"))
			return
		}
		log.Error("failed to create comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create comment"))
		return
	}

	log.Info("comment created", slog.Int("id", comment.ID), slog.Int("review_id", reviewID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(comment))
}
