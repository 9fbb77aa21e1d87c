// Package reviewcreate реализует HTTP-обработчик создания отзыва.
//
// Автор отзыва определяется по токену запроса, клиентское значение
// не принимается. Второй отзыв того же автора на то же произведение
// отклоняется.
package reviewcreate

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
	services "github.com/magabrotheeeer/review-catalog/internal/services/review"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание отзыва.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания отзыва.
type Service interface {
	CreateReview(ctx context.Context, actor *permissions.Actor, titleID int, req models.DummyReview) (*models.Review, error)
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
// @Summary Оставить отзыв на произведение
// @Description Создает отзыв с оценкой от 1 до 10. Один автор может оставить только один отзыв на произведение.
// @Tags Reviews
// @Accept  json
// @Produce  json
// @Param title_id path int true "ID произведения"
// @Param request body models.DummyReview true "Текст и оценка"
// @Success 201 {object} response.Response "Созданный отзыв"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или повторный отзыв"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Произведение не найдено"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.review.create"
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

	var req models.DummyReview
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

	review, err := h.service.CreateReview(r.Context(), actor, titleID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("title not found", slog.Int("title_id", titleID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("title not found"))
		case errors.Is(err, services.ErrReviewExists):
			log.Error("duplicate review",
				slog.String("username", actor.Username), slog.Int("title_id", titleID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("you have already reviewed this work"))
		default:
			log.Error("failed to create review", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create review"))
		}
		return
	}

	log.Info("review created", slog.Int("id", review.ID), slog.Int("title_id", titleID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(review))
}
