// Package genrecreate реализует HTTP-обработчик создания жанра.
package genrecreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание жанра.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания жанра.
type Service interface {
	CreateGenre(ctx context.Context, req models.DummyGenre) (*models.Genre, error)
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
// @Summary Создать жанр
// @Tags Genres
// @Accept  json
// @Produce  json
// @Param request body models.DummyGenre true "Название и slug жанра"
// @Success 201 {object} response.Response "Созданный жанр"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Security BearerAuth
// @Router /genres [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.genre.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyGenre
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

	genre, err := h.service.CreateGenre(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSlug):
			log.Error("invalid slug", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid slug"))
		case errors.Is(err, repository.ErrUniqueViolation):
			log.Error("slug already taken", slog.String("slug", req.Slug))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("slug already taken"))
		default:
			log.Error("failed to create genre", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create genre"))
		}
		return
	}

	log.Info("genre created", slog.String("slug", genre.Slug))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(genre))
}
