// Package titlecreate реализует HTTP-обработчик добавления произведения.
//
// Категория и жанры передаются slug-ами существующих записей. Год выпуска
// не может превышать текущий: произведения, которые ещё не вышли,
// в каталог не добавляются.
package titlecreate

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
	services "github.com/magabrotheeeer/review-catalog/internal/services/catalog"
)

// Handler управляет HTTP-запросами на добавление произведения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления произведения.
type Service interface {
	CreateTitle(ctx context.Context, req models.DummyTitle) (*models.Title, error)
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
// @Summary Добавить произведение
// @Tags Titles
// @Accept  json
// @Produce  json
// @Param request body models.DummyTitle true "Данные произведения"
// @Success 201 {object} response.Response "Созданное произведение"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Security BearerAuth
// @Router /titles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.title.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyTitle
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

	title, err := h.service.CreateTitle(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrYearInFuture):
			log.Error("year in future", slog.Int("year", req.Year))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("year must not be greater than the current year"))
		case errors.Is(err, services.ErrUnknownCategory):
			log.Error("unknown category", slog.String("slug", req.Category))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown category slug"))
		case errors.Is(err, services.ErrUnknownGenre):
			log.Error("unknown genre", slog.Any("slugs", req.Genre))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown genre slug"))
		default:
			log.Error("failed to create title", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create title"))
		}
		return
	}

	log.Info("title created", slog.Int("id", title.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(title))
}
