// Package titleupdate реализует HTTP-обработчик частичного обновления произведения.
package titleupdate

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

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	services "github.com/magabrotheeeer/review-catalog/internal/services/catalog"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на обновление произведения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления произведения.
type Service interface {
	UpdateTitle(ctx context.Context, id int, req models.DummyTitlePatch) (*models.Title, error)
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
// @Summary Обновить произведение
// @Tags Titles
// @Accept  json
// @Produce  json
// @Param title_id path int true "ID произведения"
// @Param request body models.DummyTitlePatch true "Изменяемые поля"
// @Success 200 {object} response.Response "Обновлённое произведение"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Произведение не найдено"
// @Security BearerAuth
// @Router /titles/{title_id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.title.update"
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

	var req models.DummyTitlePatch
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

	title, err := h.service.UpdateTitle(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("title not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("title not found"))
		case errors.Is(err, services.ErrYearInFuture):
			log.Error("year in future")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("year must not be greater than the current year"))
		case errors.Is(err, services.ErrUnknownCategory):
			log.Error("unknown category")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown category slug"))
		case errors.Is(err, services.ErrUnknownGenre):
			log.Error("unknown genre")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown genre slug"))
		default:
			log.Error("failed to update title", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update title"))
		}
		return
	}

	log.Info("title updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(title))
}
