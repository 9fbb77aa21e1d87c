// Package titlelist реализует HTTP-обработчик получения списка произведений
// с фильтрацией по категории, жанру, названию и году.
package titlelist

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-catalog/internal/http/response"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
)

// Handler управляет HTTP-запросами на получение списка произведений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка произведений.
type Service interface {
	ListTitles(ctx context.Context, filter models.TitleFilter, limit, offset int) ([]*models.Title, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список произведений
// @Tags Titles
// @Produce  json
// @Param category query string false "Slug категории"
// @Param genre query string false "Slug жанра"
// @Param name query string false "Поиск по названию"
// @Param year query int false "Год выпуска"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response "Список произведений"
// @Router /titles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.title.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	filter := models.TitleFilter{
		Category: query.Get("category"),
		Genre:    query.Get("genre"),
		Name:     query.Get("name"),
	}
	if v, err := strconv.Atoi(query.Get("year")); err == nil && v > 0 {
		filter.Year = v
	}
	limit := 20
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(query.Get("offset")); err == nil && v > 0 {
		offset = v
	}

	titles, err := h.service.ListTitles(r.Context(), filter, limit, offset)
	if err != nil {
		log.Error("failed to list titles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list titles"))
		return
	}

	render.JSON(w, r, response.OKWithData(titles))
}
