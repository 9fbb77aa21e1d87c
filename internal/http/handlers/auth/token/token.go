// Package token реализует HTTP-обработчик обмена кода подтверждения на jwt.
package token

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
	services "github.com/magabrotheeeer/review-catalog/internal/services/auth"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на получение jwt-токена.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обмена кода на токен.
type Service interface {
	ExchangeToken(ctx context.Context, username, confirmationCode string) (string, error)
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
// @Summary Обменять код подтверждения на jwt-токен
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyToken true "Имя пользователя и код подтверждения"
// @Success 200 {object} response.Response "Токен выдан"
// @Failure 400 {object} response.ErrorResponse "Неверный код подтверждения"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /auth/token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyToken
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

	token, err := h.service.ExchangeToken(r.Context(), req.Username, req.ConfirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("user not found", slog.String("username", req.Username))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		case errors.Is(err, services.ErrInvalidConfirmationCode):
			log.Error("invalid confirmation code", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid confirmation code"))
		default:
			log.Error("failed to exchange token", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not issue token"))
		}
		return
	}

	log.Info("token issued", slog.String("username", req.Username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"access": token,
	}))
}
