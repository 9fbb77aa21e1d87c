// Package signup реализует HTTP-обработчик самостоятельной регистрации.
//
// Handler принимает JSON-запрос с email и username, вызывает выдачу кода
// подтверждения через сервис и возвращает присланную пару обратно.
// Повторный запрос для существующей пары (username, email) перевыпускает код.
package signup

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

// Handler управляет HTTP-запросами на регистрацию и перевыпуск кода.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики выдачи кода подтверждения.
type Service interface {
	RequestCode(ctx context.Context, username, email string) (created bool, err error)
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
// @Summary Зарегистрироваться или перевыпустить код подтверждения
// @Description Создает учетную запись и отправляет код подтверждения на email. Для существующей пары (username, email) перевыпускает код.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummySignup true "Email и имя пользователя"
// @Success 200 {object} response.Response "Код перевыпущен"
// @Success 201 {object} response.Response "Учетная запись создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Не удалось отправить письмо"
// @Router /auth/signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySignup
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

	created, err := h.service.RequestCode(r.Context(), req.Username, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrReservedUsername), errors.Is(err, models.ErrInvalidUsername):
			log.Error("invalid username", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid username"))
		case errors.Is(err, repository.ErrUniqueViolation):
			log.Error("username or email already taken", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("username or email already taken"))
		case errors.Is(err, services.ErrDispatchFailed):
			log.Error("failed to send confirmation code", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not send confirmation code"))
		default:
			log.Error("failed to request confirmation code", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not process signup"))
		}
		return
	}

	log.Info("confirmation code issued",
		slog.String("username", req.Username), slog.Bool("created", created))
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	render.JSON(w, r, response.OKWithData(req))
}
