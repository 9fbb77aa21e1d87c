package reviewcatalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/review-catalog/internal/cache"
	"github.com/magabrotheeeer/review-catalog/internal/config"
	"github.com/magabrotheeeer/review-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/review-catalog/internal/lib/smtp"
	"github.com/magabrotheeeer/review-catalog/internal/migrations"
	authservice "github.com/magabrotheeeer/review-catalog/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/review-catalog/internal/services/catalog"
	reviewservice "github.com/magabrotheeeer/review-catalog/internal/services/review"
	senderservice "github.com/magabrotheeeer/review-catalog/internal/services/sender"
	userservice "github.com/magabrotheeeer/review-catalog/internal/services/user"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

// App объединяет HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: подключение к базе, миграции, кеш, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(logger, transport)

	authService := authservice.NewAuthService(db, senderService, jwtMaker, cfg.CodeLength, logger)
	userService := userservice.NewUserService(db, logger)
	catalogService := catalogservice.NewCatalogService(db, cacheRedis, logger)
	reviewService := reviewservice.NewReviewService(db, catalogService, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, userService, catalogService, reviewService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
