// Утилита первоначального заведения суперпользователя. Создает учетную
// запись с ролью admin, флагом суперпользователя и паролем, минуя поток
// кодов подтверждения. Запускается вручную при развертывании.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/magabrotheeeer/review-catalog/internal/config"
	"github.com/magabrotheeeer/review-catalog/internal/lib/password"
	"github.com/magabrotheeeer/review-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/review-catalog/internal/models"
	"github.com/magabrotheeeer/review-catalog/internal/storage/repository"
)

func main() {
	username := flag.String("username", "", "имя суперпользователя")
	email := flag.String("email", "", "email суперпользователя")
	pass := flag.String("password", "", "пароль суперпользователя")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *username == "" || *email == "" || *pass == "" {
		logger.Error("username, email and password are required")
		os.Exit(1)
	}
	if err := models.ValidateUsername(*username); err != nil {
		logger.Error("invalid username", sl.Err(err))
		os.Exit(1)
	}

	cfg := config.MustLoad()
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		logger.Error("failed to connect to storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = db.DB.Close()
	}()

	hash, err := password.GetHash(*pass)
	if err != nil {
		logger.Error("failed to hash password", sl.Err(err))
		os.Exit(1)
	}

	user := models.User{
		Username:     *username,
		Email:        *email,
		Role:         models.RoleAdmin,
		IsSuperuser:  true,
		PasswordHash: hash,
	}
	uid, err := db.CreateUser(context.Background(), user)
	if err != nil {
		logger.Error("failed to create superuser", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("superuser created", slog.String("username", *username), slog.String("uid", uid))
}
