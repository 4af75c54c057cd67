package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/oguzk/mentorlink/internal/app/models"
	appRepos "github.com/oguzk/mentorlink/internal/app/repositories"
	"github.com/oguzk/mentorlink/internal/config"
)

// CreateDefaultData ensures a portal admin account exists so the service
// is reachable on a fresh database. The credentials come from the
// environment; the password default is for local development only.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := appRepos.NewAccountRepository(dbPool)

	email := config.GetEnv("DEFAULT_ADMIN_EMAIL", "admin@campus.edu")
	password := config.GetEnv("DEFAULT_ADMIN_PASSWORD", "changeme-admin")

	lgr.Info().Str("email", email).Msg("Checking/Creating default admin account...")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &appModels.Account{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         "Portal Admin",
		PasswordHash: string(hash),
		Type:         appModels.TypeAdmin,
		Labels:       []string{},
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, appRepos.ErrAccountExists) {
			lgr.Debug().Str("email", email).Msg("Default admin account already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
