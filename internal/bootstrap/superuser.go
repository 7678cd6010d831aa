package bootstrap

import (
	"context"
	"errors"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureSuperuserExists seeds the configured superuser when the service starts.
// Nothing happens unless both email and password are configured, and an
// existing account with that email is left untouched.
func EnsureSuperuserExists(ctx context.Context, users repo.UserRepo, creds service.CredentialService, cfg *config.Config, log *zap.Logger) error {
	email := cfg.Bootstrap.SuperuserEmail
	password := cfg.Bootstrap.SuperuserPassword
	if email == "" || password == "" {
		return nil
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Sugar().Infow("superuser exists", "user", existing.ID)
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	hash, err := creds.Hash(password)
	if err != nil {
		return err
	}
	u := &model.User{
		Name:         cfg.Bootstrap.SuperuserName,
		Email:        email,
		PasswordHash: hash,
	}
	err = users.Register(ctx, u, func(int64) (bool, error) { return true, nil })
	if repo.IsUniqueViolation(err) {
		// another replica seeded it first
		return nil
	}
	if err != nil {
		return err
	}
	log.Sugar().Infow("superuser created", "user", u.ID)
	return nil
}
