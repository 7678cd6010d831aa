package service

import (
	"context"
	"errors"
	"time"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/pkg/utils/secrets"
	"github.com/serviceflow/serviceflow-api/internal/pkg/utils/tokens"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CredentialService interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	IssueToken(userID uint) (string, time.Time, error)
	DecodeToken(token string) (uint, error)
	// Login never reveals whether the email or the password was wrong.
	Login(ctx context.Context, email, password string) (*TokenOutput, error)
	// Authenticate decodes token and loads the user it names.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type TokenOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type credentialService struct {
	users repo.UserRepo
	cfg   *config.Config
	log   *zap.Logger
	now   func() time.Time
}

func NewCredentialService(users repo.UserRepo, cfg *config.Config, log *zap.Logger) CredentialService {
	return &credentialService{users: users, cfg: cfg, log: log, now: time.Now}
}

func (s *credentialService) Hash(password string) (string, error) {
	return secrets.HashSecret(password, s.cfg.Auth.PasswordPepper)
}

func (s *credentialService) Verify(password, hash string) bool {
	ok, err := secrets.VerifySecret(password, s.cfg.Auth.PasswordPepper, hash)
	return err == nil && ok
}

func (s *credentialService) IssueToken(userID uint) (string, time.Time, error) {
	return tokens.IssueAccessToken([]byte(s.cfg.Auth.SecretKey), userID, s.cfg.AccessTokenTTL(), s.now())
}

func (s *credentialService) DecodeToken(token string) (uint, error) {
	id, err := tokens.ParseAccessToken([]byte(s.cfg.Auth.SecretKey), token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

func (s *credentialService) Login(ctx context.Context, email, password string) (*TokenOutput, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if secrets.NeedsRehash(u.PasswordHash) {
		if hash, err := s.Hash(password); err == nil {
			if err := s.users.Update(ctx, u, map[string]interface{}{"password_hash": hash}); err != nil {
				s.log.Sugar().Warnw("password rehash failed", "user_id", u.ID, "err", err)
			}
		}
	}

	token, exp, err := s.IssueToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &TokenOutput{AccessToken: token, TokenType: "bearer", ExpiresAt: exp}, nil
}

func (s *credentialService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	id, err := s.DecodeToken(token)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
