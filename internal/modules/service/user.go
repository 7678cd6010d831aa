package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"go.uber.org/zap"
)

type RegisterUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserInput struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

type UserService interface {
	// Register creates the first user as a superuser without a principal;
	// afterwards only a superuser may register (regular) users.
	Register(ctx context.Context, principal *model.User, in RegisterUserInput) (*model.User, error)
	Get(ctx context.Context, principal *model.User, id uint) (*model.User, error)
	List(ctx context.Context, principal *model.User, offset, limit int) ([]*model.User, error)
	Update(ctx context.Context, principal *model.User, id uint, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, principal *model.User, id uint) error
}

type userService struct {
	r        repo.UserRepo
	projects repo.ProjectRepo
	cache    repo.APIKeyCache
	creds    CredentialService
	log      *zap.Logger
}

func NewUserService(r repo.UserRepo, projects repo.ProjectRepo, cache repo.APIKeyCache, creds CredentialService, log *zap.Logger) UserService {
	return &userService{r: r, projects: projects, cache: cache, creds: creds, log: log}
}

func (s *userService) Register(ctx context.Context, principal *model.User, in RegisterUserInput) (*model.User, error) {
	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
	}

	err = s.r.Register(ctx, u, func(count int64) (bool, error) {
		if AllowUnauthenticatedCreate(count) {
			return true, nil
		}
		if principal == nil {
			return false, ErrUnauthenticated
		}
		if !principal.IsSuperuser {
			return false, ErrForbidden
		}
		return false, nil
	})
	if repo.IsUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	if u.IsSuperuser {
		s.log.Sugar().Infow("bootstrap superuser registered", "user_id", u.ID)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, principal *model.User, id uint) (*model.User, error) {
	if !CanAccess(principal, id) {
		return nil, ErrNotFound
	}
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, principal *model.User, offset, limit int) ([]*model.User, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if !principal.IsSuperuser {
		if offset > 0 {
			return []*model.User{}, nil
		}
		return []*model.User{principal}, nil
	}
	return s.r.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, principal *model.User, id uint, in UpdateUserInput) (*model.User, error) {
	u, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Password != nil {
		hash, err := s.creds.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password_hash"] = hash
	}
	if err := s.r.Update(ctx, u, updates); err != nil {
		return nil, err
	}
	return s.r.GetByID(ctx, id)
}

// Delete removes the user; their projects go with them through the foreign
// key cascade, so the keys of those projects are evicted afterwards.
func (s *userService) Delete(ctx context.Context, principal *model.User, id uint) error {
	if _, err := s.Get(ctx, principal, id); err != nil {
		return err
	}
	keys, err := s.projects.APIKeysByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("list project keys: %w", err)
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.log.Sugar().Warnw("api key cache eviction failed", "user_id", id, "err", err)
		}
	}
	return nil
}
