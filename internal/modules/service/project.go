package service

import (
	"context"
	"strings"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/pkg/utils/tokens"
	"github.com/serviceflow/serviceflow-api/internal/telemetry"
	"go.uber.org/zap"
)

type CreateProjectInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProjectInput struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}

type ProjectService interface {
	// Create returns the principal's project with the same name unless
	// allowDuplicates is set; created reports whether a row was inserted.
	Create(ctx context.Context, principal *model.User, in CreateProjectInput, allowDuplicates bool) (*model.Project, bool, error)
	Get(ctx context.Context, principal *model.User, id uint) (*model.Project, error)
	List(ctx context.Context, principal *model.User, offset, limit int) ([]*model.Project, error)
	Update(ctx context.Context, principal *model.User, id uint, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, principal *model.User, id uint) error
}

type projectService struct {
	r     repo.ProjectRepo
	cache repo.APIKeyCache
	cfg   *config.Config
	log   *zap.Logger
}

func NewProjectService(r repo.ProjectRepo, cache repo.APIKeyCache, cfg *config.Config, log *zap.Logger) ProjectService {
	return &projectService{r: r, cache: cache, cfg: cfg, log: log}
}

func (s *projectService) Create(ctx context.Context, principal *model.User, in CreateProjectInput, allowDuplicates bool) (out *model.Project, created bool, err error) {
	defer func() { telemetry.RecordCreate(ctx, "project", created, err) }()

	if principal == nil {
		return nil, false, ErrUnauthenticated
	}
	apiKey, err := tokens.NewAPIKey(s.cfg.Auth.APIKeyPrefix)
	if err != nil {
		return nil, false, err
	}
	p := &model.Project{UserID: principal.ID, Name: strings.TrimSpace(in.Name), APIKey: apiKey}

	if allowDuplicates {
		if err = s.r.Create(ctx, p); err != nil {
			return nil, false, err
		}
		created = true
	} else {
		if p, created, err = s.r.FindOrCreate(ctx, p); err != nil {
			return nil, false, err
		}
	}

	out, err = s.r.GetDetailed(ctx, p.ID)
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (s *projectService) Get(ctx context.Context, principal *model.User, id uint) (*model.Project, error) {
	p, err := s.r.GetDetailed(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !CanAccess(principal, p.UserID) {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, principal *model.User, offset, limit int) ([]*model.Project, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	return s.r.List(ctx, ownerFilter(principal), offset, limit)
}

func (s *projectService) Update(ctx context.Context, principal *model.User, id uint, in UpdateProjectInput) (*model.Project, error) {
	p, err := visibleProject(ctx, s.r, principal, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if err := s.r.Update(ctx, p, updates); err != nil {
		return nil, err
	}
	return s.r.GetDetailed(ctx, id)
}

// Delete removes the project with everything under it and evicts its API key.
func (s *projectService) Delete(ctx context.Context, principal *model.User, id uint) error {
	p, err := visibleProject(ctx, s.r, principal, id)
	if err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, p.APIKey); err != nil {
		s.log.Sugar().Warnw("api key cache eviction failed", "project_id", id, "err", err)
	}
	return nil
}
