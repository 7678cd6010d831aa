package service

import (
	"context"
	"errors"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// CanAccess reports whether principal may act on a resource owned by ownerUserID.
func CanAccess(principal *model.User, ownerUserID uint) bool {
	if principal == nil {
		return false
	}
	return principal.IsSuperuser || principal.ID == ownerUserID
}

// AllowUnauthenticatedCreate is true only while no user exists yet.
func AllowUnauthenticatedCreate(userCount int64) bool {
	return userCount == 0
}

// ownerFilter returns the user id list queries are restricted to, or nil for a superuser.
func ownerFilter(principal *model.User) *uint {
	if principal.IsSuperuser {
		return nil
	}
	id := principal.ID
	return &id
}

// visibleProject loads a project and hides it unless principal can access it.
func visibleProject(ctx context.Context, projects repo.ProjectRepo, principal *model.User, projectID uint) (*model.Project, error) {
	p, err := projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFound(err)
	}
	if !CanAccess(principal, p.UserID) {
		return nil, ErrNotFound
	}
	return p, nil
}

// AccessResolver turns an API key into the project it belongs to.
type AccessResolver interface {
	ResolveAPIKey(ctx context.Context, apiKey string) (*model.Project, error)
}

type accessResolver struct {
	projects repo.ProjectRepo
	cache    repo.APIKeyCache
	log      *zap.Logger
	// concurrent misses for the same key share one database lookup
	lookups singleflight.Group
}

func NewAccessResolver(projects repo.ProjectRepo, cache repo.APIKeyCache, log *zap.Logger) AccessResolver {
	return &accessResolver{projects: projects, cache: cache, log: log}
}

func (a *accessResolver) ResolveAPIKey(ctx context.Context, apiKey string) (*model.Project, error) {
	if apiKey == "" {
		return nil, ErrUnauthenticated
	}

	p, err := a.cache.Get(ctx, apiKey)
	if err != nil {
		a.log.Sugar().Warnw("api key cache read failed", "err", err)
	} else if p != nil {
		return p, nil
	}

	v, err, _ := a.lookups.Do(apiKey, func() (any, error) {
		p, err := a.projects.GetByAPIKey(ctx, apiKey)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		if err != nil {
			return nil, err
		}
		if err := a.cache.Set(ctx, p); err != nil {
			a.log.Sugar().Warnw("api key cache write failed", "project_id", p.ID, "err", err)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Project), nil
}
