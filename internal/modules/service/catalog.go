package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/telemetry"
	"github.com/shopspring/decimal"
)

// maxPrice is the first value that no longer fits numeric(10,2).
var maxPrice = decimal.New(1, 8)

type CreateServiceInput struct {
	Name            string           `json:"name" binding:"required"`
	Description     *string          `json:"description"`
	DurationMinutes int              `json:"duration_minutes" binding:"required,gt=0"`
	Price           *decimal.Decimal `json:"price" binding:"required"`
}

type UpdateServiceInput struct {
	Name            *string          `json:"name" binding:"omitempty,min=1"`
	Description     *string          `json:"description"`
	DurationMinutes *int             `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *decimal.Decimal `json:"price"`
}

func normalizePrice(p decimal.Decimal) (decimal.Decimal, error) {
	p = p.Round(2)
	if p.IsNegative() || p.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, fmt.Errorf("%w: price %s out of range", ErrInvalidInput, p)
	}
	return p, nil
}

// CatalogService manages the services a project offers.
type CatalogService interface {
	Create(ctx context.Context, principal *model.User, projectID uint, in CreateServiceInput, allowDuplicates bool) (*model.Service, bool, error)
	Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Service, error)
	List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Service, error)
	Update(ctx context.Context, principal *model.User, projectID, id uint, in UpdateServiceInput) (*model.Service, error)
	Delete(ctx context.Context, principal *model.User, projectID, id uint) error

	// ListInProject serves the public façade, where the API key already scoped the project.
	ListInProject(ctx context.Context, project *model.Project, offset, limit int) ([]*model.Service, error)
}

type catalogService struct {
	r        repo.ServiceRepo
	projects repo.ProjectRepo
}

func NewCatalogService(r repo.ServiceRepo, projects repo.ProjectRepo) CatalogService {
	return &catalogService{r: r, projects: projects}
}

func (s *catalogService) Create(ctx context.Context, principal *model.User, projectID uint, in CreateServiceInput, allowDuplicates bool) (out *model.Service, created bool, err error) {
	defer func() { telemetry.RecordCreate(ctx, "service", created, err) }()

	if _, err = visibleProject(ctx, s.projects, principal, projectID); err != nil {
		return nil, false, err
	}
	if in.Price == nil {
		return nil, false, fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	price, err := normalizePrice(*in.Price)
	if err != nil {
		return nil, false, err
	}
	svc := &model.Service{
		ProjectID:       projectID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           price,
	}

	if allowDuplicates {
		if err = s.r.Create(ctx, svc); err != nil {
			return nil, false, err
		}
		return svc, true, nil
	}
	return s.r.FindOrCreate(ctx, svc)
}

func (s *catalogService) Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Service, error) {
	svc, err := s.r.GetWithOwner(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if svc.ProjectID != projectID || !CanAccess(principal, svc.OwnerID) {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Service, error) {
	if _, err := visibleProject(ctx, s.projects, principal, projectID); err != nil {
		return nil, err
	}
	return s.r.List(ctx, projectID, ownerFilter(principal), offset, limit)
}

func (s *catalogService) ListInProject(ctx context.Context, project *model.Project, offset, limit int) ([]*model.Service, error) {
	return s.r.List(ctx, project.ID, nil, offset, limit)
}

func (s *catalogService) Update(ctx context.Context, principal *model.User, projectID, id uint, in UpdateServiceInput) (*model.Service, error) {
	svc, err := s.Get(ctx, principal, projectID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.DurationMinutes != nil {
		updates["duration_minutes"] = *in.DurationMinutes
	}
	if in.Price != nil {
		price, err := normalizePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}
	if err := s.r.Update(ctx, svc, updates); err != nil {
		return nil, err
	}
	return s.r.GetWithOwner(ctx, id)
}

func (s *catalogService) Delete(ctx context.Context, principal *model.User, projectID, id uint) error {
	if _, err := s.Get(ctx, principal, projectID, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
