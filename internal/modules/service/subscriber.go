package service

import (
	"context"
	"strings"
	"time"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/telemetry"
	"go.uber.org/zap"
)

type CreateSubscriberInput struct {
	Email string `json:"email" binding:"required,email"`
}

type SubscriberService interface {
	// CreateInProject returns the existing subscriber for the email if any.
	// The (project, email) pair is unique, so allowDuplicates only skips the
	// initial lookup.
	CreateInProject(ctx context.Context, project *model.Project, in CreateSubscriberInput, allowDuplicates bool) (*model.Subscriber, bool, error)
	Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Subscriber, error)
	List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Subscriber, error)
	Delete(ctx context.Context, principal *model.User, projectID, id uint) error
}

type subscriberService struct {
	r         repo.SubscriberRepo
	projects  repo.ProjectRepo
	publisher EventPublisher
	log       *zap.Logger
}

func NewSubscriberService(r repo.SubscriberRepo, projects repo.ProjectRepo, publisher EventPublisher, log *zap.Logger) SubscriberService {
	return &subscriberService{r: r, projects: projects, publisher: publisher, log: log}
}

func (s *subscriberService) CreateInProject(ctx context.Context, project *model.Project, in CreateSubscriberInput, allowDuplicates bool) (out *model.Subscriber, created bool, err error) {
	defer func() { telemetry.RecordCreate(ctx, "subscriber", created, err) }()

	sub := &model.Subscriber{ProjectID: project.ID, Email: strings.TrimSpace(in.Email)}

	if allowDuplicates {
		err = s.r.Create(ctx, sub)
		switch {
		case err == nil:
			out, created = sub, true
		case repo.IsUniqueViolation(err):
			if out, err = s.r.GetByEmail(ctx, project.ID, sub.Email); err != nil {
				return nil, false, err
			}
		default:
			return nil, false, err
		}
	} else if out, created, err = s.r.GetOrCreate(ctx, sub); err != nil {
		return nil, false, err
	}

	if created {
		publishEvent(ctx, s.publisher, s.log, EventSubscriberCreated, SubscriberCreatedEvent{
			SubscriberID: out.ID,
			ProjectID:    out.ProjectID,
			Email:        out.Email,
			OccurredAt:   time.Now().UTC(),
		})
	}
	return out, created, nil
}

func (s *subscriberService) Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Subscriber, error) {
	sub, err := s.r.GetWithOwner(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if sub.ProjectID != projectID || !CanAccess(principal, sub.OwnerID) {
		return nil, ErrNotFound
	}
	return sub, nil
}

func (s *subscriberService) List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Subscriber, error) {
	if _, err := visibleProject(ctx, s.projects, principal, projectID); err != nil {
		return nil, err
	}
	return s.r.List(ctx, projectID, ownerFilter(principal), offset, limit)
}

func (s *subscriberService) Delete(ctx context.Context, principal *model.User, projectID, id uint) error {
	if _, err := s.Get(ctx, principal, projectID, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
