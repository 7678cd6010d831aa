package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	ServiceID   uint            `json:"service_id" binding:"required"`
	BookingTime model.LocalTime `json:"booking_time" binding:"required"`
	ClientName  string          `json:"client_name" binding:"required"`
	ClientEmail *string         `json:"client_email" binding:"omitempty,email"`
	ClientPhone string          `json:"client_phone" binding:"required"`
	Status      string          `json:"status"`
	Description *string         `json:"description"`
	Notes       *string         `json:"notes"`
}

type UpdateBookingInput struct {
	ServiceID   *uint            `json:"service_id" binding:"omitempty,gt=0"`
	BookingTime *model.LocalTime `json:"booking_time"`
	ClientName  *string          `json:"client_name" binding:"omitempty,min=1"`
	ClientEmail *string          `json:"client_email" binding:"omitempty,email"`
	ClientPhone *string          `json:"client_phone" binding:"omitempty,min=1"`
	Status      *string          `json:"status" binding:"omitempty,min=1"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
}

type BookingService interface {
	// Create returns the booking for the same (service, time) unless
	// allowDuplicates is set. The service must belong to the project.
	Create(ctx context.Context, principal *model.User, projectID uint, in CreateBookingInput, allowDuplicates bool) (*model.Booking, bool, error)
	CreateInProject(ctx context.Context, project *model.Project, in CreateBookingInput, allowDuplicates bool) (*model.Booking, bool, error)
	Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Booking, error)
	List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Booking, error)
	Update(ctx context.Context, principal *model.User, projectID, id uint, in UpdateBookingInput) (*model.Booking, error)
	Delete(ctx context.Context, principal *model.User, projectID, id uint) error
}

type bookingService struct {
	r         repo.BookingRepo
	services  repo.ServiceRepo
	projects  repo.ProjectRepo
	publisher EventPublisher
	log       *zap.Logger
}

func NewBookingService(r repo.BookingRepo, services repo.ServiceRepo, projects repo.ProjectRepo, publisher EventPublisher, log *zap.Logger) BookingService {
	return &bookingService{r: r, services: services, projects: projects, publisher: publisher, log: log}
}

// checkService fails with ErrBadReference unless serviceID is a service of projectID.
func (s *bookingService) checkService(ctx context.Context, projectID, serviceID uint) error {
	svc, err := s.services.GetWithOwner(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadReference
		}
		return err
	}
	if svc.ProjectID != projectID {
		return ErrBadReference
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, principal *model.User, projectID uint, in CreateBookingInput, allowDuplicates bool) (*model.Booking, bool, error) {
	p, err := visibleProject(ctx, s.projects, principal, projectID)
	if err != nil {
		telemetry.RecordCreate(ctx, "booking", false, err)
		return nil, false, err
	}
	return s.CreateInProject(ctx, p, in, allowDuplicates)
}

func (s *bookingService) CreateInProject(ctx context.Context, project *model.Project, in CreateBookingInput, allowDuplicates bool) (out *model.Booking, created bool, err error) {
	defer func() { telemetry.RecordCreate(ctx, "booking", created, err) }()

	if in.BookingTime.IsZero() {
		return nil, false, fmt.Errorf("%w: booking_time is required", ErrInvalidInput)
	}
	if err = s.checkService(ctx, project.ID, in.ServiceID); err != nil {
		return nil, false, err
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = model.DefaultBookingStatus
	}
	b := &model.Booking{
		ProjectID:   project.ID,
		ServiceID:   in.ServiceID,
		BookingTime: model.NewLocalTime(in.BookingTime.Time),
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: in.ClientEmail,
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Status:      status,
		Description: in.Description,
		Notes:       in.Notes,
	}

	if allowDuplicates {
		if err = s.r.Create(ctx, b); err != nil {
			return nil, false, err
		}
		out, created = b, true
	} else if out, created, err = s.r.FindOrCreate(ctx, b); err != nil {
		return nil, false, err
	}

	if created {
		publishEvent(ctx, s.publisher, s.log, EventBookingCreated, BookingCreatedEvent{
			BookingID:   out.ID,
			ProjectID:   out.ProjectID,
			ServiceID:   out.ServiceID,
			BookingTime: out.BookingTime,
			ClientName:  out.ClientName,
			ClientEmail: out.ClientEmail,
			ClientPhone: out.ClientPhone,
			Status:      out.Status,
			OccurredAt:  time.Now().UTC(),
		})
	}
	return out, created, nil
}

func (s *bookingService) Get(ctx context.Context, principal *model.User, projectID, id uint) (*model.Booking, error) {
	b, err := s.r.GetWithOwner(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if b.ProjectID != projectID || !CanAccess(principal, b.OwnerID) {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *bookingService) List(ctx context.Context, principal *model.User, projectID uint, offset, limit int) ([]*model.Booking, error) {
	if _, err := visibleProject(ctx, s.projects, principal, projectID); err != nil {
		return nil, err
	}
	return s.r.List(ctx, projectID, ownerFilter(principal), offset, limit)
}

func (s *bookingService) Update(ctx context.Context, principal *model.User, projectID, id uint, in UpdateBookingInput) (*model.Booking, error) {
	b, err := s.Get(ctx, principal, projectID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.ServiceID != nil && *in.ServiceID != b.ServiceID {
		if err := s.checkService(ctx, b.ProjectID, *in.ServiceID); err != nil {
			return nil, err
		}
		updates["service_id"] = *in.ServiceID
	}
	if in.BookingTime != nil {
		updates["booking_time"] = model.NewLocalTime(in.BookingTime.Time)
	}
	if in.ClientName != nil {
		updates["client_name"] = strings.TrimSpace(*in.ClientName)
	}
	if in.ClientEmail != nil {
		updates["client_email"] = *in.ClientEmail
	}
	if in.ClientPhone != nil {
		updates["client_phone"] = strings.TrimSpace(*in.ClientPhone)
	}
	if in.Status != nil {
		updates["status"] = strings.TrimSpace(*in.Status)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if err := s.r.Update(ctx, b, updates); err != nil {
		return nil, err
	}
	return s.r.GetWithOwner(ctx, id)
}

func (s *bookingService) Delete(ctx context.Context, principal *model.User, projectID, id uint) error {
	if _, err := s.Get(ctx, principal, projectID, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
