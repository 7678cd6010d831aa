package repo

import (
	"context"
	"errors"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"gorm.io/gorm"
)

type SubscriberRepo interface {
	// Create inserts s. A duplicate (project_id, email) fails with a unique violation.
	Create(ctx context.Context, s *model.Subscriber) error
	GetByEmail(ctx context.Context, projectID uint, email string) (*model.Subscriber, error)
	// GetOrCreate returns the subscriber for (project_id, email), inserting it
	// when absent. Backed by the unique index, so it never yields two rows.
	GetOrCreate(ctx context.Context, s *model.Subscriber) (*model.Subscriber, bool, error)
	GetWithOwner(ctx context.Context, id uint) (*model.Subscriber, error)
	List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Subscriber, error)
	Delete(ctx context.Context, id uint) error
}

type subscriberRepo struct{ db *gorm.DB }

func NewSubscriberRepo(db *gorm.DB) SubscriberRepo {
	return &subscriberRepo{db: db}
}

func (r *subscriberRepo) Create(ctx context.Context, s *model.Subscriber) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, projectID uint, email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND email = ?", projectID, email).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subscriberRepo) GetOrCreate(ctx context.Context, s *model.Subscriber) (*model.Subscriber, bool, error) {
	existing, err := r.GetByEmail(ctx, s.ProjectID, s.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := r.Create(ctx, s); err != nil {
		// Lost a race against an identical insert: the winner's row is the answer.
		if IsUniqueViolation(err) {
			if existing, getErr := r.GetByEmail(ctx, s.ProjectID, s.Email); getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	return s, true, nil
}

func (r *subscriberRepo) GetWithOwner(ctx context.Context, id uint) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.db.WithContext(ctx).
		Select("subscribers.*, projects.user_id AS owner_id").
		Joins("JOIN projects ON projects.id = subscribers.project_id").
		Where("subscribers.id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subscriberRepo) List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Subscriber, error) {
	offset, limit = clampPage(offset, limit)
	q := r.db.WithContext(ctx).Where("subscribers.project_id = ?", projectID)
	if ownerID != nil {
		q = q.Select("subscribers.*, projects.user_id AS owner_id").
			Joins("JOIN projects ON projects.id = subscribers.project_id").
			Where("projects.user_id = ?", *ownerID)
	}
	var subscribers []*model.Subscriber
	err := q.Order("subscribers.id ASC").Offset(offset).Limit(limit).Find(&subscribers).Error
	return subscribers, err
}

func (r *subscriberRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Subscriber{}, id).Error
}
