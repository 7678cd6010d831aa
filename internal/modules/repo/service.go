package repo

import (
	"context"
	"fmt"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"gorm.io/gorm"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *model.Service) error
	// FindOrCreate looks up a service by (project_id, name) and inserts s when absent.
	FindOrCreate(ctx context.Context, s *model.Service) (*model.Service, bool, error)
	// GetWithOwner loads a service with OwnerID set to its project's user_id.
	GetWithOwner(ctx context.Context, id uint) (*model.Service, error)
	// List returns the services of a project. A non-nil ownerID restricts the
	// result to projects owned by that user.
	List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Service, error)
	Update(ctx context.Context, s *model.Service, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type serviceRepo struct{ db *gorm.DB }

func NewServiceRepo(db *gorm.DB) ServiceRepo {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Create(ctx context.Context, s *model.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *serviceRepo) FindOrCreate(ctx context.Context, s *model.Service) (*model.Service, bool, error) {
	key := fmt.Sprintf("services:%d:%s", s.ProjectID, s.Name)
	return findOrCreate(ctx, r.db, key, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("project_id = ? AND name = ?", s.ProjectID, s.Name)
	}, s)
}

func (r *serviceRepo) GetWithOwner(ctx context.Context, id uint) (*model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).
		Select("services.*, projects.user_id AS owner_id").
		Joins("JOIN projects ON projects.id = services.project_id").
		Where("services.id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepo) List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Service, error) {
	offset, limit = clampPage(offset, limit)
	q := r.db.WithContext(ctx).Where("services.project_id = ?", projectID)
	if ownerID != nil {
		q = q.Select("services.*, projects.user_id AS owner_id").
			Joins("JOIN projects ON projects.id = services.project_id").
			Where("projects.user_id = ?", *ownerID)
	}
	var services []*model.Service
	err := q.Order("services.id ASC").Offset(offset).Limit(limit).Find(&services).Error
	return services, err
}

func (r *serviceRepo) Update(ctx context.Context, s *model.Service, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(s).Updates(updates).Error
}

// Delete removes the service and, through ON DELETE CASCADE, its bookings.
func (r *serviceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, id).Error
}
