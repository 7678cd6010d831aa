package repo

import (
	"context"
	"fmt"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	// FindOrCreate looks up a project by (user_id, name) and inserts p when absent.
	FindOrCreate(ctx context.Context, p *model.Project) (*model.Project, bool, error)
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	// GetDetailed loads the project with its owner, Services, Bookings (with their Service) and Subscribers.
	GetDetailed(ctx context.Context, id uint) (*model.Project, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*model.Project, error)
	// APIKeysByUser returns the API keys of every project owned by userID.
	APIKeysByUser(ctx context.Context, userID uint) ([]string, error)
	// List returns detailed projects; a nil ownerID lists every project.
	List(ctx context.Context, ownerID *uint, offset, limit int) ([]*model.Project, error)
	Update(ctx context.Context, p *model.Project, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func withProjectRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("services.id ASC") }).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB { return db.Order("bookings.id ASC") }).
		Preload("Bookings.Service").
		Preload("Subscribers", func(db *gorm.DB) *gorm.DB { return db.Order("subscribers.id ASC") })
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) FindOrCreate(ctx context.Context, p *model.Project) (*model.Project, bool, error) {
	key := fmt.Sprintf("projects:%d:%s", p.UserID, p.Name)
	return findOrCreate(ctx, r.db, key, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ? AND name = ?", p.UserID, p.Name)
	}, p)
}

func (r *projectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) APIKeysByUser(ctx context.Context, userID uint) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("user_id = ?", userID).
		Pluck("api_key", &keys).Error
	return keys, err
}

func (r *projectRepo) GetDetailed(ctx context.Context, id uint) (*model.Project, error) {
	var p model.Project
	if err := withProjectRelations(r.db.WithContext(ctx)).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetByAPIKey(ctx context.Context, apiKey string) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, ownerID *uint, offset, limit int) ([]*model.Project, error) {
	offset, limit = clampPage(offset, limit)
	q := withProjectRelations(r.db.WithContext(ctx))
	if ownerID != nil {
		q = q.Where("projects.user_id = ?", *ownerID)
	}
	var projects []*model.Project
	err := q.Order("projects.id ASC").Offset(offset).Limit(limit).Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Update(ctx context.Context, p *model.Project, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(p).Updates(updates).Error
}

// Delete removes the project; services, bookings and subscribers go with it
// through ON DELETE CASCADE.
func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}
