package repo

import (
	"context"
	"fmt"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"gorm.io/gorm"
)

type BookingRepo interface {
	Create(ctx context.Context, b *model.Booking) error
	// FindOrCreate looks up a booking by (project_id, service_id, booking_time)
	// and inserts b when absent. The returned booking has its Service loaded.
	FindOrCreate(ctx context.Context, b *model.Booking) (*model.Booking, bool, error)
	// GetWithOwner loads a booking and its Service, with OwnerID set to the
	// project's user_id.
	GetWithOwner(ctx context.Context, id uint) (*model.Booking, error)
	List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Booking, error)
	Update(ctx context.Context, b *model.Booking, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type bookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) BookingRepo {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) loadService(ctx context.Context, b *model.Booking) error {
	if b.Service != nil {
		return nil
	}
	var s model.Service
	if err := r.db.WithContext(ctx).First(&s, b.ServiceID).Error; err != nil {
		return err
	}
	b.Service = &s
	return nil
}

func (r *bookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if err := r.db.WithContext(ctx).Omit("Service").Create(b).Error; err != nil {
		return err
	}
	return r.loadService(ctx, b)
}

func (r *bookingRepo) FindOrCreate(ctx context.Context, b *model.Booking) (*model.Booking, bool, error) {
	key := fmt.Sprintf("bookings:%d:%d:%s", b.ProjectID, b.ServiceID, b.BookingTime)
	out, created, err := findOrCreate(ctx, r.db, key, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("project_id = ? AND service_id = ? AND booking_time = ?",
			b.ProjectID, b.ServiceID, b.BookingTime)
	}, b)
	if err != nil {
		return nil, false, err
	}
	if err := r.loadService(ctx, out); err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (r *bookingRepo) GetWithOwner(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Select("bookings.*, projects.user_id AS owner_id").
		Joins("JOIN projects ON projects.id = bookings.project_id").
		Where("bookings.id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) List(ctx context.Context, projectID uint, ownerID *uint, offset, limit int) ([]*model.Booking, error) {
	offset, limit = clampPage(offset, limit)
	q := r.db.WithContext(ctx).Preload("Service").Where("bookings.project_id = ?", projectID)
	if ownerID != nil {
		q = q.Select("bookings.*, projects.user_id AS owner_id").
			Joins("JOIN projects ON projects.id = bookings.project_id").
			Where("projects.user_id = ?", *ownerID)
	}
	var bookings []*model.Booking
	err := q.Order("bookings.id ASC").Offset(offset).Limit(limit).Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) Update(ctx context.Context, b *model.Booking, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(b).Updates(updates).Error
}

func (r *bookingRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Booking{}, id).Error
}
