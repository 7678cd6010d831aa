package repo

import (
	"context"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"gorm.io/gorm"
)

// RegisterFunc decides, from the current number of users, whether a
// registration may proceed and whether the new user becomes a superuser.
type RegisterFunc func(userCount int64) (superuser bool, err error)

type UserRepo interface {
	// Register counts users, lets decide approve the insert, and creates u,
	// all under one lock so two first-user registrations cannot both win.
	Register(ctx context.Context, u *model.User, decide RegisterFunc) error
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, offset, limit int) ([]*model.User, error)
	Update(ctx context.Context, u *model.User, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Register(ctx context.Context, u *model.User, decide RegisterFunc) error {
	return withKeyLock(ctx, r.db, "users:register", func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}
		superuser, err := decide(count)
		if err != nil {
			return err
		}
		u.IsSuperuser = superuser
		return tx.Create(u).Error
	})
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context, offset, limit int) ([]*model.User, error) {
	offset, limit = clampPage(offset, limit)
	var users []*model.User
	err := r.db.WithContext(ctx).Order("users.id ASC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(u).Updates(updates).Error
}

// Delete removes the user; owned projects and everything under them follow
// through ON DELETE CASCADE.
func (r *userRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
