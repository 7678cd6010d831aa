package bootstrap

import (
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"gorm.io/gorm"
)

// Migrate creates or updates every table. Parents come first so the
// cascading foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Service{},
		&model.Booking{},
		&model.Subscriber{},
	)
}
