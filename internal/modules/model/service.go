package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ProjectID       uint            `gorm:"not null;index" json:"project_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     *string         `gorm:"type:text" json:"description"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" swaggertype:"string" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// OwnerID is the user_id of the owning project, filled by owner-joined reads only.
	OwnerID uint `gorm:"->;-:migration" json:"-"`
}

func (Service) TableName() string { return "services" }
