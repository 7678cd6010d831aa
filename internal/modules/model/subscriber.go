package model

import "time"

type Subscriber struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index;uniqueIndex:idx_subscriber_project_email,priority:1" json:"project_id"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:idx_subscriber_project_email,priority:2" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	OwnerID uint `gorm:"->;-:migration" json:"-"`
}

func (Subscriber) TableName() string { return "subscribers" }
