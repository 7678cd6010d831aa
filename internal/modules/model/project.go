package model

import "time"

type Project struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	APIKey string `gorm:"type:varchar(255);not null;uniqueIndex" json:"api_key"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// owner, loaded only on the detailed read
	User *User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`

	// Project <-> Service
	Services []Service `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"services"`

	// Project <-> Booking
	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"bookings"`

	// Project <-> Subscriber
	Subscribers []Subscriber `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"subscribers"`
}

func (Project) TableName() string { return "projects" }
