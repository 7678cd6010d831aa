package model

import "time"

const DefaultBookingStatus = "new"

type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	ServiceID   uint      `gorm:"not null;index" json:"service_id"`
	BookingTime LocalTime `gorm:"type:timestamp;not null;index" swaggertype:"string" example:"2025-09-15T10:00:00" json:"booking_time"`
	ClientName  string    `gorm:"type:varchar(255);not null" json:"client_name"`
	ClientEmail *string   `gorm:"type:varchar(255)" json:"client_email"`
	ClientPhone string    `gorm:"type:varchar(255);not null" json:"client_phone"`
	Status      string    `gorm:"type:varchar(50);not null;default:new" json:"status"`
	Description *string   `gorm:"type:text" json:"description"`
	Notes       *string   `gorm:"type:varchar(255)" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Booking <-> Service
	Service *Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"service,omitempty"`

	OwnerID uint `gorm:"->;-:migration" json:"-"`
}

func (Booking) TableName() string { return "bookings" }
