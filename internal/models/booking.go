package models

import "time"

// Booking rows are never deleted by normal flow, only moved between statuses.
// OwnerID has no foreign key: the owner's user row is materialized
// asynchronously and may not exist yet when the booking is written.
// idx_booking_owner_slot keeps one live booking per owner slot; cancelled rows
// are outside the index so the slot can be booked again.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID string `gorm:"size:36;not null;index;uniqueIndex:idx_booking_owner_slot,priority:1,where:status <> 'cancelled'" json:"owner_id"`

	ServiceID uint    `gorm:"not null;index;uniqueIndex:idx_booking_owner_slot,priority:2" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:255;not null" json:"customer_email"`

	PetName string `gorm:"size:100;not null" json:"pet_name"`
	PetType string `gorm:"size:30;not null" json:"pet_type"`

	BookingDate time.Time `gorm:"type:date;not null;index;uniqueIndex:idx_booking_owner_slot,priority:3" json:"booking_date"`
	BookingTime string    `gorm:"size:5;not null;uniqueIndex:idx_booking_owner_slot,priority:4" json:"booking_time"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
