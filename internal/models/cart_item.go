package models

import "time"

// CartItem is a pending booking owned by exactly one user. The composite
// index backs the owner-scoped duplicate rule.
type CartItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID string `gorm:"size:36;not null;uniqueIndex:idx_cart_owner_slot,priority:1" json:"owner_id"`

	ServiceID uint    `gorm:"not null;uniqueIndex:idx_cart_owner_slot,priority:2" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	PetName string `gorm:"size:100;not null" json:"pet_name"`
	PetType string `gorm:"size:30;not null" json:"pet_type"`

	BookingDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_cart_owner_slot,priority:3" json:"booking_date"`
	BookingTime string    `gorm:"size:5;not null;uniqueIndex:idx_cart_owner_slot,priority:4" json:"booking_time"`

	CustomerName  string `gorm:"size:100" json:"customer_name,omitempty"`
	CustomerEmail string `gorm:"size:255" json:"customer_email,omitempty"`
	Notes         string `gorm:"size:255" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
