package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking statuses. The guest-facing backend only ever writes
// StatusUnconfirmed; check-in/check-out transitions belong to the
// reception console.
const (
	StatusUnconfirmed = "unconfirmed"
	StatusCheckedIn   = "checked-in"
	StatusCheckedOut  = "checked-out"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`
	CabinID uint `gorm:"index;column:cabin_id" json:"cabinId"`

	StartDate datatypes.Date `gorm:"column:start_date" json:"startDate"`
	EndDate   datatypes.Date `gorm:"column:end_date" json:"endDate"`
	NumNights int            `gorm:"column:num_nights" json:"numNights"`

	NumGuests    int     `gorm:"column:num_guests" json:"numGuests"`
	Observations string  `gorm:"column:observations;size:1000" json:"observations"`
	CabinPrice   float64 `gorm:"column:cabin_price" json:"cabinPrice"`
	ExtrasPrice  float64 `gorm:"column:extras_price" json:"extrasPrice"`
	TotalPrice   float64 `gorm:"column:total_price" json:"totalPrice"`

	IsPaid       bool   `gorm:"column:is_paid;default:false" json:"isPaid"`
	HasBreakfast bool   `gorm:"column:has_breakfast;default:false" json:"hasBreakfast"`
	Status       string `gorm:"column:status;size:32" json:"status"`

	Cabin Cabin `gorm:"foreignKey:CabinID;references:ID" json:"cabin,omitempty"`
}
