package models

import "time"

// Setting is a singleton row of site-wide booking limits maintained by
// the admin console and read by the booking pages.
type Setting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	MinBookingLength    int     `gorm:"column:min_booking_length" json:"minBookingLength"`
	MaxBookingLength    int     `gorm:"column:max_booking_length" json:"maxBookingLength"`
	MaxGuestsPerBooking int     `gorm:"column:max_guests_per_booking" json:"maxGuestsPerBooking"`
	BreakfastPrice      float64 `gorm:"column:breakfast_price" json:"breakfastPrice"`
}
