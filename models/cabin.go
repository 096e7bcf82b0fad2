package models

import "time"

// Cabin is read-only for this backend; the admin console owns writes.
type Cabin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string  `gorm:"column:name;size:255" json:"name"`
	MaxCapacity  int     `gorm:"column:max_capacity" json:"maxCapacity"`
	RegularPrice float64 `gorm:"column:regular_price" json:"regularPrice"`
	Discount     float64 `gorm:"column:discount" json:"discount"`
	Image        string  `gorm:"column:image;size:512" json:"image"`
	Description  string  `gorm:"column:description;type:text" json:"description"`
}
