package models

import "time"

// Guest is the profile row attached to an authenticated account. The row
// is created at first sign-in; identity-verification fields are filled in
// later by the guest from the profile page.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string `gorm:"column:full_name;size:255" json:"fullName"`
	Email    string `gorm:"column:email;size:255;uniqueIndex" json:"email"`

	NationalID  string `gorm:"column:national_id;size:32" json:"nationalID"`
	Nationality string `gorm:"column:nationality;size:64" json:"nationality"`
	CountryFlag string `gorm:"column:country_flag;size:16" json:"countryFlag"`
}
