package models

import (
	"time"
)

type Seller struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Login
	Username string `gorm:"unique;not null;size:50" json:"username"`
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Profile
	Fullname string `gorm:"size:100;not null" json:"fullname"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Address  string `gorm:"type:text;not null" json:"address"`
	Gender   string `gorm:"size:10;not null" json:"gender"`  // Male, Female, Others
	Country  string `gorm:"size:30;not null" json:"country"` // Bangladesh, India, Pakistan, Nepal
	Image    string `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
