package models

import "time"

type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogoutAt *time.Time `gorm:"column:last_logout_at" json:"-"`
}
