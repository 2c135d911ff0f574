package models

import "time"

// Profile carries per-user flags, keyed by the user id.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
