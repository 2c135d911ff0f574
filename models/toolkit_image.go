package models

import "time"

type ToolkitImage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Label     string    `gorm:"column:label" json:"label"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	Group     *string   `gorm:"column:group_tag" json:"group"`
	Order     *int      `gorm:"column:sort_order" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
