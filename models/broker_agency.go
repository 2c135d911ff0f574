package models

import "time"

// BrokerAgency names are unique by convention only: the CSV import looks up by
// name before inserting, but the schema carries no unique index, so the
// single-add path can still create duplicates.
type BrokerAgency struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
