package models

import "time"

// Category is a unit-of-work classification referenced by scope and
// progress records, e.g. "Civil" measured in cubic meters.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Unit string `gorm:"size:50" json:"unit"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Category) TableName() string { return "categories" }
