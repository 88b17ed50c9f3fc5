package models

import "time"

type Company struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Type          string `gorm:"size:100" json:"type"`
	ContactPerson string `gorm:"size:100" json:"contactPerson"`
	Phone         string `gorm:"size:30" json:"phone"`
	Email         string `gorm:"size:100" json:"email"`
	Address       string `gorm:"size:255" json:"address"`
	Status        string `gorm:"size:50;default:'Active'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Company) TableName() string { return "companies" }
