package models

import "time"

// Payment belongs to exactly one company. It is the only entity with
// the full create/update/delete surface exposed.
type Payment struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	CompanyID uint     `gorm:"index;not null" json:"companyId"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	Amount      float64   `json:"amount"`
	Type        string    `gorm:"size:100" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Date        *JSONTime `json:"date,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }
