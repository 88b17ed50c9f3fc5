package models

import "time"

// LaborRole is master data for workforce classification.
type LaborRole struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Name      string   `gorm:"size:100;not null" json:"name"`
	DailyRate *float64 `json:"dailyRate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (LaborRole) TableName() string { return "labor_roles" }

// DailyLabor records per-project, per-date workforce counts.
type DailyLabor struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProjectID uint     `gorm:"index;not null" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	Date        *JSONTime `json:"date,omitempty"`
	Engineers   int       `json:"engineers"`
	Technicians int       `json:"technicians"`
	Laborers    int       `json:"laborers"`
	Hours       float64   `json:"hours"`

	CreatedAt time.Time `json:"createdAt"`
}

func (DailyLabor) TableName() string { return "daily_labor" }
