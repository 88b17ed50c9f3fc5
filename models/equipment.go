package models

import "time"

// FleetEquipment is master data for company-owned machinery.
type FleetEquipment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Type    string `gorm:"size:100" json:"type"`
	PlateNo string `gorm:"size:50" json:"plateNo"`
	Status  string `gorm:"size:50;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (FleetEquipment) TableName() string { return "fleet_equipment" }

// EquipmentLog records per-project, per-date equipment usage.
type EquipmentLog struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProjectID uint     `gorm:"index;not null" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	Date   *JSONTime `json:"date,omitempty"`
	Name   string    `gorm:"size:100;not null" json:"name"`
	Status string    `gorm:"size:50" json:"status"`
	Hours  float64   `json:"hours"`

	CreatedAt time.Time `json:"createdAt"`
}

func (EquipmentLog) TableName() string { return "equipment_logs" }
