package models

import "time"

// Project is the central record. Optional references and cost figures
// are pointers so that absent values stay NULL, never empty strings.
type Project struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Name      string   `gorm:"size:255;not null" json:"name"`
	CompanyID *uint    `gorm:"index" json:"companyId,omitempty"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	Type   string `gorm:"size:100" json:"type"`
	Status string `gorm:"size:50;default:'Planned'" json:"status"`

	Address     string `gorm:"size:255" json:"address"`
	Country     string `gorm:"size:100" json:"country"`
	City        string `gorm:"size:100" json:"city"`
	Area        string `gorm:"size:100" json:"area"`
	Block       string `gorm:"size:50" json:"block"`
	Street      string `gorm:"size:100" json:"street"`
	Coordinates string `gorm:"size:100" json:"coordinates"`

	// Derived from Coordinates when it holds a "lat,long" pair.
	GPSLat  *float64 `gorm:"column:gps_lat" json:"gpsLat,omitempty"`
	GPSLong *float64 `gorm:"column:gps_long" json:"gpsLong,omitempty"`

	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	ApprovedCost  *float64 `json:"approvedCost,omitempty"`
	ActualCost    *float64 `json:"actualCost,omitempty"`

	StartDate *JSONTime `json:"startDate,omitempty"`
	EndDate   *JSONTime `json:"endDate,omitempty"`

	ProjectManager string `gorm:"size:100" json:"projectManager"`
	SiteEngineer   string `gorm:"size:100" json:"siteEngineer"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

// Project lifecycle statuses.
const (
	ProjectStatusPlanned   = "Planned"
	ProjectStatusOngoing   = "Ongoing"
	ProjectStatusCompleted = "Completed"
	ProjectStatusOnHold    = "On Hold"
	ProjectStatusCancelled = "Cancelled"
)
