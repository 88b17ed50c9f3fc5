package models

import "time"

// ProjectScope is the planned quantity of one category of work on a
// project. Actual quantities are summed from DailyProgress at read time.
type ProjectScope struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uint      `gorm:"index;not null" json:"projectId"`
	Project    *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	PlannedQty float64 `json:"plannedQty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (ProjectScope) TableName() string { return "project_scopes" }

// DailyProgress is a per-project, per-category, per-date completed
// quantity. It feeds scope actuals and the dashboard aggregates.
type DailyProgress struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uint      `gorm:"index;not null" json:"projectId"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Date         *JSONTime `json:"date,omitempty"`
	CompletedQty float64   `json:"completedQty"`
	Notes        string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}

func (DailyProgress) TableName() string { return "daily_progress" }

// ProgressPhoto belongs to one DailyProgress entry.
type ProgressPhoto struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProgressID uint   `gorm:"index;not null" json:"progressId"`
	URL        string `gorm:"size:255;not null" json:"url"`

	CreatedAt time.Time `json:"createdAt"`
}

func (ProgressPhoto) TableName() string { return "progress_photos" }
