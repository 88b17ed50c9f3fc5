package models

import "time"

// ProjectDocument references an uploaded file by its stored filename.
// The table is optional per deployment; listings fall back to empty
// when it is absent.
type ProjectDocument struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProjectID uint     `gorm:"index;not null" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	DocType    string `gorm:"size:100" json:"docType"`
	Title      string `gorm:"size:255;not null" json:"title"`
	FileName   string `gorm:"size:255;not null" json:"fileName"`
	UploadedBy string `gorm:"size:100" json:"uploadedBy"`

	CreatedAt time.Time `json:"createdAt"`
}

func (ProjectDocument) TableName() string { return "project_documents" }
