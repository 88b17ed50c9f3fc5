package models

import (
	"time"

	"gorm.io/datatypes"
)

// GISFeature stores one GeoJSON feature attached to a project. The
// geometry is kept verbatim as JSONB; the centroid is derived at
// import time. The table is optional per deployment.
type GISFeature struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ProjectID uint     `gorm:"index;not null" json:"projectId"`
	Project   *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	Name        string         `gorm:"size:255" json:"name"`
	FeatureType string         `gorm:"size:50" json:"featureType"`
	Geometry    datatypes.JSON `gorm:"type:jsonb" json:"geometry"`

	CentroidLat  *float64 `json:"centroidLat,omitempty"`
	CentroidLong *float64 `json:"centroidLong,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (GISFeature) TableName() string { return "gis_features" }
