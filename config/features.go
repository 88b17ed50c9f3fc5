package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
)

// Features records which optional tables exist in this deployment.
// Probed once at startup instead of catching schema errors per request.
type Features struct {
	GIS       bool
	Documents bool
}

// DetectFeatures checks table existence for the optional entities.
func DetectFeatures(db *gorm.DB) Features {
	f := Features{
		GIS:       db.Migrator().HasTable(&models.GISFeature{}),
		Documents: db.Migrator().HasTable(&models.ProjectDocument{}),
	}
	if !f.GIS {
		log.Println("GIS table not present, GIS listings will return empty")
	}
	if !f.Documents {
		log.Println("Document table not present, document listings will return empty")
	}
	return f
}
