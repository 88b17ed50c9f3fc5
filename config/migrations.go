package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
)

// Migrate runs the versioned schema migrations. The GIS and document
// tables are created only when their feature flags are on, so a fresh
// deployment can legitimately lack them.
func Migrate(db *gorm.DB, cfg Config) error {
	migrations := []*gormigrate.Migration{
		{
			ID: "20250301_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{}, &models.Company{}, &models.Project{},
					&models.Category{}, &models.ProjectScope{}, &models.DailyProgress{},
					&models.ProgressPhoto{}, &models.LaborRole{}, &models.DailyLabor{},
					&models.FleetEquipment{}, &models.EquipmentLog{}, &models.Payment{},
					&models.Message{}, &models.Notification{},
				)
			},
		},
	}

	if cfg.EnableDocuments {
		migrations = append(migrations, &gormigrate.Migration{
			ID: "20250310_create_document_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.ProjectDocument{})
			},
		})
	}

	if cfg.EnableGIS {
		migrations = append(migrations, &gormigrate.Migration{
			ID: "20250322_create_gis_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.GISFeature{})
			},
		})
	}

	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations)
	return m.Migrate()
}
