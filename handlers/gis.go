package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"gorm.io/datatypes"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

// ProjectGIS lists a project's stored GeoJSON features. When the GIS
// table is not provisioned the listing degrades to an empty result.
func (h *Handler) ProjectGIS(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	if !h.Features.GIS {
		utils.JSON(w, http.StatusOK, []models.GISFeature{})
		return
	}

	features := []models.GISFeature{}
	if err := h.DB.Where("project_id = ?", id).Order("id").Find(&features).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, features)
}

// ImportGIS accepts a GeoJSON FeatureCollection, derives each
// feature's centroid and stores the geometry verbatim.
func (h *Handler) ImportGIS(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	if !h.Features.GIS {
		utils.Error(w, http.StatusBadRequest, utils.CodeFeatureDisabled, "GIS storage is not provisioned")
		return
	}

	var project models.Project
	if err := h.DB.First(&project, id).Error; err != nil {
		utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Project not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "cannot read body")
		return
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "invalid GeoJSON: "+err.Error())
		return
	}

	imported := 0
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}

		geomJSON, err := json.Marshal(geojson.NewGeometry(f.Geometry))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
			return
		}

		// GeoJSON is lon/lat ordered.
		centroid, _ := planar.CentroidArea(f.Geometry)
		lat, long := centroid[1], centroid[0]

		name, _ := f.Properties["name"].(string)
		row := models.GISFeature{
			ProjectID:    project.ID,
			Name:         name,
			FeatureType:  f.Geometry.GeoJSONType(),
			Geometry:     datatypes.JSON(geomJSON),
			CentroidLat:  &lat,
			CentroidLong: &long,
		}
		if err := h.DB.Create(&row).Error; err != nil {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
			return
		}
		imported++
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "GIS features imported",
		"count":   imported,
	})
}
