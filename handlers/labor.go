package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

type dailyLaborReq struct {
	ProjectID   interface{} `json:"project_id"`
	Date        interface{} `json:"date"`
	Engineers   int         `json:"engineers"`
	Technicians int         `json:"technicians"`
	Laborers    int         `json:"laborers"`
	Hours       interface{} `json:"hours"`
}

// ListLabor returns daily labor records, optionally filtered by
// ?project_id=.
func (h *Handler) ListLabor(w http.ResponseWriter, r *http.Request) {
	rows := []models.DailyLabor{}
	q := h.DB.Order("id DESC")
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

func (h *Handler) CreateLabor(w http.ResponseWriter, r *http.Request) {
	var req dailyLaborReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	projectID := utils.OptionalUint(req.ProjectID)
	if projectID == nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "project_id is required")
		return
	}

	row := models.DailyLabor{
		ProjectID:   *projectID,
		Date:        utils.OptionalDate(req.Date),
		Engineers:   req.Engineers,
		Technicians: req.Technicians,
		Laborers:    req.Laborers,
	}
	if hours := utils.OptionalFloat(req.Hours); hours != nil {
		row.Hours = *hours
	}

	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Labor record created", row.ID)
}
