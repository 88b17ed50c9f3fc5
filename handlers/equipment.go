package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

type equipmentLogReq struct {
	ProjectID interface{} `json:"project_id"`
	Date      interface{} `json:"date"`
	Name      string      `json:"name"`
	Status    string      `json:"status"`
	Hours     interface{} `json:"hours"`
}

// ListEquipment returns equipment logs, optionally filtered by
// ?project_id=.
func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	rows := []models.EquipmentLog{}
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

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req equipmentLogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	projectID := utils.OptionalUint(req.ProjectID)
	if projectID == nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "project_id is required")
		return
	}

	row := models.EquipmentLog{
		ProjectID: *projectID,
		Date:      utils.OptionalDate(req.Date),
		Name:      req.Name,
		Status:    req.Status,
	}
	if hours := utils.OptionalFloat(req.Hours); hours != nil {
		row.Hours = *hours
	}

	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Equipment log created", row.ID)
}
