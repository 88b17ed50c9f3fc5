package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

// Master-data endpoints: categories, fleet equipment and labor roles.
// Plain list/create, id ascending.

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := []models.Category{}
	if err := h.DB.Order("id").Find(&categories).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}
	if err := h.DB.Create(&c).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Category created", c.ID)
}

func (h *Handler) ListFleet(w http.ResponseWriter, r *http.Request) {
	fleet := []models.FleetEquipment{}
	if err := h.DB.Order("id").Find(&fleet).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, fleet)
}

func (h *Handler) CreateFleet(w http.ResponseWriter, r *http.Request) {
	var f models.FleetEquipment
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}
	if f.Status == "" {
		f.Status = "Available"
	}
	if err := h.DB.Create(&f).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Equipment created", f.ID)
}

type laborRoleReq struct {
	Name      string      `json:"name"`
	DailyRate interface{} `json:"daily_rate"`
}

func (h *Handler) ListLaborRoles(w http.ResponseWriter, r *http.Request) {
	roles := []models.LaborRole{}
	if err := h.DB.Order("id").Find(&roles).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, roles)
}

func (h *Handler) CreateLaborRole(w http.ResponseWriter, r *http.Request) {
	var req laborRoleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	role := models.LaborRole{
		Name:      req.Name,
		DailyRate: utils.OptionalFloat(req.DailyRate),
	}
	if err := h.DB.Create(&role).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Labor role created", role.ID)
}
