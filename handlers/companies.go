package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies := []models.Company{}
	if err := h.DB.Order("id DESC").Find(&companies).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, companies)
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var c models.Company
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}
	if c.Status == "" {
		c.Status = "Active"
	}

	if err := h.DB.Create(&c).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Company created", c.ID)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid company id")
		return
	}

	var c models.Company
	if err := h.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Company not found")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

func (h *Handler) CompanyProjects(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid company id")
		return
	}

	projects := []models.Project{}
	if err := h.DB.Where("company_id = ?", id).Order("id DESC").Find(&projects).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, projects)
}

func (h *Handler) CompanyPayments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid company id")
		return
	}

	payments := []models.Payment{}
	if err := h.DB.Where("company_id = ?", id).Order("id DESC").Find(&payments).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}
