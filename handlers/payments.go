package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

type paymentReq struct {
	CompanyID   interface{} `json:"company_id"`
	Amount      interface{} `json:"amount"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Date        interface{} `json:"date"`
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments := []models.Payment{}
	if err := h.DB.Order("id DESC").Find(&payments).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	companyID := utils.OptionalUint(req.CompanyID)
	if companyID == nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "company_id is required")
		return
	}

	p := models.Payment{
		CompanyID:   *companyID,
		Type:        req.Type,
		Description: req.Description,
		Date:        utils.OptionalDate(req.Date),
	}
	if amount := utils.OptionalFloat(req.Amount); amount != nil {
		p.Amount = *amount
	}

	if err := h.DB.Create(&p).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Payment created", p.ID)
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid payment id")
		return
	}

	var p models.Payment
	if err := h.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Payment not found")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}

	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	if companyID := utils.OptionalUint(req.CompanyID); companyID != nil {
		p.CompanyID = *companyID
	}
	if amount := utils.OptionalFloat(req.Amount); amount != nil {
		p.Amount = *amount
	}
	if req.Type != "" {
		p.Type = req.Type
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if date := utils.OptionalDate(req.Date); date != nil {
		p.Date = date
	}

	if err := h.DB.Save(&p).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Message(w, http.StatusOK, "Payment updated")
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid payment id")
		return
	}

	res := h.DB.Delete(&models.Payment{}, id)
	if res.Error != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Payment not found")
		return
	}
	utils.Message(w, http.StatusOK, "Payment deleted")
}
