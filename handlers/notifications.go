package handlers

import (
	"net/http"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications := []models.Notification{}
	if err := h.DB.Order("id DESC").Find(&notifications).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, notifications)
}

// ClearNotifications bulk-deletes every notification.
func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.Where("1 = 1").Delete(&models.Notification{}).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Message(w, http.StatusOK, "Notifications cleared")
}
