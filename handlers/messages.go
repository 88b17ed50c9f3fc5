package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

type messageRow struct {
	ID           uint      `json:"id"`
	SenderID     uuid.UUID `json:"senderId"`
	ReceiverID   uuid.UUID `json:"receiverId"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	SenderName   string    `json:"senderName,omitempty"`
	ReceiverName string    `json:"receiverName,omitempty"`

	// Scanned through JSONTime so the wire format is RFC3339
	// regardless of how the driver returns the column.
	CreatedAt models.JSONTime `json:"createdAt"`
}

func pathUserID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["userId"])
}

// Inbox lists messages received by a user, newest first, with the
// sender's name joined.
func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid user id")
		return
	}

	rows := []messageRow{}
	q := `
		SELECT m.id, m.sender_id, m.receiver_id, m.subject, m.body,
		       u.name AS sender_name, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.receiver_id = ?
		ORDER BY m.id DESC`
	if err := h.DB.Raw(q, userID).Scan(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

// Sent lists messages sent by a user with the receiver's name joined.
func (h *Handler) Sent(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid user id")
		return
	}

	rows := []messageRow{}
	q := `
		SELECT m.id, m.sender_id, m.receiver_id, m.subject, m.body,
		       u.name AS receiver_name, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.receiver_id
		WHERE m.sender_id = ?
		ORDER BY m.id DESC`
	if err := h.DB.Raw(q, userID).Scan(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

type postMessageReq struct {
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// PostMessage inserts the message and a global notification about it.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "invalid sender_id")
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "invalid receiver_id")
		return
	}

	var sender models.User
	if err := h.DB.First(&sender, "id = ?", senderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Sender not found")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}

	m := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Subject:    req.Subject,
		Body:       req.Body,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	n := models.Notification{
		Text: fmt.Sprintf("New message from %s: %s", sender.Name, req.Subject),
		Type: models.NotificationTypeMessage,
	}
	if err := h.DB.Create(&n).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	utils.Created(w, "Message sent", m.ID)
}
