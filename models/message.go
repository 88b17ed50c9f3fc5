package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a directed sender-to-receiver note between users.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;index;not null" json:"senderId"`
	ReceiverID uuid.UUID `gorm:"type:uuid;index;not null" json:"receiverId"`

	Subject string `gorm:"size:255" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Message) TableName() string { return "messages" }

// Notification is global and untargeted; posting a message creates one.
type Notification struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`
	Type string `gorm:"size:50" json:"type"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }

const NotificationTypeMessage = "message"
