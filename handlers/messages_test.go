package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahid-Raza547/civiltech-backend/models"
)

func seedUser(t *testing.T, app *testApp, name, email string) uuid.UUID {
	t.Helper()

	u := models.User{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, app.db.Create(&u).Error)
	return u.ID
}

func TestPostMessageCreatesNotification(t *testing.T) {
	app := newTestApp(t, fullConfig())
	sender := seedUser(t, app, "Sara", "sara@example.com")
	receiver := seedUser(t, app, "Omar", "omar@example.com")

	resp := app.request(t, http.MethodPost, "/api/messages", map[string]string{
		"sender_id":   sender.String(),
		"receiver_id": receiver.String(),
		"subject":     "Pour schedule",
		"body":        "Concrete arrives at 6am.",
	})
	out := created(t, resp)
	assert.Equal(t, "Message sent", out.Message)

	inbox := app.request(t, http.MethodGet, "/api/messages/"+receiver.String(), nil)
	require.Equal(t, http.StatusOK, inbox.Code, inbox.Body.String())

	var received []struct {
		Subject    string `json:"subject"`
		Body       string `json:"body"`
		SenderName string `json:"senderName"`
		CreatedAt  string `json:"createdAt"`
	}
	decodeData(t, inbox, &received)
	require.Len(t, received, 1)
	assert.Equal(t, "Pour schedule", received[0].Subject)
	assert.Equal(t, "Sara", received[0].SenderName)

	// Timestamps come back RFC3339 no matter what the driver returns.
	_, err := time.Parse(time.RFC3339, received[0].CreatedAt)
	assert.NoError(t, err)

	sent := app.request(t, http.MethodGet, "/api/messages/sent/"+sender.String(), nil)
	require.Equal(t, http.StatusOK, sent.Code, sent.Body.String())

	var outbox []struct {
		Subject      string `json:"subject"`
		ReceiverName string `json:"receiverName"`
	}
	decodeData(t, sent, &outbox)
	require.Len(t, outbox, 1)
	assert.Equal(t, "Omar", outbox[0].ReceiverName)

	// The receiver's inbox for the sender's id stays empty.
	other := app.request(t, http.MethodGet, "/api/messages/"+sender.String(), nil)
	require.Equal(t, http.StatusOK, other.Code)
	assert.Contains(t, other.Body.String(), `"data":[]`)

	notifications := app.request(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, notifications.Code)

	var notes []struct {
		Text string `json:"text"`
		Type string `json:"type"`
	}
	decodeData(t, notifications, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "New message from Sara: Pour schedule", notes[0].Text)
	assert.Equal(t, "message", notes[0].Type)
}

func TestPostMessageUnknownSender(t *testing.T) {
	app := newTestApp(t, fullConfig())
	receiver := seedUser(t, app, "Omar", "omar@example.com")

	resp := app.request(t, http.MethodPost, "/api/messages", map[string]string{
		"sender_id":   uuid.NewString(),
		"receiver_id": receiver.String(),
		"subject":     "hi",
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Sender not found", decodeError(t, resp).Message)
}

func TestPostMessageBadIDs(t *testing.T) {
	app := newTestApp(t, fullConfig())

	resp := app.request(t, http.MethodPost, "/api/messages", map[string]string{
		"sender_id":   "not-a-uuid",
		"receiver_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "invalid sender_id", decodeError(t, resp).Message)
}

func TestClearNotifications(t *testing.T) {
	app := newTestApp(t, fullConfig())
	require.NoError(t, app.db.Create(&models.Notification{Text: "a", Type: "message"}).Error)
	require.NoError(t, app.db.Create(&models.Notification{Text: "b", Type: "message"}).Error)

	resp := app.request(t, http.MethodDelete, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = app.request(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"data":[]`)
}
