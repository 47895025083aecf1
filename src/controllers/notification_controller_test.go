package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

func notificationApp(user models.User, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/notifications", func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return handler(c)
	})
	return app
}

func TestGetNotificationsWithoutStudentProfile(t *testing.T) {
	setupControllerDB(t)

	// Recruiters and admins have no feed; the endpoint still answers 200.
	user := models.User{Username: "acme", Email: "acme@example.com", Password: "x"}
	require.NoError(t, lib.DB.Create(&user).Error)

	app := notificationApp(user, GetNotifications)
	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "You don't have a student profile.", body["error_message"])

	notifications, ok := body["notifications"].([]any)
	require.True(t, ok)
	assert.Empty(t, notifications)
}

func TestGetUnreadNotificationsWithoutStudentProfile(t *testing.T) {
	setupControllerDB(t)

	user := models.User{Username: "acme", Email: "acme@example.com", Password: "x"}
	require.NoError(t, lib.DB.Create(&user).Error)

	app := notificationApp(user, GetUnreadNotifications)
	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No student profile", body["error"])
}

func TestGetNotificationsReturnsFeed(t *testing.T) {
	setupControllerDB(t)

	sender := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, lib.DB.Create(&sender).Error)
	recipientUser := models.User{Username: "bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, lib.DB.Create(&recipientUser).Error)
	recipient := models.StudentProfile{UserID: recipientUser.ID, StudentName: "bob"}
	require.NoError(t, lib.DB.Create(&recipient).Error)

	require.NoError(t, lib.DB.Create(&models.Notification{
		RecipientID: recipient.ID,
		SenderID:    sender.ID,
		Type:        models.NotificationTypeFollow,
	}).Error)

	app := notificationApp(recipientUser, GetNotifications)
	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])

	notifications, ok := body["notifications"].([]any)
	require.True(t, ok)
	require.Len(t, notifications, 1)
	item := notifications[0].(map[string]any)
	assert.Equal(t, "follow", item["type"])
	assert.Equal(t, "alice", item["sender"])
}
