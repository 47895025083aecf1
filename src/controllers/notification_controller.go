package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
	"github.com/campusbridge/placement-portal/src/services"
)

// unreadPollLimit caps the number of items returned to polling clients.
const unreadPollLimit = 10

// GetNotifications returns the full notification feed for the authenticated
// student, newest first, and marks every unread notification as read. The
// returned items still show their pre-fetch read state. Callers without a
// student profile get an empty list plus an explanatory message instead of
// an error.
func GetNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	student, err := user.GetStudentProfile(lib.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success":       false,
				"notifications": []services.FeedItem{},
				"error_message": "You don't have a student profile.",
			})
		}
		lib.Log.WithError(err).Error("failed to load student profile")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	feed, err := services.FetchFeed(lib.DB, *student)
	if err != nil {
		lib.Log.WithError(err).Error("failed to fetch notification feed")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"notifications": feed,
	})
}

// GetUnreadNotifications returns the unread count plus the latest unread
// notifications for polling clients, without marking anything read
func GetUnreadNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	student, err := user.GetStudentProfile(lib.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "No student profile",
			})
		}
		lib.Log.WithError(err).Error("failed to load student profile")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	notifications, unreadCount, err := services.ListUnread(lib.DB, *student, unreadPollLimit)
	if err != nil {
		lib.Log.WithError(err).Error("failed to list unread notifications")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"unread_count":  unreadCount,
		"notifications": notifications,
	})
}
