package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
	"github.com/campusbridge/placement-portal/src/services"
)

// RequestFollow sends a follow request from the authenticated user to a
// student, entering the approve/reject workflow
func RequestFollow(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid student ID format"))
	}

	user := c.Locals("user").(models.User)

	result, err := services.RequestFollow(lib.DB, user, studentID)
	if err != nil {
		if errors.Is(err, services.ErrSelfAction) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Cannot follow yourself"))
		}
		return serviceError(c, err)
	}

	if !result.Created {
		// An edge already exists; report its status instead of duplicating it.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"status":  result.Status,
			"message": fmt.Sprintf("Already %s", result.Status),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"status":  result.Status,
		"message": "Follow request sent",
	})
}

// ResolveFollowRequest lets the followed student accept or reject a pending
// follow request
func ResolveFollowRequest(c *fiber.Ctx) error {
	followID, err := parseIDParam(c, "requestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid request ID format"))
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid request body"))
	}

	user := c.Locals("user").(models.User)

	followersCount, err := services.ResolveFollowRequest(lib.DB, user, followID, req.Action)
	if err != nil {
		return serviceError(c, err)
	}

	message := "Follow request accepted"
	if req.Action == "reject" {
		message = "Follow request rejected"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":         true,
		"message":         message,
		"followers_count": followersCount,
	})
}

// ToggleFollow toggles the follow edge unconditionally, bypassing the
// approve/reject workflow
func ToggleFollow(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid student ID format"))
	}

	user := c.Locals("user").(models.User)

	following, err := services.ToggleFollow(lib.DB, user, studentID)
	if err != nil {
		if errors.Is(err, services.ErrSelfAction) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Cannot follow yourself"))
		}
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"following": following,
	})
}
