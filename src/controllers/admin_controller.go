package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

// GetPendingRecruiters lists recruiter accounts awaiting approval
func GetPendingRecruiters(c *fiber.Ctx) error {
	var recruiters []models.RecruiterProfile
	err := lib.DB.Where("status = ?", models.RecruiterStatusPending).
		Order("created_at ASC").
		Find(&recruiters).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load pending recruiters")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"recruiters": recruiters,
	})
}

// ApproveRecruiter marks a pending recruiter account as approved
func ApproveRecruiter(c *fiber.Ctx) error {
	recruiterID, err := parseIDParam(c, "recruiterId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid recruiter ID format"))
	}

	var recruiter models.RecruiterProfile
	if err := lib.DB.First(&recruiter, recruiterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Recruiter not found"))
		}
		lib.Log.WithError(err).Error("failed to load recruiter")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	if recruiter.IsApproved() {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Recruiter is already approved"))
	}

	err = lib.DB.Model(&models.RecruiterProfile{}).Where("id = ?", recruiter.ID).
		Update("status", models.RecruiterStatusApproved).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to approve recruiter")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to approve recruiter"))
	}

	lib.Log.WithField("recruiter_id", recruiter.ID).Info("recruiter approved")

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse(true, "Recruiter approved"))
}
