package controllers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
	"github.com/campusbridge/placement-portal/src/services"
)

// GetProjectDetails returns a project detail view and records the visit as a
// project view for qualifying callers
func GetProjectDetails(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid project ID format"))
	}

	user := c.Locals("user").(models.User)

	var project models.Project
	err = lib.DB.Preload("Student").First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Project not found"))
		}
		lib.Log.WithError(err).Error("failed to load project")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	isOwner := project.Student.UserID == user.ID
	if project.Visibility != models.VisibilityPublic && !isOwner && !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse(false, "This project is private"))
	}

	viewCount, err := services.RecordView(lib.DB, user, project.ID)
	if err != nil {
		return serviceError(c, err)
	}

	likeCount, err := services.LikeCount(lib.DB, project.ID)
	if err != nil {
		return serviceError(c, err)
	}

	var likeRow models.ProjectLike
	liked := lib.DB.Where("project_id = ? AND user_id = ?", project.ID, user.ID).
		First(&likeRow).Error == nil

	followStatus, err := services.FollowStatusFor(lib.DB, user, project.StudentID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"project":      project.ToDto(),
		"student":      project.Student.ToDto(),
		"view_count":   viewCount,
		"like_count":   likeCount,
		"liked":        liked,
		"is_following": followStatus != "none",
	})
}

// RecordProjectView records an idempotent project view and always returns
// the current count, including on the no-op path
func RecordProjectView(c *fiber.Ctx) error {
	var req struct {
		ProjectID uint `json:"project_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request.",
		})
	}

	user := c.Locals("user").(models.User)

	newCount, err := services.RecordView(lib.DB, user, req.ProjectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Project not found.",
			})
		}
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"newCount":  newCount,
		"projectId": req.ProjectID,
	})
}

// ToggleProjectLike toggles a like on a project for the authenticated user
func ToggleProjectLike(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid project ID format"))
	}

	user := c.Locals("user").(models.User)

	liked, likeCount, err := services.ToggleLike(lib.DB, user, projectID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"liked":     liked,
		"likeCount": likeCount,
	})
}

// SendProjectHireRequest sends a hire notification to the owner of a project
func SendProjectHireRequest(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid project ID format"))
	}

	user := c.Locals("user").(models.User)

	studentName, err := services.SendProjectHireRequest(lib.DB, user, projectID)
	if err != nil {
		if errors.Is(err, services.ErrSelfAction) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Cannot hire yourself"))
		}
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse(true, fmt.Sprintf("Hire request sent to %s", studentName)))
}

// BrowseProjects lists all public projects with their students and the set
// of tags across them, for the recruiter browsing screen
func BrowseProjects(c *fiber.Ctx) error {
	var projects []models.Project
	err := lib.DB.Preload("Student").
		Where("visibility = ?", models.VisibilityPublic).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load public projects")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	type browseEntry struct {
		Project models.ProjectDto `json:"project"`
		Student models.StudentDto `json:"student"`
	}

	tagSet := make(map[string]struct{})
	entries := make([]browseEntry, 0, len(projects))
	for _, project := range projects {
		for _, tag := range project.TagList() {
			tagSet[tag] = struct{}{}
		}
		entries = append(entries, browseEntry{
			Project: project.ToDto(),
			Student: project.Student.ToDto(),
		})
	}

	allTags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		allTags = append(allTags, tag)
	}
	sort.Strings(allTags)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"projects": entries,
		"all_tags": allTags,
	})
}
