package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
	"github.com/campusbridge/placement-portal/src/services"
)

// GetStudentProfile returns a student profile with project list, accepted
// follower/following counts and the caller's follow status. The owner also
// receives their pending follow requests.
func GetStudentProfile(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid student ID format"))
	}

	user := c.Locals("user").(models.User)

	var student models.StudentProfile
	if err := lib.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Student not found"))
		}
		lib.Log.WithError(err).Error("failed to load student profile")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	isOwner := student.UserID == user.ID

	projectQuery := lib.DB.Where("student_id = ?", student.ID)
	if !isOwner {
		// Private projects stay invisible to everyone but the owner.
		projectQuery = projectQuery.Where("visibility = ?", models.VisibilityPublic)
	}

	var projects []models.Project
	if err := projectQuery.Order("created_at DESC").Find(&projects).Error; err != nil {
		lib.Log.WithError(err).Error("failed to load projects")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	projectDtos := make([]models.ProjectDto, 0, len(projects))
	for _, project := range projects {
		projectDtos = append(projectDtos, project.ToDto())
	}

	followersCount, err := services.FollowerCount(lib.DB, student.ID)
	if err != nil {
		return serviceError(c, err)
	}
	followingCount, err := services.FollowingCount(lib.DB, student.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	followStatus := "none"
	if !isOwner {
		followStatus, err = services.FollowStatusFor(lib.DB, user, student.ID)
		if err != nil {
			return serviceError(c, err)
		}
	}

	response := fiber.Map{
		"success":         true,
		"student":         student,
		"projects":        projectDtos,
		"projects_count":  len(projectDtos),
		"followers_count": followersCount,
		"following_count": followingCount,
		"follow_status":   followStatus,
	}

	if isOwner {
		var pending []models.StudentFollow
		err := lib.DB.Preload("Follower").
			Where("following_id = ? AND status = ?", student.ID, models.FollowStatusPending).
			Order("created_at DESC").
			Find(&pending).Error
		if err != nil {
			lib.Log.WithError(err).Error("failed to load pending follow requests")
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
		}

		type pendingRequest struct {
			ID       uint   `json:"_id"`
			Follower string `json:"follower"`
		}
		requests := make([]pendingRequest, 0, len(pending))
		for _, edge := range pending {
			requests = append(requests, pendingRequest{ID: edge.ID, Follower: edge.Follower.Username})
		}
		response["pending_requests"] = requests
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// CreateProject creates a project for the authenticated student, optionally
// storing an uploaded screenshot
func CreateProject(c *fiber.Ctx) error {
	student := c.Locals("student").(models.StudentProfile)

	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Title is required"))
	}

	visibility := c.FormValue("visibility")
	if visibility != models.VisibilityPrivate {
		visibility = models.VisibilityPublic
	}

	category := c.FormValue("category")
	if category == "" {
		category = "Other"
	}

	project := models.Project{
		StudentID:      student.ID,
		Title:          title,
		Description:    c.FormValue("description"),
		Category:       category,
		Tags:           c.FormValue("tags"),
		Visibility:     visibility,
		AllowDownloads: c.FormValue("allow_downloads") == "on",
		OutputLink:     c.FormValue("output_link"),
		ProjectLink:    c.FormValue("project_link"),
	}

	if file, err := c.FormFile("screenshot"); err == nil {
		screenshotURL, err := storeUpload(file)
		if err != nil {
			lib.Log.WithError(err).Error("failed to store screenshot")
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to store screenshot"))
		}
		project.Screenshot = screenshotURL
	}

	if err := lib.DB.Create(&project).Error; err != nil {
		lib.Log.WithError(err).Error("failed to create project")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to create project"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project created successfully",
		"project": project.ToDto(),
	})
}

// EditProject updates a project owned by the authenticated student
func EditProject(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid project ID format"))
	}

	student := c.Locals("student").(models.StudentProfile)

	var project models.Project
	err = lib.DB.Where("id = ? AND student_id = ?", projectID, student.ID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Project not found"))
		}
		lib.Log.WithError(err).Error("failed to load project")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	// Absent form fields keep their stored value
	if value := c.FormValue("title"); value != "" {
		project.Title = value
	}
	if value := c.FormValue("description"); value != "" {
		project.Description = value
	}
	if value := c.FormValue("category"); value != "" {
		project.Category = value
	}
	if value := c.FormValue("tags"); value != "" {
		project.Tags = value
	}
	if value := c.FormValue("visibility"); value == models.VisibilityPublic || value == models.VisibilityPrivate {
		project.Visibility = value
	}
	if value := c.FormValue("output_link"); value != "" {
		project.OutputLink = value
	}
	if value := c.FormValue("project_link"); value != "" {
		project.ProjectLink = value
	}
	project.AllowDownloads = c.FormValue("allow_downloads") == "on"

	if file, err := c.FormFile("screenshot"); err == nil {
		screenshotURL, err := storeUpload(file)
		if err != nil {
			lib.Log.WithError(err).Error("failed to store screenshot")
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to store screenshot"))
		}
		project.Screenshot = screenshotURL
	}

	if err := lib.DB.Save(&project).Error; err != nil {
		lib.Log.WithError(err).Error("failed to update project")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to update project"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Project updated successfully",
		"project": project.ToDto(),
	})
}

// DeleteProject removes a project owned by the authenticated student along
// with its view, like and notification rows
func DeleteProject(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid project ID format"))
	}

	student := c.Locals("student").(models.StudentProfile)

	var project models.Project
	err = lib.DB.Where("id = ? AND student_id = ?", projectID, student.ID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Project not found"))
		}
		lib.Log.WithError(err).Error("failed to load project")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		lib.Log.WithError(err).Error("failed to delete project")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to delete project"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse(true, "Project deleted successfully"))
}

// GetMyProjects lists the authenticated student's own projects with their
// engagement counts
func GetMyProjects(c *fiber.Ctx) error {
	student := c.Locals("student").(models.StudentProfile)

	var projects []models.Project
	err := lib.DB.Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load projects")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	type projectWithCounts struct {
		models.ProjectDto
		ViewCount int64 `json:"view_count"`
		LikeCount int64 `json:"like_count"`
	}

	response := make([]projectWithCounts, 0, len(projects))
	for _, project := range projects {
		viewCount, err := services.ViewCount(lib.DB, project.ID)
		if err != nil {
			return serviceError(c, err)
		}
		likeCount, err := services.LikeCount(lib.DB, project.ID)
		if err != nil {
			return serviceError(c, err)
		}
		response = append(response, projectWithCounts{
			ProjectDto: project.ToDto(),
			ViewCount:  viewCount,
			LikeCount:  likeCount,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"projects": response,
	})
}
