package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
	"github.com/campusbridge/placement-portal/src/services"
)

// BrowseTalent lists all student profiles for an approved recruiter, most
// viewed first, together with the distinct course list for filtering
func BrowseTalent(c *fiber.Ctx) error {
	var students []models.StudentProfile
	err := lib.DB.Order("profile_views DESC").Find(&students).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load students")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	var courses []string
	err = lib.DB.Model(&models.StudentProfile{}).
		Distinct("course_details").
		Order("course_details").
		Pluck("course_details", &courses).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load courses")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	studentDtos := make([]models.StudentDto, 0, len(students))
	for _, student := range students {
		studentDtos = append(studentDtos, student.ToDto())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"students": studentDtos,
		"courses":  courses,
	})
}

// ViewStudentProfile shows a student profile to a recruiter, bumping the
// profile-view counter
func ViewStudentProfile(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid student ID format"))
	}

	user := c.Locals("user").(models.User)
	recruiter := c.Locals("recruiter").(models.RecruiterProfile)

	var student models.StudentProfile
	if err := lib.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Student not found"))
		}
		lib.Log.WithError(err).Error("failed to load student")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	if err := services.IncrementProfileViews(lib.DB, user, &student); err != nil {
		lib.Log.WithError(err).Error("failed to increment profile views")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	var projects []models.Project
	err = lib.DB.Where("student_id = ? AND visibility = ?", student.ID, models.VisibilityPublic).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load projects")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	projectDtos := make([]models.ProjectDto, 0, len(projects))
	for _, project := range projects {
		projectDtos = append(projectDtos, project.ToDto())
	}

	var savedCount int64
	lib.DB.Table("recruiter_saved_students").
		Where("recruiter_profile_id = ? AND student_profile_id = ?", recruiter.ID, student.ID).
		Count(&savedCount)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"student":  student,
		"projects": projectDtos,
		"is_saved": savedCount > 0,
	})
}

// ToggleSaveStudent saves or unsaves a student profile for the recruiter
func ToggleSaveStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid student ID format"))
	}

	recruiter := c.Locals("recruiter").(models.RecruiterProfile)

	var student models.StudentProfile
	if err := lib.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Student not found"))
		}
		lib.Log.WithError(err).Error("failed to load student")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	var existing int64
	lib.DB.Table("recruiter_saved_students").
		Where("recruiter_profile_id = ? AND student_profile_id = ?", recruiter.ID, student.ID).
		Count(&existing)

	saved := existing == 0
	if saved {
		err = lib.DB.Model(&recruiter).Association("SavedStudents").Append(&student)
	} else {
		err = lib.DB.Model(&recruiter).Association("SavedStudents").Delete(&student)
	}
	if err != nil {
		lib.Log.WithError(err).Error("failed to toggle saved student")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	savedCount := lib.DB.Model(&recruiter).Association("SavedStudents").Count()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"saved":      saved,
		"savedCount": savedCount,
	})
}

// GetSavedProfiles lists the recruiter's saved students with a few recent
// public projects each
func GetSavedProfiles(c *fiber.Ctx) error {
	recruiter := c.Locals("recruiter").(models.RecruiterProfile)

	var savedStudents []models.StudentProfile
	err := lib.DB.Model(&recruiter).Association("SavedStudents").Find(&savedStudents)
	if err != nil {
		lib.Log.WithError(err).Error("failed to load saved students")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	type savedEntry struct {
		Student  models.StudentDto   `json:"student"`
		Projects []models.ProjectDto `json:"projects"`
	}

	entries := make([]savedEntry, 0, len(savedStudents))
	for _, student := range savedStudents {
		var projects []models.Project
		err := lib.DB.Where("student_id = ? AND visibility = ?", student.ID, models.VisibilityPublic).
			Order("created_at DESC").
			Limit(3).
			Find(&projects).Error
		if err != nil {
			lib.Log.WithError(err).Error("failed to load saved student projects")
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
		}

		projectDtos := make([]models.ProjectDto, 0, len(projects))
		for _, project := range projects {
			projectDtos = append(projectDtos, project.ToDto())
		}
		entries = append(entries, savedEntry{Student: student.ToDto(), Projects: projectDtos})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"students": entries,
	})
}

// InitiateHiring opens a hiring process towards a student and notifies them
func InitiateHiring(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid student ID format"))
	}

	var req struct {
		JobTitle string `json:"job_title"`
		Message  string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Invalid request body"))
	}

	user := c.Locals("user").(models.User)
	recruiter := c.Locals("recruiter").(models.RecruiterProfile)

	_, hiringCount, err := services.InitiateHiring(lib.DB, &recruiter, user, studentID, req.JobTitle, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrSelfAction) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "Cannot hire yourself"))
		}
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Hiring process initiated successfully",
		"hiring_count": hiringCount,
	})
}

// GetRecruiterHome returns the recruiter dashboard stats: top students,
// recent public projects and the recruiter's own counters
func GetRecruiterHome(c *fiber.Ctx) error {
	recruiter := c.Locals("recruiter").(models.RecruiterProfile)

	var topStudents []models.StudentProfile
	err := lib.DB.Order("profile_views DESC").Limit(6).Find(&topStudents).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load top students")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	var recentProjects []models.Project
	err = lib.DB.Preload("Student").
		Where("visibility = ?", models.VisibilityPublic).
		Order("created_at DESC").
		Limit(6).
		Find(&recentProjects).Error
	if err != nil {
		lib.Log.WithError(err).Error("failed to load recent projects")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}

	topDtos := make([]models.StudentDto, 0, len(topStudents))
	for _, student := range topStudents {
		topDtos = append(topDtos, student.ToDto())
	}

	projectDtos := make([]models.ProjectDto, 0, len(recentProjects))
	for _, project := range recentProjects {
		projectDtos = append(projectDtos, project.ToDto())
	}

	savedProfiles := lib.DB.Model(&recruiter).Association("SavedStudents").Count()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":         true,
		"company_name":    recruiter.CompanyName,
		"contact_person":  recruiter.ContactPerson,
		"top_students":    topDtos,
		"recent_projects": projectDtos,
		"saved_profiles":  savedProfiles,
		"messages_sent":   recruiter.MessagesCount,
		"hiring_process":  recruiter.HiringProcessCount,
	})
}
